// Package main implements an SDL frontend for the CHIP-8 virtual
// machine: it loads a ROM, drives the instruction clock and the 60 Hz
// timer clock, and presents video, audio and keypad input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/piyushrungta25/chip8-go/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var version = "dev"

// options holds the command line configuration.
type options struct {
	rom   string
	clock int
	scale int
	debug bool
	quiet bool
}

// usageError is returned when the command line cannot be parsed.
type usageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) showUsage() {
	fmt.Printf("usage: chip8-go [options] <ROM file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// parseFlags parses the command line. The ROM path is the only
// positional argument and may be omitted, in which case a file dialog
// is shown.
func parseFlags() (options, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	var opts options
	flags.IntVar(&opts.clock, "clock", 700, "instruction clock rate in Hz")
	flags.IntVar(&opts.scale, "scale", 10, "window pixel scale factor")
	flags.BoolVar(&opts.debug, "debug", false, "enable instruction tracing")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &usageError{flags: flags}
	}

	args := flags.Args()
	if len(args) > 1 {
		return opts, &usageError{flags: flags, msg: "expected a single ROM file"}
	}
	if len(args) == 1 {
		opts.rom = args[0]
	}

	if opts.clock < minClockHz || opts.clock > maxClockHz {
		return opts, &usageError{
			flags: flags,
			msg:   fmt.Sprintf("clock rate must be between %d and %d Hz", minClockHz, maxClockHz),
		}
	}

	return opts, nil
}

// newLogger creates a logger with the level selected by the flags.
func newLogger(opts options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.debug {
		cfg.Level = log.DebugLevel
	} else if opts.quiet {
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}

func init() {
	// SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			if usageErr.msg != "" {
				fmt.Println(usageErr.msg)
			}
			usageErr.showUsage()
			os.Exit(1)
		}

		fmt.Println(err)
		os.Exit(1)
	}

	logger := newLogger(opts)
	logger.Info("chip8-go", log.String("version", version))

	if err := run(logger, opts); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(logger *log.Logger, opts options) error {
	rom := opts.rom
	if rom == "" {
		var err error
		rom, err = dialog.File().
			Filter("CHIP-8 ROM", "ch8", "c8", "rom").
			Title("Open ROM").
			Load()
		if err != nil {
			return fmt.Errorf("choosing ROM: %w", err)
		}
	}

	program, err := os.ReadFile(rom)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	vm, err := chip8.New(program)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	logger.Info("ROM loaded",
		log.String("file", filepath.Base(rom)),
		log.Int("bytes", len(program)))

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(
		chip8.DisplayWidth*int32(opts.scale),
		chip8.DisplayHeight*int32(opts.scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()

	window.SetTitle("CHIP-8 - " + filepath.Base(rom))

	screen, err := newScreen(renderer)
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	defer screen.close()

	beeper, err := newBeeper()
	if err != nil {
		return fmt.Errorf("opening audio: %w", err)
	}
	defer beeper.close()

	s := &session{
		vm:      vm,
		logger:  logger,
		clockHz: opts.clock,
		debug:   opts.debug,
	}

	return s.loop(app.Context(), screen, beeper)
}

const (
	minClockHz  = 60
	maxClockHz  = 2000
	clockHzStep = 100
)

// session drives a loaded virtual machine until the user quits or the
// surrounding context is cancelled.
type session struct {
	vm      *chip8.VM
	logger  *log.Logger
	clock   *time.Ticker
	clockHz int
	paused  bool
	halted  bool
	debug   bool
}

// loop runs the two independent clocks: the instruction clock at the
// configured rate and the 60 Hz clock that decrements the timers and
// refreshes video and audio.
func (s *session) loop(ctx context.Context, screen *screen, beeper *beeper) error {
	s.clock = time.NewTicker(time.Second / time.Duration(s.clockHz))
	defer s.clock.Stop()

	frames := time.NewTicker(time.Second / 60)
	defer frames.Stop()

	for s.processEvents() {
		select {
		case <-ctx.Done():
			return nil

		case <-frames.C:
			s.vm.Tick()
			beeper.update(s.vm.SoundActive())
			screen.refresh(s.vm)

		case <-s.clock.C:
			if !s.paused && !s.halted {
				s.step()
			}
		}
	}

	return nil
}

// step executes a single instruction, reporting a fatal fault once.
func (s *session) step() {
	if s.debug {
		s.logger.Debug("step", log.String("instruction", s.vm.Disassemble(s.vm.PC)))
	}

	if err := s.vm.Step(); err != nil {
		s.logger.Error("virtual machine halted",
			log.Err(err),
			log.String("instruction", s.vm.Disassemble(s.vm.PC)))
		s.halted = true
	}
}

// reset reboots the virtual machine with the same ROM.
func (s *session) reset() {
	s.vm.Reset()
	s.halted = false
	s.logger.Info("machine reset")
}

// setClockHz changes the instruction clock rate at run time.
func (s *session) setClockHz(hz int) {
	if hz < minClockHz {
		hz = minClockHz
	}
	if hz > maxClockHz {
		hz = maxClockHz
	}

	if hz == s.clockHz {
		return
	}

	s.clockHz = hz
	s.clock.Reset(time.Second / time.Duration(hz))
	s.logger.Info("clock rate changed", log.Int("hz", hz))
}
