package chip8

import (
	"fmt"
	"math/rand"
	"time"
)

// StackDepth is the maximum call depth.
const StackDepth = 16

// State is the execution state of the virtual machine.
type State int

const (
	// Running executes one instruction per Step.
	Running State = iota

	// WaitingForKey suspends the program counter until a key
	// transitions to pressed. Step remains non-blocking; the caller
	// keeps invoking it and the machine simply declines to advance.
	WaitingForKey

	// Halted is terminal, entered on a fatal fault. Further steps are
	// no-ops that re-report the halt reason.
	Halted
)

// VM is the CHIP-8 virtual machine. It owns all interpreter state and is
// mutated exclusively through Step and Tick; it provides no internal
// synchronization, so a host driving those from different goroutines
// must serialize them externally.
type VM struct {
	// Memory is the 4K address space holding font data, the loaded
	// program and runtime scratch space.
	Memory Memory

	// Display is the 64x32 monochrome pixel buffer.
	Display Display

	// Keypad holds the 16 key-down states, set by the caller.
	Keypad Keypad

	// Timers are the delay and sound countdown registers, decremented
	// by Tick at the caller's 60 Hz cadence.
	Timers Timers

	// V are the 16 virtual registers. VF doubles as the
	// carry/borrow/collision flag and is always the last write of any
	// instruction that documents a flag side-effect.
	V [16]byte

	// I is the address register. Instructions may push it past the
	// 12-bit space; the fault surfaces on the next access through it.
	I uint16

	// PC is the program counter.
	PC uint16

	// SP is the stack pointer, indexing the next free stack cell.
	SP byte

	// Stack holds return addresses pushed by CALL.
	Stack [StackDepth]uint16

	state   State
	waitReg uint8
	haltErr error

	// rom is the pristine program image Reset replays.
	rom []byte

	rng *rand.Rand
}

// New creates a virtual machine with the program loaded and ready to
// run. It fails with ErrProgramTooLarge if the program does not fit in
// the space above ProgramStart.
func New(program []byte) (*VM, error) {
	if len(program) > MemSize-ProgramStart {
		return nil, fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge,
			len(program), MemSize-ProgramStart)
	}

	vm := &VM{
		rom: append([]byte(nil), program...),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	vm.Reset()

	return vm, nil
}

// Reset returns the machine to its freshly-loaded state: memory rebuilt
// from the font and the pristine program image, all registers, timers,
// display and keypad cleared, and execution resumed at ProgramStart.
func (vm *VM) Reset() {
	vm.Memory.reset()

	// the program was size-checked in New
	_ = vm.Memory.load(vm.rom)

	vm.Display.Clear()
	vm.Display.ClearDirty()
	vm.Keypad.reset()
	vm.Timers.reset()

	vm.V = [16]byte{}
	vm.I = 0
	vm.PC = ProgramStart
	vm.SP = 0
	vm.Stack = [StackDepth]uint16{}

	vm.state = Running
	vm.waitReg = 0
	vm.haltErr = nil
}

// SeedRandom makes the random-number instruction deterministic.
func (vm *VM) SeedRandom(seed int64) {
	vm.rng = rand.New(rand.NewSource(seed))
}

// State returns the current execution state.
func (vm *VM) State() State {
	return vm.state
}

// HaltReason returns the fault that halted the machine, or nil.
func (vm *VM) HaltReason() error {
	return vm.haltErr
}

// SoundActive reports whether the beep should be audible.
func (vm *VM) SoundActive() bool {
	return vm.Timers.SoundActive()
}

// Tick decrements the delay and sound timers. The caller drives it at a
// 60 Hz logical rate, independent of the instruction clock.
func (vm *VM) Tick() {
	vm.Timers.Tick()
}

// PressKey records a keypad key going down.
func (vm *VM) PressKey(key uint8) {
	vm.Keypad.SetKey(key, true)
}

// ReleaseKey records a keypad key coming back up.
func (vm *VM) ReleaseKey(key uint8) {
	vm.Keypad.SetKey(key, false)
}

// Step runs one fetch-decode-execute cycle. While waiting for a key it
// checks for a fresh key press instead of fetching. On a fatal fault the
// machine transitions to Halted and the fault is returned; every
// subsequent Step returns it again.
func (vm *VM) Step() error {
	switch vm.state {
	case Halted:
		return vm.haltErr

	case WaitingForKey:
		if key, ok := vm.Keypad.justPressed(); ok {
			vm.V[vm.waitReg] = key
			vm.PC += 2
			vm.state = Running
		}

		vm.Keypad.settle()
		return nil
	}

	opcode, err := vm.Memory.ReadWord(vm.PC)
	if err != nil {
		return vm.halt(err)
	}

	in, err := Decode(opcode)
	if err != nil {
		return vm.halt(err)
	}

	if err := vm.execute(in); err != nil {
		return vm.halt(err)
	}

	vm.Keypad.settle()
	return nil
}

// halt transitions the machine into the terminal Halted state.
func (vm *VM) halt(err error) error {
	vm.state = Halted
	vm.haltErr = fmt.Errorf("halted at %04X: %w", vm.PC, err)

	return vm.haltErr
}

// push stores a return address on the call stack.
func (vm *VM) push(addr uint16) error {
	if vm.SP >= StackDepth {
		return fmt.Errorf("%w: call depth %d", ErrStackOverflow, StackDepth)
	}

	vm.Stack[vm.SP] = addr
	vm.SP++

	return nil
}

// pop removes and returns the most recent return address.
func (vm *VM) pop() (uint16, error) {
	if vm.SP == 0 {
		return 0, ErrStackUnderflow
	}

	vm.SP--

	return vm.Stack[vm.SP], nil
}
