package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

// keyMap maps a modern keyboard onto the 16-key pad:
//
//	Keypad       Keyboard
//	+-+-+-+-+    +-+-+-+-+
//	|1|2|3|C|    |1|2|3|4|
//	+-+-+-+-+    +-+-+-+-+
//	|4|5|6|D|    |Q|W|E|R|
//	+-+-+-+-+ => +-+-+-+-+
//	|7|8|9|E|    |A|S|D|F|
//	+-+-+-+-+    +-+-+-+-+
//	|A|0|B|F|    |Z|X|C|V|
//	+-+-+-+-+    +-+-+-+-+
var keyMap = map[sdl.Scancode]uint8{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

// processEvents drains the SDL event queue, reflecting key state into
// the virtual machine. It returns false when the user quits.
func (s *session) processEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if key, ok := keyMap[ev.Keysym.Scancode]; ok {
				s.vm.Keypad.SetKey(key, ev.Type == sdl.KEYDOWN)
				continue
			}

			if ev.Type != sdl.KEYDOWN {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_SPACE, sdl.SCANCODE_F5:
				s.paused = !s.paused
			case sdl.SCANCODE_BACKSPACE:
				s.reset()
			case sdl.SCANCODE_F6:
				if s.paused && !s.halted {
					s.step()
				}
			case sdl.SCANCODE_LEFTBRACKET:
				s.setClockHz(s.clockHz - clockHzStep)
			case sdl.SCANCODE_RIGHTBRACKET:
				s.setClockHz(s.clockHz + clockHzStep)
			}
		}
	}

	return true
}
