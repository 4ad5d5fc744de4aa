package chip8

import "fmt"

const (
	// MemSize is the size of the addressable memory space.
	MemSize = 0x1000

	// ProgramStart is the address programs are loaded at and begin
	// execution from. The region below it is reserved for the font.
	ProgramStart = 0x200
)

// Memory is the flat 4K address space of the machine. Addresses are
// logically 12-bit; any access outside [0, MemSize) fails with
// ErrInvalidAddress rather than wrapping, since a correct program never
// addresses beyond the space.
type Memory struct {
	cells [MemSize]byte
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if addr >= MemSize {
		return 0, fmt.Errorf("%w: read at %04X", ErrInvalidAddress, addr)
	}

	return m.cells[addr], nil
}

// Write stores b at addr.
func (m *Memory) Write(addr uint16, b byte) error {
	if addr >= MemSize {
		return fmt.Errorf("%w: write at %04X", ErrInvalidAddress, addr)
	}

	m.cells[addr] = b
	return nil
}

// ReadWord returns the big-endian 16-bit word at addr.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemSize {
		return 0, fmt.Errorf("%w: word read at %04X", ErrInvalidAddress, addr)
	}

	return uint16(m.cells[addr])<<8 | uint16(m.cells[addr+1]), nil
}

// ReadRange returns the n bytes starting at addr. The returned slice
// aliases memory and must not be held across a Write.
func (m *Memory) ReadRange(addr uint16, n uint16) ([]byte, error) {
	if int(addr)+int(n) > MemSize {
		return nil, fmt.Errorf("%w: read of %d bytes at %04X", ErrInvalidAddress, n, addr)
	}

	return m.cells[addr : addr+n], nil
}

// load copies a program into memory at ProgramStart. It fails without
// touching memory if the program does not fit.
func (m *Memory) load(program []byte) error {
	if len(program) > MemSize-ProgramStart {
		return fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge,
			len(program), MemSize-ProgramStart)
	}

	copy(m.cells[ProgramStart:], program)
	return nil
}

// reset zero-fills memory and reloads the font sprites.
func (m *Memory) reset() {
	m.cells = [MemSize]byte{}

	copy(m.cells[FontBase:], fontSprites[:])
}
