package chip8

import "errors"

// Errors reported by the virtual machine. ErrProgramTooLarge is returned
// at load time without mutating any state. The remaining errors are fatal
// at run time: a correct ROM never triggers them, so Step transitions the
// machine to Halted instead of silently masking the fault.
var (
	ErrProgramTooLarge = errors.New("program too large")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrUnknownOpcode   = errors.New("unknown opcode")
)
