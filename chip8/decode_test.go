package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   Instruction
	}{
		{"cls", 0x00E0, Instruction{Op: OpCls, Y: 0xE, NN: 0xE0, NNN: 0x0E0}},
		{"ret", 0x00EE, Instruction{Op: OpRet, Y: 0xE, NN: 0xEE, N: 0xE, NNN: 0x0EE}},
		{"jp", 0x1234, Instruction{Op: OpJp, X: 2, Y: 3, NN: 0x34, N: 4, NNN: 0x234}},
		{"call", 0x2ABC, Instruction{Op: OpCall, X: 0xA, Y: 0xB, NN: 0xBC, N: 0xC, NNN: 0xABC}},
		{"se byte", 0x3142, Instruction{Op: OpSeByte, X: 1, Y: 4, NN: 0x42, N: 2, NNN: 0x142}},
		{"sne byte", 0x4142, Instruction{Op: OpSneByte, X: 1, Y: 4, NN: 0x42, N: 2, NNN: 0x142}},
		{"se reg", 0x5120, Instruction{Op: OpSeReg, X: 1, Y: 2, NN: 0x20, NNN: 0x120}},
		{"ld byte", 0x6A42, Instruction{Op: OpLdByte, X: 0xA, Y: 4, NN: 0x42, N: 2, NNN: 0xA42}},
		{"add byte", 0x7A01, Instruction{Op: OpAddByte, X: 0xA, NN: 0x01, N: 1, NNN: 0xA01}},
		{"ld reg", 0x8120, Instruction{Op: OpLdReg, X: 1, Y: 2, NN: 0x20, NNN: 0x120}},
		{"or", 0x8121, Instruction{Op: OpOr, X: 1, Y: 2, NN: 0x21, N: 1, NNN: 0x121}},
		{"and", 0x8122, Instruction{Op: OpAnd, X: 1, Y: 2, NN: 0x22, N: 2, NNN: 0x122}},
		{"xor", 0x8123, Instruction{Op: OpXor, X: 1, Y: 2, NN: 0x23, N: 3, NNN: 0x123}},
		{"add reg", 0x8124, Instruction{Op: OpAddReg, X: 1, Y: 2, NN: 0x24, N: 4, NNN: 0x124}},
		{"sub", 0x8125, Instruction{Op: OpSub, X: 1, Y: 2, NN: 0x25, N: 5, NNN: 0x125}},
		{"shr", 0x8126, Instruction{Op: OpShr, X: 1, Y: 2, NN: 0x26, N: 6, NNN: 0x126}},
		{"subn", 0x8127, Instruction{Op: OpSubn, X: 1, Y: 2, NN: 0x27, N: 7, NNN: 0x127}},
		{"shl", 0x812E, Instruction{Op: OpShl, X: 1, Y: 2, NN: 0x2E, N: 0xE, NNN: 0x12E}},
		{"sne reg", 0x9120, Instruction{Op: OpSneReg, X: 1, Y: 2, NN: 0x20, NNN: 0x120}},
		{"ld i", 0xA300, Instruction{Op: OpLdI, X: 3, NNN: 0x300}},
		{"jp v0", 0xB300, Instruction{Op: OpJpV0, X: 3, NNN: 0x300}},
		{"rnd", 0xC10F, Instruction{Op: OpRnd, X: 1, NN: 0x0F, N: 0xF, NNN: 0x10F}},
		{"drw", 0xD125, Instruction{Op: OpDrw, X: 1, Y: 2, NN: 0x25, N: 5, NNN: 0x125}},
		{"skp", 0xE19E, Instruction{Op: OpSkp, X: 1, Y: 9, NN: 0x9E, N: 0xE, NNN: 0x19E}},
		{"sknp", 0xE1A1, Instruction{Op: OpSknp, X: 1, Y: 0xA, NN: 0xA1, N: 1, NNN: 0x1A1}},
		{"ld from dt", 0xF107, Instruction{Op: OpLdRegDT, X: 1, NN: 0x07, N: 7, NNN: 0x107}},
		{"ld key", 0xF10A, Instruction{Op: OpLdKey, X: 1, NN: 0x0A, N: 0xA, NNN: 0x10A}},
		{"ld dt", 0xF115, Instruction{Op: OpLdDT, X: 1, Y: 1, NN: 0x15, N: 5, NNN: 0x115}},
		{"ld st", 0xF118, Instruction{Op: OpLdST, X: 1, Y: 1, NN: 0x18, N: 8, NNN: 0x118}},
		{"add i", 0xF11E, Instruction{Op: OpAddI, X: 1, Y: 1, NN: 0x1E, N: 0xE, NNN: 0x11E}},
		{"ld font", 0xF129, Instruction{Op: OpLdFont, X: 1, Y: 2, NN: 0x29, N: 9, NNN: 0x129}},
		{"ld bcd", 0xF133, Instruction{Op: OpLdBCD, X: 1, Y: 3, NN: 0x33, N: 3, NNN: 0x133}},
		{"save regs", 0xF155, Instruction{Op: OpSaveRegs, X: 1, Y: 5, NN: 0x55, N: 5, NNN: 0x155}},
		{"load regs", 0xF165, Instruction{Op: OpLoadRegs, X: 1, Y: 6, NN: 0x65, N: 5, NNN: 0x165}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, in)
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
	}{
		{"sys call", 0x0123},
		{"zero word", 0x0000},
		{"se reg bad nibble", 0x5121},
		{"alu gap 8", 0x8128},
		{"alu gap f", 0x812F},
		{"sne reg bad nibble", 0x9121},
		{"key family gap", 0xE100},
		{"f family gap", 0xF1FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.opcode)
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
		})
	}
}
