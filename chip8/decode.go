package chip8

import "fmt"

// Op identifies one operation of the instruction set.
type Op int

// The complete instruction set. Multiplexed opcode families (0x0, 0x8,
// 0xE, 0xF) decode to distinct operations here so execution can dispatch
// exhaustively with no secondary masking.
const (
	OpCls      Op = iota // 00E0: clear the display
	OpRet                // 00EE: return from subroutine
	OpJp                 // 1NNN: jump to address
	OpCall               // 2NNN: call subroutine
	OpSeByte             // 3XNN: skip if VX == NN
	OpSneByte            // 4XNN: skip if VX != NN
	OpSeReg              // 5XY0: skip if VX == VY
	OpLdByte             // 6XNN: VX = NN
	OpAddByte            // 7XNN: VX += NN, no carry
	OpLdReg              // 8XY0: VX = VY
	OpOr                 // 8XY1: VX |= VY
	OpAnd                // 8XY2: VX &= VY
	OpXor                // 8XY3: VX ^= VY
	OpAddReg             // 8XY4: VX += VY, VF = carry
	OpSub                // 8XY5: VX -= VY, VF = no borrow
	OpShr                // 8XY6: VX >>= 1, VF = shifted-out bit
	OpSubn               // 8XY7: VX = VY - VX, VF = no borrow
	OpShl                // 8XYE: VX <<= 1, VF = shifted-out bit
	OpSneReg             // 9XY0: skip if VX != VY
	OpLdI                // ANNN: I = NNN
	OpJpV0               // BNNN: jump to NNN + V0
	OpRnd                // CXNN: VX = random byte & NN
	OpDrw                // DXYN: draw N-row sprite at <VX,VY>, VF = collision
	OpSkp                // EX9E: skip if key VX pressed
	OpSknp               // EXA1: skip if key VX not pressed
	OpLdRegDT            // FX07: VX = delay timer
	OpLdKey              // FX0A: wait for a key press into VX
	OpLdDT               // FX15: delay timer = VX
	OpLdST               // FX18: sound timer = VX
	OpAddI               // FX1E: I += VX
	OpLdFont             // FX29: I = font sprite address of digit VX
	OpLdBCD              // FX33: memory[I..I+2] = BCD of VX
	OpSaveRegs           // FX55: memory[I..I+X] = V0..VX
	OpLoadRegs           // FX65: V0..VX = memory[I..I+X]
)

// Instruction is a decoded opcode with its operand fields extracted once.
type Instruction struct {
	Op Op

	// X and Y are the register selectors embedded in the opcode.
	X, Y uint8

	// NN is the byte literal, N the nibble literal, NNN the 12-bit
	// address. Only the fields the operation documents are meaningful.
	NN  byte
	N   byte
	NNN uint16
}

// Decode maps a 16-bit opcode word onto the instruction set. Bit
// patterns outside the valid space fail with ErrUnknownOpcode; there is
// deliberately no silent no-op fallthrough.
func Decode(opcode uint16) (Instruction, error) {
	in := Instruction{
		X:   uint8(opcode>>8) & 0xF,
		Y:   uint8(opcode>>4) & 0xF,
		NN:  byte(opcode),
		N:   byte(opcode) & 0xF,
		NNN: opcode & 0xFFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			in.Op = OpCls
		case 0x00EE:
			in.Op = OpRet
		default:
			// 0NNN machine-code calls are not supported
			return in, unknownOpcode(opcode)
		}
	case 0x1000:
		in.Op = OpJp
	case 0x2000:
		in.Op = OpCall
	case 0x3000:
		in.Op = OpSeByte
	case 0x4000:
		in.Op = OpSneByte
	case 0x5000:
		if in.N != 0 {
			return in, unknownOpcode(opcode)
		}
		in.Op = OpSeReg
	case 0x6000:
		in.Op = OpLdByte
	case 0x7000:
		in.Op = OpAddByte
	case 0x8000:
		switch in.N {
		case 0x0:
			in.Op = OpLdReg
		case 0x1:
			in.Op = OpOr
		case 0x2:
			in.Op = OpAnd
		case 0x3:
			in.Op = OpXor
		case 0x4:
			in.Op = OpAddReg
		case 0x5:
			in.Op = OpSub
		case 0x6:
			in.Op = OpShr
		case 0x7:
			in.Op = OpSubn
		case 0xE:
			in.Op = OpShl
		default:
			return in, unknownOpcode(opcode)
		}
	case 0x9000:
		if in.N != 0 {
			return in, unknownOpcode(opcode)
		}
		in.Op = OpSneReg
	case 0xA000:
		in.Op = OpLdI
	case 0xB000:
		in.Op = OpJpV0
	case 0xC000:
		in.Op = OpRnd
	case 0xD000:
		in.Op = OpDrw
	case 0xE000:
		switch in.NN {
		case 0x9E:
			in.Op = OpSkp
		case 0xA1:
			in.Op = OpSknp
		default:
			return in, unknownOpcode(opcode)
		}
	case 0xF000:
		switch in.NN {
		case 0x07:
			in.Op = OpLdRegDT
		case 0x0A:
			in.Op = OpLdKey
		case 0x15:
			in.Op = OpLdDT
		case 0x18:
			in.Op = OpLdST
		case 0x1E:
			in.Op = OpAddI
		case 0x29:
			in.Op = OpLdFont
		case 0x33:
			in.Op = OpLdBCD
		case 0x55:
			in.Op = OpSaveRegs
		case 0x65:
			in.Op = OpLoadRegs
		default:
			return in, unknownOpcode(opcode)
		}
	}

	return in, nil
}

func unknownOpcode(opcode uint16) error {
	return fmt.Errorf("%w: %04X", ErrUnknownOpcode, opcode)
}
