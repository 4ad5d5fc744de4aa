package chip8

import (
	"fmt"
	"strings"

	c8 "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble renders the instruction at addr as "ADDR - MNEMONIC
// OPERANDS". Mnemonics come from the canonical instruction tables;
// unrecognized words render as "??" and zero words as end-of-program.
func (vm *VM) Disassemble(addr uint16) string {
	opcode, err := vm.Memory.ReadWord(addr)
	if err != nil {
		return ""
	}

	if opcode == 0 {
		return fmt.Sprintf("%04X -", addr)
	}

	name, ok := mnemonic(opcode)
	if !ok {
		return fmt.Sprintf("%04X - ??", addr)
	}

	in, err := Decode(opcode)
	if err != nil {
		return fmt.Sprintf("%04X - ??", addr)
	}

	if operands := formatOperands(in); operands != "" {
		return fmt.Sprintf("%04X - %-6s %s", addr, name, operands)
	}

	return fmt.Sprintf("%04X - %s", addr, name)
}

// mnemonic looks the opcode up in the canonical instruction tables.
func mnemonic(opcode uint16) (string, bool) {
	for _, op := range c8.Opcodes[int(opcode>>12)] {
		if op.Instruction == nil {
			continue
		}

		if opcode&op.Info.Mask == op.Info.Value {
			return strings.ToUpper(op.Instruction.Name), true
		}
	}

	return "", false
}

// formatOperands renders the operand fields of a decoded instruction.
func formatOperands(in Instruction) string {
	switch in.Op {
	case OpCls, OpRet:
		return ""
	case OpJp, OpCall:
		return fmt.Sprintf("#%04X", in.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, #%04X", in.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("V%X, #%02X", in.X, in.NN)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", in.X, in.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", in.X)
	case OpLdI:
		return fmt.Sprintf("I, #%04X", in.NNN)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, %d", in.X, in.Y, in.N)
	case OpLdRegDT:
		return fmt.Sprintf("V%X, DT", in.X)
	case OpLdKey:
		return fmt.Sprintf("V%X, K", in.X)
	case OpLdDT:
		return fmt.Sprintf("DT, V%X", in.X)
	case OpLdST:
		return fmt.Sprintf("ST, V%X", in.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", in.X)
	case OpLdFont:
		return fmt.Sprintf("F, V%X", in.X)
	case OpLdBCD:
		return fmt.Sprintf("B, V%X", in.X)
	case OpSaveRegs:
		return fmt.Sprintf("[I], V%X", in.X)
	case OpLoadRegs:
		return fmt.Sprintf("V%X, [I]", in.X)
	}

	return ""
}
