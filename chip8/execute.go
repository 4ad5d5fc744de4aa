package chip8

// execute runs one decoded instruction. Most instructions fall through
// to the PC advance at the bottom; jump, call, return and a key wait own
// the program counter themselves and return early. Skips advance by an
// extra instruction before falling through.
func (vm *VM) execute(in Instruction) error {
	switch in.Op {
	case OpCls:
		vm.Display.Clear()

	case OpRet:
		addr, err := vm.pop()
		if err != nil {
			return err
		}
		vm.PC = addr
		return nil

	case OpJp:
		vm.PC = in.NNN
		return nil

	case OpCall:
		if err := vm.push(vm.PC + 2); err != nil {
			return err
		}
		vm.PC = in.NNN
		return nil

	case OpJpV0:
		vm.PC = in.NNN + uint16(vm.V[0])
		return nil

	case OpSeByte:
		vm.skipIf(vm.V[in.X] == in.NN)

	case OpSneByte:
		vm.skipIf(vm.V[in.X] != in.NN)

	case OpSeReg:
		vm.skipIf(vm.V[in.X] == vm.V[in.Y])

	case OpSneReg:
		vm.skipIf(vm.V[in.X] != vm.V[in.Y])

	case OpSkp:
		vm.skipIf(vm.Keypad.Pressed(vm.V[in.X]))

	case OpSknp:
		vm.skipIf(!vm.Keypad.Pressed(vm.V[in.X]))

	case OpLdByte:
		vm.V[in.X] = in.NN

	case OpAddByte:
		vm.V[in.X] += in.NN

	case OpLdReg:
		vm.V[in.X] = vm.V[in.Y]

	case OpOr:
		vm.V[in.X] |= vm.V[in.Y]

	case OpAnd:
		vm.V[in.X] &= vm.V[in.Y]

	case OpXor:
		vm.V[in.X] ^= vm.V[in.Y]

	case OpAddReg:
		vm.addReg(in.X, in.Y)

	case OpSub:
		vm.sub(in.X, in.Y)

	case OpSubn:
		vm.subn(in.X, in.Y)

	case OpShr:
		vm.shr(in.X)

	case OpShl:
		vm.shl(in.X)

	case OpLdI:
		vm.I = in.NNN

	case OpAddI:
		vm.addI(in.X)

	case OpLdFont:
		vm.I = FontBase + FontHeight*uint16(vm.V[in.X])

	case OpRnd:
		vm.V[in.X] = byte(vm.rng.Intn(256)) & in.NN

	case OpDrw:
		if err := vm.draw(in.X, in.Y, in.N); err != nil {
			return err
		}

	case OpLdRegDT:
		vm.V[in.X] = vm.Timers.Delay()

	case OpLdDT:
		vm.Timers.SetDelay(vm.V[in.X])

	case OpLdST:
		vm.Timers.SetSound(vm.V[in.X])

	case OpLdKey:
		if key, ok := vm.Keypad.justPressed(); ok {
			vm.V[in.X] = key
			break
		}

		// no qualifying key event, suspend without advancing
		vm.state = WaitingForKey
		vm.waitReg = in.X
		return nil

	case OpLdBCD:
		if err := vm.storeBCD(in.X); err != nil {
			return err
		}

	case OpSaveRegs:
		if err := vm.saveRegs(in.X); err != nil {
			return err
		}

	case OpLoadRegs:
		if err := vm.loadRegs(in.X); err != nil {
			return err
		}
	}

	vm.PC += 2
	return nil
}

// skipIf advances past the next instruction when the condition holds.
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

// setFlag writes VF. Instructions with a flag side-effect call it as
// their final write so an operation using VF as an operand still reads
// the pre-update value.
func (vm *VM) setFlag(cond bool) {
	if cond {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}
}

// addReg adds VY into VX with wrapping, VF = carry.
func (vm *VM) addReg(x, y uint8) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.setFlag(sum > 0xFF)
}

// sub subtracts VY from VX with wrapping, VF = 1 when no borrow.
func (vm *VM) sub(x, y uint8) {
	borrow := vm.V[x] < vm.V[y]

	vm.V[x] -= vm.V[y]
	vm.setFlag(!borrow)
}

// subn stores VY - VX into VX with wrapping, VF = 1 when no borrow.
func (vm *VM) subn(x, y uint8) {
	borrow := vm.V[y] < vm.V[x]

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.setFlag(!borrow)
}

// shr shifts VX right one bit, VF = the shifted-out bit.
func (vm *VM) shr(x uint8) {
	bit := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.setFlag(bit != 0)
}

// shl shifts VX left one bit, VF = the shifted-out bit.
func (vm *VM) shl(x uint8) {
	bit := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.setFlag(bit != 0)
}

// addI adds VX to the address register without masking; VF flags I
// leaving the 12-bit space. The invalid address itself is only caught by
// the next memory access through I.
func (vm *VM) addI(x uint8) {
	vm.I += uint16(vm.V[x])
	vm.setFlag(vm.I > 0xFFF)
}

// draw blits the N-row sprite at I to <VX,VY>, VF = collision.
func (vm *VM) draw(x, y uint8, n byte) error {
	sprite, err := vm.Memory.ReadRange(vm.I, uint16(n))
	if err != nil {
		return err
	}

	collision := vm.Display.DrawSprite(vm.V[x], vm.V[y], sprite)
	vm.setFlag(collision)

	return nil
}

// storeBCD decomposes VX into three decimal digits at I, I+1, I+2.
func (vm *VM) storeBCD(x uint8) error {
	v := vm.V[x]

	if err := vm.Memory.Write(vm.I, v/100); err != nil {
		return err
	}
	if err := vm.Memory.Write(vm.I+1, v/10%10); err != nil {
		return err
	}

	return vm.Memory.Write(vm.I+2, v%10)
}

// saveRegs stores V0 through VX to memory at I, in increasing register
// order. I itself is left unchanged.
func (vm *VM) saveRegs(x uint8) error {
	for i := uint16(0); i <= uint16(x); i++ {
		if err := vm.Memory.Write(vm.I+i, vm.V[i]); err != nil {
			return err
		}
	}

	return nil
}

// loadRegs loads V0 through VX from memory at I, in increasing register
// order. I itself is left unchanged.
func (vm *VM) loadRegs(x uint8) error {
	for i := uint16(0); i <= uint16(x); i++ {
		b, err := vm.Memory.Read(vm.I + i)
		if err != nil {
			return err
		}

		vm.V[i] = b
	}

	return nil
}
