package chip8

// execute decodes in and applies its effect to the VM. Every case either
// retargets PC itself and returns, or falls through to the default
// "PC advances by 2" completion at the bottom (spec §4.3). The nesting
// mirrors the teacher's own dispatch shape: switch on the high nibble,
// then switch again on whatever sub-field disambiguates that family.
func (vm *VM) execute(in Instruction) {
	if vm.handle(in) {
		return
	}
	vm.regs.Advance(2)
}

// handle applies in's effect and reports whether it already fully
// managed the program counter (true: jump/call/long-load, a taken skip,
// a pending wait-for-key, or a return that halts on an empty stack), in
// which case execute must not also add the default +2.
func (vm *VM) handle(in Instruction) bool {
	x, y, n, nn, nnn := in.X(), in.Y(), in.N(), in.NN(), in.NNN()

	switch in.HighNibble() {
	case 0x0:
		return vm.exec0(in, y, n)
	case 0x1:
		vm.regs.SetPC(nnn)
		return true
	case 0x2:
		return vm.execCall(nnn)
	case 0x3:
		return vm.skipIf(vm.regs.V(x) == nn)
	case 0x4:
		return vm.skipIf(vm.regs.V(x) != nn)
	case 0x5:
		return vm.exec5(x, y, n)
	case 0x6:
		vm.regs.SetV(x, nn)
	case 0x7:
		vm.regs.SetV(x, vm.regs.V(x)+nn)
	case 0x8:
		vm.exec8(x, y, n)
	case 0x9:
		if n != 0x0 {
			vm.unknownOpcode(in)
			return false
		}
		return vm.skipIf(vm.regs.V(x) != vm.regs.V(y))
	case 0xA:
		vm.regs.SetI(nnn)
	case 0xB:
		return vm.execJumpV0(nnn)
	case 0xC:
		vm.regs.SetV(x, vm.rng.RandByte()&nn)
	case 0xD:
		vm.execDraw(x, y, n)
	case 0xE:
		return vm.execE(x, nn)
	case 0xF:
		return vm.execF(x, nn, in)
	default:
		vm.unknownOpcode(in)
	}
	return false
}

// exec0 handles the 0x0??? family: clear/return/halt/res-switch and the
// SUPER-CHIP/XO-CHIP scroll opcodes, which are keyed on the high nibble
// of the low byte (00CN/00DN) rather than the full low byte.
func (vm *VM) exec0(in Instruction, y, n uint8) bool {
	if y == 0xC {
		vm.fb.ScrollDown(n)
		return false
	}
	if y == 0xD {
		vm.fb.ScrollUp(n)
		return false
	}
	switch in.NN() {
	case 0xE0:
		vm.fb.Clear()
	case 0xEE:
		return vm.execReturn()
	case 0xFB:
		vm.fb.ScrollRight()
	case 0xFC:
		vm.fb.ScrollLeft()
	case 0xFD:
		vm.paused = true
	case 0xFE:
		vm.fb.SetHighRes(false)
	case 0xFF:
		vm.fb.SetHighRes(true)
	default:
		vm.unknownOpcode(in)
	}
	return false
}

// execReturn pops the call stack and restores PC to the popped address,
// then reports "not handled" so the default +2 completion runs — the
// popped value is the CALL instruction's own address (see execCall), so
// the +2 here is what actually lands PC on the instruction after the
// original CALL. An empty stack is undefined upstream; this
// implementation halts and logs rather than underflowing SP, per spec
// §7's SHOULD.
func (vm *VM) execReturn() bool {
	addr, ok := vm.stack.Pop()
	if !ok {
		vm.paused = true
		vm.logf("return with empty call stack, halting")
		return true
	}
	vm.regs.SetPC(addr)
	return false
}

// execCall pushes the CALL instruction's own (pre-advance) address and
// jumps to nnn; execReturn's later +2 is what turns this into the usual
// "return to the instruction after the call" behavior. A full stack
// silently no-ops the call — the current instruction is left in place
// (PC untouched), a known quirk preserved for ROM compatibility
// (spec §3, §7).
func (vm *VM) execCall(nnn uint16) bool {
	if vm.stack.Push(vm.regs.PC()) {
		vm.regs.SetPC(nnn)
	}
	return true
}

// skip advances PC past the current instruction and then past whatever
// follows, skipping an extra word when that next word is the XO-CHIP
// long-load marker so the two-word instruction is never split
// (spec §4.3).
func (vm *VM) skip() {
	vm.regs.Advance(2)
	next := fetchInstruction(&vm.memory, vm.regs.PC())
	if next.Word() == longLoadWord {
		vm.regs.Advance(4)
	} else {
		vm.regs.Advance(2)
	}
}

// skipIf performs skip() when cond holds; otherwise lets the default
// +2 completion run. Always reports "PC handled" when it skips, and
// "not handled" (fall through to default +2) when it doesn't.
func (vm *VM) skipIf(cond bool) bool {
	if cond {
		vm.skip()
		return true
	}
	return false
}

// exec5 dispatches the 5XY? family: the classic skip-if-equal plus the
// XO-CHIP register-range memory save/load pair.
func (vm *VM) exec5(x, y, n uint8) bool {
	switch n {
	case 0x0:
		return vm.skipIf(vm.regs.V(x) == vm.regs.V(y))
	case 0x2:
		vm.saveRegisterRange(x, y)
	case 0x3:
		vm.loadRegisterRange(x, y)
	default:
		vm.unknownOpcode(Instruction(0x5000 | uint16(x)<<8 | uint16(y)<<4 | uint16(n)))
	}
	return false
}

// saveRegisterRange implements 5XY2: mem[I..I+(VY-VX)] <- V[VX..VY],
// inclusive, guarded to VY>VX (spec §4.3). Out-of-range requests are a
// no-op (spec §7).
func (vm *VM) saveRegisterRange(x, y uint8) {
	if y <= x {
		return
	}
	for i := x; i <= y; i++ {
		vm.memory.Write(vm.regs.I()+uint16(i-x), vm.regs.V(i))
	}
}

// loadRegisterRange implements 5XY3, the inverse of 5XY2.
func (vm *VM) loadRegisterRange(x, y uint8) {
	if y <= x {
		return
	}
	for i := x; i <= y; i++ {
		vm.regs.SetV(i, vm.memory.Read(vm.regs.I()+uint16(i-x)))
	}
}

// exec8 dispatches the ALU family. Flags are always the last store in
// the opcode's effect, computed from the pre-write operand values
// (spec §4.3's quirk table) even though some of the flag rules below
// read oddly compared to a "textbook" carry/borrow test.
func (vm *VM) exec8(x, y, n uint8) {
	vx, vy := vm.regs.V(x), vm.regs.V(y)
	switch n {
	case 0x0:
		vm.regs.SetV(x, vy)
	case 0x1:
		vm.regs.SetV(x, vx|vy)
	case 0x2:
		vm.regs.SetV(x, vx&vy)
	case 0x3:
		vm.regs.SetV(x, vx^vy)
	case 0x4:
		result := vx + vy
		vm.regs.SetV(x, result)
		if result < vx {
			vm.regs.SetFlag(1)
		} else {
			vm.regs.SetFlag(0)
		}
	case 0x5:
		result := vx - vy
		vm.regs.SetV(x, result)
		if result <= vx {
			vm.regs.SetFlag(1)
		} else {
			vm.regs.SetFlag(0)
		}
	case 0x6:
		vm.regs.SetV(x, vy>>1)
		vm.regs.SetFlag(vy & 0x01)
	case 0x7:
		result := vy - vx
		vm.regs.SetV(x, result)
		if result <= vy {
			vm.regs.SetFlag(1)
		} else {
			vm.regs.SetFlag(0)
		}
	case 0xE:
		vm.regs.SetV(x, vy<<1)
		vm.regs.SetFlag((vy & 0x80) >> 7)
	default:
		vm.unknownOpcode(Instruction(0x8000 | uint16(x)<<8 | uint16(y)<<4 | uint16(n)))
	}
}

// execJumpV0 implements BNNN. A target past the end of memory is a
// no-op; with a 12-bit NNN and an 8-bit V0 the target is at most 0x10FE,
// so this guard does not trigger in practice.
func (vm *VM) execJumpV0(nnn uint16) bool {
	target := int(nnn) + int(vm.regs.V(0))
	if target >= MemSize {
		return true
	}
	vm.regs.SetPC(uint16(target))
	return true
}

// execE implements EX9E/EXA1, plain key-down/key-up skips with no side
// effect on key state (spec §4.3 names no such effect; the teacher's
// own key-clearing behavior was tied to its host-specific key-repeat
// ticker, not part of the core's documented semantics).
func (vm *VM) execE(x uint8, nn uint8) bool {
	key := vm.regs.V(x)
	switch nn {
	case 0x9E:
		return vm.skipIf(vm.kb.IsDown(key))
	case 0xA1:
		return vm.skipIf(!vm.kb.IsDown(key))
	default:
		vm.unknownOpcode(Instruction(0xE000 | uint16(x)<<8 | uint16(nn)))
		return false
	}
}

// execF implements the 0xFxxx family: long-load, plane select, timers,
// wait-for-key, index arithmetic, font lookup, BCD, and the memory/RPL
// range transfers.
func (vm *VM) execF(x uint8, nn uint8, in Instruction) bool {
	if x == 0x0 && nn == 0x00 {
		return vm.execLongLoad()
	}
	if nn == 0x01 {
		vm.fb.SetPlaneSelect(x & 0x3)
		return false
	}
	switch nn {
	case 0x07:
		vm.regs.SetV(x, vm.regs.Delay())
	case 0x0A:
		return vm.execWaitKey(x)
	case 0x15:
		vm.regs.SetDelay(vm.regs.V(x))
	case 0x18:
		vm.regs.SetSound(vm.regs.V(x))
	case 0x1E:
		vm.regs.SetI(vm.regs.I() + uint16(vm.regs.V(x)))
	case 0x29:
		vm.regs.SetI(smallFontAddr(vm.regs.V(x)))
	case 0x30:
		vm.regs.SetI(bigFontAddr(vm.regs.V(x)))
	case 0x33:
		vm.execBCD(x)
	case 0x55:
		vm.execStoreRegisters(x)
	case 0x65:
		vm.execLoadRegisters(x)
	case 0x75:
		vm.execStoreRPL(x)
	case 0x85:
		vm.execLoadRPL(x)
	default:
		vm.unknownOpcode(in)
	}
	return false
}

// execLongLoad implements F000 NNNN: PC advances past the opcode word
// first, then I is loaded from the next 16-bit word, read big-endian
// (unlike every other fetch in this interpreter, which reads
// byte-swapped — spec §4.3 is explicit that this word is big-endian).
func (vm *VM) execLongLoad() bool {
	vm.regs.Advance(2)
	hi := vm.memory.Read(vm.regs.PC())
	lo := vm.memory.Read(vm.regs.PC() + 1)
	vm.regs.SetI(uint16(hi)<<8 | uint16(lo))
	vm.regs.Advance(2)
	return true
}

// execWaitKey implements FX0A's two-phase press-then-release latch
// (spec §4.5). Neither phase advances PC until a full press-release
// cycle completes.
func (vm *VM) execWaitKey(x uint8) bool {
	if !vm.kb.waiting() {
		if key, ok := vm.kb.AnyDown(); ok {
			vm.regs.SetV(x, key)
			vm.kb.beginWait(key)
		}
		return true
	}
	if vm.kb.AllUp() {
		vm.kb.endWait()
		return false
	}
	return true
}

// execBCD implements FX33. A destination that would spill past the end
// of memory is a no-op (spec §7).
func (vm *VM) execBCD(x uint8) {
	if vm.regs.I() >= 0xFFFE {
		return
	}
	v := vm.regs.V(x)
	vm.memory.Write(vm.regs.I(), v/100)
	vm.memory.Write(vm.regs.I()+1, (v/10)%10)
	vm.memory.Write(vm.regs.I()+2, v%10)
}

// execStoreRegisters implements FX55: V0..VX to mem[I..], I advances by
// X+1 afterward.
func (vm *VM) execStoreRegisters(x uint8) {
	base := vm.regs.I()
	for i := uint8(0); i <= x; i++ {
		vm.memory.Write(base+uint16(i), vm.regs.V(i))
	}
	vm.regs.SetI(base + uint16(x) + 1)
}

// execLoadRegisters implements FX65, the inverse of FX55.
func (vm *VM) execLoadRegisters(x uint8) {
	base := vm.regs.I()
	for i := uint8(0); i <= x; i++ {
		vm.regs.SetV(i, vm.memory.Read(base+uint16(i)))
	}
	vm.regs.SetI(base + uint16(x) + 1)
}

// execStoreRPL implements FX75: V0..VX copied into the RPL scratchpad.
func (vm *VM) execStoreRPL(x uint8) {
	if x >= numRegisters {
		return
	}
	for i := uint8(0); i <= x; i++ {
		vm.regs.SetRPL(i, vm.regs.V(i))
	}
}

// execLoadRPL implements FX85, the inverse of FX75.
func (vm *VM) execLoadRPL(x uint8) {
	if x >= numRegisters {
		return
	}
	for i := uint8(0); i <= x; i++ {
		vm.regs.SetV(i, vm.regs.RPL(i))
	}
}

// unknownOpcode logs a diagnostic and counts the miss; the caller still
// falls through to the default +2 PC advance, treating the instruction
// as a no-op (spec §7).
func (vm *VM) unknownOpcode(in Instruction) {
	vm.unknownOpcodes++
	vm.logf("unknown opcode: %04X", in.Word())
}
