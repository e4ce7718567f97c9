package chip8

// nibbleDoubleTable expands a 4-bit value into an 8-bit value with each
// input bit doubled into an adjacent bit pair — used to stretch a
// low-resolution sprite's pixels to fill the 128x64 buffer two pixels
// per logical pixel. Grounded on Emulator.cpp's double_upper_nibble.
var nibbleDoubleTable = func() (table [16]byte) {
	for n := 0; n < 16; n++ {
		var out byte
		for i := 0; i < 4; i++ {
			if n>>(3-i)&1 != 0 {
				out |= 3 << uint(6-2*i)
			}
		}
		table[n] = out
	}
	return
}()

// doubleUpperNibble doubles the upper nibble of b into a full byte.
func doubleUpperNibble(b byte) byte { return nibbleDoubleTable[b>>4] }

// expandDoubled stretches a rows x bytesPerRow sprite into a buffer
// twice as wide and twice as tall, doubling every source bit into a
// 2x2 block, the low-resolution draw quirk described in spec §4.4.
func expandDoubled(raw []byte, rows, bytesPerRow int) (out []byte, outWidth, outHeight int) {
	outWidth = bytesPerRow * 2
	outHeight = rows * 2
	out = make([]byte, outWidth*outHeight)
	for i := 0; i < rows; i++ {
		for sc := 0; sc < bytesPerRow; sc++ {
			src := raw[i*bytesPerRow+sc]
			a := doubleUpperNibble(src)
			b := doubleUpperNibble(src << 4)
			for _, outRow := range [2]int{2 * i, 2*i + 1} {
				base := outRow*outWidth + sc*2
				out[base] = a
				out[base+1] = b
			}
		}
	}
	return out, outWidth, outHeight
}

// execDraw implements DXYN. N=0 means a 16-row sprite. A sprite row is
// always 2 bytes wide when the (post-substitution) row count is 16 —
// the SUPER-CHIP "big sprite" form — and 1 byte wide otherwise. In
// high-resolution mode the sprite is blitted as read; in low-resolution
// mode it is doubled into the shared 128x64 buffer and drawn at
// (2*VX, 2*VY). When two planes are selected, the second plane's bytes
// immediately follow the first's in memory (spec §4.4).
//
// Every selected plane's bytes are read and, in low-resolution mode,
// expanded before Framebuffer.Draw is called: Draw takes width/height
// by value, so they must be final before the call rather than patched
// up from inside the planeData callback it invokes.
func (vm *VM) execDraw(x, y, n uint8) {
	vx, vy := vm.regs.V(x), vm.regs.V(y)
	rows := n
	if rows == 0 {
		rows = 16
	}
	bytesPerSourceRow := 1
	if rows == 16 {
		bytesPerSourceRow = 2
	}
	rawBytesPerPlane := int(rows) * bytesPerSourceRow
	highRes := vm.fb.HighRes()

	drawX, drawY := vx, vy
	if !highRes {
		drawX, drawY = vx*2, vy*2
	}

	numSlots := 0
	for i := 0; i < numPlanes; i++ {
		if vm.fb.PlaneSelect()&(1<<uint(i)) != 0 {
			numSlots++
		}
	}

	width, height := bytesPerSourceRow, int(rows)
	planeBytes := make([][]byte, numSlots)
	for slot := 0; slot < numSlots; slot++ {
		base := vm.regs.I() + uint16(slot*rawBytesPerPlane)
		raw := make([]byte, rawBytesPerPlane)
		for i := range raw {
			raw[i] = vm.memory.Read(base + uint16(i))
		}
		if highRes {
			planeBytes[slot] = raw
		} else {
			expanded, w, h := expandDoubled(raw, int(rows), bytesPerSourceRow)
			width, height = w, h
			planeBytes[slot] = expanded
		}
	}

	slot := 0
	vm.regs.SetFlag(0)
	collided := vm.fb.Draw(drawX, drawY, width, height, func(int) []byte {
		data := planeBytes[slot]
		slot++
		return data
	})
	if collided {
		vm.regs.SetFlag(1)
	}
}
