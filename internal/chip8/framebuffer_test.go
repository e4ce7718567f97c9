package chip8

import "testing"

func TestFramebufferClearIgnoresPlaneSelect(t *testing.T) {
	fb := newFramebuffer()
	fb.SetPlaneSelect(0b01)
	fb.planes[0].row(0)[0] = 0xFF
	fb.planes[1].row(0)[0] = 0xFF
	fb.Clear()
	if fb.planes[0].row(0)[0] != 0 || fb.planes[1].row(0)[0] != 0 {
		t.Error("Clear must zero both planes regardless of plane-select")
	}
}

func TestFramebufferResetPreservesPalette(t *testing.T) {
	fb := newFramebuffer()
	custom := Color{R: 1, G: 2, B: 3, A: 4}
	fb.SetPalette(2, custom)
	fb.reset()
	if fb.paletteVals[2] != custom {
		t.Error("reset must not touch the palette, which is host-owned state")
	}
}

func TestFramebufferScrollIsGatedByPlaneSelect(t *testing.T) {
	fb := newFramebuffer()
	fb.SetPlaneSelect(0b01) // only plane 0
	fb.planes[0].row(0)[0] = 0xFF
	fb.planes[1].row(0)[0] = 0xFF
	fb.ScrollDown(1)
	if fb.planes[0].row(0)[0] != 0 {
		t.Error("plane 0 (selected) should have scrolled, vacating row 0")
	}
	if fb.planes[1].row(0)[0] != 0xFF {
		t.Error("plane 1 (not selected) should be untouched by the scroll")
	}
}

func TestScrollDownZeroFillsVacatedRows(t *testing.T) {
	p := &Plane{}
	p.row(0)[0] = 0xAB
	p.scrollDown(2)
	if p.row(2)[0] != 0xAB {
		t.Errorf("row 2 = %#x, want 0xAB (moved down by 2)", p.row(2)[0])
	}
	if p.row(0)[0] != 0 || p.row(1)[0] != 0 {
		t.Error("rows 0-1 should be zero-filled after a downward scroll")
	}
}

func TestScrollRightRotatesNibbles(t *testing.T) {
	p := &Plane{}
	p.row(0)[0] = 0xF0 // leftmost 4 pixels lit
	p.scrollRight4()
	if p.row(0)[0] != 0x0F {
		t.Errorf("row 0 byte 0 = %#08b, want 0x0F (shifted right by one nibble)", p.row(0)[0])
	}
}

func TestComposeMapsBothPlanesToPaletteIndex(t *testing.T) {
	fb := newFramebuffer()
	fb.SetPlaneSelect(0b11)
	fb.planes[0].row(0)[0] = 0x80 // bit 7 of byte 0: leftmost pixel
	fb.planes[1].row(0)[0] = 0x80
	fb.compose()
	out := fb.Output()
	want := DefaultPalette[0b11]
	if out[0] != want {
		t.Errorf("Output()[0] = %+v, want %+v (both planes set -> palette[3])", out[0], want)
	}
	if out[1] != DefaultPalette[0] {
		t.Errorf("Output()[1] = %+v, want background (palette[0])", out[1])
	}
}

func TestBlitReportsCollisionOnlyWhenABitIsErased(t *testing.T) {
	p := &Plane{}
	collided := p.blit([]byte{0xFF}, 0, 0, 1, 1)
	if collided {
		t.Error("first draw onto a blank plane must not collide")
	}
	collided = p.blit([]byte{0x80}, 0, 0, 1, 1)
	if !collided {
		t.Error("re-drawing a bit that was set must report a collision")
	}
}
