package chip8

// Font tables embedded into the low region of memory on every Load.
// Their exact bitmap contents are not part of the interpreter's observed
// behavior (spec §6: "a fixed artifact of the implementation") as long
// as FX29/FX30 point at a valid glyph; we use the classic CHIP-8 set for
// the small font (the one the teacher embeds in internal/pixel.FontSet)
// and the common SUPER-CHIP big-digit set for the big font.

const smallFontBase = 0x000
const smallFontGlyphSize = 5

const bigFontBase = 0x050
const bigFontGlyphSize = 10

// smallFontData holds 16 hex-digit glyphs, 4x5 pixels packed into the
// high nibble of each byte.
var smallFontData = [16 * smallFontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// bigFontData holds 10 decimal-digit glyphs, 8x10 pixels, one byte per
// row, used by FX30.
var bigFontData = [10 * bigFontGlyphSize]byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x3E, 0x7F, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x3C, 0x7E, 0xC3, 0x03, 0x0E, 0x0E, 0x03, 0xC3, 0x7E, 0x3C, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0x7E, 0x3C, // 5
	0x3E, 0x7C, 0xC0, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x30, // 7
	0x3C, 0x7E, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0x7E, 0x3C, // 8
	0x3C, 0x7E, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0x03, 0x3E, 0x7C, // 9
}

// smallFontAddr returns the address of the 5-byte glyph for digit d
// (d mod 16).
func smallFontAddr(d uint8) uint16 {
	return uint16(smallFontBase) + uint16(d%16)*smallFontGlyphSize
}

// bigFontAddr returns the address of the 10-byte glyph for digit d
// (d mod 10).
func bigFontAddr(d uint8) uint16 {
	return uint16(bigFontBase) + uint16(d%10)*bigFontGlyphSize
}
