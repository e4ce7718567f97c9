package chip8

// MemSize is the full 16-bit address space the interpreter exposes. Real
// CHIP-8 hardware only had 4K, but the XO-CHIP family addresses a full
// 64KiB linearly, so we size memory to match rather than mask addresses
// down to the historical 4K window.
const MemSize = 0x10000

// LoadAddress is where a program image is copied by Load.
const LoadAddress = 0x200

// maxImageSize is the largest program image Load will copy; anything
// longer is truncated, never rejected (spec's "bad image" handling).
const maxImageSize = 0xFF38

// stackDepth is the number of call frames CallStack holds.
const stackDepth = 16

// Memory is the interpreter's 64KiB linear byte store.
type Memory struct {
	bytes [MemSize]byte
}

// Read returns the byte at addr, wrapping modulo the address space.
func (m *Memory) Read(addr uint16) byte {
	return m.bytes[int(addr)%MemSize]
}

// Write stores v at addr, wrapping modulo the address space.
func (m *Memory) Write(addr uint16, v byte) {
	m.bytes[int(addr)%MemSize] = v
}

// reset zeroes every byte of memory.
func (m *Memory) reset() {
	m.bytes = [MemSize]byte{}
}

// loadFonts copies the small and big font tables into the reserved low
// region of memory (see font.go).
func (m *Memory) loadFonts() {
	copy(m.bytes[smallFontBase:], smallFontData[:])
	copy(m.bytes[bigFontBase:], bigFontData[:])
}

// loadImage copies image into memory at LoadAddress, truncating to
// maxImageSize. A too-long image is clamped, never rejected.
func (m *Memory) loadImage(image []byte) {
	if len(image) > maxImageSize {
		image = image[:maxImageSize]
	}
	copy(m.bytes[LoadAddress:], image)
}

// CallStack is the 16-deep return-address stack used by 2NNN/00EE.
// Overflow on push is silently ignored (CALL becomes a no-op), a known
// quirk of the reference implementation preserved here for ROM
// compatibility.
type CallStack struct {
	frames [stackDepth]uint16
	sp     uint8
}

// reset empties the stack.
func (s *CallStack) reset() {
	s.frames = [stackDepth]uint16{}
	s.sp = 0
}

// SP returns the current stack pointer (0..16).
func (s *CallStack) SP() uint8 { return s.sp }

// Push stores a return address. Returns false without modifying the
// stack if it is already full.
func (s *CallStack) Push(addr uint16) bool {
	if s.sp >= stackDepth {
		return false
	}
	s.frames[s.sp] = addr
	s.sp++
	return true
}

// Pop removes and returns the most recently pushed address. ok is false
// on an empty stack; the caller (see opcodes.go 00EE) treats that as a
// halt rather than letting sp underflow.
func (s *CallStack) Pop() (addr uint16, ok bool) {
	if s.sp == 0 {
		return 0, false
	}
	s.sp--
	return s.frames[s.sp], true
}
