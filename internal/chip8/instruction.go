package chip8

// Instruction wraps a single 16-bit CHIP-8 opcode and exposes the nibble
// and multi-nibble fields every decode table needs. Mnemonics refer to
// the fields as X, Y, N, NN and NNN; we keep those names instead of more
// descriptive ones so the opcode tables in opcodes.go read the same way
// every CHIP-8 reference does.
type Instruction uint16

// fetchInstruction reads the byte-swapped word at pc: the low byte lives at
// mem[pc], the high byte at mem[pc+1], so the word a programmer writes as
// 0xABCD is stored as the two bytes CD AB.
func fetchInstruction(mem *Memory, pc uint16) Instruction {
	return Instruction(uint16(mem.Read(pc+1))<<8 | uint16(mem.Read(pc)))
}

// HighNibble returns bits 12-15, the primary dispatch key.
func (i Instruction) HighNibble() uint8 { return uint8(i >> 12 & 0xF) }

// X returns bits 8-11, almost always a source/destination register index.
func (i Instruction) X() uint8 { return uint8(i >> 8 & 0xF) }

// Y returns bits 4-7, almost always a second register index.
func (i Instruction) Y() uint8 { return uint8(i >> 4 & 0xF) }

// N returns bits 0-3, a small immediate (sprite height, nibble count).
func (i Instruction) N() uint8 { return uint8(i & 0xF) }

// NN returns bits 0-7, an 8-bit immediate.
func (i Instruction) NN() uint8 { return uint8(i & 0xFF) }

// NNN returns bits 0-11, a 12-bit address immediate.
func (i Instruction) NNN() uint16 { return uint16(i & 0x0FFF) }

// Word returns the raw 16-bit value.
func (i Instruction) Word() uint16 { return uint16(i) }

// longLoadWord is the opcode value the skip-instruction helper must
// recognize in order to skip the XO-CHIP long-load atomically.
const longLoadWord = 0xF000
