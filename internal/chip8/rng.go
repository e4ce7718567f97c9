package chip8

import "math/rand"

// ByteSource supplies the random byte CXNN masks against V[x]. It is a
// configurable dependency (spec §9's design note) rather than a direct
// call to the global RNG, so tests can seed deterministically while the
// default VM uses host entropy, the way the teacher's _0xC000 reaches
// for math/rand but without hard-coding which source.
type ByteSource interface {
	RandByte() byte
}

// mathRandSource is the default ByteSource, backed by a process-global
// math/rand generator seeded from host entropy. Grounded on the
// teacher's own _0xC000, which calls rand.Float32() directly; we keep
// math/rand as the source but route it through an interface.
type mathRandSource struct{}

func (mathRandSource) RandByte() byte { return byte(rand.Intn(256)) }

// DefaultByteSource is the ByteSource a VM uses unless the caller
// supplies its own via WithByteSource.
var DefaultByteSource ByteSource = mathRandSource{}
