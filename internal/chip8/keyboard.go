package chip8

// numKeys is the size of the CHIP-8 hex keypad.
const numKeys = 16

// Keyboard is the abstract 16-key input the host polls into on every
// step. It also tracks the "waiting on release" latch FX0A needs for
// its two-phase press-then-release semantics (spec §4.5).
type Keyboard struct {
	down           [numKeys]bool
	waitingRelease bool
	heldKey        uint8
}

// SetDown marks key as currently held. Called by the host from whatever
// polls physical input (internal/pixel's JustPressed handling).
func (k *Keyboard) SetDown(key uint8) { k.down[key&0xF] = true }

// SetUp marks key as released.
func (k *Keyboard) SetUp(key uint8) { k.down[key&0xF] = false }

// IsDown reports whether key is currently held.
func (k *Keyboard) IsDown(key uint8) bool { return k.down[key&0xF] }

// AnyDown reports whether any key is currently held, and if so which
// one (the lowest-indexed held key).
func (k *Keyboard) AnyDown() (key uint8, ok bool) {
	for i, held := range k.down {
		if held {
			return uint8(i), true
		}
	}
	return 0, false
}

// AllUp reports whether every key is currently released.
func (k *Keyboard) AllUp() bool {
	for _, held := range k.down {
		if held {
			return false
		}
	}
	return true
}

// reset clears key state and the wait-for-release latch.
func (k *Keyboard) reset() {
	k.down = [numKeys]bool{}
	k.waitingRelease = false
	k.heldKey = 0
}

// waiting reports whether FX0A is in its phase-2 wait-for-release latch.
func (k *Keyboard) waiting() bool { return k.waitingRelease }

// beginWait enters phase 2: a key was seen down and stored in VX; now
// we wait for every key to be released before PC advances.
func (k *Keyboard) beginWait(key uint8) {
	k.heldKey = key
	k.waitingRelease = true
}

// endWait clears the phase-2 latch once every key has been released.
func (k *Keyboard) endWait() { k.waitingRelease = false }
