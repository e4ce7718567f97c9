// Package chip8 implements a CHIP-8 / SUPER-CHIP / XO-CHIP interpreter
// core: memory, registers, a two-plane framebuffer, a keyboard, an
// opcode decoder/executor, and a virtual-time scheduler. It is a
// bit-exact reimplementation — opcodes with documented quirks (wrap vs
// clip, flag-set timing, shift source, sprite doubling) are implemented
// to match those quirks exactly, not the "obvious" alternative reading,
// because real ROMs depend on them.
//
// The package has no concept of a window, a key event, or an audio
// device. It exposes a Keyboard the host writes into, a Framebuffer the
// host reads from, and a SoundActive() query; how those reach a screen
// or a speaker is the host's problem (see internal/pixel and
// internal/audio).
package chip8

import (
	"log"
	"os"
)

// VM is a CHIP-8/SUPER-CHIP/XO-CHIP virtual machine: the fetch-decode-
// execute core plus everything an opcode can touch.
type VM struct {
	memory Memory
	stack  CallStack
	regs   RegisterFile
	fb     *Framebuffer
	kb     Keyboard
	rng    ByteSource

	paused         bool
	unknownOpcodes int

	logger *log.Logger
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithByteSource overrides the ByteSource used by CXNN, letting tests
// seed randomness deterministically instead of using host entropy.
func WithByteSource(src ByteSource) Option {
	return func(vm *VM) { vm.rng = src }
}

// WithLogger overrides where diagnostic messages (unknown opcodes,
// halted-on-empty-return) are written. Defaults to a logger writing to
// stderr with a "chip8: " prefix.
func WithLogger(l *log.Logger) Option {
	return func(vm *VM) { vm.logger = l }
}

// NewVM constructs a VM with an empty program loaded. Call Load to
// install a ROM image.
func NewVM(opts ...Option) *VM {
	vm := &VM{
		fb:     newFramebuffer(),
		rng:    DefaultByteSource,
		logger: log.New(os.Stderr, "chip8: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.resetState()
	return vm
}

// resetState implements the Loader's reset half: memory, call stack,
// both framebuffer planes, and registers are cleared, fonts are
// reinstalled, plane-select and resolution are defaulted, and PC is set
// to the load address. RPL flags are untouched (spec §3, §4.2).
func (vm *VM) resetState() {
	vm.memory.reset()
	vm.memory.loadFonts()
	vm.stack.reset()
	vm.regs.reset()
	vm.fb.reset()
	vm.kb.reset()
	vm.paused = false
	vm.unknownOpcodes = 0
}

// Load resets the machine and copies image into memory starting at
// LoadAddress, truncated to the maximum program size. RPL flags survive
// across Load calls within the same VM instance (spec §3's lifecycle
// note) because resetState never touches them.
func (vm *VM) Load(image []byte) {
	vm.resetState()
	vm.memory.loadImage(image)
}

// LoadFile reads path and loads its contents as a program image.
func (vm *VM) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	vm.Load(data)
	return nil
}

// Paused reports whether the interpreter is halted, either because the
// host called Pause, the program executed 00FD, or it returned with an
// empty call stack.
func (vm *VM) Paused() bool { return vm.paused }

// Pause halts the interpreter. Steps become no-ops until Resume.
func (vm *VM) Pause() { vm.paused = true }

// Resume un-halts the interpreter.
func (vm *VM) Resume() { vm.paused = false }

// Keyboard returns the VM's key-state vector for the host to write into
// and poll.
func (vm *VM) Keyboard() *Keyboard { return &vm.kb }

// Framebuffer returns the VM's composed display state for the host to
// read and, for the palette, write into.
func (vm *VM) Framebuffer() *Framebuffer { return vm.fb }

// SoundActive reports whether the sound timer is currently non-zero —
// the only audio signal the core exposes (spec §1: audio output itself
// is out of scope).
func (vm *VM) SoundActive() bool { return vm.regs.Sound() > 0 }

// UnknownOpcodes returns how many undecodable instructions have been
// encountered since the last Load.
func (vm *VM) UnknownOpcodes() int { return vm.unknownOpcodes }

// TickTimers decrements the delay and sound timers by one each if they
// are non-zero. Called by the Scheduler at 1/9th the step rate, not by
// Step itself (spec §4.6).
func (vm *VM) TickTimers() { vm.regs.tickTimers() }

// Step performs one fetch-decode-execute cycle. If the interpreter is
// paused it does nothing; the caller (normally a Scheduler) is
// responsible for not calling Step while paused if it wants to avoid
// the no-op call.
func (vm *VM) Step() {
	if vm.paused {
		return
	}
	instr := fetchInstruction(&vm.memory, vm.regs.PC())
	vm.execute(instr)
}

func (vm *VM) logf(format string, args ...interface{}) {
	if vm.logger != nil {
		vm.logger.Printf(format, args...)
	}
}
