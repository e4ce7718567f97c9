package chip8

import (
	"testing"
	"time"
)

func TestSchedulerCatchesUpMultipleSteps(t *testing.T) {
	vm := NewVM()
	vm.Load(asm(0x6001)) // LD V0, 0x01 — immaterial, just needs to be steppable
	s := NewScheduler(vm, 10) // 10ms period

	s.Tick(35 * time.Millisecond)
	if got := s.Counter(); got != 3 {
		t.Errorf("Counter() = %d, want 3 (35ms / 10ms, remainder carried in vtime)", got)
	}

	s.Tick(5 * time.Millisecond) // 5ms leftover + 5ms new = 10ms, one more step due
	if got := s.Counter(); got != 4 {
		t.Errorf("Counter() = %d, want 4", got)
	}
}

func TestSchedulerPausedIgnoresFreeRunning(t *testing.T) {
	vm := NewVM()
	vm.Load(nil)
	s := NewScheduler(vm, 1)
	s.Pause()
	s.Tick(100 * time.Millisecond)
	if got := s.Counter(); got != 0 {
		t.Errorf("Counter() = %d, want 0 while paused", got)
	}
}

func TestSchedulerStepOnceWorksWhilePaused(t *testing.T) {
	vm := NewVM()
	vm.Load(nil)
	s := NewScheduler(vm, 1)
	s.Pause()
	s.StepOnce()
	s.Tick(0)
	if got := s.Counter(); got != 1 {
		t.Errorf("Counter() = %d, want 1 after a single StepOnce", got)
	}
	// the latch is one-shot
	s.Tick(0)
	if got := s.Counter(); got != 1 {
		t.Errorf("Counter() = %d, want still 1 (StepOnce does not repeat)", got)
	}
}

func TestSchedulerPeriodIsClampedToMinimum(t *testing.T) {
	vm := NewVM()
	vm.Load(nil)
	s := NewScheduler(vm, 0)
	if got := s.PeriodMs(); got != minPeriodMs {
		t.Errorf("PeriodMs() = %v, want clamped to %v", got, minPeriodMs)
	}
}

func TestSchedulerTicksTimersEveryNinthStep(t *testing.T) {
	vm := NewVM()
	vm.Load(nil)
	vm.regs.SetDelay(1)
	s := NewScheduler(vm, 1)

	for i := 0; i < 8; i++ {
		s.Tick(time.Millisecond)
	}
	if got := vm.regs.Delay(); got != 1 {
		t.Fatalf("Delay() = %d, want still 1 after 8 steps", got)
	}
	s.Tick(time.Millisecond) // 9th step
	if got := vm.regs.Delay(); got != 0 {
		t.Errorf("Delay() = %d, want 0 after the 9th step ticks timers", got)
	}
}
