package chip8

import "time"

// minPeriodMs is the smallest step period the scheduler honors; periods
// below this are clamped up to it (see SetPeriodMs).
const minPeriodMs = 0.1

// timersDivisor ticks the delay and sound timers once every N steps, so
// the timers run at 1/9 of the step rate whatever the configured step
// period; they approximate 60Hz only when the period is about 1.85ms.
const timersDivisor = 9

// Scheduler drives a VM's Step/TickTimers calls against a virtual clock.
// It owns no goroutine of its own; a host calls Tick repeatedly (from a
// time.Ticker loop, as the teacher's Run does) and the Scheduler decides
// how many steps, if any, have become due. Grounded on Emulator.cpp's
// tick()/step() pair.
type Scheduler struct {
	vm *VM

	periodMs float64
	vtime    time.Duration
	counter  uint64

	paused   bool
	stepOnce bool
}

// NewScheduler constructs a Scheduler for vm with the given step period
// in milliseconds (clamped to minPeriodMs).
func NewScheduler(vm *VM, periodMs float64) *Scheduler {
	s := &Scheduler{vm: vm}
	s.SetPeriodMs(periodMs)
	return s
}

// SetPeriodMs changes the virtual step period. A value below
// minPeriodMs is clamped to it, matching the spec's stated floor.
func (s *Scheduler) SetPeriodMs(ms float64) {
	if ms < minPeriodMs {
		ms = minPeriodMs
	}
	s.periodMs = ms
}

// PeriodMs reports the current step period in milliseconds.
func (s *Scheduler) PeriodMs() float64 { return s.periodMs }

// Paused reports whether free-running stepping is suspended.
func (s *Scheduler) Paused() bool { return s.paused }

// Pause suspends free-running stepping. StepOnce still works while paused.
func (s *Scheduler) Pause() { s.paused = true }

// Resume resumes free-running stepping.
func (s *Scheduler) Resume() { s.paused = false }

// StepOnce requests exactly one step be taken on the next Tick, even
// while paused — the single-step control a host binds to a "." key.
func (s *Scheduler) StepOnce() { s.stepOnce = true }

// Counter reports how many VM steps the scheduler has executed in
// total since construction.
func (s *Scheduler) Counter() uint64 { return s.counter }

// Tick advances the scheduler's virtual clock against elapsed, the
// wall-clock duration since the previous Tick call, and executes
// however many steps have become due. A caller normally passes the
// interval of its own polling ticker.
//
// A pending StepOnce request is served first, paused or not. While
// paused nothing else runs and elapsed time is not accumulated, so
// Resume does not replay the steps that would have come due.
//
// While running free (not paused) the scheduler catches up: if elapsed
// covers several step periods at once (the host was blocked, or the
// period is very short) it executes every due step in a tight loop
// rather than dropping them, mirroring Emulator.cpp's tick() loop.
func (s *Scheduler) Tick(elapsed time.Duration) {
	if s.stepOnce {
		s.stepOnce = false
		s.runStep()
	}
	if s.paused {
		return
	}

	s.vtime += elapsed
	period := time.Duration(s.periodMs * float64(time.Millisecond))
	for s.vtime >= period {
		s.vtime -= period
		s.runStep()
	}
}

// runStep executes one VM step, ticking timers every timersDivisor-th
// step (spec §4.6's fixed 1/9 timer cadence).
func (s *Scheduler) runStep() {
	s.vm.Step()
	s.counter++
	if s.counter%timersDivisor == 0 {
		s.vm.TickTimers()
	}
}
