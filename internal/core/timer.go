package core

import "time"

// FixedStep helps a game loop run simulation updates at a steady
// ticks-per-second rate. Pausing freezes the accumulator so no ticks pile
// up while the simulation is suspended. The simulation itself never reads
// the wall clock; only the loop that owns a FixedStep does.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetPaused suspends or resumes tick production. Resuming restarts delta
// tracking from the current instant so the paused span is not replayed.
func (f *FixedStep) SetPaused(paused bool) {
	if f.paused && !paused {
		f.last = time.Now()
	}
	f.paused = paused
}

// Paused reports whether the controller is suspended.
func (f *FixedStep) Paused() bool { return f.paused }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.paused {
		return false
	}
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
