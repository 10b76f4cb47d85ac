package core

import "time"

// maxCatchUp caps the real time credited between polls so a stall (terminal
// resize, suspend) does not trigger a burst of catch-up ticks.
const maxCatchUp = 250 * time.Millisecond

// FixedStep paces simulation ticks at a steady rate for viewers that poll
// from their own event loop rather than delegating timing to ebiten.
type FixedStep struct {
	interval time.Duration
	pending  time.Duration
	prev     time.Time
}

// NewFixedStep returns a pacer targeting the given ticks per second. The
// first poll always fires so a viewer shows a frame immediately.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	f.pending = f.interval
	return f
}

// SetTPS changes the tick rate; non-positive rates fall back to 10.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.interval = time.Second / time.Duration(tps)
}

// ShouldStep reports whether enough real time has accumulated for one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if !f.prev.IsZero() {
		elapsed := now.Sub(f.prev)
		if elapsed > maxCatchUp {
			elapsed = maxCatchUp
		}
		f.pending += elapsed
	}
	f.prev = now
	if f.pending < f.interval {
		return false
	}
	f.pending -= f.interval
	return true
}
