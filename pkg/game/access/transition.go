package access

import "time"

// Transition is a timed change between two boolean states. It replaces
// per-frame animation loops: the owner calls Advance once per tick and
// applies the end state when it reports completion.
type Transition struct {
	Elapsed  time.Duration
	Duration time.Duration
	From     bool
	To       bool
	running  bool
}

// Start begins a new transition. A non-positive duration completes
// immediately and leaves the transition idle.
func (t *Transition) Start(from, to bool, d time.Duration) {
	t.From = from
	t.To = to
	t.Elapsed = 0
	t.Duration = d
	t.running = d > 0
}

// Running reports whether the transition is still in flight
func (t *Transition) Running() bool {
	return t.running
}

// Advance moves the transition forward by dt and returns true on the tick
// it completes.
func (t *Transition) Advance(dt time.Duration) bool {
	if !t.running {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.running = false
		return true
	}
	return false
}

// Progress returns completion in [0,1]
func (t *Transition) Progress() float64 {
	if !t.running || t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Stop abandons the transition without completing it
func (t *Transition) Stop() {
	t.running = false
}
