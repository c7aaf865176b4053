package access

import (
	"math/rand"
	"time"
)

// Default delays between unprompted swings
const (
	DefaultMinSwingDelay = 5 * time.Second
	DefaultMaxSwingDelay = 15 * time.Second
)

// RandomSwing opens and shuts a door by itself after a random wait between
// MinDelay and MaxDelay. It never moves a locked door.
type RandomSwing struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	door *Door
	wait time.Duration
	rng  *rand.Rand
}

// NewRandomSwing haunts door with a seeded delay source
func NewRandomSwing(door *Door, minDelay, maxDelay time.Duration, seed int64) *RandomSwing {
	r := &RandomSwing{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		door:     door,
		rng:      rand.New(rand.NewSource(seed)),
	}
	r.wait = r.roll()
	return r
}

// Door returns the haunted door
func (r *RandomSwing) Door() *Door {
	return r.door
}

// Wait returns the time left before the next swing
func (r *RandomSwing) Wait() time.Duration {
	return r.wait
}

func (r *RandomSwing) roll() time.Duration {
	d := r.MinDelay
	if span := r.MaxDelay - r.MinDelay; span > 0 {
		d += time.Duration(r.rng.Int63n(int64(span)))
	}
	return d
}

// Tick counts down and swings the door when the wait runs out. held skips
// the swing, for example while the player stands in the doorway; the wait
// starts over either way. Returns true on the tick the door starts moving.
func (r *RandomSwing) Tick(dt time.Duration, held bool) bool {
	if r.door == nil || r.door.IsBusy() {
		return false
	}
	r.wait -= dt
	if r.wait > 0 {
		return false
	}
	r.wait = r.roll()
	if held || r.door.IsLocked() {
		return false
	}
	r.door.setOpen(!r.door.open)
	return true
}
