package entities

import (
	"math/rand"
	"time"
)

// Flicker defaults
const (
	DefaultFlickerChance = 0.1 // per second while on
	MinFlicker           = 50 * time.Millisecond
	MaxFlicker           = 200 * time.Millisecond
)

// Flashlight is the player's torch. It can only be switched on once it has
// been picked up, and randomly cuts out for a moment while lit.
type Flashlight struct {
	FlickerChance float64
	MinFlicker    time.Duration
	MaxFlicker    time.Duration

	equipped   bool
	on         bool
	flickering bool
	flickerFor time.Duration
	rng        *rand.Rand
}

// NewFlashlight creates an unequipped flashlight with a seeded flicker source
func NewFlashlight(seed int64) *Flashlight {
	return &Flashlight{
		FlickerChance: DefaultFlickerChance,
		MinFlicker:    MinFlicker,
		MaxFlicker:    MaxFlicker,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Equip makes the flashlight usable
func (f *Flashlight) Equip() {
	f.equipped = true
}

// Unequip switches the light off and makes it unusable
func (f *Flashlight) Unequip() {
	f.equipped = false
	f.on = false
	f.flickering = false
}

// Equipped reports whether the flashlight has been picked up
func (f *Flashlight) Equipped() bool {
	return f.equipped
}

// Toggle switches the light. It returns false and does nothing when the
// flashlight is not equipped.
func (f *Flashlight) Toggle() bool {
	if !f.equipped {
		return false
	}
	f.on = !f.on
	f.flickering = false
	return true
}

// On reports whether the switch is on, regardless of flicker
func (f *Flashlight) On() bool {
	return f.on
}

// Lit reports whether the beam is currently visible
func (f *Flashlight) Lit() bool {
	return f.on && !f.flickering
}

// Tick advances the flicker state machine
func (f *Flashlight) Tick(dt time.Duration) {
	if !f.on {
		return
	}
	if f.flickering {
		f.flickerFor -= dt
		if f.flickerFor <= 0 {
			f.flickering = false
		}
		return
	}
	if f.rng.Float64() < f.FlickerChance*dt.Seconds() {
		f.flickering = true
		f.flickerFor = f.MinFlicker
		if span := f.MaxFlicker - f.MinFlicker; span > 0 {
			f.flickerFor += time.Duration(f.rng.Int63n(int64(span)))
		}
	}
}
