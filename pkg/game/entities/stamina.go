package entities

import "time"

// Stamina defaults
const (
	DefaultMaxStamina = 100.0
	DefaultStepCost   = 20.0
	DefaultRegen      = 15.0 // per second
	DefaultRecoverAt  = 0.5  // share of Max needed to sprint again
)

// Stamina drains with every sprint step and refills over time. Running it
// dry leaves the player exhausted until it is back to RecoverAt.
type Stamina struct {
	Max       float64
	Current   float64
	StepCost  float64
	Regen     float64
	RecoverAt float64

	exhausted bool
}

// NewStamina creates a full gauge with the default tuning
func NewStamina() *Stamina {
	return &Stamina{
		Max:       DefaultMaxStamina,
		Current:   DefaultMaxStamina,
		StepCost:  DefaultStepCost,
		Regen:     DefaultRegen,
		RecoverAt: DefaultRecoverAt,
	}
}

// Spend pays for one sprint step. It returns false, and leaves the player
// exhausted, when there is not enough left.
func (s *Stamina) Spend() bool {
	if s.exhausted {
		return false
	}
	if s.Current < s.StepCost {
		s.exhausted = true
		return false
	}
	s.Current -= s.StepCost
	if s.Current <= 0 {
		s.Current = 0
		s.exhausted = true
	}
	return true
}

// Tick refills the gauge
func (s *Stamina) Tick(dt time.Duration) {
	s.Current = min(s.Max, s.Current+s.Regen*dt.Seconds())
	if s.exhausted && s.Ratio() >= s.RecoverAt {
		s.exhausted = false
	}
}

// Ratio returns the fill level in [0,1]
func (s *Stamina) Ratio() float64 {
	if s.Max <= 0 {
		return 0
	}
	return s.Current / s.Max
}

// Exhausted reports whether sprinting is blocked until the gauge recovers
func (s *Stamina) Exhausted() bool {
	return s.exhausted
}
