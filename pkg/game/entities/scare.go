package entities

import "time"

// DefaultBlackout is how long a scare keeps its lights out
const DefaultBlackout = 250 * time.Millisecond

// Scare is a one-shot trigger. The first time the player steps on it, the
// figure it guards vanishes and its lights cut out for Blackout.
type Scare struct {
	ID         string
	Message    string
	MessageFor time.Duration
	Blackout   time.Duration
	Lights     []*Light

	triggered bool
	dark      time.Duration
}

// NewScare creates an untriggered scare over lights
func NewScare(id string, lights []*Light, blackout time.Duration) *Scare {
	return &Scare{ID: id, Lights: lights, Blackout: blackout}
}

// Trigger fires the scare. It returns false once the scare has already fired.
func (s *Scare) Trigger() bool {
	if s.triggered {
		return false
	}
	s.triggered = true
	if s.Blackout > 0 && len(s.Lights) > 0 {
		for _, l := range s.Lights {
			l.Cut()
		}
		s.dark = s.Blackout
	}
	return true
}

// Triggered reports whether the scare has fired
func (s *Scare) Triggered() bool {
	return s.triggered
}

// FigureVisible reports whether the figure is still standing
func (s *Scare) FigureVisible() bool {
	return !s.triggered
}

// Dark reports whether the blackout is still running
func (s *Scare) Dark() bool {
	return s.dark > 0
}

// Tick advances the blackout and brings the lights back when it ends
func (s *Scare) Tick(dt time.Duration) {
	if s.dark <= 0 {
		return
	}
	s.dark -= dt
	if s.dark <= 0 {
		s.dark = 0
		for _, l := range s.Lights {
			l.Restore()
		}
	}
}
