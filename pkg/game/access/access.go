// Package access implements lockable interactive objects: doors, drawers,
// card readers and the fusebox. Every variant is a small state machine
// advanced by Tick; nothing here blocks or spawns goroutines.
package access

import (
	"errors"
	"time"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/gate"
)

// ErrMissingReference is returned by Check when a configured collaborator
// (linked door, requirement item) was never wired up.
var ErrMissingReference = errors.New("missing reference")

// Outcome is the result of an activation attempt
type Outcome int

const (
	Success Outcome = iota
	DeniedMissingItem
	AlreadyActive
	Busy
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case DeniedMissingItem:
		return "DeniedMissingItem"
	case AlreadyActive:
		return "AlreadyActive"
	case Busy:
		return "Busy"
	}
	return "Unknown"
}

// ToggleResult is the result of an open/close attempt
type ToggleResult int

const (
	Toggled ToggleResult = iota
	Locked
	BusyToggle
	NotSupported
)

func (r ToggleResult) String() string {
	switch r {
	case Toggled:
		return "Toggled"
	case Locked:
		return "Locked"
	case BusyToggle:
		return "Busy"
	case NotSupported:
		return "NotSupported"
	}
	return "Unknown"
}

// Store is the inventory surface an access point needs: counting for the
// gate, removal for consuming variants.
type Store interface {
	gate.Counter
	Remove(id world.ItemID, n int) int
}

// Switch is anything a fusebox can turn on or off
type Switch interface {
	SetOn(on bool)
}

// AccessPoint is the shared contract of every lockable object.
type AccessPoint interface {
	ID() string
	Name() string
	Requirement() gate.Requirement
	IsLocked() bool
	IsBusy() bool
	TryActivate(store Store) Outcome
	ToggleOpenClosed() ToggleResult
	Lock()
	Unlock()
	Tick(dt time.Duration)
	// Check reports a wrapped ErrMissingReference when the point cannot
	// operate because of missing configuration.
	Check() error
}

// DefaultFeedback is how long an access point stays busy after a
// successful activation.
const DefaultFeedback = 500 * time.Millisecond

// lockable is the state shared by every variant
type lockable struct {
	id       string
	name     string
	requires gate.Requirement
	locked   bool
	feedback Transition
	// zero means DefaultFeedback
	feedbackDuration time.Duration
}

func (l *lockable) ID() string                    { return l.id }
func (l *lockable) Name() string                  { return l.name }
func (l *lockable) Requirement() gate.Requirement { return l.requires }
func (l *lockable) IsLocked() bool                { return l.locked }
func (l *lockable) Lock()                         { l.locked = true }
func (l *lockable) Unlock()                       { l.locked = false }

// SetFeedbackDuration changes the busy window after activation
func (l *lockable) SetFeedbackDuration(d time.Duration) {
	l.feedbackDuration = d
}

func (l *lockable) startFeedback() {
	d := l.feedbackDuration
	if d == 0 {
		d = DefaultFeedback
	}
	l.feedback.Start(true, false, d)
}
