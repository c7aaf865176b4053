package access

import (
	"time"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/gate"
)

// DefaultSpeed matches a door swing of half a second
const DefaultSpeed = 2.0

// Door blocks a cell while closed. It may require a key to unlock; keys
// are never consumed.
type Door struct {
	lockable
	open  bool
	swing Transition
	speed float64
}

// NewDoor creates a closed door. key may be empty for a door without a lock
// item; such a door can still be locked by other systems.
func NewDoor(id, name string, key world.ItemID, lockedByDefault bool) *Door {
	d := &Door{speed: DefaultSpeed}
	d.id = id
	d.name = name
	if key != "" {
		d.requires = gate.Requirement{Item: key, Count: 1}
	}
	d.locked = lockedByDefault
	return d
}

// SetSpeed sets the swing speed; a full swing takes 1/speed seconds.
// Non-positive speeds make the door snap open and shut.
func (d *Door) SetSpeed(speed float64) {
	d.speed = speed
}

func (d *Door) swingDuration() time.Duration {
	if d.speed <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / d.speed)
}

// IsOpen reports the committed open state; while swinging this is the
// state being moved towards.
func (d *Door) IsOpen() bool { return d.open }

// IsSwinging reports whether an open/close animation is in flight
func (d *Door) IsSwinging() bool { return d.swing.Running() }

// SwingProgress returns animation progress in [0,1]
func (d *Door) SwingProgress() float64 { return d.swing.Progress() }

// IsPassable reports whether the player can walk through the door's cell
func (d *Door) IsPassable() bool {
	return d.open && !d.swing.Running()
}

// IsBusy reports whether the door is mid-swing or showing activation feedback
func (d *Door) IsBusy() bool {
	return d.swing.Running() || d.feedback.Running()
}

// TryActivate unlocks the door when the key is held. A locked door without
// a key item cannot be opened by the player.
func (d *Door) TryActivate(store Store) Outcome {
	if d.IsBusy() {
		return Busy
	}
	if !d.locked {
		return AlreadyActive
	}
	if d.requires.IsNone() || !gate.CanSatisfy(store, d.requires) {
		return DeniedMissingItem
	}
	d.locked = false
	d.startFeedback()
	return Success
}

// ToggleOpenClosed swings the door. A locked door never opens.
func (d *Door) ToggleOpenClosed() ToggleResult {
	if d.IsBusy() {
		return BusyToggle
	}
	if d.locked {
		return Locked
	}
	d.setOpen(!d.open)
	return Toggled
}

// Open swings the door open regardless of its lock; used by card readers
func (d *Door) Open() {
	if !d.open {
		d.setOpen(true)
	}
}

// Close swings the door shut regardless of its lock; used by the fusebox
func (d *Door) Close() {
	if d.open {
		d.setOpen(false)
	}
}

func (d *Door) setOpen(open bool) {
	d.swing.Start(d.open, open, d.swingDuration())
	d.open = open
}

// Tick advances the swing and feedback timers
func (d *Door) Tick(dt time.Duration) {
	d.swing.Advance(dt)
	d.feedback.Advance(dt)
}

// Check always succeeds; a door has no collaborators
func (d *Door) Check() error { return nil }
