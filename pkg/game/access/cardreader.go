package access

import (
	"fmt"
	"time"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/gate"
)

// CardReader is a one-way access point: presenting the badge unlocks and
// opens its linked door. The badge is not consumed.
type CardReader struct {
	lockable
	door      *Door
	activated bool
}

// NewCardReader creates an unactivated reader. door may be nil until linked.
func NewCardReader(id, name string, badge world.ItemID, door *Door) *CardReader {
	r := &CardReader{door: door}
	r.id = id
	r.name = name
	r.requires = gate.Requirement{Item: badge, Count: 1}
	r.locked = true
	return r
}

// Link sets the door this reader opens
func (r *CardReader) Link(door *Door) { r.door = door }

// Door returns the linked door, or nil
func (r *CardReader) Door() *Door { return r.door }

// IsActivated reports whether the reader has been used
func (r *CardReader) IsActivated() bool { return r.activated }

// IsBusy reports whether the activation feedback is still showing
func (r *CardReader) IsBusy() bool { return r.feedback.Running() }

// TryActivate checks the badge and, on success, unlocks and opens the door.
func (r *CardReader) TryActivate(store Store) Outcome {
	if r.IsBusy() {
		return Busy
	}
	if r.activated {
		return AlreadyActive
	}
	if !gate.CanSatisfy(store, r.requires) {
		return DeniedMissingItem
	}
	r.activated = true
	r.locked = false
	if r.door != nil {
		r.door.Unlock()
		r.door.Open()
	}
	r.startFeedback()
	return Success
}

// ToggleOpenClosed is not supported by card readers
func (r *CardReader) ToggleOpenClosed() ToggleResult { return NotSupported }

// Lock re-arms the reader
func (r *CardReader) Lock() {
	r.locked = true
	r.activated = false
}

// Unlock marks the reader as used without touching the door
func (r *CardReader) Unlock() {
	r.locked = false
	r.activated = true
}

// Tick advances the feedback window
func (r *CardReader) Tick(dt time.Duration) {
	r.feedback.Advance(dt)
}

// Check reports a missing linked door or badge item
func (r *CardReader) Check() error {
	if r.door == nil {
		return fmt.Errorf("card reader %q: door_to_open: %w", r.id, ErrMissingReference)
	}
	if r.requires.Item == "" {
		return fmt.Errorf("card reader %q: required item: %w", r.id, ErrMissingReference)
	}
	return nil
}
