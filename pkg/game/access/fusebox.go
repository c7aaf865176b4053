package access

import (
	"fmt"
	"time"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/gate"
)

// FuseBox consumes fuses to restore power. Activation switches the
// configured lights and, if a door is linked, shuts and re-locks it after
// a delay.
type FuseBox struct {
	lockable
	activated bool

	lightsOn  []Switch
	lightsOff []Switch

	door        *Door
	relockDelay time.Duration
	relock      Transition
}

// NewFuseBox creates an unpowered fusebox needing count copies of fuse
func NewFuseBox(id, name string, fuse world.ItemID, count int) *FuseBox {
	f := &FuseBox{}
	f.id = id
	f.name = name
	f.requires = gate.Requirement{Item: fuse, Count: count}
	f.locked = true
	return f
}

// SwitchOn adds lights that turn on when the fusebox activates
func (f *FuseBox) SwitchOn(lights ...Switch) {
	f.lightsOn = append(f.lightsOn, lights...)
}

// SwitchOff adds lights that turn off when the fusebox activates
func (f *FuseBox) SwitchOff(lights ...Switch) {
	f.lightsOff = append(f.lightsOff, lights...)
}

// LinkDoor sets a door to close and re-lock delay after activation
func (f *FuseBox) LinkDoor(door *Door, delay time.Duration) {
	f.door = door
	f.relockDelay = delay
}

// IsActivated reports whether power has been restored
func (f *FuseBox) IsActivated() bool { return f.activated }

// IsBusy reports whether the activation feedback is still showing
func (f *FuseBox) IsBusy() bool { return f.feedback.Running() }

// RelockPending reports whether the linked door is waiting to be re-locked
func (f *FuseBox) RelockPending() bool { return f.relock.Running() }

// TryActivate consumes the fuses and restores power if enough are held.
func (f *FuseBox) TryActivate(store Store) Outcome {
	if f.IsBusy() {
		return Busy
	}
	if f.activated {
		return AlreadyActive
	}
	if !gate.CanSatisfy(store, f.requires) {
		return DeniedMissingItem
	}
	if store != nil {
		store.Remove(f.requires.Item, f.requires.Count)
	}
	f.activated = true
	f.locked = false

	for _, l := range f.lightsOn {
		l.SetOn(true)
	}
	for _, l := range f.lightsOff {
		l.SetOn(false)
	}

	if f.door != nil {
		f.relock.Start(false, true, f.relockDelay)
		if !f.relock.Running() {
			f.relockDoor()
		}
	}
	f.startFeedback()
	return Success
}

func (f *FuseBox) relockDoor() {
	f.door.Close()
	f.door.Lock()
}

// ToggleOpenClosed is not supported by the fusebox
func (f *FuseBox) ToggleOpenClosed() ToggleResult { return NotSupported }

// Lock cuts the power state back to inactive. Lights are left as they are.
func (f *FuseBox) Lock() {
	f.locked = true
	f.activated = false
	f.relock.Stop()
}

// Unlock marks the fusebox active without consuming anything
func (f *FuseBox) Unlock() {
	f.locked = false
	f.activated = true
}

// Tick advances feedback and the pending door re-lock
func (f *FuseBox) Tick(dt time.Duration) {
	f.feedback.Advance(dt)
	if f.relock.Advance(dt) && f.door != nil {
		f.relockDoor()
	}
}

// Check reports a fusebox with no fuse item configured
func (f *FuseBox) Check() error {
	if f.requires.Item == "" {
		return fmt.Errorf("fusebox %q: fuse item: %w", f.id, ErrMissingReference)
	}
	return nil
}
