// Package entities contains the passive objects placed in a scene: pickups,
// lights, info zones and the player's flashlight. Lockable objects live in
// package access.
package entities

import (
	"blackout/pkg/engine/world"
)

// Pickup is an item resting somewhere the player can look at and take.
type Pickup struct {
	Item  *world.ItemDefinition
	Taken bool
}

// NewPickup creates a pickup for item
func NewPickup(item *world.ItemDefinition) *Pickup {
	return &Pickup{Item: item}
}

// Take marks the pickup as collected and returns its item.
// Later calls return nil so the item is only ever granted once.
func (p *Pickup) Take() *world.ItemDefinition {
	if p == nil || p.Taken {
		return nil
	}
	p.Taken = true
	return p.Item
}

// Available returns true if the pickup has not been collected
func (p *Pickup) Available() bool {
	return p != nil && !p.Taken && p.Item != nil
}
