// Package inventory implements the player's item store: ordered, stacked
// slots keyed by item ID.
package inventory

import (
	"blackout/pkg/engine/world"
)

// Slot is one inventory entry. Count is always at least 1 for a live slot.
type Slot struct {
	Item  *world.ItemDefinition
	Count int
}

// Store is an ordered list of slots; insertion order is pickup order.
// There is never more than one slot for a given item ID.
type Store struct {
	slots     []Slot
	listeners []func(*world.ItemDefinition)
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// OnItemAdded registers fn to be called after every successful Add
func (s *Store) OnItemAdded(fn func(*world.ItemDefinition)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Add stores one more copy of item. It always succeeds; there is no capacity
// limit (the inventory panel only shows a fixed number of slots).
func (s *Store) Add(item *world.ItemDefinition) {
	if item == nil {
		return
	}
	if i := s.indexOf(item.ID); i >= 0 {
		s.slots[i].Count++
	} else {
		s.slots = append(s.slots, Slot{Item: item, Count: 1})
	}
	for _, fn := range s.listeners {
		fn(item)
	}
}

// Has reports whether at least one copy of the item is held
func (s *Store) Has(id world.ItemID) bool {
	return s.HasAtLeast(id, 1)
}

// HasAtLeast reports whether at least minCount copies are held.
// A minCount of zero or less is always satisfied.
func (s *Store) HasAtLeast(id world.ItemID, minCount int) bool {
	return s.CountOf(id) >= minCount
}

// CountOf returns how many copies of the item are held. Never negative.
func (s *Store) CountOf(id world.ItemID) int {
	if i := s.indexOf(id); i >= 0 {
		return s.slots[i].Count
	}
	return 0
}

// RemoveOne takes a single copy away, dropping the slot when it empties.
// Removing an item that is not held does nothing.
func (s *Store) RemoveOne(id world.ItemID) {
	s.Remove(id, 1)
}

// Remove takes up to n copies away and returns how many were removed
func (s *Store) Remove(id world.ItemID, n int) int {
	i := s.indexOf(id)
	if i < 0 || n <= 0 {
		return 0
	}
	removed := n
	if removed > s.slots[i].Count {
		removed = s.slots[i].Count
	}
	s.slots[i].Count -= removed
	if s.slots[i].Count == 0 {
		s.slots = append(s.slots[:i], s.slots[i+1:]...)
	}
	return removed
}

// Len returns the number of slots
func (s *Store) Len() int {
	return len(s.slots)
}

// SlotAt returns the slot at index i. ok is false outside the valid range.
func (s *Store) SlotAt(i int) (slot Slot, ok bool) {
	if i < 0 || i >= len(s.slots) {
		return Slot{}, false
	}
	return s.slots[i], true
}

// ItemAt returns the item in slot i, or nil outside the valid range
func (s *Store) ItemAt(i int) *world.ItemDefinition {
	slot, ok := s.SlotAt(i)
	if !ok {
		return nil
	}
	return slot.Item
}

// Slots returns a copy of all slots in pickup order
func (s *Store) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Clear drops every slot. Listeners are kept.
func (s *Store) Clear() {
	s.slots = nil
}

func (s *Store) indexOf(id world.ItemID) int {
	for i, slot := range s.slots {
		if slot.Item.ID == id {
			return i
		}
	}
	return -1
}
