// Package gate decides whether a held inventory satisfies an item requirement.
package gate

import "blackout/pkg/engine/world"

// Counter is anything that can report how many of an item it holds.
// *inventory.Store implements it.
type Counter interface {
	CountOf(id world.ItemID) int
}

// Requirement names an item and the number of copies needed.
type Requirement struct {
	Item  world.ItemID
	Count int
}

// None is the empty requirement; it is satisfied by any store.
var None = Requirement{}

// IsNone reports whether the requirement asks for nothing
func (r Requirement) IsNone() bool {
	return r.Item == "" || r.Count <= 0
}

// CanSatisfy reports whether store holds at least req.Count copies of req.Item.
// A nil store satisfies only an empty requirement.
func CanSatisfy(store Counter, req Requirement) bool {
	if req.IsNone() {
		return true
	}
	if store == nil {
		return false
	}
	return store.CountOf(req.Item) >= req.Count
}

// Missing returns how many more copies are needed, or 0 when satisfied
func Missing(store Counter, req Requirement) int {
	if req.IsNone() {
		return 0
	}
	have := 0
	if store != nil {
		have = store.CountOf(req.Item)
	}
	if have >= req.Count {
		return 0
	}
	return req.Count - have
}
