package access

import "blackout/pkg/engine/world"

// Drawer behaves like a door and may hold one item, reachable once open.
type Drawer struct {
	Door
	contents *world.ItemDefinition
}

// NewDrawer creates a closed drawer holding contents (may be nil)
func NewDrawer(id, name string, key world.ItemID, lockedByDefault bool, contents *world.ItemDefinition) *Drawer {
	return &Drawer{
		Door:     *NewDoor(id, name, key, lockedByDefault),
		contents: contents,
	}
}

// Contents returns the item inside if the drawer is fully open
func (d *Drawer) Contents() *world.ItemDefinition {
	if !d.IsPassable() {
		return nil
	}
	return d.contents
}

// Peek returns the item inside without opening the drawer
func (d *Drawer) Peek() *world.ItemDefinition {
	return d.contents
}

// HasContents reports whether the drawer still holds an item, open or not
func (d *Drawer) HasContents() bool {
	return d.contents != nil
}

// TakeContents removes and returns the item if the drawer is open.
// Later calls return nil.
func (d *Drawer) TakeContents() *world.ItemDefinition {
	item := d.Contents()
	if item != nil {
		d.contents = nil
	}
	return item
}
