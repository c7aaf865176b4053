package world

import (
	"fmt"
	"regexp"
	"strings"
)

// ItemID is the interned identifier used for all gameplay matching.
// Two pickups are the same kind of item if and only if their IDs are equal.
type ItemID string

// Vec3 is a plain 3-component vector used for hold offsets.
type Vec3 struct {
	X, Y, Z float64
}

// ItemDefinition describes a kind of pickup. It is immutable once loaded
// and shared by every slot and pickup that refers to it.
type ItemDefinition struct {
	ID               ItemID
	Name             string
	Icon             string
	IconScale        float64
	HoldPosition     Vec3
	HoldRotation     Vec3
	ShortDescription string
	DocumentContent  string
}

// IsDocument returns true if the item carries readable content.
func (d *ItemDefinition) IsDocument() bool {
	return d != nil && d.DocumentContent != ""
}

// cloneSuffix matches the " (1)" decoration added to duplicated scene objects.
var cloneSuffix = regexp.MustCompile(`\s+\(\d+\)$`)

// CanonicalName strips duplicate decorations so "Fuse (2)" and "Fuse" name
// the same item. It does not do any partial matching.
func CanonicalName(name string) string {
	return cloneSuffix.ReplaceAllString(strings.TrimSpace(name), "")
}

// IDFor returns the item ID for a display name.
func IDFor(name string) ItemID {
	return ItemID(CanonicalName(name))
}

// Catalog holds every item definition known to a scene, in load order.
type Catalog struct {
	byID  map[ItemID]*ItemDefinition
	order []*ItemDefinition
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[ItemID]*ItemDefinition)}
}

// Register adds a definition to the catalog. The ID is derived from the name
// when empty. Registering the same ID twice is an error.
func (c *Catalog) Register(def ItemDefinition) (*ItemDefinition, error) {
	if def.Name == "" && def.ID == "" {
		return nil, fmt.Errorf("item definition has no name")
	}
	if def.ID == "" {
		def.ID = IDFor(def.Name)
	}
	if def.Name == "" {
		def.Name = string(def.ID)
	}
	if def.IconScale <= 0 {
		def.IconScale = 1
	}
	if _, found := c.byID[def.ID]; found {
		return nil, fmt.Errorf("item %q registered twice", def.ID)
	}
	stored := def
	c.byID[def.ID] = &stored
	c.order = append(c.order, &stored)
	return &stored, nil
}

// Get returns the definition for an ID, or nil if unknown
func (c *Catalog) Get(id ItemID) *ItemDefinition {
	if c == nil {
		return nil
	}
	return c.byID[id]
}

// Lookup resolves a display name (possibly decorated) to a definition
func (c *Catalog) Lookup(name string) *ItemDefinition {
	return c.Get(IDFor(name))
}

// Len returns the number of registered definitions
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// All returns the definitions in registration order
func (c *Catalog) All() []*ItemDefinition {
	if c == nil {
		return nil
	}
	out := make([]*ItemDefinition, len(c.order))
	copy(out, c.order)
	return out
}
