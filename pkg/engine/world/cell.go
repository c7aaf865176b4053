// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of item definitions lying somewhere in the world
type ItemSet = mapset.Set[*ItemDefinition]

// Cell represents a single cell/tile in the grid.
// This is a generic engine primitive that can be extended by games.
type Cell struct {
	// Basic identification
	Name        string
	Description string

	// Grid position
	Row int
	Col int

	// Items lying on the floor, collected by walking onto the cell
	ItemsOnFloor ItemSet

	// Visibility state
	Visited    bool
	Discovered bool

	// Room is true for walkable floor; false cells are walls
	Room bool

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type (e.g., *GameCellData).
	GameData interface{}
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, name, description string) *Cell {
	return &Cell{
		Name:         name,
		Description:  description,
		Row:          row,
		Col:          col,
		ItemsOnFloor: mapset.New[*ItemDefinition](),
	}
}

// FloorItems returns the floor items sorted by name so callers see a stable order
func (c *Cell) FloorItems() []*ItemDefinition {
	if c == nil {
		return nil
	}
	items := make([]*ItemDefinition, 0, c.ItemsOnFloor.Size())
	c.ItemsOnFloor.Each(func(item *ItemDefinition) {
		items = append(items, item)
	})
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items
}

// Position returns the cell coordinates
func (c *Cell) Position() (row, col int) {
	return c.Row, c.Col
}
