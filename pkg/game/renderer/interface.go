// Package renderer turns game state into something a frontend can draw and
// defines the frontend contract. Frontends live in subpackages.
package renderer

import (
	"blackout/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleCellText
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleDoor
	StyleSubtle
	StylePlayer
	StyleLit
	StyleHighlight
)

// Frontend drives a game loop: it owns the clock, samples its input device
// into frames and draws a Snapshot after every tick.
type Frontend interface {
	// Run blocks until the player quits or input ends
	Run(loop *gameplay.Loop) error
}
