package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/state"
)

// FlashlightRange is how far the beam reaches along the facing direction
const FlashlightRange = 4

// UpdateLighting recomputes the set of lit cells from fixtures and the
// flashlight beam. Lit cells become discovered.
func UpdateLighting(g *state.Game) {
	g.Lit = mapset.New[*world.Cell]()
	if g.Grid == nil {
		return
	}

	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !cell.Room {
			return
		}
		for _, l := range g.Lights {
			if l.Covers(row, col) {
				g.Lit.Put(cell)
				cell.Discovered = true
				return
			}
		}
	})

	if g.Flashlight.Lit() && g.CurrentCell != nil {
		cell := g.CurrentCell
		for i := 0; i < FlashlightRange; i++ {
			cell = g.Grid.GetCellRelative(cell, g.Facing)
			if cell == nil {
				break
			}
			g.Lit.Put(cell)
			cell.Discovered = true
			if !cell.Room {
				break
			}
		}
	}
}

// IsLit returns true if cell is lit this tick
func IsLit(g *state.Game, cell *world.Cell) bool {
	return cell != nil && g.Lit.Has(cell)
}
