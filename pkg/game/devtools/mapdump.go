// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// DefaultDumpFile is where the in-game dump action writes
const DefaultDumpFile = "map.txt"

// Legend explains CellSymbol's output
const Legend = ". = floor  # = wall or unrevealed  D = closed door  / = open door  L = locked door  " +
	"d = drawer  R = card reader  B = fusebox  i = item  ? = info zone  * = light  @ = player"

// CellSymbol returns the single-character symbol for a cell (no player overlay).
// If revealedOnly is true, undiscovered cells return '#'.
func CellSymbol(cell *world.Cell, revealedOnly bool) rune {
	if cell == nil {
		return '#'
	}
	if revealedOnly && !cell.Discovered {
		return '#'
	}
	data := gameworld.GetGameData(cell)
	switch p := data.Access.(type) {
	case *access.Door:
		switch {
		case p.IsLocked():
			return 'L'
		case p.IsOpen():
			return '/'
		default:
			return 'D'
		}
	case *access.Drawer:
		return 'd'
	case *access.CardReader:
		return 'R'
	case *access.FuseBox:
		return 'B'
	}
	if !cell.Room {
		return '#'
	}
	switch {
	case data.Pickup.Available(), cell.ItemsOnFloor.Size() > 0:
		return 'i'
	case data.Zone != nil:
		return '?'
	case data.Light != nil:
		return '*'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid to w with the player overlaid.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			cell := g.Grid.GetCell(row, col)
			if cell != nil && cell == g.CurrentCell {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", CellSymbol(cell, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// WriteMap writes a full debug dump: metadata, legend, the revealed map,
// the full map, and entity and inventory lists.
func WriteMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	playerRow, playerCol := -1, -1
	if g.CurrentCell != nil {
		playerRow, playerCol = g.CurrentCell.Row, g.CurrentCell.Col
	}

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "player_cell: %d,%d\n", playerRow, playerCol)
	fmt.Fprintf(w, "facing: %s\n", g.Facing)
	fmt.Fprintf(w, "flashlight_equipped: %v flashlight_on: %v\n", g.Flashlight.Equipped(), g.Flashlight.On())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, Legend)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Access points:")
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		p := gameworld.GetGameData(cell).Access
		if p == nil {
			return
		}
		fmt.Fprintf(w, "  row: %d col: %d id: %q name: %q locked: %v busy: %v", row, col, p.ID(), p.Name(), p.IsLocked(), p.IsBusy())
		if req := p.Requirement(); !req.IsNone() {
			fmt.Fprintf(w, " requires: %q x%d", req.Item, req.Count)
		}
		switch v := p.(type) {
		case *access.Door:
			fmt.Fprintf(w, " open: %v", v.IsOpen())
		case *access.Drawer:
			fmt.Fprintf(w, " open: %v has_contents: %v", v.IsOpen(), v.HasContents())
		case *access.CardReader:
			fmt.Fprintf(w, " activated: %v", v.IsActivated())
		case *access.FuseBox:
			fmt.Fprintf(w, " activated: %v relock_pending: %v", v.IsActivated(), v.RelockPending())
		}
		if err := p.Check(); err != nil {
			fmt.Fprintf(w, " error: %q", err.Error())
		}
		fmt.Fprintln(w)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Lights:")
	for _, l := range g.Lights {
		fmt.Fprintf(w, "  id: %q row: %d col: %d radius: %d on: %v lit: %v\n", l.ID, l.Row, l.Col, l.Radius, l.On, l.Lit())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Scares and random doors:")
	for _, s := range g.Scares {
		fmt.Fprintf(w, "  id: %q triggered: %v dark: %v\n", s.ID, s.Triggered(), s.Dark())
	}
	for _, s := range g.Swings {
		fmt.Fprintf(w, "  swing: %q open: %v next_in: %s\n", s.Door().ID(), s.Door().IsOpen(), s.Wait())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Items:")
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		for _, item := range cell.FloorItems() {
			fmt.Fprintf(w, "  row: %d col: %d item: %q on_floor: true\n", row, col, item.ID)
		}
		if p := gameworld.GetGameData(cell).Pickup; p.Available() {
			fmt.Fprintf(w, "  row: %d col: %d item: %q on_floor: false\n", row, col, p.Item.ID)
		}
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Inventory:")
	if g.Inventory.Len() == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, slot := range g.Inventory.Slots() {
		fmt.Fprintf(w, "  item: %q count: %d\n", slot.Item.ID, slot.Count)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
	return nil
}

// DumpMapToFile writes WriteMap's output to path and returns the absolute path.
func DumpMapToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMap(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
