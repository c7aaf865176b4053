package renderer

import (
	"fmt"
	"math"
	"strings"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/menu"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// Map icons
const (
	PlayerIcon           = "@"
	IconWall             = "▒"
	IconUnvisited        = "●"
	IconVisited          = "○"
	IconVoid             = " "
	IconItem             = "?"
	IconDoorLocked       = "▣"
	IconDoorClosed       = "□"
	IconDoorOpen         = "/"
	IconDrawer           = "▤"
	IconReaderUnused     = "▫"
	IconReaderUsed       = "▪"
	IconFuseBoxUnpowered = "◇"
	IconFuseBoxPowered   = "◆"
	IconFigure           = "☻"
)

// Viewport sizes used when a frontend has no better idea
const (
	ViewportRows = 9
	ViewportCols = 21
)

// Tile is one drawn map cell
type Tile struct {
	Glyph string
	Style TextStyle
}

// Snapshot is a frontend-independent picture of one tick
type Snapshot struct {
	Map      [][]Tile
	Room     string
	Status   string
	Prompt   string
	Alpha    float64
	Messages []string
	Menu     *menu.View
}

// CellTile returns how a cell looks to the player right now
func CellTile(g *state.Game, c *world.Cell) Tile {
	if c == nil {
		return Tile{IconVoid, StyleNormal}
	}
	if c == g.CurrentCell {
		return Tile{PlayerIcon, StylePlayer}
	}
	lit := g.Lit.Has(c)
	if !c.Discovered && !lit {
		return Tile{IconVoid, StyleNormal}
	}

	t := baseTile(c)
	switch {
	case c == g.Highlight:
		t.Style = StyleHighlight
	case lit && t.Style == StyleCell:
		t.Style = StyleLit
	}
	return t
}

func baseTile(c *world.Cell) Tile {
	data := gameworld.GetGameData(c)
	switch p := data.Access.(type) {
	case *access.Door:
		switch {
		case p.IsLocked():
			return Tile{IconDoorLocked, StyleDenied}
		case p.IsOpen():
			return Tile{IconDoorOpen, StyleDoor}
		default:
			return Tile{IconDoorClosed, StyleDoor}
		}
	case *access.Drawer:
		return Tile{IconDrawer, StyleDoor}
	case *access.CardReader:
		if p.IsActivated() {
			return Tile{IconReaderUsed, StyleItem}
		}
		return Tile{IconReaderUnused, StyleDenied}
	case *access.FuseBox:
		if p.IsActivated() {
			return Tile{IconFuseBoxPowered, StyleItem}
		}
		return Tile{IconFuseBoxUnpowered, StyleDenied}
	}
	if !c.Room {
		return Tile{IconWall, StyleSubtle}
	}
	if data.Figure != nil && data.Figure.FigureVisible() {
		return Tile{IconFigure, StyleDenied}
	}
	if data.Pickup.Available() || c.ItemsOnFloor.Size() > 0 {
		return Tile{IconItem, StyleItem}
	}
	if c.Visited {
		return Tile{IconVisited, StyleCell}
	}
	return Tile{IconUnvisited, StyleCell}
}

// Capture builds a snapshot with a rows x cols map centred on the player
func Capture(l *gameplay.Loop, rows, cols int) Snapshot {
	g := l.Game
	s := Snapshot{
		Prompt:   g.Prompt.Text(),
		Alpha:    g.Prompt.Alpha(),
		Messages: append([]string(nil), g.Messages...),
	}
	if active := g.Menus.Active(); active != nil {
		v := active.View()
		s.Menu = &v
	}
	if g.CurrentCell == nil {
		return s
	}

	startRow := g.CurrentCell.Row - rows/2
	startCol := g.CurrentCell.Col - cols/2
	s.Map = make([][]Tile, rows)
	for r := range s.Map {
		s.Map[r] = make([]Tile, cols)
		for c := range s.Map[r] {
			s.Map[r][c] = CellTile(g, g.Grid.GetCell(startRow+r, startCol+c))
		}
	}

	s.Room = g.CurrentCell.Name
	if g.CurrentCell.Description != "" {
		s.Room += " - " + g.CurrentCell.Description
	}
	status := []string{i18n.T("FACING", i18n.T(strings.ToLower(g.Facing.String())))}
	if g.Flashlight.Equipped() {
		if g.Flashlight.On() {
			status = append(status, i18n.T("STATUS_FLASHLIGHT_ON"))
		} else {
			status = append(status, i18n.T("STATUS_FLASHLIGHT_OFF"))
		}
	}
	if g.Sprinting {
		status = append(status, i18n.T("STATUS_SPRINTING"))
	}
	if r := g.Stamina.Ratio(); r < 1 {
		status = append(status, i18n.T("STATUS_STAMINA", int(math.Round(r*100))))
	}
	if n := g.Inventory.Len(); n > 0 {
		status = append(status, i18n.T("STATUS_CARRYING", n))
	}
	s.Status = strings.Join(status, "  ")
	return s
}

// Lines renders a snapshot as markup lines: room, map, status, prompt,
// messages, then any open menu. Text frontends print these directly.
func (s Snapshot) Lines() []string {
	var out []string
	if s.Room != "" {
		out = append(out, "ROOM{"+s.Room+"}")
	}
	for _, row := range s.Map {
		var b strings.Builder
		for _, t := range row {
			b.WriteString(t.Glyph)
		}
		out = append(out, b.String())
	}
	if s.Status != "" {
		out = append(out, s.Status)
	}
	if s.Prompt != "" {
		out = append(out, "> "+s.Prompt)
	}
	for _, m := range s.Messages {
		out = append(out, "  "+m)
	}
	if s.Menu != nil {
		out = append(out, fmt.Sprintf("[ %s ]", s.Menu.Title))
		for i, label := range s.Menu.Labels {
			cursor := "  "
			if i == s.Menu.Selected {
				cursor = "> "
			}
			out = append(out, cursor+label)
		}
		if s.Menu.HelpText != "" {
			out = append(out, s.Menu.HelpText)
		}
		if s.Menu.Instructions != "" {
			out = append(out, s.Menu.Instructions)
		}
	}
	return out
}
