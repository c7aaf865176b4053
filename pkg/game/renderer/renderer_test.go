package renderer

import (
	"strings"
	"testing"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

func TestParse(t *testing.T) {
	spans := Parse("You need the ITEM{ID Card}, press ACTION{F}")
	want := []Span{
		{"You need the ", StyleNormal},
		{"ID Card", StyleItem},
		{", press ", StyleNormal},
		{"F", StyleActionShort},
	}
	if len(spans) != len(want) {
		t.Fatalf("Parse = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestPlain(t *testing.T) {
	if got := Plain("Map dumped to ITEM{/tmp/map.txt}"); got != "Map dumped to /tmp/map.txt" {
		t.Errorf("Plain = %q", got)
	}
	if got := Plain("ACTION{up}/ACTION{down}"); got != "up/down" {
		t.Errorf("Plain = %q, want up/down", got)
	}
	if got := Plain("no markup"); got != "no markup" {
		t.Errorf("Plain = %q, want unchanged", got)
	}
}

func TestCapture(t *testing.T) {
	grid := world.NewGrid(3, 5)
	for col := 1; col < 4; col++ {
		grid.MarkAsRoomWithName(1, col, "Hall", "")
	}
	grid.SetStartCell(grid.GetCell(1, 1), world.East)
	gameworld.GetGameData(grid.GetCell(1, 3)).Access = access.NewDoor("d", "door", "", true)
	g := state.NewGame(grid, world.NewCatalog())
	l := gameplay.NewLoop(g)

	s := Capture(l, 3, 5)
	if got := s.Map[1][2].Glyph; got != PlayerIcon {
		t.Errorf("centre glyph = %q, want player", got)
	}
	if s.Room != "Hall" {
		t.Errorf("Room = %q, want Hall", s.Room)
	}
	if !strings.Contains(s.Status, "east") {
		t.Errorf("Status = %q, want facing east", s.Status)
	}
	if s.Menu != nil {
		t.Error("no menu should be open")
	}
}

func TestCellTile_LockedDoor(t *testing.T) {
	grid := world.NewGrid(1, 2)
	grid.MarkAsRoom(0, 0)
	grid.MarkAsRoom(0, 1)
	grid.SetStartCell(grid.GetCell(0, 0), world.East)
	cell := grid.GetCell(0, 1)
	gameworld.GetGameData(cell).Access = access.NewDoor("d", "door", "", true)
	cell.Discovered = true
	g := state.NewGame(grid, nil)

	if got := CellTile(g, cell); got.Glyph != IconDoorLocked || got.Style != StyleDenied {
		t.Errorf("CellTile = %v, want locked door", got)
	}
	g.Highlight = cell
	if got := CellTile(g, cell); got.Style != StyleHighlight {
		t.Errorf("highlighted style = %v, want StyleHighlight", got.Style)
	}
}

func TestCellTile_FigureVanishes(t *testing.T) {
	grid := world.NewGrid(1, 2)
	grid.MarkAsRoom(0, 0)
	grid.MarkAsRoom(0, 1)
	grid.SetStartCell(grid.GetCell(0, 0), world.East)
	cell := grid.GetCell(0, 1)
	scare := entities.NewScare("s", nil, 0)
	gameworld.GetGameData(cell).Figure = scare
	cell.Discovered = true
	g := state.NewGame(grid, nil)

	if got := CellTile(g, cell); got.Glyph != IconFigure {
		t.Errorf("CellTile = %v, want the figure", got)
	}
	scare.Trigger()
	if got := CellTile(g, cell); got.Glyph == IconFigure {
		t.Error("figure still drawn after the scare")
	}
}

func TestCapture_StaminaShownWhileDrained(t *testing.T) {
	grid := world.NewGrid(1, 2)
	grid.MarkAsRoom(0, 0)
	grid.SetStartCell(grid.GetCell(0, 0), world.East)
	g := state.NewGame(grid, world.NewCatalog())
	l := gameplay.NewLoop(g)

	if s := Capture(l, 1, 1); strings.Contains(s.Status, "Stamina") {
		t.Errorf("Status = %q, want no stamina while full", s.Status)
	}
	g.Stamina.Spend()
	g.Sprinting = true
	s := Capture(l, 1, 1)
	if !strings.Contains(s.Status, "Stamina 80%") || !strings.Contains(s.Status, "Running") {
		t.Errorf("Status = %q, want running with stamina 80%%", s.Status)
	}
}
