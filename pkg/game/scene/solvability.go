package scene

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// reach is the result of exploring a scene with everything collectable so far
type reach struct {
	cells mapset.Set[*world.Cell]
	items map[world.ItemID]int
}

func (r *reach) CountOf(id world.ItemID) int { return r.items[id] }

// openedBy returns the doors a usable card reader would open
func openedBy(g *state.Game, r *reach) mapset.Set[*access.Door] {
	doors := mapset.New[*access.Door]()
	for _, p := range g.AccessPoints {
		reader, ok := p.(*access.CardReader)
		if !ok || reader.Door() == nil {
			continue
		}
		if usable(g, r, reader) && r.CountOf(reader.Requirement().Item) >= reader.Requirement().Count {
			doors.Put(reader.Door())
		}
	}
	return doors
}

// usable reports whether the player can stand next to the access point
func usable(g *state.Game, r *reach, p access.AccessPoint) bool {
	found := false
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if found || gameworld.GetGameData(cell).Access != p {
			return
		}
		for _, dir := range world.AllDirections() {
			if r.cells.Has(g.Grid.GetCellRelative(cell, dir)) {
				found = true
			}
		}
	})
	return found
}

// explore floods the grid from the start cell, collecting items until
// nothing new can be reached.
func explore(g *state.Game) *reach {
	r := &reach{items: make(map[world.ItemID]int)}
	for {
		before := len(r.items)
		total := 0
		for _, n := range r.items {
			total += n
		}

		opened := openedBy(g, r)
		r.cells = mapset.New[*world.Cell]()
		r.items = make(map[world.ItemID]int)
		queue := []*world.Cell{g.Grid.StartCell()}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if current == nil || !current.Room || r.cells.Has(current) {
				continue
			}
			if !passable(current, opened, r) {
				continue
			}
			r.cells.Put(current)
			for _, item := range current.FloorItems() {
				r.items[item.ID]++
			}
			if p := gameworld.GetGameData(current).Pickup; p.Available() {
				r.items[p.Item.ID]++
			}
			for _, dir := range world.AllDirections() {
				queue = append(queue, g.Grid.GetCellRelative(current, dir))
			}
		}
		for _, p := range g.AccessPoints {
			drawer, ok := p.(*access.Drawer)
			if !ok || drawer.Peek() == nil {
				continue
			}
			if usable(g, r, drawer) && (!drawer.IsLocked() || openable(drawer, r)) {
				r.items[drawer.Peek().ID]++
			}
		}

		after := 0
		for _, n := range r.items {
			after += n
		}
		if len(r.items) == before && after == total {
			return r
		}
	}
}

func openable(p access.AccessPoint, r *reach) bool {
	req := p.Requirement()
	return !req.IsNone() && r.CountOf(req.Item) >= req.Count
}

func passable(cell *world.Cell, opened mapset.Set[*access.Door], r *reach) bool {
	p := gameworld.GetGameData(cell).Access
	if p == nil {
		return true
	}
	door := gameworld.DoorAt(cell)
	if door == nil {
		return false
	}
	return !door.IsLocked() || opened.Has(door) || openable(door, r)
}

// Unreachable lists the things a player starting fresh could never use:
// access points whose requirement cannot be collected and pickups that
// cannot be reached.
func Unreachable(g *state.Game) []string {
	if g.Grid == nil || g.Grid.StartCell() == nil {
		return nil
	}
	r := explore(g)
	opened := openedBy(g, r)

	var out []string
	for _, p := range g.AccessPoints {
		req := p.Requirement()
		switch v := p.(type) {
		case *access.Door:
			if v.IsLocked() && !opened.Has(v) && !openable(v, r) {
				out = append(out, fmt.Sprintf("door %q can never be unlocked", v.ID()))
			}
		case *access.FuseBox:
			if have := r.CountOf(req.Item); have < req.Count {
				out = append(out, fmt.Sprintf("fusebox %q needs %d %q but only %d can be collected", v.ID(), req.Count, req.Item, have))
			}
		case *access.CardReader:
			if r.CountOf(req.Item) < req.Count {
				out = append(out, fmt.Sprintf("card reader %q needs %q which cannot be collected", v.ID(), req.Item))
			}
		}
	}
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if gameworld.GetGameData(cell).Pickup != nil && !r.cells.Has(cell) {
			out = append(out, fmt.Sprintf("pickup at %d,%d is out of reach", row, col))
		}
	})
	return out
}
