// Package gameplay runs the game tick: menus, movement, lighting and the
// interaction probe, in that order.
package gameplay

import (
	"strings"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/probe"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// CanEnter checks if the player can enter a cell
func CanEnter(g *state.Game, r *world.Cell, logReason bool) bool {
	if r == nil || !r.Room {
		return false
	}

	data := gameworld.GetGameData(r)
	if data.Access == nil {
		return true
	}

	// Doors block until fully open
	if door := gameworld.DoorAt(r); door != nil {
		if door.IsPassable() {
			return true
		}
		if logReason {
			logMessage(g, i18n.T("MSG_DOOR_BLOCKS", door.Name()))
		}
		return false
	}

	// Drawers, card readers and fuseboxes standing on the floor block movement
	return false
}

// Move turns the player to face dir and steps forward if the way is clear.
// Returns true if the player changed cell.
func Move(g *state.Game, dir world.Direction) bool {
	if g.CurrentCell == nil || !dir.IsValid() {
		return false
	}
	g.Facing = dir
	next := g.Grid.GetCellRelative(g.CurrentCell, dir)
	if next == nil || !next.Room {
		logMessage(g, i18n.T("MSG_BLOCKED", i18n.T(strings.ToLower(dir.String()))))
		return false
	}
	if !CanEnter(g, next, true) {
		return false
	}
	MoveCell(g, next)
	return true
}

// MoveCell moves the player to a new cell and applies everything that
// happens on entry: exploration, floor pickups and info zones.
func MoveCell(g *state.Game, requestedCell *world.Cell) {
	g.CurrentCell = requestedCell
	requestedCell.Visited = true
	requestedCell.Discovered = true

	// Reveal cells within field of view (with line-of-sight blocking)
	world.RevealFOV(g.Grid, requestedCell, world.FOVRadius)

	collectFloorItems(g, requestedCell)
	triggerZone(g, requestedCell)
	triggerScare(g, requestedCell)
}

// Sprint takes one extra step along the facing direction when the way is
// clear and there is stamina to pay for it. Running dry ends the sprint.
func Sprint(g *state.Game) bool {
	next := g.Grid.GetCellRelative(g.CurrentCell, g.Facing)
	if !CanEnter(g, next, false) {
		return false
	}
	if !g.Stamina.Spend() {
		g.Sprinting = false
		logMessage(g, i18n.T("MSG_OUT_OF_BREATH"))
		return false
	}
	MoveCell(g, next)
	return true
}

// collectFloorItems moves everything lying on the cell into the inventory
func collectFloorItems(g *state.Game, cell *world.Cell) {
	for _, item := range cell.FloorItems() {
		cell.ItemsOnFloor.Remove(item)
		g.Inventory.Add(item)
		g.Prompt.Show(i18n.T("MSG_PICKED_UP", item.Name), probe.ShortMessage)
		logMessage(g, i18n.T("MSG_PICKED_UP", item.Name))
	}

	data := gameworld.GetGameData(cell)
	if item := data.Pickup.Take(); item != nil {
		data.Pickup = nil
		g.Inventory.Add(item)
		g.Prompt.Show(i18n.T("MSG_PICKED_UP", item.Name), probe.ShortMessage)
		logMessage(g, i18n.T("MSG_PICKED_UP", item.Name))
	}
}

func triggerZone(g *state.Game, cell *world.Cell) {
	zone := gameworld.GetGameData(cell).Zone
	if zone == nil {
		return
	}
	if msg, d, ok := zone.Enter(); ok {
		g.Prompt.Show(msg, d)
		logMessage(g, msg)
	}
}

func triggerScare(g *state.Game, cell *world.Cell) {
	scare := gameworld.GetGameData(cell).Scare
	if scare == nil || !scare.Trigger() {
		return
	}
	if scare.Message != "" {
		g.Prompt.Show(scare.Message, scare.MessageFor)
		logMessage(g, scare.Message)
	}
	UpdateLighting(g)
}

// logMessage adds a message to the game's message log. Markup such as
// ITEM{...} is kept for the frontend to style.
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
