// Package state holds the game context shared by every system in a tick.
package state

import (
	"github.com/zyedidia/generic/mapset"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	"blackout/pkg/game/inventory"
	"blackout/pkg/game/menu"
	"blackout/pkg/game/prompt"
)

// DefaultPickupRange is how many cells the view ray reaches
const DefaultPickupRange = 3

// FlashlightItem is the item that enables the flashlight toggle when picked up
const FlashlightItem world.ItemID = "Flashlight"

// Game is the context object for a play session. Systems receive it
// explicitly; there are no package-level managers.
type Game struct {
	Grid    *world.Grid
	Catalog *world.Catalog

	CurrentCell *world.Cell
	Facing      world.Direction

	Inventory  *inventory.Store
	Prompt     *prompt.Channel
	Flashlight *entities.Flashlight
	Stamina    *entities.Stamina

	// Sprinting makes each move a double step paid for with stamina
	Sprinting bool

	// Scene objects, in load order
	AccessPoints []access.AccessPoint
	Lights       []*entities.Light
	Scares       []*entities.Scare
	Swings       []*access.RandomSwing

	Menus         *menu.Stack
	Pause         *menu.Modal
	InventoryMenu *menu.Modal

	// Highlight is the cell under the crosshair, nil when nothing is targeted
	Highlight *world.Cell

	// Lit holds every cell currently lit by a fixture or the flashlight
	Lit mapset.Set[*world.Cell]

	PickupRange  int
	InputEnabled bool

	Messages []string

	// Quit is set once the player asks to leave
	Quit bool

	reported mapset.Set[string]
}

// NewGame creates a game over grid. The player starts on the grid's start
// cell, facing its start direction.
func NewGame(grid *world.Grid, catalog *world.Catalog) *Game {
	g := &Game{
		Grid:         grid,
		Catalog:      catalog,
		Inventory:    inventory.New(),
		Prompt:       prompt.New(),
		Flashlight:   entities.NewFlashlight(1),
		Stamina:      entities.NewStamina(),
		PickupRange:  DefaultPickupRange,
		InputEnabled: true,
		Messages:     make([]string, 0),
		Lit:          mapset.New[*world.Cell](),
		reported:     mapset.New[string](),
	}
	if grid != nil {
		g.CurrentCell = grid.StartCell()
		g.Facing = grid.StartFacing()
	}
	g.Inventory.OnItemAdded(func(item *world.ItemDefinition) {
		if item.ID == FlashlightItem {
			g.Flashlight.Equip()
		}
	})
	g.Pause = menu.NewModal(menu.NewPauseMenuHandler(), engineinput.ActionToggleMenu)
	g.InventoryMenu = menu.NewModal(menu.NewInventoryMenuHandler(g.Inventory), engineinput.ActionToggleInventory)
	g.Menus = menu.NewStack(g.Pause, g.InventoryMenu)
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// ModalOpen reports whether a menu is covering the game
func (g *Game) ModalOpen() bool {
	return g.Menus.AnyOpen()
}

// FacingCell returns the cell directly in front of the player
func (g *Game) FacingCell() *world.Cell {
	if g.Grid == nil {
		return nil
	}
	return g.Grid.GetCellRelative(g.CurrentCell, g.Facing)
}

// AccessPoint returns the access point with the given id, or nil
func (g *Game) AccessPoint(id string) access.AccessPoint {
	for _, p := range g.AccessPoints {
		if p.ID() == id {
			return p
		}
	}
	return nil
}
