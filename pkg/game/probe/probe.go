// Package probe runs the per-tick look-and-interact step: cast the view ray,
// pick the first target, keep the prompt current and turn input edges into
// activations, toggles and pickups.
package probe

import (
	"log"
	"time"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// Message durations, adjustable from the player's preferences
var (
	ShortMessage = 2 * time.Second
	LongMessage  = 3 * time.Second
)

// Probe owns the raycaster used for the view ray
type Probe struct {
	Caster world.Raycaster
}

// New creates a probe casting over grid
func New(grid *world.Grid) *Probe {
	return &Probe{Caster: NewRaycaster(grid)}
}

// Tick runs one probe step. It does nothing but hide the prompt while input
// is disabled or a modal is open.
func (p *Probe) Tick(g *state.Game, frame engineinput.Frame) Target {
	if !g.InputEnabled || g.ModalOpen() {
		g.Prompt.Clear()
		g.Highlight = nil
		return Target{}
	}

	t := Resolve(p.Caster, g.CurrentCell, g.Facing, g.PickupRange)
	if t.Kind == KindNone {
		g.Prompt.Hide()
		g.Highlight = nil
		return t
	}
	g.Highlight = t.Cell

	if t.Kind == KindAccess {
		if err := t.Access.Check(); err != nil {
			g.ReportMissing(err)
			g.Prompt.Hide()
			return t
		}
	}

	if frame.Pressed(engineinput.ActionInteract) {
		interact(g, t)
	}
	if frame.Pressed(engineinput.ActionPrimary) && t.Kind == KindAccess {
		toggle(g, t.Access)
	}

	if t.Kind == KindPickup && !t.Pickup.Available() {
		g.Prompt.Hide()
		g.Highlight = nil
		return Target{}
	}
	g.Prompt.ShowUntilChanged(PromptFor(t, g.Inventory, g.Catalog))
	return t
}

func interact(g *state.Game, t Target) {
	switch t.Kind {
	case KindPickup:
		item := t.Pickup.Take()
		if item == nil {
			return
		}
		g.Inventory.Add(item)
		gameworld.GetGameData(t.Cell).Pickup = nil
		notify(g, ShortMessage, "MSG_PICKED_UP", item.Name)
	case KindAccess:
		if d, ok := t.Access.(*access.Drawer); ok {
			if item := d.TakeContents(); item != nil {
				g.Inventory.Add(item)
				notify(g, ShortMessage, "MSG_PICKED_UP", item.Name)
				return
			}
		}
		activate(g, t.Access)
	}
}

func activate(g *state.Game, point access.AccessPoint) {
	outcome := point.TryActivate(g.Inventory)
	log.Printf("activate %s: %v", point.ID(), outcome)

	switch p := point.(type) {
	case *access.CardReader:
		switch outcome {
		case access.Success:
			notify(g, ShortMessage, "MSG_DOOR_OPENS", p.Door().Name())
		case access.DeniedMissingItem:
			notify(g, ShortMessage, "MSG_NEED_BADGE")
		}
	case *access.FuseBox:
		req := p.Requirement()
		switch outcome {
		case access.Success:
			notify(g, LongMessage, "MSG_FUSEBOX_ACTIVATED")
		case access.DeniedMissingItem:
			notify(g, ShortMessage, "PROMPT_FUSEBOX_NEED", req.Count, g.Inventory.CountOf(req.Item))
		case access.AlreadyActive:
			notify(g, ShortMessage, "MSG_FUSEBOX_ALREADY")
		}
	default:
		switch outcome {
		case access.Success:
			notify(g, ShortMessage, "MSG_UNLOCKED", point.Name())
		case access.DeniedMissingItem:
			if req := point.Requirement(); !req.IsNone() {
				notify(g, ShortMessage, "MSG_NEED_ITEM", ItemName(g.Catalog, req.Item))
			} else {
				notify(g, ShortMessage, "MSG_LOCKED", point.Name())
			}
		}
	}
}

func toggle(g *state.Game, point access.AccessPoint) {
	if point.ToggleOpenClosed() == access.Locked {
		notify(g, ShortMessage, "MSG_LOCKED", point.Name())
	}
}

// notify shows a transient prompt message and records it in the message log.
// Markup is left in place for the frontend to style.
func notify(g *state.Game, d time.Duration, key string, args ...interface{}) {
	msg := i18n.T(key, args...)
	g.Prompt.Show(msg, d)
	g.AddMessage(msg)
}
