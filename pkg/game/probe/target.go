package probe

import (
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	gameworld "blackout/pkg/game/world"
)

// Kind says what a target is
type Kind int

const (
	KindNone Kind = iota
	KindAccess
	KindPickup
)

// Target is the single thing under the crosshair this tick
type Target struct {
	Kind     Kind
	Cell     *world.Cell
	Distance int
	Access   access.AccessPoint
	Pickup   *entities.Pickup
}

// NewRaycaster returns a caster that stops on walls and on any cell holding
// something the player can interact with.
func NewRaycaster(grid *world.Grid) world.GridRaycaster {
	return world.GridRaycaster{Grid: grid, Solid: gameworld.IsInteractable}
}

// Resolve casts from origin along facing and returns the first target hit.
// Walls are targets only when an access point is mounted on them.
func Resolve(caster world.Raycaster, origin *world.Cell, facing world.Direction, maxDistance int) Target {
	if caster == nil {
		return Target{}
	}
	hit, ok := caster.Cast(origin, facing, maxDistance)
	if !ok || hit.Cell == nil {
		return Target{}
	}
	data := gameworld.GetGameData(hit.Cell)
	t := Target{Cell: hit.Cell, Distance: hit.Distance}
	switch {
	case data.Pickup.Available():
		t.Kind = KindPickup
		t.Pickup = data.Pickup
	case data.Access != nil:
		if data.Reach > 0 && hit.Distance > data.Reach {
			return Target{}
		}
		t.Kind = KindAccess
		t.Access = data.Access
	default:
		return Target{}
	}
	return t
}
