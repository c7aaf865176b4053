// Package world attaches scene objects to engine grid cells.
package world

import (
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
)

// GameCellData holds game-specific entity references for a cell.
// This is stored in the engine Cell's GameData field.
type GameCellData struct {
	Access access.AccessPoint // Door, drawer, card reader or fusebox in this cell (if any)
	Pickup *entities.Pickup   // Item the player can look at and take (if any)
	Zone   *entities.InfoZone // Info message shown on entry (if any)
	Light  *entities.Light    // Ceiling light fixture (if any)
	Scare  *entities.Scare    // Scare fired when the player steps here (if any)
	Figure *entities.Scare    // Scare whose figure stands here (if any)
	Reach  int                // Max interaction distance for Access; 0 means the game's pickup range
}

// InitGameData initializes game data for a cell if not already set
func InitGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{}
	}
	return cell.GameData.(*GameCellData)
}

// GetGameData retrieves game data from a cell, initializing if needed
func GetGameData(cell *world.Cell) *GameCellData {
	return InitGameData(cell)
}

// HasAccessPoint returns true if this cell contains any lockable object
func HasAccessPoint(cell *world.Cell) bool {
	return cell != nil && GetGameData(cell).Access != nil
}

// DoorAt returns the door in this cell, or nil. Drawers are not doors.
func DoorAt(cell *world.Cell) *access.Door {
	if cell == nil {
		return nil
	}
	d, _ := GetGameData(cell).Access.(*access.Door)
	return d
}

// HasLockedDoor returns true if this cell has a locked door
func HasLockedDoor(cell *world.Cell) bool {
	d := DoorAt(cell)
	return d != nil && d.IsLocked()
}

// HasClosedDoor returns true if this cell has a door the player cannot pass
func HasClosedDoor(cell *world.Cell) bool {
	d := DoorAt(cell)
	return d != nil && !d.IsPassable()
}

// HasPickup returns true if this cell has an uncollected pickup
func HasPickup(cell *world.Cell) bool {
	return cell != nil && GetGameData(cell).Pickup.Available()
}

// HasZone returns true if this cell triggers an info message
func HasZone(cell *world.Cell) bool {
	return cell != nil && GetGameData(cell).Zone != nil
}

// HasFigure returns true if a scare figure is still standing on this cell
func HasFigure(cell *world.Cell) bool {
	if cell == nil {
		return false
	}
	f := GetGameData(cell).Figure
	return f != nil && f.FigureVisible()
}

// IsInteractable returns true if the probe ray should stop at this cell
func IsInteractable(cell *world.Cell) bool {
	if cell == nil {
		return false
	}
	data := GetGameData(cell)
	// open doors stop the ray too, so they can be closed again
	return data.Pickup.Available() || data.Access != nil
}
