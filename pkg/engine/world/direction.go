package world

import "strings"

// Direction represents a cardinal facing on the grid
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// ParseDirection parses a direction name, case-insensitively.
// Returns false for anything that is not a cardinal direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	}
	return North, false
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return d.rotate(2)
}

// Left returns the direction after a quarter turn counter-clockwise
func (d Direction) Left() Direction {
	return d.rotate(3)
}

// Right returns the direction after a quarter turn clockwise
func (d Direction) Right() Direction {
	return d.rotate(1)
}

func (d Direction) rotate(quarters int) Direction {
	if !d.IsValid() {
		return d
	}
	return Direction((int(d) + quarters) % 4)
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
