package world

import (
	"errors"
	"fmt"
)

// Grid represents the game map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int

	startCell   *Cell
	startFacing Direction
}

// NewGrid creates a new grid with the given dimensions. Every cell starts as a wall.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// StartFacing returns the direction the player faces on spawn
func (g *Grid) StartFacing() Direction {
	return g.startFacing
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// SetStartCell sets the starting cell and facing. Returns false if the cell is nil or not in this grid.
func (g *Grid) SetStartCell(cell *Cell, facing Direction) bool {
	if cell == nil || g.GetCell(cell.Row, cell.Col) != cell {
		return false
	}
	g.startCell = cell
	g.startFacing = facing
	return true
}

// MarkAsRoom marks the cell at the given position as walkable. Returns false if out of bounds.
func (g *Grid) MarkAsRoom(row, col int) bool {
	return g.MarkAsRoomWithName(row, col, "", "")
}

// MarkAsRoomWithName marks the cell as walkable and names the room it belongs to
func (g *Grid) MarkAsRoomWithName(row, col int, name, description string) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Room = true
	if name != "" {
		cell.Name = name
	}
	if description != "" {
		cell.Description = description
	}
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col, fmt.Sprintf("%v:%v", row, col), "")
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return errors.New("grid has invalid dimensions")
	}
	if g.startCell == nil {
		return errors.New("grid has no start cell")
	}
	if !g.startCell.Room {
		return errors.New("start cell is not marked as a room")
	}
	return nil
}
