package world

// FOVRadius is the default field of view radius in the dark (Chebyshev distance).
const FOVRadius = 1

// CalculateFOV calculates which cells are visible from a given cell within a radius.
// Uses a Chebyshev square with Bresenham line-of-sight. Walls are visible but block
// anything behind them.
func CalculateFOV(grid *Grid, center *Cell, radius int) []*Cell {
	if center == nil || grid == nil {
		return nil
	}

	visible := []*Cell{center}
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			cell := grid.GetCell(center.Row+dr, center.Col+dc)
			if cell == nil {
				continue
			}
			if hasLineOfSight(grid, center.Row, center.Col, cell.Row, cell.Col) {
				visible = append(visible, cell)
			}
		}
	}
	return visible
}

// hasLineOfSight returns true if nothing but room cells lie strictly between the two points
func hasLineOfSight(grid *Grid, r0, c0, r1, c1 int) bool {
	clear := true
	walkLine(r0, c0, r1, c1, func(step, row, col int) bool {
		if row == r1 && col == c1 {
			return false
		}
		cell := grid.GetCell(row, col)
		if cell == nil || !cell.Room {
			clear = false
			return false
		}
		return true
	})
	return clear
}

// RevealFOV marks all cells within FOV of the center cell as discovered.
// Room cells within FOV are also marked as visited.
func RevealFOV(grid *Grid, center *Cell, radius int) {
	for _, cell := range CalculateFOV(grid, center, radius) {
		cell.Discovered = true
		if cell.Room {
			cell.Visited = true
		}
	}
}
