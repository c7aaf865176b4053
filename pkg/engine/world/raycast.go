package world

// Hit describes the first cell a ray stopped on
type Hit struct {
	Cell     *Cell
	Distance int  // steps from the origin, 1 for an adjacent cell
	Wall     bool // true if the ray stopped on a non-room cell
}

// Raycaster answers "what is the first thing along this line" queries.
// Implementations decide which cells stop a ray.
type Raycaster interface {
	Cast(origin *Cell, dir Direction, maxDistance int) (Hit, bool)
}

// GridRaycaster casts rays over a Grid. Walls always stop a ray; Solid
// additionally stops it on room cells (for example cells holding an object).
type GridRaycaster struct {
	Grid  *Grid
	Solid func(cell *Cell) bool
}

// Cast walks from origin along dir for at most maxDistance cells and returns the
// first stopping cell. The origin itself is never a hit.
func (r GridRaycaster) Cast(origin *Cell, dir Direction, maxDistance int) (Hit, bool) {
	if r.Grid == nil || origin == nil || !dir.IsValid() || maxDistance <= 0 {
		return Hit{}, false
	}
	dr, dc := dir.Delta()
	return r.CastTo(origin, origin.Row+dr*maxDistance, origin.Col+dc*maxDistance, maxDistance)
}

// CastTo walks the Bresenham line from origin towards (row, col).
func (r GridRaycaster) CastTo(origin *Cell, row, col, maxDistance int) (Hit, bool) {
	if r.Grid == nil || origin == nil {
		return Hit{}, false
	}

	var hit Hit
	found := false
	walkLine(origin.Row, origin.Col, row, col, func(step, cr, cc int) bool {
		if step > maxDistance {
			return false
		}
		cell := r.Grid.GetCell(cr, cc)
		if cell == nil {
			return false
		}
		if !cell.Room {
			hit = Hit{Cell: cell, Distance: step, Wall: true}
			found = true
			return false
		}
		if r.Solid != nil && r.Solid(cell) {
			hit = Hit{Cell: cell, Distance: step}
			found = true
			return false
		}
		return true
	})
	return hit, found
}

// walkLine visits every cell on the Bresenham line from (r0,c0) to (r1,c1),
// excluding the start. visit receives the 1-based step index and stops the
// walk by returning false.
func walkLine(r0, c0, r1, c1 int, visit func(step, row, col int) bool) {
	dr := r1 - r0
	dc := c1 - c0
	if dr == 0 && dc == 0 {
		return
	}

	absDr, absDc := abs(dr), abs(dc)
	stepR, stepC := sign(dr), sign(dc)
	r, c := r0, c0
	step := 0

	if absDr >= absDc {
		// Step along rows
		err := 2*absDc - absDr
		for r != r1 {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc
			step++
			if !visit(step, r, c) {
				return
			}
		}
		return
	}

	// Step along cols
	err := 2*absDr - absDc
	for c != c1 {
		c += stepC
		if err > 0 {
			r += stepR
			err -= 2 * absDc
		}
		err += 2 * absDr
		step++
		if !visit(step, r, c) {
			return
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
