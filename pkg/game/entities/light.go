package entities

// Light is a ceiling light bound to a cell. It lights every room cell within
// Radius when on.
type Light struct {
	ID     string
	Row    int
	Col    int
	Radius int
	On     bool

	cuts int
}

// NewLight creates a light at row, col
func NewLight(id string, row, col, radius int, on bool) *Light {
	return &Light{ID: id, Row: row, Col: col, Radius: radius, On: on}
}

// SetOn switches the light
func (l *Light) SetOn(on bool) {
	l.On = on
}

// Cut blacks the light out until a matching Restore, whatever its switch
// says. Cuts nest.
func (l *Light) Cut() {
	l.cuts++
}

// Restore ends one Cut
func (l *Light) Restore() {
	if l.cuts > 0 {
		l.cuts--
	}
}

// Lit reports whether the light is switched on and not cut out
func (l *Light) Lit() bool {
	return l.On && l.cuts == 0
}

// Covers returns true if the cell at row, col is inside the light's radius
func (l *Light) Covers(row, col int) bool {
	if !l.Lit() {
		return false
	}
	dr, dc := row-l.Row, col-l.Col
	return dr*dr+dc*dc <= l.Radius*l.Radius
}
