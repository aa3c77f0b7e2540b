package grid

// Coord identifies a discrete cell on the movement lattice.
// Value type: a move replaces the whole coordinate, never mutates it.
type Coord struct {
	Col, Row int
}

// In reports whether both axes lie within [0, size).
func (c Coord) In(size int) bool {
	return c.Col >= 0 && c.Col < size && c.Row >= 0 && c.Row < size
}

// Add returns the cell offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Step returns the neighboring cell one unit toward d.
func (c Coord) Step(d Direction) Coord {
	dc, dr := d.Vector()
	return c.Add(dc, dr)
}

// Center returns the centermost cell of a size x size lattice.
func Center(size int) Coord {
	return Coord{Col: size / 2, Row: size / 2}
}
