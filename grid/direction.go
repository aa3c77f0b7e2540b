package grid

// Direction is a cardinal facing, cyclic under quarter turns.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// TurnRight returns the facing after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft returns the facing after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Vector returns the unit grid step for the facing.
// North decreases Row, East increases Col.
func (d Direction) Vector() (dc, dr int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Angle returns the facing as degrees clockwise from North.
// External collaborators (camera, minimap) consume this on rotation.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Glyph returns the arrow rune used by terminal renderers.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}
