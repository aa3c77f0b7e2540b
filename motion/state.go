package motion

// StateKind discriminates the vertical motion state machine.
// Exactly one state is active per entity per frame.
type StateKind uint8

const (
	// Grounded rests the entity at the ground level of its cell.
	Grounded StateKind = iota
	// Falling descends under gravity after walking off a raised cell.
	// Horizontal input is locked while falling.
	Falling
	// Jumping follows a jump arc. Horizontal input stays live so a jump
	// can carry onto a neighboring cell.
	Jumping
)

func (k StateKind) String() string {
	switch k {
	case Falling:
		return "falling"
	case Jumping:
		return "jumping"
	}
	return "grounded"
}

// State pairs the active kind with its vertical speed: upward velocity
// while Jumping, accumulated downward speed while Falling, zero while
// Grounded.
type State struct {
	Kind     StateKind
	Velocity float64
}
