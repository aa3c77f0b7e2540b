package input

// Action is a logical input event, decoupled from physical keys.
// Grid scenes consume actions edge-triggered (one step per key event);
// the free-roam scene tracks directional actions as held state instead.
type Action uint8

const (
	None Action = iota

	// Directional movement
	Forward
	Backward
	Left
	Right

	// Quarter turns (facing-relative scenes only)
	TurnLeft
	TurnRight

	Jump

	// System
	Quit
)

func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case Jump:
		return "jump"
	case Quit:
		return "quit"
	}
	return "none"
}

// Directional reports whether the action requests horizontal movement.
func (a Action) Directional() bool {
	switch a {
	case Forward, Backward, Left, Right:
		return true
	}
	return false
}

// Turn reports whether the action is a quarter-turn command.
func (a Action) Turn() bool {
	return a == TurnLeft || a == TurnRight
}
