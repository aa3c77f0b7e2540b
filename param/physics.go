package param

// Physics defaults shared by every scene unless its configuration
// overrides them. Units are cells and seconds throughout.
const (
	// Gravity applies to both jump arcs and free falls.
	// Observed variants used 8-20; 20 is canonical here so a jump and a
	// walk-off fall decelerate identically.
	Gravity = 20.0

	// JumpVelocity is the initial upward speed of a jump.
	JumpVelocity = 8.0

	// SmoothingRate is the exponential-decay constant chasing the
	// logical cell position. Rendered position converges, never teleports.
	SmoothingRate = 5.0

	// BaseHeight is the rest height over a bare floor cell.
	BaseHeight = 0.5

	// ObstacleHeight is the rest height atop a steppable obstacle.
	ObstacleHeight = 1.0

	// GroundEpsilon is the contact tolerance for accepting a jump.
	GroundEpsilon = 0.1

	// MaxFrameDelta clamps dt after frame hitches so integration
	// cannot diverge or tunnel through the floor.
	MaxFrameDelta = 0.1

	// FreeSpeed is the horizontal speed of free-roam movement.
	FreeSpeed = 4.0
)
