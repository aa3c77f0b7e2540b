package param

import "time"

// Gameplay defaults.
const (
	// DefaultGridSize is the per-axis cell count of the movement lattice.
	DefaultGridSize = 10

	// DefaultCellSize scales a cell coordinate to world units.
	DefaultCellSize = 1.0

	// CollectScore is awarded per unique collectible pickup.
	CollectScore = 10

	// PickupRadius is the horizontal distance within which a collectible
	// is gathered during a frame.
	PickupRadius = 0.45
)

// Engine tunables.
const (
	// TickRate is the target frame rate of the game loop.
	TickRate = 60

	// HoldTimeout expires a held directional action when no key repeat
	// arrives. Terminals deliver no key-up events, so held state decays.
	HoldTimeout = 150 * time.Millisecond
)
