package motion

import (
	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/param"
)

// Mode selects how directional input maps to movement.
type Mode uint8

const (
	// MoveAbsolute steps one cell along fixed grid axes.
	MoveAbsolute Mode = iota
	// MoveRelative steps along the current facing; left/right turn.
	MoveRelative
	// MoveFree integrates a held direction vector continuously.
	MoveFree
)

func (m Mode) String() string {
	switch m {
	case MoveRelative:
		return "relative"
	case MoveFree:
		return "free"
	}
	return "absolute"
}

// Config parameterizes one controller. Read-only after construction;
// the scene variants differ only in these values, not in code paths.
type Config struct {
	GridSize int
	CellSize float64
	Mode     Mode

	// Obstacles is the static occupied-cell set for the scene.
	// Its policy decides blocking versus steppable behavior.
	Obstacles *grid.ObstacleSet

	// Physical constants, cells and seconds.
	Gravity       float64
	JumpVelocity  float64
	SmoothingRate float64
	FreeSpeed     float64

	BaseHeight     float64
	ObstacleHeight float64

	// GroundEpsilon is the contact tolerance for accepting a jump.
	GroundEpsilon float64

	// MaxDelta clamps per-frame dt against frame hitches.
	MaxDelta float64

	// Spawn overrides the center-cell spawn when set.
	Spawn *grid.Coord

	// SpawnHeight starts the entity airborne when above ground level,
	// entering the scene in a Falling drop.
	SpawnHeight float64
}

func (c Config) withDefaults() Config {
	if c.GridSize <= 0 {
		c.GridSize = param.DefaultGridSize
	}
	if c.CellSize <= 0 {
		c.CellSize = param.DefaultCellSize
	}
	if c.Gravity <= 0 {
		c.Gravity = param.Gravity
	}
	if c.JumpVelocity <= 0 {
		c.JumpVelocity = param.JumpVelocity
	}
	if c.SmoothingRate <= 0 {
		c.SmoothingRate = param.SmoothingRate
	}
	if c.FreeSpeed <= 0 {
		c.FreeSpeed = param.FreeSpeed
	}
	if c.BaseHeight == 0 {
		c.BaseHeight = param.BaseHeight
	}
	if c.ObstacleHeight == 0 {
		c.ObstacleHeight = param.ObstacleHeight
	}
	if c.GroundEpsilon <= 0 {
		c.GroundEpsilon = param.GroundEpsilon
	}
	if c.MaxDelta <= 0 {
		c.MaxDelta = param.MaxFrameDelta
	}
	return c
}
