package motion

import (
	"math"

	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/input"
)

// Controller owns one entity's logical position, facing and vertical
// state machine. It consumes discrete input actions and a per-frame dt
// and produces a world-space position every frame.
//
// All methods run on the game loop goroutine; the controller holds no
// locks. Notifications flow one way through the event queue.
type Controller struct {
	cfg   Config
	queue *events.Queue

	cell   grid.Coord
	facing grid.Direction
	state  State

	// Rendered world position. X and Z chase the cell target through
	// exponential smoothing; height is resolved by the state machine.
	x, z   float64
	height float64

	// Free-movement logical position and the held direction vector,
	// only meaningful in MoveFree mode.
	freeX, freeZ float64
	moveX, moveZ float64
}

// NewController spawns an entity per the config: spawn cell (default
// center), facing North, Grounded at ground level, or Falling when
// SpawnHeight starts it above the floor.
func NewController(cfg Config, queue *events.Queue) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{cfg: cfg, queue: queue, facing: grid.North}

	c.cell = grid.Center(cfg.GridSize)
	if cfg.Spawn != nil {
		c.cell = *cfg.Spawn
	}

	c.x, c.z = c.targetFor(c.cell)
	c.freeX, c.freeZ = c.x, c.z

	ground := c.groundLevel(c.cell)
	c.height = ground
	if cfg.SpawnHeight > ground {
		c.height = cfg.SpawnHeight
		c.state = State{Kind: Falling}
	}
	return c
}

// Cell returns the occupied grid cell.
func (c *Controller) Cell() grid.Coord { return c.cell }

// Facing returns the current facing direction.
func (c *Controller) Facing() grid.Direction { return c.facing }

// State returns the active motion state.
func (c *Controller) State() State { return c.state }

// Position returns the rendered world position; y is the height.
func (c *Controller) Position() (x, y, z float64) {
	return c.x, c.height, c.z
}

// Height returns the current entity height.
func (c *Controller) Height() float64 { return c.height }

// Config returns the construction-time configuration.
func (c *Controller) Config() Config { return c.cfg }

// HandleDirection applies a discrete directional action.
//
// Silent rejection, no state change: while Falling, for out-of-range
// targets, and for blocked obstacle cells. Mid-jump movement stays
// permitted. Free mode ignores discrete steps; its movement flows
// through SetMoveVector.
func (c *Controller) HandleDirection(a input.Action) {
	if !a.Directional() || c.state.Kind == Falling || c.cfg.Mode == MoveFree {
		return
	}

	var dc, dr int
	switch c.cfg.Mode {
	case MoveAbsolute:
		switch a {
		case input.Forward:
			dr = -1
		case input.Backward:
			dr = 1
		case input.Left:
			dc = -1
		case input.Right:
			dc = 1
		}
	case MoveRelative:
		switch a {
		case input.Forward:
			dc, dr = c.facing.Vector()
		case input.Backward:
			dc, dr = c.facing.Vector()
			dc, dr = -dc, -dr
		default:
			// Left/Right have no meaning here; turning is a
			// separate command
			return
		}
	}

	candidate := c.cell.Add(dc, dr)
	if !candidate.In(c.cfg.GridSize) {
		return
	}
	if c.cfg.Obstacles.Blocks(candidate) {
		return
	}

	c.cell = candidate
	c.emit(events.EventMoved, &events.MovedPayload{Cell: candidate})
}

// HandleTurn rotates the facing a quarter turn. Position is unchanged;
// collaborators (camera, minimap) are notified of the new facing.
func (c *Controller) HandleTurn(a input.Action) {
	if c.cfg.Mode != MoveRelative || !a.Turn() {
		return
	}
	if a == input.TurnLeft {
		c.facing = c.facing.TurnLeft()
	} else {
		c.facing = c.facing.TurnRight()
	}
	c.emit(events.EventRotated, &events.RotatedPayload{Facing: c.facing})
}

// HandleJump starts a jump when Grounded within GroundEpsilon of the
// cell's ground level. Airborne requests are silently ignored.
func (c *Controller) HandleJump() {
	if c.state.Kind != Grounded {
		return
	}
	if math.Abs(c.height-c.groundLevel(c.cell)) > c.cfg.GroundEpsilon {
		return
	}
	c.state = State{Kind: Jumping, Velocity: c.cfg.JumpVelocity}
	c.emit(events.EventJumped, nil)
}

// SetMoveVector sets the held direction for free movement, normalized
// by the caller. Reset every frame from the held-key tracker.
func (c *Controller) SetMoveVector(dx, dz float64) {
	c.moveX, c.moveZ = dx, dz
}

// Advance runs one frame of motion. dt <= 0 leaves all state unchanged;
// larger hitch deltas are clamped to MaxDelta.
func (c *Controller) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > c.cfg.MaxDelta {
		dt = c.cfg.MaxDelta
	}

	if c.cfg.Mode == MoveFree {
		c.advanceFree(dt)
	} else {
		tx, tz := c.targetFor(c.cell)
		c.x += (tx - c.x) * c.cfg.SmoothingRate * dt
		c.z += (tz - c.z) * c.cfg.SmoothingRate * dt
	}

	// Ground level is re-derived from the current cell every frame;
	// stepping on or off a raised cell changes it between frames.
	ground := c.groundLevel(c.cell)
	prev := c.height

	switch c.state.Kind {
	case Jumping:
		c.height += c.state.Velocity * dt
		c.state.Velocity -= c.cfg.Gravity * dt
		if c.state.Velocity <= 0 && c.height <= ground {
			c.land(ground)
		}
	case Falling:
		c.state.Velocity += c.cfg.Gravity * dt
		c.height -= c.state.Velocity * dt
		if c.height <= ground {
			c.land(ground)
		}
	case Grounded:
		if c.height > ground {
			// Walked off a raised cell: drop from rest
			c.state = State{Kind: Falling}
		} else if c.height < ground {
			// Stepped onto a raised cell: instant snap, no
			// falling-up animation
			c.height = ground
		}
	}

	if c.height != prev {
		c.emit(events.EventHeightChanged, &events.HeightChangedPayload{Height: c.height})
	}
}

func (c *Controller) advanceFree(dt float64) {
	// Falling locks horizontal control, same as the grid modes
	if c.state.Kind != Falling && (c.moveX != 0 || c.moveZ != 0) {
		limit := float64(c.cfg.GridSize-1) * c.cfg.CellSize
		c.freeX = clamp(c.freeX+c.moveX*c.cfg.FreeSpeed*dt, 0, limit)
		c.freeZ = clamp(c.freeZ+c.moveZ*c.cfg.FreeSpeed*dt, 0, limit)
	}

	prev := c.cell
	c.cell = c.cellFor(c.freeX, c.freeZ)
	if c.cell != prev {
		c.emit(events.EventMoved, &events.MovedPayload{Cell: c.cell})
	}

	// Free position is the rendered position; no smoothing lag
	c.x, c.z = c.freeX, c.freeZ
}

func (c *Controller) land(ground float64) {
	c.height = ground
	c.state = State{Kind: Grounded}
	c.emit(events.EventLanded, &events.LandedPayload{Cell: c.cell, Height: ground})
}

func (c *Controller) groundLevel(cell grid.Coord) float64 {
	return c.cfg.Obstacles.GroundLevel(cell, c.cfg.BaseHeight, c.cfg.ObstacleHeight)
}

// targetFor maps a cell to its world-space horizontal target.
func (c *Controller) targetFor(cell grid.Coord) (x, z float64) {
	return float64(cell.Col) * c.cfg.CellSize, float64(cell.Row) * c.cfg.CellSize
}

func (c *Controller) cellFor(x, z float64) grid.Coord {
	col := int(math.Round(x / c.cfg.CellSize))
	row := int(math.Round(z / c.cfg.CellSize))
	return grid.Coord{
		Col: clampInt(col, 0, c.cfg.GridSize-1),
		Row: clampInt(row, 0, c.cfg.GridSize-1),
	}
}

func (c *Controller) emit(t events.EventType, payload any) {
	if c.queue != nil {
		c.queue.Emit(t, payload)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
