package motion

import (
	"math"
	"testing"

	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/input"
)

const frameDt = 1.0 / 60

func newAbsolute(obstacles *grid.ObstacleSet) *Controller {
	return NewController(Config{Mode: MoveAbsolute, Obstacles: obstacles}, nil)
}

func settle(c *Controller, frames int) {
	for i := 0; i < frames; i++ {
		c.Advance(frameDt)
	}
}

func TestDirectionalMoveSingleAxis(t *testing.T) {
	tests := []struct {
		action input.Action
		dc, dr int
	}{
		{input.Forward, 0, -1},
		{input.Backward, 0, 1},
		{input.Left, -1, 0},
		{input.Right, 1, 0},
	}
	for _, tc := range tests {
		c := newAbsolute(nil)
		before := c.Cell()
		c.HandleDirection(tc.action)
		after := c.Cell()
		if after.Col-before.Col != tc.dc || after.Row-before.Row != tc.dr {
			t.Errorf("%s: expected delta (%d,%d), got (%d,%d)",
				tc.action, tc.dc, tc.dr, after.Col-before.Col, after.Row-before.Row)
		}
	}
}

func TestBoundsRejection(t *testing.T) {
	origin := grid.Coord{Col: 0, Row: 0}
	c := NewController(Config{Mode: MoveAbsolute, Spawn: &origin}, nil)

	c.HandleDirection(input.Forward) // would leave the north edge
	c.HandleDirection(input.Left)    // would leave the west edge
	if c.Cell() != origin {
		t.Errorf("out-of-range moves must not mutate the cell, got %+v", c.Cell())
	}

	corner := grid.Coord{Col: 9, Row: 9}
	c = NewController(Config{Mode: MoveAbsolute, Spawn: &corner}, nil)
	c.HandleDirection(input.Backward)
	c.HandleDirection(input.Right)
	if c.Cell() != corner {
		t.Errorf("out-of-range moves must not mutate the cell, got %+v", c.Cell())
	}
}

func TestBlockingObstacleRejection(t *testing.T) {
	walls := grid.NewObstacleSet(grid.Blocking, grid.Coord{Col: 5, Row: 4})
	c := newAbsolute(walls) // spawns at (5,5)

	c.HandleDirection(input.Forward)
	if c.Cell() != (grid.Coord{Col: 5, Row: 5}) {
		t.Errorf("move into a blocking obstacle must be rejected, got %+v", c.Cell())
	}

	c.HandleDirection(input.Right)
	if c.Cell() != (grid.Coord{Col: 6, Row: 5}) {
		t.Errorf("move to a free cell should be accepted, got %+v", c.Cell())
	}
}

func TestSteppableObstacleNotRejected(t *testing.T) {
	raised := grid.NewObstacleSet(grid.Steppable, grid.Coord{Col: 5, Row: 4})
	c := newAbsolute(raised)

	c.HandleDirection(input.Forward)
	if c.Cell() != (grid.Coord{Col: 5, Row: 4}) {
		t.Errorf("steppable obstacle must not reject entry, got %+v", c.Cell())
	}
}

func TestAdvanceZeroDeltaIsNoop(t *testing.T) {
	c := newAbsolute(nil)
	c.HandleDirection(input.Right)
	c.HandleJump()

	x0, y0, z0 := c.Position()
	cell0, state0 := c.Cell(), c.State()

	c.Advance(0)
	c.Advance(-frameDt)

	x1, y1, z1 := c.Position()
	if x0 != x1 || y0 != y1 || z0 != z1 {
		t.Errorf("position changed under dt<=0: (%v,%v,%v) -> (%v,%v,%v)", x0, y0, z0, x1, y1, z1)
	}
	if c.Cell() != cell0 || c.State() != state0 {
		t.Error("cell or state changed under dt<=0")
	}
}

func TestSmoothingConvergence(t *testing.T) {
	c := newAbsolute(nil)
	c.HandleDirection(input.Right)
	target := float64(c.Cell().Col) * c.Config().CellSize

	prevDist := math.Abs(func() float64 { x, _, _ := c.Position(); return x }() - target)
	for i := 0; i < 120; i++ {
		c.Advance(frameDt)
		x, _, _ := c.Position()
		dist := math.Abs(x - target)
		if dist > prevDist+1e-12 {
			t.Fatalf("frame %d: smoothing diverged, %v > %v", i, dist, prevDist)
		}
		prevDist = dist
	}
	if prevDist > 0.01 {
		t.Errorf("expected convergence within 120 frames, still %v away", prevDist)
	}
}

func TestJumpArc(t *testing.T) {
	c := newAbsolute(nil)
	ground := c.Height()
	if ground != 0.5 {
		t.Fatalf("expected base ground level 0.5, got %v", ground)
	}

	c.HandleJump()
	if c.State().Kind != Jumping {
		t.Fatal("expected jumping state after jump input")
	}

	peak := ground
	rose := false
	frames := 0
	for c.State().Kind != Grounded {
		c.Advance(frameDt)
		frames++
		if h := c.Height(); h > peak {
			peak = h
			rose = true
		}
		if frames > 200 {
			t.Fatal("jump did not land within 200 frames")
		}
	}

	if !rose {
		t.Error("height never rose during the jump")
	}
	if c.Height() != ground {
		t.Errorf("expected landing exactly at %v, got %v", ground, c.Height())
	}
	// Analytic apex: v^2 / 2g = 64/40 = 1.6 above ground
	apex := peak - ground
	if math.Abs(apex-1.6) > 0.1 {
		t.Errorf("expected apex ~1.6 above ground, got %v", apex)
	}
	t.Logf("jump apex %.3f above ground after %d frames", apex, frames)
}

func TestJumpRejectedWhileAirborne(t *testing.T) {
	c := newAbsolute(nil)
	c.HandleJump()
	settle(c, 5)

	mid := c.State()
	if mid.Kind != Jumping {
		t.Fatal("expected to still be mid-jump")
	}
	c.HandleJump()
	if c.State() != mid {
		t.Error("jump input while airborne must not reset the arc")
	}
}

func TestStepOntoObstacleSnapsUp(t *testing.T) {
	raised := grid.NewObstacleSet(grid.Steppable, grid.Coord{Col: 6, Row: 5})
	c := newAbsolute(raised)
	settle(c, 10)

	c.HandleDirection(input.Right)
	c.Advance(frameDt)

	if c.Height() != 1.0 {
		t.Errorf("expected instant snap to 1.0, got %v", c.Height())
	}
	if c.State().Kind != Grounded {
		t.Errorf("snap up must not pass through falling, got %s", c.State().Kind)
	}
}

func TestWalkOffObstacleFalls(t *testing.T) {
	spawn := grid.Coord{Col: 6, Row: 5}
	raised := grid.NewObstacleSet(grid.Steppable, spawn)
	c := NewController(Config{Mode: MoveAbsolute, Obstacles: raised, Spawn: &spawn}, nil)

	if c.Height() != 1.0 {
		t.Fatalf("expected spawn atop obstacle at 1.0, got %v", c.Height())
	}

	c.HandleDirection(input.Left)
	c.Advance(frameDt)
	if c.State().Kind != Falling {
		t.Fatalf("expected falling after walking off, got %s", c.State().Kind)
	}

	frames := 0
	for c.State().Kind != Grounded {
		c.Advance(frameDt)
		if frames++; frames > 200 {
			t.Fatal("fall did not land within 200 frames")
		}
	}
	if c.Height() != 0.5 {
		t.Errorf("expected landing at base 0.5, got %v", c.Height())
	}
}

func TestMovementLockedWhileFalling(t *testing.T) {
	spawn := grid.Coord{Col: 5, Row: 5}
	c := NewController(Config{Mode: MoveAbsolute, Spawn: &spawn, SpawnHeight: 3}, nil)
	if c.State().Kind != Falling {
		t.Fatal("expected airborne spawn to start falling")
	}

	c.HandleDirection(input.Right)
	if c.Cell() != spawn {
		t.Errorf("movement while falling must be ignored, got %+v", c.Cell())
	}
}

func TestMovementAllowedWhileJumping(t *testing.T) {
	c := newAbsolute(nil)
	c.HandleJump()
	settle(c, 3)
	if c.State().Kind != Jumping {
		t.Fatal("expected to be mid-jump")
	}

	before := c.Cell()
	c.HandleDirection(input.Right)
	if c.Cell() == before {
		t.Error("mid-jump horizontal control must stay live")
	}
}

func TestTurnSequence(t *testing.T) {
	c := NewController(Config{Mode: MoveRelative}, nil)
	cell := c.Cell()

	want := []grid.Direction{grid.East, grid.South, grid.West, grid.North}
	for i, expected := range want {
		c.HandleTurn(input.TurnRight)
		if c.Facing() != expected {
			t.Errorf("right turn %d: expected %s, got %s", i+1, expected, c.Facing())
		}
	}
	want = []grid.Direction{grid.West, grid.South, grid.East, grid.North}
	for i, expected := range want {
		c.HandleTurn(input.TurnLeft)
		if c.Facing() != expected {
			t.Errorf("left turn %d: expected %s, got %s", i+1, expected, c.Facing())
		}
	}
	if c.Cell() != cell {
		t.Error("turns must never change position")
	}
}

func TestRelativeMovementFollowsFacing(t *testing.T) {
	c := NewController(Config{Mode: MoveRelative}, nil)
	start := c.Cell()

	c.HandleTurn(input.TurnRight) // now facing east
	c.HandleDirection(input.Forward)
	if c.Cell() != start.Add(1, 0) {
		t.Errorf("forward while facing east: expected %+v, got %+v", start.Add(1, 0), c.Cell())
	}

	c.HandleDirection(input.Backward)
	if c.Cell() != start {
		t.Errorf("backward while facing east: expected %+v, got %+v", start, c.Cell())
	}

	// Absolute-style strafe actions have no meaning in relative mode
	c.HandleDirection(input.Left)
	if c.Cell() != start {
		t.Errorf("left in relative mode must be ignored, got %+v", c.Cell())
	}
}

func TestFreeMovement(t *testing.T) {
	c := NewController(Config{Mode: MoveFree}, nil)
	x0, _, z0 := c.Position()

	c.SetMoveVector(1, 0)
	settle(c, 30)
	x1, _, z1 := c.Position()
	if x1 <= x0 {
		t.Errorf("expected eastward drift, x %v -> %v", x0, x1)
	}
	if z1 != z0 {
		t.Errorf("expected no z drift, z %v -> %v", z0, z1)
	}

	// World edge clamps the position
	c.SetMoveVector(1, 0)
	settle(c, 60*60)
	x2, _, _ := c.Position()
	limit := float64(c.Config().GridSize-1) * c.Config().CellSize
	if x2 != limit {
		t.Errorf("expected clamp at %v, got %v", limit, x2)
	}

	// Discrete steps are ignored in free mode
	cell := c.Cell()
	c.HandleDirection(input.Right)
	if c.Cell() != cell {
		t.Errorf("discrete step in free mode must be ignored")
	}
}

func TestFreeMovementDerivesCell(t *testing.T) {
	q := events.NewQueue()
	c := NewController(Config{Mode: MoveFree}, q)
	q.Consume()

	c.SetMoveVector(1, 0)
	moved := false
	for i := 0; i < 120 && !moved; i++ {
		c.Advance(frameDt)
		for _, ev := range q.Consume() {
			if ev.Type == events.EventMoved {
				moved = true
			}
		}
	}
	if !moved {
		t.Error("expected a moved notification once the derived cell changed")
	}
}

func TestSpawnFallingLands(t *testing.T) {
	c := NewController(Config{Mode: MoveAbsolute, SpawnHeight: 3}, nil)
	if c.State().Kind != Falling {
		t.Fatalf("expected falling spawn, got %s", c.State().Kind)
	}

	frames := 0
	for c.State().Kind != Grounded {
		c.Advance(frameDt)
		if frames++; frames > 300 {
			t.Fatal("spawn drop did not land within 300 frames")
		}
	}
	if c.Height() != 0.5 {
		t.Errorf("expected landing at 0.5, got %v", c.Height())
	}
}

func TestJumpRequiresGroundContact(t *testing.T) {
	c := NewController(Config{Mode: MoveAbsolute, SpawnHeight: 3}, nil)
	c.HandleJump()
	if c.State().Kind == Jumping {
		t.Error("jump must be rejected while airborne")
	}
}

func TestNotifications(t *testing.T) {
	q := events.NewQueue()
	raised := grid.NewObstacleSet(grid.Steppable, grid.Coord{Col: 6, Row: 5})
	c := NewController(Config{Mode: MoveAbsolute, Obstacles: raised}, q)

	// Jump from the bare spawn cell, then steer mid-air onto the
	// raised cell; the landing height reflects the new floor.
	c.HandleJump()
	c.HandleDirection(input.Right)

	seen := make(map[events.EventType]int)
	for _, ev := range q.Consume() {
		seen[ev.Type]++
	}
	if seen[events.EventMoved] != 1 {
		t.Errorf("expected one moved event, got %d", seen[events.EventMoved])
	}
	if seen[events.EventJumped] != 1 {
		t.Errorf("expected one jumped event, got %d", seen[events.EventJumped])
	}

	// Ride the jump out and expect a landing notification
	for i := 0; i < 200 && c.State().Kind != Grounded; i++ {
		c.Advance(frameDt)
	}
	landed := false
	for _, ev := range q.Consume() {
		if ev.Type == events.EventLanded {
			landed = true
			p := ev.Payload.(*events.LandedPayload)
			if p.Height != 1.0 {
				t.Errorf("expected landing height 1.0 atop the obstacle, got %v", p.Height)
			}
		}
	}
	if !landed {
		t.Error("expected a landed notification")
	}
}
