package events

import (
	"github.com/google/uuid"

	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/input"
)

// InputPayload carries one translated key action.
type InputPayload struct {
	Action input.Action
}

// ResizePayload carries the new terminal geometry.
type ResizePayload struct {
	Width, Height int
}

// MovedPayload carries the newly occupied cell.
type MovedPayload struct {
	Cell grid.Coord
}

// RotatedPayload carries the new facing.
type RotatedPayload struct {
	Facing grid.Direction
}

// HeightChangedPayload carries the new entity height.
type HeightChangedPayload struct {
	Height float64
}

// LandedPayload carries where a jump or fall ended.
type LandedPayload struct {
	Cell   grid.Coord
	Height float64
}

// CollectedPayload identifies the gathered collectible.
type CollectedPayload struct {
	ID uuid.UUID
}

// ScoreChangedPayload carries the score total after a pickup.
type ScoreChangedPayload struct {
	Score int
}
