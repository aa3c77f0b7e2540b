package render

import (
	"github.com/hexaturn/gridwalk/collect"
	"github.com/hexaturn/gridwalk/grid"
)

// View is the per-frame snapshot a scene hands to the renderer.
// The renderer draws it and nothing else; no game state is reachable
// from here.
type View struct {
	Title string

	GridSize int
	CellSize float64

	Obstacles []grid.Coord
	Steppable bool

	// Entity world position and vertical state
	EntityX, EntityZ float64
	Height           float64
	Cell             grid.Coord
	State            string

	// Facing is drawn instead of the entity glyph when ShowFacing is
	// set (facing-relative scenes)
	Facing     grid.Direction
	ShowFacing bool

	Collectibles []collect.Collectible
	ShowScore    bool
	Score        int

	Status string
}
