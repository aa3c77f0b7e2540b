// Package maze generates the blocking obstacle layout for the maze
// scene: a recursive-backtracker carve with optional braiding to knock
// out dead ends.
package maze

import (
	"math/rand"
	"time"

	"github.com/hexaturn/gridwalk/grid"
)

type Config struct {
	// Size is the per-axis cell count of the target lattice.
	Size int

	// Seed fixes the layout; 0 draws one from the clock.
	Seed int64

	// Braiding: 0.0 keeps a perfect maze (spanning tree), 1.0 opens
	// every dead end into a cycle.
	Braiding float64
}

// Layout is a generated maze: wall cells plus guaranteed-open start and
// goal cells.
type Layout struct {
	Walls []grid.Coord
	Start grid.Coord
	End   grid.Coord
}

// Generate carves a maze into a Size x Size grid. Passage cells sit at
// odd indices; an even Size leaves its outermost row and column solid.
func Generate(cfg Config) Layout {
	size := cfg.Size
	if size < 3 {
		return Layout{Start: grid.Coord{}, End: grid.Coord{}}
	}

	// Carveable region must span odd indices
	odd := size
	if odd%2 == 0 {
		odd--
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	wall := make([][]bool, size)
	for r := range wall {
		wall[r] = make([]bool, size)
		for c := range wall[r] {
			wall[r][c] = true
		}
	}

	start := grid.Coord{Col: 1, Row: 1}
	end := grid.Coord{Col: odd - 2, Row: odd - 2}

	carve(wall, start, odd, rng)

	if cfg.Braiding > 0 {
		braid(wall, odd, cfg.Braiding, rng)
	}

	var walls []grid.Coord
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if wall[r][c] {
				walls = append(walls, grid.Coord{Col: c, Row: r})
			}
		}
	}
	return Layout{Walls: walls, Start: start, End: end}
}

var steps = [4][2]int{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// carve runs an iterative recursive backtracker over the odd lattice.
func carve(wall [][]bool, start grid.Coord, odd int, rng *rand.Rand) {
	wall[start.Row][start.Col] = false
	stack := []grid.Coord{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []grid.Coord
		for _, s := range steps {
			n := cur.Add(s[0], s[1])
			if n.Col >= 1 && n.Col < odd && n.Row >= 1 && n.Row < odd && wall[n.Row][n.Col] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		// Knock out the wall between the two passage cells
		wall[(cur.Row+n.Row)/2][(cur.Col+n.Col)/2] = false
		wall[n.Row][n.Col] = false
		stack = append(stack, n)
	}
}

// braid opens dead ends into cycles. A wall is only removed when the
// cell beyond it is already a passage, so no open plazas appear.
func braid(wall [][]bool, odd int, braiding float64, rng *rand.Rand) {
	for r := 1; r < odd; r += 2 {
		for c := 1; c < odd; c += 2 {
			if wall[r][c] || !deadEnd(wall, c, r) {
				continue
			}
			if rng.Float64() >= braiding {
				continue
			}
			var candidates []grid.Coord
			for _, s := range steps {
				mid := grid.Coord{Col: c + s[0]/2, Row: r + s[1]/2}
				far := grid.Coord{Col: c + s[0], Row: r + s[1]}
				if far.Col >= 1 && far.Col < odd && far.Row >= 1 && far.Row < odd &&
					wall[mid.Row][mid.Col] && !wall[far.Row][far.Col] {
					candidates = append(candidates, mid)
				}
			}
			if len(candidates) > 0 {
				pick := candidates[rng.Intn(len(candidates))]
				wall[pick.Row][pick.Col] = false
			}
		}
	}
}

// deadEnd reports whether the passage cell has three walled neighbors.
func deadEnd(wall [][]bool, c, r int) bool {
	open := 0
	for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nc, nr := c+d[0], r+d[1]
		if nr >= 0 && nr < len(wall) && nc >= 0 && nc < len(wall[nr]) && !wall[nr][nc] {
			open++
		}
	}
	return open <= 1
}
