// Package scene loads and validates per-scene configuration: lattice
// geometry, movement mode, obstacle layout, physics overrides and
// collectible placement. Configuration is supplied once at construction
// and never changed at runtime.
package scene

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexaturn/gridwalk/collect"
	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/maze"
	"github.com/hexaturn/gridwalk/motion"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Cell is a grid coordinate in scene files.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Point is a world-space position in scene files.
type Point struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Physics overrides; zero values fall back to the shared defaults.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	SmoothingRate float64 `yaml:"smoothing_rate"`
	FreeSpeed     float64 `yaml:"free_speed"`
}

// MazeSpec asks for a generated obstacle layout instead of (or on top
// of) an explicit obstacle list.
type MazeSpec struct {
	Seed     int64   `yaml:"seed"`
	Braiding float64 `yaml:"braiding"`
}

// Scene is one demo scene definition.
type Scene struct {
	Name           string    `yaml:"name"`
	GridSize       int       `yaml:"grid_size"`
	CellSize       float64   `yaml:"cell_size"`
	Movement       string    `yaml:"movement"`        // absolute | relative | free
	ObstaclePolicy string    `yaml:"obstacle_policy"` // blocking | steppable
	Physics        Physics   `yaml:"physics"`
	Spawn          *Cell     `yaml:"spawn,omitempty"`
	SpawnHeight    float64   `yaml:"spawn_height"`
	Obstacles      []Cell    `yaml:"obstacles"`
	Maze           *MazeSpec `yaml:"maze,omitempty"`
	Collectibles   []Point   `yaml:"collectibles"`
}

// Parse decodes a scene document without validating it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Default returns the embedded scene shipped under the given name.
func Default(name string) (*Scene, error) {
	data, err := defaultsFS.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: no embedded scene %q", name)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks structural consistency. Physics values are not range
// checked here; zero overrides simply fall back to defaults.
func (s *Scene) Validate() error {
	if s.GridSize < 2 {
		return fmt.Errorf("scene %q: grid_size %d below minimum 2", s.Name, s.GridSize)
	}
	if s.CellSize < 0 {
		return fmt.Errorf("scene %q: negative cell_size", s.Name)
	}
	if _, err := s.mode(); err != nil {
		return err
	}
	if _, err := s.policy(); err != nil {
		return err
	}
	if s.Maze != nil && s.GridSize < 3 {
		return fmt.Errorf("scene %q: maze needs grid_size >= 3", s.Name)
	}
	for _, c := range s.Obstacles {
		if !(grid.Coord{Col: c.Col, Row: c.Row}).In(s.GridSize) {
			return fmt.Errorf("scene %q: obstacle (%d,%d) outside grid", s.Name, c.Col, c.Row)
		}
	}
	if s.Spawn != nil {
		if !(grid.Coord{Col: s.Spawn.Col, Row: s.Spawn.Row}).In(s.GridSize) {
			return fmt.Errorf("scene %q: spawn (%d,%d) outside grid", s.Name, s.Spawn.Col, s.Spawn.Row)
		}
	}
	return nil
}

func (s *Scene) mode() (motion.Mode, error) {
	switch s.Movement {
	case "", "absolute":
		return motion.MoveAbsolute, nil
	case "relative":
		return motion.MoveRelative, nil
	case "free":
		return motion.MoveFree, nil
	}
	return 0, fmt.Errorf("scene %q: unknown movement %q", s.Name, s.Movement)
}

func (s *Scene) policy() (grid.Policy, error) {
	switch s.ObstaclePolicy {
	case "", "blocking":
		return grid.Blocking, nil
	case "steppable":
		return grid.Steppable, nil
	}
	return 0, fmt.Errorf("scene %q: unknown obstacle_policy %q", s.Name, s.ObstaclePolicy)
}

// Build resolves the scene into a controller configuration and the
// collectible placements. Maze scenes generate their walls here; when
// no spawn is given, the entity starts at the maze entrance.
func (s *Scene) Build() (motion.Config, []collect.Collectible, error) {
	if err := s.Validate(); err != nil {
		return motion.Config{}, nil, err
	}
	mode, _ := s.mode()
	policy, _ := s.policy()

	cells := make([]grid.Coord, 0, len(s.Obstacles))
	for _, c := range s.Obstacles {
		cells = append(cells, grid.Coord{Col: c.Col, Row: c.Row})
	}

	spawn := s.Spawn
	if s.Maze != nil {
		layout := maze.Generate(maze.Config{
			Size:     s.GridSize,
			Seed:     s.Maze.Seed,
			Braiding: s.Maze.Braiding,
		})
		cells = append(cells, layout.Walls...)
		if spawn == nil {
			spawn = &Cell{Col: layout.Start.Col, Row: layout.Start.Row}
		}
	}

	cfg := motion.Config{
		GridSize:      s.GridSize,
		CellSize:      s.CellSize,
		Mode:          mode,
		Obstacles:     grid.NewObstacleSet(policy, cells...),
		Gravity:       s.Physics.Gravity,
		JumpVelocity:  s.Physics.JumpVelocity,
		SmoothingRate: s.Physics.SmoothingRate,
		FreeSpeed:     s.Physics.FreeSpeed,
		SpawnHeight:   s.SpawnHeight,
	}
	if spawn != nil {
		cfg.Spawn = &grid.Coord{Col: spawn.Col, Row: spawn.Row}
	}

	items := make([]collect.Collectible, 0, len(s.Collectibles))
	for _, p := range s.Collectibles {
		items = append(items, collect.New(p.X, p.Z))
	}
	return cfg, items, nil
}
