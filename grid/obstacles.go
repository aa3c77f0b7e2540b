package grid

// Policy decides how an occupied cell interacts with movement.
type Policy uint8

const (
	// Blocking rejects movement into an occupied cell.
	Blocking Policy = iota
	// Steppable allows movement into an occupied cell and raises its
	// ground level while the entity stands on it.
	Steppable
)

func (p Policy) String() string {
	if p == Steppable {
		return "steppable"
	}
	return "blocking"
}

// ObstacleSet is the static occupied-cell set for one scene.
// Fixed at construction, never mutated at runtime.
type ObstacleSet struct {
	policy Policy
	cells  map[Coord]struct{}
}

// NewObstacleSet builds the set with the given passability policy.
func NewObstacleSet(policy Policy, cells ...Coord) *ObstacleSet {
	s := &ObstacleSet{
		policy: policy,
		cells:  make(map[Coord]struct{}, len(cells)),
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is occupied by an obstacle.
func (s *ObstacleSet) Contains(c Coord) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// Blocks reports whether movement into c must be rejected.
func (s *ObstacleSet) Blocks(c Coord) bool {
	return s != nil && s.policy == Blocking && s.Contains(c)
}

// Policy returns the passability policy of the set.
func (s *ObstacleSet) Policy() Policy {
	if s == nil {
		return Blocking
	}
	return s.policy
}

// Len returns the number of occupied cells.
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns a copy of the occupied cells, for renderers.
func (s *ObstacleSet) Cells() []Coord {
	if s == nil {
		return nil
	}
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// GroundLevel returns the rest height for an entity standing on c.
// Steppable obstacles raise the floor; the rule is evaluated fresh from
// the current cell every frame, never cached.
func (s *ObstacleSet) GroundLevel(c Coord, base, raised float64) float64 {
	if s != nil && s.policy == Steppable && s.Contains(c) {
		return raised
	}
	return base
}
