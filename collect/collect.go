// Package collect holds the collectible set and score of the sandbox
// scene. Single-threaded: the game loop owns the set; pickups happen
// synchronously during the frame.
package collect

import (
	"github.com/google/uuid"

	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/param"
)

// Collectible is one gatherable item at a fixed world position.
type Collectible struct {
	ID   uuid.UUID
	X, Z float64
}

// New places a collectible with a fresh identity.
func New(x, z float64) Collectible {
	return Collectible{ID: uuid.New(), X: x, Z: z}
}

// Set is the active collectible pool plus the score counter.
// Collected items leave the set and never resurrect.
type Set struct {
	queue  *events.Queue
	active map[uuid.UUID]Collectible
	order  []uuid.UUID // insertion order, for stable rendering
	score  int
}

func NewSet(queue *events.Queue, items ...Collectible) *Set {
	s := &Set{
		queue:  queue,
		active: make(map[uuid.UUID]Collectible, len(items)),
		order:  make([]uuid.UUID, 0, len(items)),
	}
	for _, it := range items {
		if _, dup := s.active[it.ID]; dup {
			continue
		}
		s.active[it.ID] = it
		s.order = append(s.order, it.ID)
	}
	return s
}

// Collect removes the collectible exactly once and awards the score.
// A duplicate event for the same id is a silent no-op, so double-fired
// interaction events cannot double-count.
func (s *Set) Collect(id uuid.UUID) bool {
	if _, ok := s.active[id]; !ok {
		return false
	}
	delete(s.active, id)
	s.score += param.CollectScore
	if s.queue != nil {
		s.queue.Emit(events.EventCollected, &events.CollectedPayload{ID: id})
		s.queue.Emit(events.EventScoreChanged, &events.ScoreChangedPayload{Score: s.score})
	}
	return true
}

// CollectNear gathers every active collectible within radius of (x, z)
// and returns how many were picked up. Called once per frame with the
// entity's position.
func (s *Set) CollectNear(x, z, radius float64) int {
	if radius <= 0 {
		radius = param.PickupRadius
	}
	rSq := radius * radius
	count := 0
	for _, id := range s.order {
		it, ok := s.active[id]
		if !ok {
			continue
		}
		dx, dz := it.X-x, it.Z-z
		if dx*dx+dz*dz <= rSq {
			if s.Collect(id) {
				count++
			}
		}
	}
	return count
}

// Active returns the live collectibles in placement order.
func (s *Set) Active() []Collectible {
	out := make([]Collectible, 0, len(s.active))
	for _, id := range s.order {
		if it, ok := s.active[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Score returns the accumulated score.
func (s *Set) Score() int { return s.score }

// Remaining returns the number of live collectibles.
func (s *Set) Remaining() int { return len(s.active) }
