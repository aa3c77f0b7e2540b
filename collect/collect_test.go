package collect

import (
	"testing"

	"github.com/hexaturn/gridwalk/events"
)

func TestCollectOnce(t *testing.T) {
	q := events.NewQueue()
	a := New(1, 1)
	b := New(2, 2)
	s := NewSet(q, a, b)

	if !s.Collect(a.ID) {
		t.Fatal("first collection should succeed")
	}
	if s.Score() != 10 {
		t.Errorf("expected score 10, got %d", s.Score())
	}

	// The same id fired twice must not double-count
	if s.Collect(a.ID) {
		t.Error("duplicate collection must be a no-op")
	}
	if s.Score() != 10 {
		t.Errorf("duplicate collection changed score to %d", s.Score())
	}
	if s.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", s.Remaining())
	}

	evs := q.Consume()
	collected, scored := 0, 0
	for _, ev := range evs {
		switch ev.Type {
		case events.EventCollected:
			collected++
		case events.EventScoreChanged:
			scored++
		}
	}
	if collected != 1 || scored != 1 {
		t.Errorf("expected 1 collected + 1 score event, got %d + %d", collected, scored)
	}
}

func TestCollectNear(t *testing.T) {
	near := New(1.1, 1.0)
	far := New(5, 5)
	s := NewSet(nil, near, far)

	got := s.CollectNear(1, 1, 0.45)
	if got != 1 {
		t.Fatalf("expected 1 pickup, got %d", got)
	}
	if s.Remaining() != 1 {
		t.Errorf("expected far collectible to survive, remaining %d", s.Remaining())
	}
	if s.Score() != 10 {
		t.Errorf("expected score 10, got %d", s.Score())
	}

	// Standing still over the same spot picks up nothing new
	if got := s.CollectNear(1, 1, 0.45); got != 0 {
		t.Errorf("expected no repeat pickup, got %d", got)
	}
}

func TestActiveOrderStable(t *testing.T) {
	items := []Collectible{New(0, 0), New(1, 0), New(2, 0), New(3, 0)}
	s := NewSet(nil, items...)

	s.Collect(items[1].ID)
	active := s.Active()
	if len(active) != 3 {
		t.Fatalf("expected 3 active, got %d", len(active))
	}
	want := []Collectible{items[0], items[2], items[3]}
	for i := range want {
		if active[i].ID != want[i].ID {
			t.Errorf("slot %d: expected %s, got %s", i, want[i].ID, active[i].ID)
		}
	}
}
