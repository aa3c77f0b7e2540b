package input

import (
	"math"
	"time"

	"github.com/hexaturn/gridwalk/param"
)

// Held tracks level-triggered directional state for free-roam movement.
//
// Terminals deliver key repeats but no key-up events, so a direction
// counts as held while repeats keep arriving and expires after
// param.HoldTimeout of silence. Owned by the game loop goroutine.
type Held struct {
	pressed [4]time.Time // indexed by Forward..Right - Forward
	timeout time.Duration
}

func NewHeld() *Held {
	return &Held{timeout: param.HoldTimeout}
}

// Press records a directional action at time now. Non-directional
// actions are ignored.
func (h *Held) Press(a Action, now time.Time) {
	if !a.Directional() {
		return
	}
	h.pressed[a-Forward] = now
}

// Active reports whether the action is currently held.
func (h *Held) Active(a Action, now time.Time) bool {
	if !a.Directional() {
		return false
	}
	t := h.pressed[a-Forward]
	return !t.IsZero() && now.Sub(t) < h.timeout
}

// Vector returns the normalized movement direction implied by the held
// actions: +dx east, +dz south. Opposite holds cancel; diagonals are
// unit length so diagonal movement is not faster.
func (h *Held) Vector(now time.Time) (dx, dz float64) {
	if h.Active(Forward, now) {
		dz--
	}
	if h.Active(Backward, now) {
		dz++
	}
	if h.Active(Left, now) {
		dx--
	}
	if h.Active(Right, now) {
		dx++
	}
	if dx != 0 && dz != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dz *= inv
	}
	return dx, dz
}

// Clear drops all held state, used on teardown and focus loss.
func (h *Held) Clear() {
	h.pressed = [4]time.Time{}
}
