package input

import "github.com/gdamore/tcell/v2"

// Binding maps terminal key events to logical actions for one scene.
// Read-only after construction; safe to share with the poll goroutine.
type Binding struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

func NewBinding() *Binding {
	return &Binding{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}
}

// Key binds a special key (arrows, escape) to an action.
func (b *Binding) Key(k tcell.Key, a Action) *Binding {
	b.keys[k] = a
	return b
}

// Rune binds a printable key to an action. Letters bind both cases.
func (b *Binding) Rune(r rune, a Action) *Binding {
	b.runes[r] = a
	if r >= 'a' && r <= 'z' {
		b.runes[r-'a'+'A'] = a
	}
	return b
}

// Translate resolves a terminal key event to its logical action.
// Unbound keys resolve to None and are dropped by the caller.
func (b *Binding) Translate(ev *tcell.EventKey) Action {
	if ev == nil {
		return None
	}
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		return b.runes[ev.Rune()]
	default:
		return b.keys[ev.Key()]
	}
}

func base() *Binding {
	b := NewBinding()
	b.Key(tcell.KeyEscape, Quit)
	b.Rune('q', Quit)
	b.Rune(' ', Jump)
	return b
}

// Absolute binds WASD and arrows to fixed grid axes.
func Absolute() *Binding {
	b := base()
	b.Rune('w', Forward).Rune('s', Backward).Rune('a', Left).Rune('d', Right)
	b.Key(tcell.KeyUp, Forward).Key(tcell.KeyDown, Backward)
	b.Key(tcell.KeyLeft, Left).Key(tcell.KeyRight, Right)
	return b
}

// Relative binds forward/backward along the current facing and
// turns the facing with left/right.
func Relative() *Binding {
	b := base()
	b.Rune('w', Forward).Rune('s', Backward).Rune('a', TurnLeft).Rune('d', TurnRight)
	b.Key(tcell.KeyUp, Forward).Key(tcell.KeyDown, Backward)
	b.Key(tcell.KeyLeft, TurnLeft).Key(tcell.KeyRight, TurnRight)
	return b
}

// Free uses the absolute layout; directional actions are level-triggered
// by the held-state tracker rather than stepping one cell per event.
func Free() *Binding {
	return Absolute()
}
