// Package engine runs the frame loop shared by the demo scenes: one
// goroutine polls terminal events into the queue, one goroutine owns
// every piece of mutable game state and advances it once per tick.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/hexaturn/gridwalk/collect"
	"github.com/hexaturn/gridwalk/events"
	"github.com/hexaturn/gridwalk/grid"
	"github.com/hexaturn/gridwalk/input"
	"github.com/hexaturn/gridwalk/motion"
	"github.com/hexaturn/gridwalk/param"
	"github.com/hexaturn/gridwalk/render"
)

// Config wires one scene into the loop.
type Config struct {
	Screen     tcell.Screen
	Title      string
	Controller *motion.Controller

	// Items is the collectible set of the sandbox scene; nil elsewhere.
	Items *collect.Set

	Binding *input.Binding

	// Held enables level-triggered directional input (free-roam);
	// nil scenes step one cell per key event instead.
	Held *input.Held

	Queue  *events.Queue
	Router *events.Router
	Log    *zap.Logger
	Time   TimeProvider
}

// Game owns the loop state. All fields are confined to the loop
// goroutine except Queue, which accepts pushes from the poller.
type Game struct {
	cfg Config

	// Static render data, captured once from the controller config
	obstacles []grid.Coord
	steppable bool

	status string
}

func New(cfg Config) *Game {
	if cfg.Queue == nil {
		cfg.Queue = events.NewQueue()
	}
	if cfg.Router == nil {
		cfg.Router = events.NewRouter()
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}

	mc := cfg.Controller.Config()
	return &Game{
		cfg:       cfg,
		obstacles: mc.Obstacles.Cells(),
		steppable: mc.Obstacles.Policy() == grid.Steppable,
	}
}

// Queue returns the event queue producers push into.
func (g *Game) Queue() *events.Queue { return g.cfg.Queue }

// SetStatus sets the free-text HUD suffix.
func (g *Game) SetStatus(s string) { g.status = s }

// Run drives the loop until a quit action arrives. The caller owns
// screen lifecycle; Run only stops consuming it.
func (g *Game) Run() error {
	ticker := time.NewTicker(time.Second / param.TickRate)
	defer ticker.Stop()

	go g.poll()

	g.cfg.Log.Info("scene started", zap.String("title", g.cfg.Title))
	last := g.cfg.Time.Now()
	for range ticker.C {
		now := g.cfg.Time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if g.Step(now, dt) {
			g.cfg.Log.Info("scene stopped", zap.String("title", g.cfg.Title))
			return nil
		}
	}
	return nil
}

// poll translates terminal events on a separate goroutine. Only the
// queue crosses the boundary; no state is touched here.
func (g *Game) poll() {
	for {
		ev := g.cfg.Screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			action := g.cfg.Binding.Translate(ev)
			if action == input.None {
				continue
			}
			if action == input.Quit {
				g.cfg.Queue.Emit(events.EventQuit, nil)
				continue
			}
			g.cfg.Queue.Emit(events.EventInput, &events.InputPayload{Action: action})
		case *tcell.EventResize:
			w, h := ev.Size()
			g.cfg.Queue.Emit(events.EventResize, &events.ResizePayload{Width: w, Height: h})
		}
	}
}

// Step runs one frame: drain buffered input, apply it, advance physics,
// dispatch notifications, draw. Returns true on quit.
//
// Exposed so tests can drive frames with a mock clock.
func (g *Game) Step(now time.Time, dt float64) bool {
	frame := events.Frame{Now: now, Delta: dt}

	buffered := g.cfg.Queue.Consume()
	quit := false
	for _, ev := range buffered {
		switch ev.Type {
		case events.EventQuit:
			quit = true
		case events.EventInput:
			g.apply(ev.Payload.(*events.InputPayload).Action, now)
		case events.EventResize:
			p := ev.Payload.(*events.ResizePayload)
			g.cfg.Log.Debug("resize", zap.Int("w", p.Width), zap.Int("h", p.Height))
			g.cfg.Screen.Sync()
		}
	}
	if quit {
		return true
	}

	if g.cfg.Held != nil {
		dx, dz := g.cfg.Held.Vector(now)
		g.cfg.Controller.SetMoveVector(dx, dz)
	}

	if dt > param.MaxFrameDelta {
		g.cfg.Log.Debug("frame hitch", zap.Float64("dt", dt))
	}
	g.cfg.Controller.Advance(dt)

	if g.cfg.Items != nil {
		x, _, z := g.cfg.Controller.Position()
		g.cfg.Items.CollectNear(x, z, param.PickupRadius)
	}

	// Notifications produced this frame ride the same dispatch as the
	// buffered input, keeping observer latency inside one frame
	g.cfg.Router.Dispatch(frame, append(buffered, g.cfg.Queue.Consume()...))

	render.Draw(g.cfg.Screen, g.view())
	return false
}

func (g *Game) apply(action input.Action, now time.Time) {
	switch {
	case action == input.Jump:
		g.cfg.Controller.HandleJump()
	case action.Turn():
		g.cfg.Controller.HandleTurn(action)
	case action.Directional():
		if g.cfg.Held != nil {
			g.cfg.Held.Press(action, now)
		} else {
			g.cfg.Controller.HandleDirection(action)
		}
	}
}

func (g *Game) view() render.View {
	c := g.cfg.Controller
	mc := c.Config()
	x, y, z := c.Position()

	v := render.View{
		Title:      g.cfg.Title,
		GridSize:   mc.GridSize,
		CellSize:   mc.CellSize,
		Obstacles:  g.obstacles,
		Steppable:  g.steppable,
		EntityX:    x,
		EntityZ:    z,
		Height:     y,
		Cell:       c.Cell(),
		State:      c.State().Kind.String(),
		Facing:     c.Facing(),
		ShowFacing: mc.Mode == motion.MoveRelative,
		Status:     g.status,
	}
	if g.cfg.Items != nil {
		v.Collectibles = g.cfg.Items.Active()
		v.ShowScore = true
		v.Score = g.cfg.Items.Score()
	}
	return v
}
