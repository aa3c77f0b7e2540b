// Package audio plays short generated tones as movement feedback.
// Initialization failure is non-fatal: the game runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/hexaturn/gridwalk/events"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes feedback tones for motion events. It registers on
// the event router and reacts to jump, landing and pickup
// notifications.
type Player struct {
	enabled bool
	log     *zap.Logger
}

// NewPlayer initializes the speaker. With mute set, or when the speaker
// fails to open, the player stays usable but silent.
func NewPlayer(log *zap.Logger, mute bool) *Player {
	p := &Player{log: log}
	if mute {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio init failed, continuing silent", zap.Error(err))
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the speaker opened.
func (p *Player) Enabled() bool { return p.enabled }

// Close releases the speaker.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// HandleEvent plays the tone matched to the notification.
func (p *Player) HandleEvent(_ events.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventJumped:
		p.tone(660, 60*time.Millisecond)
	case events.EventLanded:
		p.tone(330, 50*time.Millisecond)
	case events.EventCollected:
		p.tone(880, 80*time.Millisecond)
	}
}

// EventTypes declares the handled notifications for router registration.
func (p *Player) EventTypes() []events.EventType {
	return []events.EventType{events.EventJumped, events.EventLanded, events.EventCollected}
}
