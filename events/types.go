package events

import "time"

// EventType discriminates game events.
type EventType int

const (
	// EventInput carries a translated key action from the poll goroutine
	// Producer: terminal poller | Consumer: game loop | Payload: *InputPayload
	EventInput EventType = iota

	// EventResize signals a terminal geometry change
	// Producer: terminal poller | Consumer: game loop | Payload: *ResizePayload
	EventResize

	// EventQuit requests loop shutdown
	// Producer: terminal poller | Payload: nil
	EventQuit

	// EventMoved signals an accepted cell change
	// Producer: motion controller | Consumers: minimap, HUD | Payload: *MovedPayload
	EventMoved

	// EventRotated signals a facing change
	// Producer: motion controller | Consumers: camera, minimap | Payload: *RotatedPayload
	EventRotated

	// EventHeightChanged signals vertical movement during jump or fall
	// Producer: motion controller | Payload: *HeightChangedPayload
	EventHeightChanged

	// EventJumped signals a jump acceptance
	// Producer: motion controller | Consumer: audio | Payload: nil
	EventJumped

	// EventLanded signals a jump or fall reaching ground level
	// Producer: motion controller | Consumer: audio | Payload: *LandedPayload
	EventLanded

	// EventCollected signals a unique collectible pickup
	// Producer: collectible set | Consumers: audio, HUD | Payload: *CollectedPayload
	EventCollected

	// EventScoreChanged signals the new score total
	// Producer: collectible set | Consumer: HUD | Payload: *ScoreChangedPayload
	EventScoreChanged
)

var typeNames = map[EventType]string{
	EventInput:         "input",
	EventResize:        "resize",
	EventQuit:          "quit",
	EventMoved:         "moved",
	EventRotated:       "rotated",
	EventHeightChanged: "height-changed",
	EventJumped:        "jumped",
	EventLanded:        "landed",
	EventCollected:     "collected",
	EventScoreChanged:  "score-changed",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single event with payload.
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// Frame is the dispatch context handlers receive each frame.
type Frame struct {
	Now   time.Time
	Delta float64 // seconds since the previous frame, already clamped
}
