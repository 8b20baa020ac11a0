package game

import (
	"log/slog"

	"github.com/pthm-cable/sunset/audio"
)

// EventKind identifies a host input event.
type EventKind uint8

const (
	EventDragStart EventKind = iota
	EventDragMove
	EventDragEnd
	EventPinchStart
	EventPinch
	EventPinchEnd
	EventWheel
	EventResetCamera
	EventToggleMute
	EventSetVolume
	EventTogglePause
)

var eventNames = [...]string{
	EventDragStart:   "drag_start",
	EventDragMove:    "drag_move",
	EventDragEnd:     "drag_end",
	EventPinchStart:  "pinch_start",
	EventPinch:       "pinch",
	EventPinchEnd:    "pinch_end",
	EventWheel:       "wheel",
	EventResetCamera: "reset_camera",
	EventToggleMute:  "toggle_mute",
	EventSetVolume:   "set_volume",
	EventTogglePause: "toggle_pause",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// InputEvent is one pointer, touch, wheel or audio action from the host.
// X and Y are screen pixels for drags; Value carries the pinch distance,
// wheel delta or volume level.
type InputEvent struct {
	Kind  EventKind
	X, Y  float64
	Value float64
	Track audio.Track
}

// Drag helpers build the common events.
func DragStart(x, y float64) InputEvent { return InputEvent{Kind: EventDragStart, X: x, Y: y} }
func DragMove(x, y float64) InputEvent  { return InputEvent{Kind: EventDragMove, X: x, Y: y} }
func DragEnd(x, y float64) InputEvent   { return InputEvent{Kind: EventDragEnd, X: x, Y: y} }
func Pinch(distance float64) InputEvent { return InputEvent{Kind: EventPinch, Value: distance} }
func Wheel(delta float64) InputEvent    { return InputEvent{Kind: EventWheel, Value: delta} }

// apply routes an event to the camera or audio player.
func (g *Game) apply(ev InputEvent) {
	switch ev.Kind {
	case EventDragStart:
		g.camera.DragStart(ev.X, ev.Y)
	case EventDragMove:
		g.camera.DragMove(ev.X, ev.Y)
	case EventDragEnd:
		g.camera.DragEnd(ev.X, ev.Y)
	case EventPinchStart:
		g.camera.PinchStart(ev.Value)
	case EventPinch:
		g.camera.Pinch(ev.Value)
	case EventPinchEnd:
		g.camera.PinchEnd()
	case EventWheel:
		g.camera.Wheel(ev.Value)
	case EventResetCamera:
		g.camera.Reset(g.cfg.Camera.Radius)
	case EventToggleMute:
		muted := g.audio.ToggleMute()
		slog.Info("audio", "muted", muted)
	case EventSetVolume:
		g.audio.SetVolume(ev.Track, ev.Value)
	case EventTogglePause:
		g.paused = !g.paused
	}
}

// drainInput applies every queued event without blocking.
func (g *Game) drainInput() {
	for {
		select {
		case ev := <-g.input:
			g.apply(ev)
		default:
			return
		}
	}
}
