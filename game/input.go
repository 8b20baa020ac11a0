package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// wheelScale converts raylib wheel steps into the browser-style delta the
// camera expects (one notch is about 100 units).
const wheelScale = 100

// handleInput translates raylib mouse, touch and keyboard state into
// queued events. Keys that only affect the window are handled directly.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.Input(InputEvent{Kind: EventTogglePause})
	}
	if rl.IsKeyPressed(rl.KeyM) {
		g.Input(InputEvent{Kind: EventToggleMute})
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.Input(InputEvent{Kind: EventResetCamera})
	}

	g.handleOverlayKeys()

	if g.handleTouch() {
		return
	}
	g.handlePointer()
}

// handleTouch turns two-finger gestures into pinch events.
// It returns true while a pinch is in progress.
func (g *Game) handleTouch() bool {
	if rl.GetTouchPointCount() < 2 {
		if g.pinching {
			g.Input(InputEvent{Kind: EventPinchEnd})
			g.pinching = false
		}
		return false
	}

	a, b := rl.GetTouchPosition(0), rl.GetTouchPosition(1)
	d := math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
	if g.pinching {
		g.Input(Pinch(d))
	} else {
		g.Input(InputEvent{Kind: EventPinchStart, Value: d})
	}
	g.pinching = true
	return true
}

// handlePointer maps left-button drags and the wheel onto the orbit camera.
// Drags that start over a UI panel are left to the panel.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.overUI(pos):
		g.Input(DragStart(x, y))
		g.dragging = true
	case g.dragging && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			g.Input(DragMove(x, y))
		}
	case g.dragging:
		g.Input(DragEnd(x, y))
		g.dragging = false
	}

	if w := rl.GetMouseWheelMove(); w != 0 {
		g.Input(Wheel(-float64(w) * wheelScale))
	}
}
