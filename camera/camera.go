// Package camera provides the orbit camera that frames the picnic.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/config"
)

// Mode is the gesture currently driving the camera.
type Mode uint8

const (
	Idle Mode = iota
	Dragging
	Pinching
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Pinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Limits bounds the orbit state and converts input deltas.
type Limits struct {
	MaxHorizontal    float64 // radians, symmetric
	MaxVertical      float64 // radians, symmetric
	MinRadius        float64
	MaxRadius        float64
	WheelMaxRadius   float64
	DragSensitivity  float64
	WheelSensitivity float64
	PinchSensitivity float64
}

// Camera is a spherical orbit around a fixed focus point.
// State only changes on input; there is no momentum.
type Camera struct {
	// Orbit state
	Horizontal float64
	Vertical   float64
	Radius     float64

	// Focus is the point the camera always looks at
	Focus r3.Vec

	// Height = BaseHeight + sin(Vertical) * HeightAmplitude
	BaseHeight      float64
	HeightAmplitude float64

	FovY   float64
	Limits Limits

	mode      Mode
	lastX     float64
	lastY     float64
	lastPinch float64
}

// New creates a camera from config at its rest orbit.
func New(cfg *config.Config) *Camera {
	c := cfg.Camera
	cam := &Camera{
		Radius:          c.Radius,
		Focus:           r3.Vec{X: c.Focus.X(), Y: c.Focus.Y(), Z: c.Focus.Z()},
		BaseHeight:      c.BaseHeight,
		HeightAmplitude: c.HeightAmplitude,
		FovY:            c.FovY,
		Limits: Limits{
			MaxHorizontal:    cfg.Derived.MaxHorizontal,
			MaxVertical:      cfg.Derived.MaxVertical,
			MinRadius:        c.MinRadius,
			MaxRadius:        c.MaxRadius,
			WheelMaxRadius:   c.WheelMaxRadius,
			DragSensitivity:  c.DragSensitivity,
			WheelSensitivity: c.WheelSensitivity,
			PinchSensitivity: c.PinchSensitivity,
		},
	}
	cam.Radius = clamp(cam.Radius, cam.Limits.MinRadius, cam.Limits.MaxRadius)
	return cam
}

// Mode returns the active gesture.
func (c *Camera) Mode() Mode {
	return c.mode
}

// DragStart begins an orbit gesture at screen position (x, y).
// It cancels any pinch in progress.
func (c *Camera) DragStart(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	c.mode = Dragging
	c.lastX, c.lastY = x, y
}

// DragMove orbits by the pixel delta since the last drag event.
func (c *Camera) DragMove(x, y float64) {
	if c.mode != Dragging || !finite(x) || !finite(y) {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y
	c.Orbit(dx, dy)
}

// DragEnd finishes the current gesture, drag or pinch.
func (c *Camera) DragEnd(x, y float64) {
	c.mode = Idle
}

// Orbit applies a raw pixel delta to the orbit angles.
func (c *Camera) Orbit(dx, dy float64) {
	if !finite(dx) || !finite(dy) {
		return
	}
	l := c.Limits
	c.Horizontal = clamp(c.Horizontal+dx*l.DragSensitivity, -l.MaxHorizontal, l.MaxHorizontal)
	c.Vertical = clamp(c.Vertical-dy*l.DragSensitivity, -l.MaxVertical, l.MaxVertical)
}

// PinchStart begins a zoom gesture with the initial distance between touches.
// It cancels any drag in progress.
func (c *Camera) PinchStart(distance float64) {
	c.mode = Pinching
	c.lastPinch = 0
	if validDistance(distance) {
		c.lastPinch = distance
	}
}

// Pinch zooms by the change in touch distance. Spreading the fingers
// shortens the radius. Degenerate distances are ignored.
func (c *Camera) Pinch(distance float64) {
	if c.mode != Pinching || !validDistance(distance) {
		return
	}
	if c.lastPinch > 0 {
		l := c.Limits
		c.Radius = clamp(c.Radius+(c.lastPinch-distance)*l.PinchSensitivity, l.MinRadius, l.MaxRadius)
	}
	c.lastPinch = distance
}

// PinchEnd finishes a zoom gesture.
func (c *Camera) PinchEnd() {
	c.mode = Idle
	c.lastPinch = 0
}

// Wheel zooms by a scroll delta; positive moves away.
func (c *Camera) Wheel(delta float64) {
	if !finite(delta) {
		return
	}
	l := c.Limits
	hi := l.WheelMaxRadius
	if hi <= 0 || hi > l.MaxRadius {
		hi = l.MaxRadius
	}
	// A pinch may have left the radius beyond the wheel range; wheel never pushes it further out.
	if c.Radius > hi {
		if delta < 0 {
			c.Radius = clamp(c.Radius+delta*l.WheelSensitivity, l.MinRadius, l.MaxRadius)
		}
		return
	}
	c.Radius = clamp(c.Radius+delta*l.WheelSensitivity, l.MinRadius, hi)
}

// Reset returns the camera to the rest orbit.
func (c *Camera) Reset(radius float64) {
	c.Horizontal = 0
	c.Vertical = 0
	c.Radius = clamp(radius, c.Limits.MinRadius, c.Limits.MaxRadius)
	c.mode = Idle
}

// Position returns the camera's world position.
func (c *Camera) Position() r3.Vec {
	return r3.Vec{
		X: c.Focus.X + math.Sin(c.Horizontal)*c.Radius,
		Y: c.BaseHeight + math.Sin(c.Vertical)*c.HeightAmplitude,
		Z: c.Focus.Z + math.Cos(c.Horizontal)*c.Radius,
	}
}

// Target returns the point the camera looks at.
func (c *Camera) Target() r3.Vec {
	return c.Focus
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validDistance(d float64) bool {
	return finite(d) && d > 0
}
