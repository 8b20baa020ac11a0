package game

import (
	"math"

	"github.com/pthm-cable/sunset/config"
)

// Clock owns scene time. Each step adds a fixed amount regardless of how
// long the frame took; realtime mode converts wall time into whole steps.
type Clock struct {
	step     float64
	maxSteps int

	t     float64
	ticks int64
	acc   float64 // Unspent wall time, realtime mode only
}

// NewClock creates a clock at t = 0.
func NewClock(cfg config.SimConfig) Clock {
	maxSteps := cfg.MaxStepsPerFrame
	if maxSteps < 1 {
		maxSteps = 1
	}
	return Clock{step: cfg.Step, maxSteps: maxSteps}
}

// Advance moves time forward one step and returns the new time.
func (c *Clock) Advance() float64 {
	c.ticks++
	// t is ticks*step rather than a running sum
	c.t = float64(c.ticks) * c.step
	return c.t
}

// Accumulate banks elapsed wall seconds and returns how many whole steps
// are due, at most MaxStepsPerFrame. Any backlog beyond the cap is dropped.
func (c *Clock) Accumulate(elapsed float64) int {
	if !(elapsed > 0) || math.IsInf(elapsed, 0) {
		return 0
	}
	c.acc += elapsed
	n := int(c.acc / c.step)
	if n > c.maxSteps {
		c.acc = 0
		return c.maxSteps
	}
	c.acc -= float64(n) * c.step
	return n
}

// Time returns the current scene time.
func (c *Clock) Time() float64 {
	return c.t
}

// Ticks returns the number of steps taken.
func (c *Clock) Ticks() int64 {
	return c.ticks
}

// Step returns the fixed timestep.
func (c *Clock) Step() float64 {
	return c.step
}
