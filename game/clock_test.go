package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/sunset/config"
)

func TestClockAdvanceIsTicksTimesStep(t *testing.T) {
	c := NewClock(config.SimConfig{Step: 0.01, MaxStepsPerFrame: 4})
	for i := 0; i < 1000; i++ {
		c.Advance()
	}
	assert.Equal(t, int64(1000), c.Ticks())
	assert.Equal(t, 1000*0.01, c.Time())
}

func TestClockAccumulate(t *testing.T) {
	c := NewClock(config.SimConfig{Step: 0.25, MaxStepsPerFrame: 4})

	assert.Equal(t, 2, c.Accumulate(0.625))
	assert.Equal(t, 1, c.Accumulate(0.125), "remainder carries into the next frame")
	assert.Equal(t, 0, c.Accumulate(0.125))
	assert.Equal(t, 1, c.Accumulate(0.125))

	// Accumulate only reports steps; time moves in Advance.
	assert.Zero(t, c.Ticks())
}

func TestClockAccumulateCapsAndDropsBacklog(t *testing.T) {
	c := NewClock(config.SimConfig{Step: 0.25, MaxStepsPerFrame: 4})
	assert.Equal(t, 4, c.Accumulate(10))
	assert.Equal(t, 0, c.Accumulate(0.125), "backlog beyond the cap is discarded")
}

func TestClockAccumulateIgnoresBadInput(t *testing.T) {
	c := NewClock(config.SimConfig{Step: 0.25, MaxStepsPerFrame: 4})
	for _, v := range []float64{0, -1, math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.Zero(t, c.Accumulate(v), "elapsed %v", v)
	}
	assert.Equal(t, 1, c.Accumulate(0.25))
}

func TestNewClockMinimumCap(t *testing.T) {
	c := NewClock(config.SimConfig{Step: 0.5})
	assert.Equal(t, 1, c.Accumulate(5))
	assert.Equal(t, 0.5, c.Step())
}
