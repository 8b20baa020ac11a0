package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSparkler(t *testing.T, seed int64) *Sparkler {
	t.Helper()
	cfg := loadDefaults(t)
	return NewSparkler(cfg.Sparkler, rand.New(rand.NewSource(seed)))
}

func TestSparklerStartsDead(t *testing.T) {
	s := newTestSparkler(t, 1)
	require.Equal(t, 150, s.Count())
	assert.Zero(t, s.Alive())

	s.Update()
	assert.Equal(t, 150, s.Alive(), "every slot spawns on the first tick")
	assert.Equal(t, 150, s.Respawns())
	for _, p := range s.Sparks {
		assert.Equal(t, s.Origin, p.Pos)
		assert.GreaterOrEqual(t, p.Life, 1.0)
		assert.Less(t, p.Life, 1.5)
		horiz := math.Hypot(p.Vel.X, p.Vel.Z)
		assert.GreaterOrEqual(t, horiz, 0.02-1e-12)
		assert.Less(t, horiz, 0.05+1e-12)
		assert.GreaterOrEqual(t, p.Vel.Y, 0.05)
		assert.Less(t, p.Vel.Y, 0.10)
	}
}

func TestSparkLifecycle(t *testing.T) {
	s := newTestSparkler(t, 2)
	s.Update()

	// Follow slot 0 through two full lives
	lives := 0
	prev := s.Sparks[0].Life
	deadTicks := 0
	for tick := 0; tick < 400; tick++ {
		s.Update()
		life := s.Sparks[0].Life

		switch {
		case prev <= 0:
			require.Positive(t, life, "dead spark must respawn on the next tick (tick %d)", tick)
			assert.Equal(t, s.Origin, s.Sparks[0].Pos)
			lives++
			deadTicks = 0
		default:
			require.Less(t, life, prev, "life must strictly decrease while alive (tick %d)", tick)
		}
		if life <= 0 {
			deadTicks++
			require.LessOrEqual(t, deadTicks, 1)
		}
		prev = life
	}
	assert.GreaterOrEqual(t, lives, 2)
}

func TestSparkPhysics(t *testing.T) {
	s := newTestSparkler(t, 3)
	s.Update()

	p0 := s.Sparks[5]
	s.Update()
	p1 := s.Sparks[5]

	assert.InDelta(t, p0.Life-0.02, p1.Life, 1e-12)
	assert.InDelta(t, p0.Vel.Y-0.002, p1.Vel.Y, 1e-12)
	assert.InDelta(t, p0.Pos.X+p0.Vel.X, p1.Pos.X, 1e-12)
	assert.InDelta(t, p0.Pos.Y+p1.Vel.Y, p1.Pos.Y, 1e-12, "gravity applies before the position step")
	assert.InDelta(t, p0.Pos.Z+p0.Vel.Z, p1.Pos.Z, 1e-12)
}

func TestSparkColorsInRange(t *testing.T) {
	s := newTestSparkler(t, 4)
	for tick := 0; tick < 300; tick++ {
		s.Update()
		for i, p := range s.Sparks {
			for _, ch := range []float64{p.Color.R, p.Color.G, p.Color.B} {
				require.GreaterOrEqual(t, ch, 0.0, "spark %d tick %d", i, tick)
				require.LessOrEqual(t, ch, 1.0, "spark %d tick %d", i, tick)
			}
			require.GreaterOrEqual(t, p.Size, 0.0)
			require.LessOrEqual(t, p.Size, 0.25)
		}
	}
}

func TestSparkColorRamp(t *testing.T) {
	s := newTestSparkler(t, 5)
	p := &Spark{Life: 1}
	s.shade(p)
	assert.InDelta(t, 1.0, p.Color.G, 1e-12)
	assert.InDelta(t, 0.2, p.Color.B, 1e-12)

	p.Life = 0
	s.shade(p)
	assert.InDelta(t, 0.2, p.Color.G, 1e-12)
	assert.Zero(t, p.Color.B)
	assert.Zero(t, p.Size)
}

func TestSparklerDeterministic(t *testing.T) {
	a := newTestSparkler(t, 9)
	b := newTestSparkler(t, 9)
	for i := 0; i < 50; i++ {
		a.Update()
		b.Update()
	}
	assert.Equal(t, a.Sparks, b.Sparks)
}
