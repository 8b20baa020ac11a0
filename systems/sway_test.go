package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
)

func TestFlameFlicker(t *testing.T) {
	cfg := loadDefaults(t)
	rest := components.At(0.7, 2.72, 0)

	tr := FlameFlicker(cfg.Sway.Flame, rest, 0.5, 2, 0.05)
	assert.InDelta(t, 1.3+math.Sin(2*8+0.5)*0.15+0.05, tr.Scale.Y, 1e-12)
	assert.Equal(t, 1.0, tr.Scale.X)
	assert.InDelta(t, 0.7+math.Sin(2*3+0.5)*0.015, tr.Position.X, 1e-12)
	assert.Equal(t, 2.72, tr.Position.Y)
	assert.InDelta(t, math.Cos(2*3.5+0.5)*0.015, tr.Position.Z, 1e-12)
}

func TestTulipSway(t *testing.T) {
	cfg := loadDefaults(t)
	rest := components.Identity()
	rest.Rotation = r3.Vec{X: 0.2, Y: 1, Z: -0.1}

	tr := TulipSway(cfg.Sway.Tulip, rest, 1.1, 3, 1)
	assert.InDelta(t, 0.2+math.Sin(3*1.5+1.1)*0.07, tr.Rotation.X, 1e-12)
	assert.Equal(t, 1.0, tr.Rotation.Y)
	assert.InDelta(t, -0.1+math.Cos(3*1.3+1.1)*0.049, tr.Rotation.Z, 1e-12)
}

func TestWineWobble(t *testing.T) {
	cfg := loadDefaults(t)
	rest := components.Identity()
	rest.Rotation.X = -math.Pi / 2

	tr := WineWobble(cfg.Sway.Wine, rest, 2, 0.25)
	assert.InDelta(t, -math.Pi/2+math.Sin(0.5+2)*0.05, tr.Rotation.X, 1e-12)
	assert.InDelta(t, math.Cos(0.625+2)*0.05, tr.Rotation.Y, 1e-12)
}

func TestSwayStaysNearRest(t *testing.T) {
	cfg := loadDefaults(t)
	rest := components.At(1, 2, 3)
	rest.Rotation = r3.Vec{X: 0.3, Y: 0.2, Z: 0.1}

	for i := 0; i < 1000; i++ {
		tm := float64(i) * 0.037
		tu := TulipSway(cfg.Sway.Tulip, rest, 0.9, tm, 1)
		require.LessOrEqual(t, math.Abs(tu.Rotation.X-rest.Rotation.X), 0.07+1e-12)
		require.LessOrEqual(t, math.Abs(tu.Rotation.Z-rest.Rotation.Z), 0.049+1e-12)

		w := WineWobble(cfg.Sway.Wine, rest, 4, tm)
		require.LessOrEqual(t, math.Abs(w.Rotation.X-rest.Rotation.X), 0.05+1e-12)
		require.LessOrEqual(t, math.Abs(w.Rotation.Y-rest.Rotation.Y), 0.05+1e-12)
	}
}

func TestAnimatorDrivesRegisteredRecords(t *testing.T) {
	cfg := loadDefaults(t)
	reg := NewAnimationRegistry()
	anim := NewAnimator(cfg.Sway, rand.New(rand.NewSource(1)))

	flame := components.At(0, 2.72, 0.7)
	tulip := components.Identity()
	wine := components.At(0, 0.83, 0)
	palm := components.At(-18, 0, 20)
	palm.Rotation.Y = 0.5
	frond := components.At(0.7, 12, 0.5)
	frond.Rotation.Y = math.Pi / 6
	clouds := components.Identity()
	msg := &components.Material{Opacity: 0}

	reg.AddFlame(1, &flame, 0.3, 0.1)
	reg.AddTulip(2, &tulip, 1.2, 1)
	reg.AddWine(3, &wine, 1)
	reg.AddPalm(4, &palm, 0)
	reg.AddFrond(5, &frond, 3)
	reg.AddDrift(6, &clouds, -0.0001)
	reg.AddFade(msg, 0.003, 1)

	counts := reg.Counts()
	assert.Equal(t, 7, counts.Total())
	assert.Equal(t, 1, counts.Flames)

	tm := 1.7
	anim.Tick(reg, tm)

	assert.Greater(t, flame.Scale.Y, 1.0)
	assert.NotEqual(t, 0.0, tulip.Rotation.X)
	assert.InDelta(t, math.Sin(tm*2+2)*0.05, wine.Rotation.X, 1e-12, "wine phase is index*2")
	assert.InDelta(t, math.Sin(tm*0.8)*0.08, palm.Rotation.Z, 1e-12)
	assert.Equal(t, 0.5, palm.Rotation.Y, "rest rotation is preserved")
	assert.InDelta(t, -0.4+math.Sin(tm*2+1.5)*0.15, frond.Rotation.X, 1e-12)
	assert.Equal(t, math.Pi/6, frond.Rotation.Y)

	// Time-driven sway does not accumulate
	anim.Tick(reg, tm)
	assert.InDelta(t, math.Sin(tm*0.8)*0.08, palm.Rotation.Z, 1e-12)

	// Per-tick effects do
	for i := 0; i < 400; i++ {
		anim.Clouds(reg)
	}
	assert.InDelta(t, -0.04, clouds.Rotation.Y, 1e-9)
	assert.Equal(t, 1.0, msg.Opacity, "fade stops at its target")
}

func TestFadeInRate(t *testing.T) {
	reg := NewAnimationRegistry()
	anim := NewAnimator(loadDefaults(t).Sway, rand.New(rand.NewSource(1)))
	m := &components.Material{}
	reg.AddFade(m, 0.003, 1)

	for i := 0; i < 100; i++ {
		anim.Clouds(reg)
	}
	assert.InDelta(t, 0.3, m.Opacity, 1e-9)
}
