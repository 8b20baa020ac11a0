package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/sunset/components"
)

func TestRegistriesOwnSeparateWorlds(t *testing.T) {
	a := NewAnimationRegistry()
	b := NewAnimationRegistry()
	require.NotSame(t, a.world, b.world)

	anim := NewAnimator(loadDefaults(t).Sway, rand.New(rand.NewSource(1)))
	ma, mb := &components.Material{}, &components.Material{}
	a.AddFade(ma, 0.1, 1)
	b.AddFade(mb, 0.1, 1)
	b.AddFade(&components.Material{}, 0.1, 1)

	anim.Clouds(a)
	assert.InDelta(t, 0.1, ma.Opacity, 1e-12)
	assert.Zero(t, mb.Opacity, "ticking one registry leaves the other untouched")
	assert.Equal(t, 1, a.Counts().Fades)
	assert.Equal(t, 2, b.Counts().Fades)
}
