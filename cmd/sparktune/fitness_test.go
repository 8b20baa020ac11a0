package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/sunset/config"
)

func defaultSparkler(t *testing.T) config.SparklerConfig {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg.Sparkler
}

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	got := pv.Denormalize(pv.Normalize(raw))
	assert.InDeltaSlice(t, raw, got, 1e-12)

	over := make([]float64, pv.Dim())
	for i := range over {
		over[i] = 1e6
	}
	for i, v := range pv.Clamp(over) {
		assert.Equal(t, pv.Specs[i].Max, v)
	}
}

func TestApplyExtractConfig(t *testing.T) {
	pv := NewParamVector()
	cfg := defaultSparkler(t)
	vals := pv.Denormalize([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	pv.ApplyToConfig(&cfg, vals)
	assert.InDeltaSlice(t, vals, pv.ExtractFromConfig(cfg), 1e-12)
}

func TestRunPlumeDeterministic(t *testing.T) {
	cfg := defaultSparkler(t)
	a := runPlume(cfg, 7, 100, 300)
	b := runPlume(cfg, 7, 100, 300)
	assert.Equal(t, a, b)

	assert.Greater(t, a.Height, 0.0)
	assert.Greater(t, a.Radius, 0.0)
	// Life starts in [1, 1.5] and loses 0.02 per tick.
	assert.InDelta(t, 63, a.Lifetime, 8)
}

func TestScoreZeroAtTarget(t *testing.T) {
	cfg := defaultSparkler(t)
	fe := NewFitnessEvaluator(NewParamVector(), 300, []int64{1, 2}, cfg, Target{})
	fe.target = Target{Height: 2, Radius: 1, Lifetime: 50}
	assert.Zero(t, fe.score(PlumeStats{Height: 2, Radius: 1, Lifetime: 50}))
	assert.InDelta(t, 0.25, fe.score(PlumeStats{Height: 3, Radius: 1, Lifetime: 50}), 1e-12)
}
