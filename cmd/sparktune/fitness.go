package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/systems"
)

// Target describes the plume shape the tuner aims for.
type Target struct {
	Height   float64 // Mean peak rise above the tip
	Radius   float64 // Mean horizontal distance of live sparks
	Lifetime float64 // Mean ticks between respawns of one slot
}

// PlumeStats summarizes one sparkler run.
type PlumeStats struct {
	Height   float64
	Radius   float64
	Lifetime float64
}

// FitnessEvaluator runs headless sparkler pools and scores them.
type FitnessEvaluator struct {
	params   *ParamVector
	ticks    int
	warmup   int
	seeds    []int64
	base     config.SparklerConfig
	target   Target
	mu       sync.Mutex
	lastStat PlumeStats
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, ticks int, seeds []int64, base config.SparklerConfig, target Target) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		ticks:  ticks,
		warmup: ticks / 5,
		seeds:  seeds,
		base:   base,
		target: target,
	}
}

// LastStats returns the averaged plume stats from the most recent evaluation.
func (fe *FitnessEvaluator) LastStats() PlumeStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStat
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Seeds run in parallel and the score is their mean.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.base
	fe.params.ApplyToConfig(&cfg, x)

	results := make([]PlumeStats, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = runPlume(cfg, s, fe.warmup, fe.ticks)
		}(i, seed)
	}
	wg.Wait()

	heights := make([]float64, len(results))
	radii := make([]float64, len(results))
	lifetimes := make([]float64, len(results))
	for i, r := range results {
		heights[i], radii[i], lifetimes[i] = r.Height, r.Radius, r.Lifetime
	}
	avg := PlumeStats{
		Height:   stat.Mean(heights, nil),
		Radius:   stat.Mean(radii, nil),
		Lifetime: stat.Mean(lifetimes, nil),
	}

	fe.mu.Lock()
	fe.lastStat = avg
	fe.mu.Unlock()

	return fe.score(avg)
}

// score is the sum of squared relative errors against the target.
func (fe *FitnessEvaluator) score(s PlumeStats) float64 {
	return relErr(s.Height, fe.target.Height) +
		relErr(s.Radius, fe.target.Radius) +
		relErr(s.Lifetime, fe.target.Lifetime)
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	d := (got - want) / want
	return d * d
}

// runPlume steps a fresh pool and measures its steady-state shape.
// The first warmup ticks are discarded while the pool fills.
func runPlume(cfg config.SparklerConfig, seed int64, warmup, ticks int) PlumeStats {
	sp := systems.NewSparkler(cfg, rand.New(rand.NewSource(seed)))
	for range warmup {
		sp.Update()
	}
	start := sp.Respawns()

	var heights, radii []float64
	for range ticks {
		sp.Update()

		peak := 0.0
		var dist []float64
		for i := range sp.Sparks {
			p := &sp.Sparks[i]
			if p.Life <= 0 {
				continue
			}
			peak = max(peak, p.Pos.Y-sp.Origin.Y)
			dist = append(dist, math.Hypot(p.Pos.X-sp.Origin.X, p.Pos.Z-sp.Origin.Z))
		}
		heights = append(heights, peak)
		if len(dist) > 0 {
			radii = append(radii, stat.Mean(dist, nil))
		}
	}

	out := PlumeStats{Height: stat.Mean(heights, nil)}
	if len(radii) > 0 {
		out.Radius = stat.Mean(radii, nil)
	}
	if n := sp.Respawns() - start; n > 0 {
		out.Lifetime = float64(ticks*sp.Count()) / float64(n)
	} else {
		out.Lifetime = float64(ticks)
	}
	return out
}
