// Package main tunes sparkler parameters with CMA-ES so the plume hits a
// target shape.
package main

import (
	"github.com/pthm-cable/sunset/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of sparkler parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "gravity", Path: "sparkler.gravity", Min: 0.0005, Max: 0.006, Default: 0.002},
			{Name: "decay", Path: "sparkler.decay", Min: 0.005, Max: 0.05, Default: 0.02},
			{Name: "speed_min", Path: "sparkler.speed_min", Min: 0.005, Max: 0.06, Default: 0.02},
			{Name: "speed_jitter", Path: "sparkler.speed_jitter", Min: 0, Max: 0.06, Default: 0.03},
			{Name: "lift_min", Path: "sparkler.lift_min", Min: 0.01, Max: 0.12, Default: 0.05},
			{Name: "lift_jitter", Path: "sparkler.lift_jitter", Min: 0, Max: 0.1, Default: 0.05},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped values into a sparkler config.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.SparklerConfig, values []float64) {
	c := pv.Clamp(values)
	cfg.Gravity = c[0]
	cfg.Decay = c[1]
	cfg.SpeedMin = c[2]
	cfg.SpeedJitter = c[3]
	cfg.LiftMin = c[4]
	cfg.LiftJitter = c[5]
}

// ExtractFromConfig reads the current parameter values from a sparkler config.
func (pv *ParamVector) ExtractFromConfig(cfg config.SparklerConfig) []float64 {
	return []float64{
		cfg.Gravity,
		cfg.Decay,
		cfg.SpeedMin,
		cfg.SpeedJitter,
		cfg.LiftMin,
		cfg.LiftJitter,
	}
}
