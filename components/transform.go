// Package components defines the scene's ECS components.
package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/config"
)

// Transform is a node's local placement relative to its parent.
// Rotation holds Euler angles in radians applied in X, Y, Z order.
type Transform struct {
	Position r3.Vec
	Rotation r3.Vec
	Scale    r3.Vec
}

// Identity returns a transform with unit scale and no offset.
func Identity() Transform {
	return Transform{Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// At returns a unit-scale transform at p.
func At(x, y, z float64) Transform {
	t := Identity()
	t.Position = r3.Vec{X: x, Y: y, Z: z}
	return t
}

// Apply maps a point from this transform's local space into its parent's.
// The rotation matches an XYZ Euler order: v' = Rx(Ry(Rz(s*v))) + p.
func (t *Transform) Apply(v r3.Vec) r3.Vec {
	v = r3.Vec{X: v.X * t.Scale.X, Y: v.Y * t.Scale.Y, Z: v.Z * t.Scale.Z}
	v = RotateXYZ(v, t.Rotation)
	return r3.Add(v, t.Position)
}

// RotateXYZ rotates v by Euler angles e (X, then Y, then Z intrinsic).
func RotateXYZ(v, e r3.Vec) r3.Vec {
	if e.Z != 0 {
		s, c := math.Sincos(e.Z)
		v = r3.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
	}
	if e.Y != 0 {
		s, c := math.Sincos(e.Y)
		v = r3.Vec{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
	}
	if e.X != 0 {
		s, c := math.Sincos(e.X)
		v = r3.Vec{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
	}
	return v
}

// Material is the mutable surface state of a node.
type Material struct {
	Color    config.Color
	Opacity  float64
	Additive bool // Blend additively (glows, sun, clouds)
	Unlit    bool // Skip fog and shading
}

// Solid returns an opaque material.
func Solid(c config.Color) *Material {
	return &Material{Color: c, Opacity: 1}
}
