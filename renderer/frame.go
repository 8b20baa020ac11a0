package renderer

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
)

// frame is an affine world transform: world = O + X*v.x + Y*v.y + Z*v.z.
// The walker keeps a stack of these alongside rlgl's matrix stack so fog
// and billboards can use world positions without reading GPU state.
type frame struct {
	O, X, Y, Z r3.Vec
}

func identityFrame() frame {
	return frame{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}, Z: r3.Vec{Z: 1}}
}

// point maps a local point to world space.
func (f frame) point(v r3.Vec) r3.Vec {
	return r3.Add(f.O, f.vec(v))
}

// vec maps a local direction to world space.
func (f frame) vec(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, f.X), r3.Scale(v.Y, f.Y)), r3.Scale(v.Z, f.Z))
}

// child composes a local transform under f.
func (f frame) child(t *components.Transform) frame {
	o := t.Apply(r3.Vec{})
	axis := func(e r3.Vec) r3.Vec {
		return f.vec(r3.Sub(t.Apply(e), o))
	}
	return frame{
		O: f.point(o),
		X: axis(r3.Vec{X: 1}),
		Y: axis(r3.Vec{Y: 1}),
		Z: axis(r3.Vec{Z: 1}),
	}
}

// scale returns the mean axis length, used to size billboards.
func (f frame) scale() float64 {
	return (r3.Norm(f.X) + r3.Norm(f.Y) + r3.Norm(f.Z)) / 3
}
