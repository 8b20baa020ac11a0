package scene

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is a smooth 3D path through control points, one natural cubic
// spline per axis over a uniform parameter u in [0, 1].
type Curve struct {
	x, y, z interp.NaturalCubic
	points  []r3.Vec
}

// NewCurve fits a curve through at least three points.
func NewCurve(points ...r3.Vec) (*Curve, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("curve needs at least 3 points, got %d", len(points))
	}
	us := make([]float64, len(points))
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	for i, p := range points {
		us[i] = float64(i) / float64(len(points)-1)
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	c := &Curve{points: points}
	if err := c.x.Fit(us, xs); err != nil {
		return nil, fmt.Errorf("fitting x: %w", err)
	}
	if err := c.y.Fit(us, ys); err != nil {
		return nil, fmt.Errorf("fitting y: %w", err)
	}
	if err := c.z.Fit(us, zs); err != nil {
		return nil, fmt.Errorf("fitting z: %w", err)
	}
	return c, nil
}

// MustCurve is NewCurve for fixed control points known to be valid.
func MustCurve(points ...r3.Vec) *Curve {
	c, err := NewCurve(points...)
	if err != nil {
		panic(err)
	}
	return c
}

// At returns the point at parameter u.
func (c *Curve) At(u float64) r3.Vec {
	u = clampUnit(u)
	return r3.Vec{X: c.x.Predict(u), Y: c.y.Predict(u), Z: c.z.Predict(u)}
}

// Tangent returns the unit direction of travel at u.
func (c *Curve) Tangent(u float64) r3.Vec {
	u = clampUnit(u)
	d := r3.Vec{X: c.x.PredictDerivative(u), Y: c.y.PredictDerivative(u), Z: c.z.PredictDerivative(u)}
	if r3.Norm(d) == 0 {
		return r3.Vec{Y: 1}
	}
	return r3.Unit(d)
}

// Sample returns n+1 evenly spaced points from start to end.
func (c *Curve) Sample(n int) []r3.Vec {
	if n < 1 {
		n = 1
	}
	out := make([]r3.Vec, n+1)
	for i := range out {
		out[i] = c.At(float64(i) / float64(n))
	}
	return out
}

// End returns the last control point.
func (c *Curve) End() r3.Vec {
	return c.points[len(c.points)-1]
}

func clampUnit(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}
