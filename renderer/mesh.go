package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// mesh is a flat triangle list in a node's local space.
// Shapes without animated vertices are built once and cached per node.
type mesh []r3.Vec

const torusTubeSegments = 8

func (m *mesh) tri(a, b, c r3.Vec) {
	*m = append(*m, a, b, c)
}

func (m *mesh) quad(a, b, c, d r3.Vec) {
	m.tri(a, b, c)
	m.tri(a, c, d)
}

// torusMesh builds a ring of the given radius in the XY plane.
func torusMesh(radius, tube float64, slices int) mesh {
	if slices < 3 {
		slices = 3
	}
	at := func(i, j int) r3.Vec {
		u := float64(i%slices) / float64(slices) * 2 * math.Pi
		v := float64(j%torusTubeSegments) / torusTubeSegments * 2 * math.Pi
		r := radius + tube*math.Cos(v)
		return r3.Vec{X: r * math.Cos(u), Y: r * math.Sin(u), Z: tube * math.Sin(v)}
	}
	m := make(mesh, 0, slices*torusTubeSegments*6)
	for i := 0; i < slices; i++ {
		for j := 0; j < torusTubeSegments; j++ {
			m.quad(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return m
}

// latheMesh revolves a profile (X radius, Y height) about the Y axis.
func latheMesh(profile []r3.Vec, slices int) mesh {
	if slices < 3 {
		slices = 3
	}
	at := func(p r3.Vec, k int) r3.Vec {
		a := float64(k%slices) / float64(slices) * 2 * math.Pi
		return r3.Vec{X: p.X * math.Sin(a), Y: p.Y, Z: p.X * math.Cos(a)}
	}
	var m mesh
	for i := 0; i+1 < len(profile); i++ {
		p, q := profile[i], profile[i+1]
		for k := 0; k < slices; k++ {
			m.quad(at(p, k), at(p, k+1), at(q, k+1), at(q, k))
		}
	}
	return m
}

// discMesh builds a filled circle in the XY plane.
func discMesh(radius float64, slices int) mesh {
	if slices < 3 {
		slices = 3
	}
	m := make(mesh, 0, slices*3)
	for k := 0; k < slices; k++ {
		a0 := float64(k) / float64(slices) * 2 * math.Pi
		a1 := float64(k+1) / float64(slices) * 2 * math.Pi
		m.tri(r3.Vec{},
			r3.Vec{X: radius * math.Cos(a0), Y: radius * math.Sin(a0)},
			r3.Vec{X: radius * math.Cos(a1), Y: radius * math.Sin(a1)})
	}
	return m
}

// fanMesh triangulates a convex-ish outline from its first point.
func fanMesh(outline []r3.Vec) mesh {
	var m mesh
	for i := 1; i+1 < len(outline); i++ {
		m.tri(outline[0], outline[i], outline[i+1])
	}
	return m
}

// tubeMesh sweeps a circle along path. The radius shrinks linearly from
// radius at the start to radius*taper at the end.
func tubeMesh(path []r3.Vec, radius, taper float64, slices int) mesh {
	n := len(path)
	if n < 2 {
		return nil
	}
	if slices < 3 {
		slices = 3
	}

	rings := make([][]r3.Vec, n)
	for i := range path {
		var tan r3.Vec
		switch {
		case i == 0:
			tan = r3.Sub(path[1], path[0])
		case i == n-1:
			tan = r3.Sub(path[n-1], path[n-2])
		default:
			tan = r3.Sub(path[i+1], path[i-1])
		}
		tan = unitOr(tan, r3.Vec{Y: 1})

		// Any vector not parallel to the tangent gives a stable ring basis
		ref := r3.Vec{Z: 1}
		if math.Abs(tan.Z) > 0.9 {
			ref = r3.Vec{X: 1}
		}
		u := unitOr(r3.Cross(tan, ref), r3.Vec{X: 1})
		v := r3.Cross(tan, u)

		r := radius * (1 + (taper-1)*float64(i)/float64(n-1))
		ring := make([]r3.Vec, slices)
		for k := range ring {
			a := float64(k) / float64(slices) * 2 * math.Pi
			off := r3.Add(r3.Scale(r*math.Cos(a), u), r3.Scale(r*math.Sin(a), v))
			ring[k] = r3.Add(path[i], off)
		}
		rings[i] = ring
	}

	m := make(mesh, 0, (n-1)*slices*6)
	for i := 0; i+1 < n; i++ {
		a, b := rings[i], rings[i+1]
		for k := 0; k < slices; k++ {
			k1 := (k + 1) % slices
			m.quad(a[k], a[k1], b[k1], b[k])
		}
	}
	return m
}

func unitOr(v, fallback r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < 1e-12 {
		return fallback
	}
	return r3.Scale(1/n, v)
}
