package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTorusMeshInXYPlane(t *testing.T) {
	m := torusMesh(2, 0.25, 12)
	require.Len(t, m, 12*torusTubeSegments*6)
	for _, v := range m {
		ring := math.Hypot(v.X, v.Y)
		assert.InDelta(t, 2, ring, 0.25+1e-9)
		assert.LessOrEqual(t, math.Abs(v.Z), 0.25+1e-9)
	}
}

func TestLatheMeshRadius(t *testing.T) {
	profile := []r3.Vec{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0.5, Y: 2}}
	m := latheMesh(profile, 8)
	require.Len(t, m, 2*8*6)
	for _, v := range m {
		r := math.Hypot(v.X, v.Z)
		switch v.Y {
		case 0:
			assert.InDelta(t, 1, r, 1e-9)
		case 1:
			assert.InDelta(t, 2, r, 1e-9)
		case 2:
			assert.InDelta(t, 0.5, r, 1e-9)
		default:
			t.Fatalf("unexpected height %v", v.Y)
		}
	}
}

func TestDiscMesh(t *testing.T) {
	m := discMesh(3, 2)
	require.Len(t, m, 3*3, "slices clamp to 3")
	for _, v := range m {
		assert.Zero(t, v.Z)
		assert.LessOrEqual(t, math.Hypot(v.X, v.Y), 3+1e-9)
	}
}

func TestFanMesh(t *testing.T) {
	assert.Empty(t, fanMesh([]r3.Vec{{}, {X: 1}}))
	m := fanMesh([]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}})
	assert.Len(t, m, 6)
}

func TestTubeMeshTaper(t *testing.T) {
	path := []r3.Vec{{Y: 0}, {Y: 1}, {Y: 2}}
	m := tubeMesh(path, 1, 0.5, 6)
	require.Len(t, m, 2*6*6)

	for _, v := range m {
		r := math.Hypot(v.X, v.Z)
		want := 1 - 0.25*v.Y
		assert.InDelta(t, want, r, 1e-9, "radius at y=%v", v.Y)
	}

	assert.Nil(t, tubeMesh(path[:1], 1, 1, 6))
}

func TestTubeMeshAlongZ(t *testing.T) {
	m := tubeMesh([]r3.Vec{{}, {Z: 2}}, 0.5, 1, 4)
	require.NotEmpty(t, m)
	for _, v := range m {
		assert.InDelta(t, 0.5, math.Hypot(v.X, v.Y), 1e-9)
	}
}
