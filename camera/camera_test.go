package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/sunset/config"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return New(cfg)
}

func TestDragSaturatesHorizontal(t *testing.T) {
	cam := newTestCamera(t)
	maxH := cam.Limits.MaxHorizontal

	cam.DragStart(0, 0)
	x := 0.0
	for i := 0; i < 10; i++ {
		x += 1000
		cam.DragMove(x, 0)
		assert.LessOrEqual(t, cam.Horizontal, maxH)
	}
	cam.DragEnd(x, 0)

	assert.Equal(t, maxH, cam.Horizontal, "repeated drag should pin the angle at the limit")
	assert.Equal(t, 20*math.Pi/180, maxH)
	assert.Zero(t, cam.Vertical)
}

func TestOrbitAnglesStayBounded(t *testing.T) {
	cam := newTestCamera(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5000; i++ {
		cam.Orbit(rng.NormFloat64()*400, rng.NormFloat64()*400)
		require.LessOrEqual(t, math.Abs(cam.Horizontal), cam.Limits.MaxHorizontal)
		require.LessOrEqual(t, math.Abs(cam.Vertical), cam.Limits.MaxVertical)
	}
}

func TestDragDirection(t *testing.T) {
	cam := newTestCamera(t)
	cam.DragStart(100, 100)
	cam.DragMove(110, 90)

	assert.InDelta(t, 10*0.003, cam.Horizontal, 1e-12)
	assert.InDelta(t, 10*0.003, cam.Vertical, 1e-12, "dragging up raises the camera")
}

func TestRadiusStaysBounded(t *testing.T) {
	cam := newTestCamera(t)
	rng := rand.New(rand.NewSource(2))

	cam.PinchStart(200)
	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			cam.Wheel(rng.NormFloat64() * 500)
		case 1:
			cam.Pinch(rng.Float64() * 800)
		default:
			cam.PinchStart(1 + rng.Float64()*400)
		}
		require.GreaterOrEqual(t, cam.Radius, cam.Limits.MinRadius)
		require.LessOrEqual(t, cam.Radius, cam.Limits.MaxRadius)
	}
}

func TestWheelRange(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"zoom out stops at wheel max", 10000, 10},
		{"zoom in stops at min", -10000, 4},
		{"small step", 100, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newTestCamera(t)
			cam.Wheel(tt.delta)
			assert.InDelta(t, tt.want, cam.Radius, 1e-9)
		})
	}
}

func TestPinchDegenerateDistances(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newTestCamera(t)
			cam.PinchStart(100)
			cam.Pinch(tt.distance)
			assert.Equal(t, 6.0, cam.Radius)

			// The next valid event still measures from the last valid distance.
			cam.Pinch(50)
			assert.InDelta(t, 6+50*0.02, cam.Radius, 1e-9)
		})
	}
}

func TestPinchFromZeroStartDoesNotJump(t *testing.T) {
	cam := newTestCamera(t)
	cam.PinchStart(0)
	cam.Pinch(300)
	assert.Equal(t, 6.0, cam.Radius, "first valid distance only seeds the gesture")
	cam.Pinch(200)
	assert.InDelta(t, 8.0, cam.Radius, 1e-9)
}

func TestGesturesAreExclusive(t *testing.T) {
	cam := newTestCamera(t)

	cam.DragStart(0, 0)
	assert.Equal(t, Dragging, cam.Mode())

	cam.PinchStart(100)
	assert.Equal(t, Pinching, cam.Mode())
	cam.DragMove(500, 500)
	assert.Zero(t, cam.Horizontal, "drag moves are ignored while pinching")

	cam.PinchEnd()
	assert.Equal(t, Idle, cam.Mode())
	cam.Pinch(10)
	assert.Equal(t, 6.0, cam.Radius, "pinch moves are ignored when idle")
}

func TestNonFiniteInputIgnored(t *testing.T) {
	cam := newTestCamera(t)
	cam.DragStart(0, 0)
	cam.DragMove(math.NaN(), 3)
	cam.Orbit(math.Inf(1), 0)
	cam.Wheel(math.NaN())

	pos := cam.Position()
	assert.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z))
	assert.Zero(t, cam.Horizontal)
	assert.Equal(t, 6.0, cam.Radius)
}

func TestPosition(t *testing.T) {
	cam := newTestCamera(t)
	pos := cam.Position()
	assert.InDelta(t, 0.0, pos.X, 1e-12)
	assert.InDelta(t, 5.0, pos.Y, 1e-12)
	assert.InDelta(t, 42.0, pos.Z, 1e-12)

	cam.Horizontal = math.Pi / 2
	cam.Vertical = math.Pi / 2
	pos = cam.Position()
	assert.InDelta(t, 6.0, pos.X, 1e-12)
	assert.InDelta(t, 7.0, pos.Y, 1e-12)
	assert.InDelta(t, 36.0, pos.Z, 1e-12)
	assert.Equal(t, cam.Focus, cam.Target())
}
