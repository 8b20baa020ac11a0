package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudMask(t *testing.T) {
	m := NewCloudMask(64, 3, 4, 7)
	px := m.Generate()
	require.Len(t, px, 64*64)

	// Corners are outside every puff
	assert.Zero(t, px[0].A)
	assert.Zero(t, px[len(px)-1].A)

	cov := Coverage(px)
	assert.Greater(t, cov, 0.02)
	assert.Less(t, cov, 0.8)

	for _, p := range px {
		if p.A > 0 {
			assert.Equal(t, uint8(255), p.R)
		}
	}
}

func TestCloudMaskSeeded(t *testing.T) {
	a := NewCloudMask(32, 3, 3, 11).Generate()
	b := NewCloudMask(32, 3, 3, 11).Generate()
	c := NewCloudMask(32, 3, 3, 12).Generate()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCoverageEmpty(t *testing.T) {
	assert.Zero(t, Coverage(nil))
}
