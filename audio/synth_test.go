package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorsStayInRange(t *testing.T) {
	rate := beep.SampleRate(22050)
	gens := map[string]beep.Streamer{
		"surf":     NewSurfGenerator(rate, 3),
		"arpeggio": NewArpeggioGenerator(rate),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			buf := make([][2]float64, 1024)
			nonZero := 0
			for chunk := 0; chunk < 40; chunk++ {
				n, ok := g.Stream(buf)
				require.True(t, ok, "generators never end")
				require.Equal(t, len(buf), n)
				for _, s := range buf {
					require.GreaterOrEqual(t, s[0], -1.0)
					require.LessOrEqual(t, s[0], 1.0)
					require.GreaterOrEqual(t, s[1], -1.0)
					require.LessOrEqual(t, s[1], 1.0)
					if s[0] != 0 {
						nonZero++
					}
				}
			}
			assert.Greater(t, nonZero, 1000)
		})
	}
}

func TestSurfIsSeeded(t *testing.T) {
	rate := beep.SampleRate(8000)
	a, b := NewSurfGenerator(rate, 9), NewSurfGenerator(rate, 9)
	bufA := make([][2]float64, 256)
	bufB := make([][2]float64, 256)
	a.Stream(bufA)
	b.Stream(bufB)
	assert.Equal(t, bufA, bufB)
	assert.NotEqual(t, bufA[10][0], bufA[10][1], "channels decorrelated")
}

func TestArpeggioCyclesNotes(t *testing.T) {
	g := NewArpeggioGenerator(beep.SampleRate(8000))
	assert.Len(t, g.notes, 32)
	assert.Equal(t, 2000, g.noteLen)

	buf := make([][2]float64, g.noteLen)
	g.Stream(buf)
	assert.Equal(t, buf[0][0], buf[0][1], "mono content on both channels")
	assert.Zero(t, buf[0][0], "each note starts from silence")
}
