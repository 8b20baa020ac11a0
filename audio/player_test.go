package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/sunset/config"
)

func testConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:       true,
		SampleRate:    22050,
		BufferMillis:  100,
		AmbientVolume: 0.4,
		MusicVolume:   0.5,
	}
}

// peak streams n samples from s and returns the largest magnitude seen.
func peak(t *testing.T, s beep.Streamer, n int) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	max := 0.0
	for n > 0 {
		chunk := buf
		if n < len(chunk) {
			chunk = chunk[:n]
		}
		got, ok := s.Stream(chunk)
		require.True(t, ok)
		for _, smp := range chunk[:got] {
			max = math.Max(max, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		n -= got
	}
	return max
}

func TestPlayerVolumes(t *testing.T) {
	p, err := New(testConfig())
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 0.4, p.Volume(Ambient))
	assert.Equal(t, 0.5, p.Volume(Music))
	assert.False(t, p.Muted())
	assert.Greater(t, peak(t, p.Streamer(), 22050), 0.0)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.25, 0.25},
		{"above one", 3, 1},
		{"negative", -1, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetVolume(Music, tt.in)
			assert.Equal(t, tt.want, p.Volume(Music))
		})
	}
}

func TestPlayerMute(t *testing.T) {
	p, err := New(testConfig())
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.ToggleMute())
	assert.True(t, p.Muted())
	assert.Zero(t, peak(t, p.Streamer(), 4096), "muted output is silent")

	// Levels survive a mute cycle
	p.SetVolume(Ambient, 0.3)
	assert.False(t, p.ToggleMute())
	assert.Equal(t, 0.3, p.Volume(Ambient))
	assert.Equal(t, 0.5, p.Volume(Music))
	assert.Greater(t, peak(t, p.Streamer(), 22050), 0.0)
}

func TestPlayerZeroLevelsAreSilent(t *testing.T) {
	cfg := testConfig()
	cfg.AmbientVolume = 0
	cfg.MusicVolume = 0
	p, err := New(cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.Zero(t, peak(t, p.Streamer(), 4096))
}

func TestPlayerStartsMutedFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Muted = true
	p, err := New(cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.Muted())
	assert.Zero(t, peak(t, p.Streamer(), 2048))
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.SetVolume(Music, 1)
		p.SetMuted(false)
		assert.True(t, p.ToggleMute())
		assert.True(t, p.Muted())
		assert.Zero(t, p.Volume(Ambient))
		assert.NoError(t, p.Start())
		assert.NoError(t, p.Close())
	})
}

func TestPlayerMissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.MusicFile = filepath.Join(t.TempDir(), "missing.wav")
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestPlayerLoopsWavFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	// Write a short 11025 Hz tone; the player must resample and loop it
	format := beep.Format{SampleRate: 11025, NumChannels: 2, Precision: 2}
	f, err := os.Create(path)
	require.NoError(t, err)
	tone := beep.Take(format.SampleRate.N(200*time.Millisecond), NewArpeggioGenerator(format.SampleRate))
	require.NoError(t, wav.Encode(f, tone, format))
	require.NoError(t, f.Close())

	cfg := testConfig()
	cfg.AmbientFile = path
	cfg.MusicVolume = 0
	p, err := New(cfg)
	require.NoError(t, err)

	// Several times the file length still streams audio
	assert.Greater(t, peak(t, p.Streamer(), 22050*2), 0.0)
	assert.NoError(t, p.Close())
}

func TestTrackString(t *testing.T) {
	assert.Equal(t, "ambient", Ambient.String())
	assert.Equal(t, "music", Music.String())
	assert.Equal(t, "unknown", Track(7).String())
}
