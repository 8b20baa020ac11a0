package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.01, cfg.Sim.Step)
	assert.Equal(t, 150, cfg.Sparkler.Capacity)
	assert.InDelta(t, 20*math.Pi/180, cfg.Derived.MaxHorizontal, 1e-12)
	assert.Equal(t, cfg.Scene.FogFar-cfg.Scene.FogNear, cfg.Derived.FogRange)
	assert.GreaterOrEqual(t, cfg.Derived.TicksPerStats, 1)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sparkler:\n  capacity: 10\nscene:\n  sky_color: \"#000000\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Sparkler.Capacity)
	assert.Equal(t, Color{}, cfg.Scene.SkyColor)
	assert.Equal(t, 0.02, cfg.Sparkler.Decay, "untouched fields keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  step: 0\nwave:\n  retreat_z: 50\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sim.step")
	assert.Contains(t, err.Error(), "retreat_z")
}

func TestLoadBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "color.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  fog_color: \"#12\"\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "expected 6 hex digits")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"#ffd700", "ffd700", "0xFFD700", " #FFD700 "} {
		c, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, "#ffd700", c.String())
	}
	_, err := ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestInitAndCfg(t *testing.T) {
	require.NoError(t, Init(""))
	assert.NotNil(t, Cfg())
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))
}
