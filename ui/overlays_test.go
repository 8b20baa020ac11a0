package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOverlayDefaults(t *testing.T) {
	r := NewOverlayRegistry()
	assert.Equal(t, []OverlayID{OverlayHUD, OverlayControls}, r.EnabledOverlays())
	assert.Len(t, r.All(), 5)

	desc, ok := r.Get(OverlayPerf)
	assert.True(t, ok)
	assert.Equal(t, "P", desc.KeyLabel)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestOverlayToggle(t *testing.T) {
	r := NewOverlayRegistry()
	assert.False(t, r.Toggle(OverlayHUD))
	assert.False(t, r.IsEnabled(OverlayHUD))
	assert.True(t, r.Toggle(OverlayHUD))
	assert.False(t, r.Toggle("missing"))
}

func TestOverlayExclusiveBothWays(t *testing.T) {
	r := NewOverlayRegistry()

	r.SetEnabled(OverlayAudio, true)
	r.SetEnabled(OverlayPerf, true)
	assert.True(t, r.IsEnabled(OverlayPerf))
	assert.False(t, r.IsEnabled(OverlayAudio), "perf hides audio")

	r.SetEnabled(OverlayAudio, true)
	assert.True(t, r.IsEnabled(OverlayAudio))
	assert.False(t, r.IsEnabled(OverlayPerf), "audio hides perf")

	r.SetEnabled(OverlayInspector, true)
	assert.True(t, r.IsEnabled(OverlayAudio), "unrelated panels are untouched")
}

func TestOverlayHandleKeyPress(t *testing.T) {
	r := NewOverlayRegistry()

	id, on, ok := r.HandleKeyPress(rl.KeyI)
	assert.True(t, ok)
	assert.Equal(t, OverlayInspector, id)
	assert.True(t, on)

	_, _, ok = r.HandleKeyPress(rl.KeyZ)
	assert.False(t, ok)
}

func TestOverlayLegend(t *testing.T) {
	r := NewOverlayRegistry()
	assert.Equal(t, "[H] HUD  [F1] Controls  [V] Audio  [P] Performance  [I] Scene", r.Legend())
}

func TestFieldRangeFraction(t *testing.T) {
	r := FieldRange{Min: 10, Max: 20}
	assert.Equal(t, 0.5, r.Fraction(15))
	assert.Equal(t, 0.0, r.Fraction(5))
	assert.Equal(t, 1.0, r.Fraction(25))
	assert.Equal(t, 0.25, DefaultRange().Fraction(0.25))
	assert.Zero(t, FieldRange{Min: 1, Max: 1}.Fraction(1), "empty range")
}

func TestFieldsHeight(t *testing.T) {
	theme := DefaultTheme()
	fields := []FieldDescriptor[SceneInfo]{
		{Label: "Scene", Widget: WidgetSection},
		{Label: "Nodes", Widget: WidgetText, Format: "%.0f"},
		{Widget: WidgetSpacer},
		{Label: "Sparks", Widget: WidgetBar},
	}
	want := theme.LineHeight*2 + 6 + theme.LineHeight + 2
	assert.Equal(t, want, FieldsHeight(theme, fields))
}
