package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sunset/config"
)

// SkyRenderer fills the screen behind the scene with a vertical gradient
// from the sky color down to the fog color at the horizon.
type SkyRenderer struct {
	top, bottom color.RGBA
}

// NewSkyRenderer creates a sky renderer from the scene colors.
func NewSkyRenderer(cfg config.SceneConfig) *SkyRenderer {
	return &SkyRenderer{
		top:    rgba(cfg.SkyColor, 1),
		bottom: rgba(skyHorizon(cfg.SkyColor, cfg.FogColor), 1),
	}
}

// skyHorizon is the sky color blended 85% toward the fog color.
func skyHorizon(sky, fog config.Color) config.Color {
	return config.Color(colorful.Color(sky).BlendLab(colorful.Color(fog), 0.85).Clamped())
}

// Draw fills the current render target. Call before BeginMode3D.
func (s *SkyRenderer) Draw() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.ClearBackground(s.bottom)
	rl.DrawRectangleGradientV(0, 0, w, h, s.top, s.bottom)
}
