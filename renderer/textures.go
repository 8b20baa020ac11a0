package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/scene"
)

const (
	sunTextureSize   = 128
	messageWidth     = 1024
	messageHeight    = 512
	messageFontSize  = 72
	messageSpacing   = 6
	messageLineSpace = 1.3
)

// spriteTextures holds the generated billboard textures.
type spriteTextures struct {
	tex map[scene.Sprite]rl.Texture2D
}

func loadSpriteTextures(cfg *config.Config, s *scene.Scene) *spriteTextures {
	t := &spriteTextures{tex: make(map[scene.Sprite]rl.Texture2D)}

	t.fromImage(scene.SpriteSun, rl.NewImageFromImage(sunImage(sunTextureSize)))
	if n := cfg.Clouds.TextureSize; n > 0 && len(s.CloudMask) > 0 {
		t.fromImage(scene.SpriteCloud, rl.NewImageFromImage(cloudImage(s.CloudMask, n)))
	}
	t.fromImage(scene.SpriteMessage, messageImage(cfg.Clouds.Message))
	return t
}

func (t *spriteTextures) fromImage(s scene.Sprite, img *rl.Image) {
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	t.tex[s] = tex
}

func (t *spriteTextures) get(s scene.Sprite) (rl.Texture2D, bool) {
	tex, ok := t.tex[s]
	return tex, ok
}

func (t *spriteTextures) unload() {
	for k, tex := range t.tex {
		rl.UnloadTexture(tex)
		delete(t.tex, k)
	}
}

// messageImage renders the greeting centred on a transparent canvas in white.
// Each line is laid out glyph by glyph so tildes can be drawn over their base letter.
func messageImage(text string) *rl.Image {
	img := rl.GenImageColor(messageWidth, messageHeight, rl.Blank)
	font := rl.GetFontDefault()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	lines := messageLines(text)
	lineH := float32(messageFontSize) * messageLineSpace
	y := (messageHeight - lineH*float32(len(lines))) / 2

	for _, line := range lines {
		widths := make([]float32, len(line))
		var total float32
		for i, g := range line {
			widths[i] = rl.MeasureTextEx(font, g.base, messageFontSize, 0).X
			total += widths[i]
			if i > 0 {
				total += messageSpacing
			}
		}

		x := (messageWidth - total) / 2
		for i, g := range line {
			rl.ImageDrawTextEx(img, rl.NewVector2(x, y), font, g.base, messageFontSize, 0, white)
			if g.tilde {
				drawTilde(img, x, y, widths[i], white)
			}
			x += widths[i] + messageSpacing
		}
		y += lineH
	}
	return img
}

// drawTilde draws a small wave just above a glyph cell at (x, y).
func drawTilde(img *rl.Image, x, y, w float32, col color.RGBA) {
	top := y - messageFontSize*0.18
	amp := float32(messageFontSize) * 0.06
	pts := []rl.Vector2{
		rl.NewVector2(x+w*0.1, top+amp),
		rl.NewVector2(x+w*0.35, top-amp),
		rl.NewVector2(x+w*0.65, top+amp),
		rl.NewVector2(x+w*0.9, top-amp),
	}
	for i := 0; i+1 < len(pts); i++ {
		rl.ImageDrawLineEx(img, pts[i], pts[i+1], 4, col)
	}
}
