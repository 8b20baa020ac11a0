package renderer

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	sunCore = colorful.Color{R: 1, G: 0.98, B: 0.85}
	sunRim  = colorful.Color{R: 1, G: 0.55, B: 0.2}
)

// sunImage draws the sun glow: a bright core fading through orange to
// transparent at the edge.
func sunImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			r := math.Sqrt(dx*dx + dy*dy)
			if r >= 1 {
				continue
			}
			c := sunCore.BlendLab(sunRim, math.Min(1, r*1.6)).Clamped()
			a := math.Pow(1-r, 1.5)
			cr, cg, cb := c.RGB255()
			img.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

// cloudImage copies a generated cloud mask into an image.
// The mask is white; materials tint it at draw time.
func cloudImage(mask []color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i, px := range mask {
		if i >= size*size {
			break
		}
		img.SetRGBA(i%size, i/size, px)
	}
	return img
}

// glyph is one printable character of the greeting, with an optional
// tilde drawn above it.
type glyph struct {
	base  string
	tilde bool
}

// accents maps the accented capitals the greeting uses onto base letters
// the built-in font can draw. Only the tilde gets a mark drawn back on.
var accents = map[rune]glyph{
	'Ñ': {"N", true}, 'ñ': {"n", true},
	'Á': {"A", false}, 'É': {"E", false}, 'Í': {"I", false}, 'Ó': {"O", false}, 'Ú': {"U", false},
	'á': {"a", false}, 'é': {"e", false}, 'í': {"i", false}, 'ó': {"o", false}, 'ú': {"u", false},
}

// messageLines splits text into lines of drawable glyphs.
func messageLines(text string) [][]glyph {
	var out [][]glyph
	for _, line := range strings.Split(text, "\n") {
		var gs []glyph
		for _, r := range line {
			if g, ok := accents[r]; ok {
				gs = append(gs, g)
				continue
			}
			if r < 0x20 || r > 0x7e {
				r = '?'
			}
			gs = append(gs, glyph{base: string(r)})
		}
		out = append(out, gs)
	}
	return out
}
