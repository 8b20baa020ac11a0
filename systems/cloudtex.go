package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// CloudMask generates the alpha mask for cloud sprites: a cluster of soft
// puffs near the centre, broken up with simplex noise so the edges look
// wispy. Pixels are white with alpha carrying the shape.
type CloudMask struct {
	Size    int
	Scale   float64 // Noise frequency across the texture
	Octaves int

	noise opensimplex.Noise
	rng   *rand.Rand
}

type puff struct {
	x, y, r float64
}

// NewCloudMask creates a generator; the seed fixes both puff layout and noise.
func NewCloudMask(size int, scale float64, octaves int, seed int64) *CloudMask {
	if size < 8 {
		size = 8
	}
	if octaves < 1 {
		octaves = 1
	}
	return &CloudMask{
		Size:    size,
		Scale:   scale,
		Octaves: octaves,
		noise:   opensimplex.NewNormalized(seed),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate returns Size*Size RGBA pixels, row-major.
func (m *CloudMask) Generate() []color.RGBA {
	n := m.Size
	puffs := make([]puff, 8+m.rng.Intn(8))
	for i := range puffs {
		puffs[i] = puff{
			x: 0.3 + m.rng.Float64()*0.4,
			y: 0.3 + m.rng.Float64()*0.4,
			r: 0.1 + m.rng.Float64()*0.2,
		}
	}

	pixels := make([]color.RGBA, n*n)
	for py := 0; py < n; py++ {
		v := (float64(py) + 0.5) / float64(n)
		for px := 0; px < n; px++ {
			u := (float64(px) + 0.5) / float64(n)

			// Puffs composite like canvas "source-over" with alpha 0.8 at their centre
			a := 0.0
			for _, p := range puffs {
				d := math.Hypot(u-p.x, v-p.y) / p.r
				if d >= 1 {
					continue
				}
				pa := 0.8 * (1 - d)
				a = pa + a*(1-pa)
			}
			if a == 0 {
				continue
			}

			a *= 0.55 + 0.45*m.fbm(u, v)
			pixels[py*n+px] = color.RGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(a)*255 + 0.5)}
		}
	}
	return pixels
}

// fbm sums octaves of normalized simplex noise into [0, 1].
func (m *CloudMask) fbm(u, v float64) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	freq := m.Scale
	for o := 0; o < m.Octaves; o++ {
		sum += amp * m.noise.Eval2(u*freq, v*freq)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// Coverage returns the mean alpha of a mask in [0, 1].
func Coverage(pixels []color.RGBA) float64 {
	if len(pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range pixels {
		total += float64(p.A)
	}
	return total / float64(len(pixels)) / 255
}
