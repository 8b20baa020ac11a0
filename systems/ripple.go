package systems

import (
	"math"

	"github.com/pthm-cable/sunset/config"
)

// Static surface colors.
var (
	SandColor    = config.Hex(0xd4a574)
	BlanketBlue  = config.Hex(0x87ceeb)
	BlanketWhite = config.Hex(0xffffff)
)

// NewBeach builds the static sand plane with a gentle dune ripple.
func NewBeach() *Grid {
	g := NewGrid(150, 50, 60, 20)
	for i := range g.Z {
		g.Z[i] = math.Sin(g.X[i]*0.1)*0.08 + math.Cos(g.Y[i]*0.15)*0.05
	}
	g.Fill(SandColor)
	return g
}

// NewBlanket builds the picnic blanket: a slightly rumpled cloth with a
// checked pattern of the given number of squares per side. Checks are
// stored per cell so the pattern stays crisp.
func NewBlanket(size float64, checks int) *Grid {
	if checks < 1 {
		checks = 1
	}
	g := NewGrid(size, size, checks*2, checks*2)
	for i := range g.Z {
		g.Z[i] = math.Sin(g.X[i]*0.3)*0.02 + math.Cos(g.Y[i]*0.3)*0.02
	}
	g.Fill(BlanketWhite)

	g.CellColors = make([]config.Color, g.SegX*g.SegY)
	for cy := 0; cy < g.SegY; cy++ {
		for cx := 0; cx < g.SegX; cx++ {
			if (cx/2+cy/2)%2 == 0 {
				g.CellColors[cy*g.SegX+cx] = BlanketBlue
			} else {
				g.CellColors[cy*g.SegX+cx] = BlanketWhite
			}
		}
	}
	return g
}
