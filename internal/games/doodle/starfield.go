package doodle

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/vovakirdan/doodle-arcade/internal/core"
)

// Starfield draws a noise-based background that scrolls with altitude.
type Starfield struct {
	noise     *perlin.Perlin
	scale     float64
	threshold float64
}

// NewStarfield creates a starfield for the given seed.
func NewStarfield(seed int64) *Starfield {
	return &Starfield{
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		scale:     0.37,
		threshold: 0.28,
	}
}

// Draw fills empty cells of rows [top, bottom) with stars. offsetRows shifts
// the pattern so it moves down as the camera climbs.
func (s *Starfield) Draw(dst *core.Screen, top, bottom int, offsetRows float64) {
	for y := top; y < bottom; y++ {
		wy := (float64(y-top) - offsetRows) * s.scale
		for x := 0; x < dst.Width(); x++ {
			v := s.noise.Noise2D(float64(x)*s.scale, wy)
			switch {
			case v > s.threshold+0.12:
				dst.SetColored(x, y, '✦', core.ColorGray)
			case v > s.threshold:
				dst.SetColored(x, y, '·', core.ColorDarkGray)
			}
		}
	}
}
