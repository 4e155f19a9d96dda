// Package look holds the drawing geometry and textures of the dice table.
// Nothing here touches the screen, so it can be tested without a window.
package look

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/dice-roll-go/dice"
)

// Table texture constants
const (
	grainAlpha   = 2.0
	grainBeta    = 2.0
	grainOctaves = 3
	grainStretch = 0.004 // Noise frequency along the planks
	grainAcross  = 0.03  // Noise frequency across the planks
	grainRings   = 12.0
)

// woodBase is the mid tone of the table
var woodBase = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}

// pips holds the pip positions of each face on a [-1,1] grid
var pips = [7][][2]float64{
	1: {{0, 0}},
	2: {{-1, -1}, {1, 1}},
	3: {{-1, -1}, {0, 0}, {1, 1}},
	4: {{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
	5: {{-1, -1}, {1, -1}, {0, 0}, {-1, 1}, {1, 1}},
	6: {{-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}},
}

// Pips returns the pip positions for face on a [-1,1] grid.
// Faces outside 1..6 have no pips.
func Pips(face int) [][2]float64 {
	if face < 1 || face > 6 {
		return nil
	}
	return pips[face]
}

// Squash returns the horizontal and vertical scale of a die drawn at rot.
// A die resting on a face is drawn square; while tumbling it foreshortens.
func Squash(rot dice.Orientation) (sx, sy float64) {
	canon, _ := dice.FaceOrientation(dice.ClassifyFace(rot))
	dx := dice.AngularDistance(rot.X, canon.X)
	dy := dice.AngularDistance(rot.Y, canon.Y)
	return 1 - 0.35*math.Abs(math.Sin(dy)), 1 - 0.35*math.Abs(math.Sin(dx))
}

// TableTexture renders a w*h wood grain as RGBA bytes.
func TableTexture(w, h int, seed int64) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}
	p := perlin.NewPerlin(grainAlpha, grainBeta, grainOctaves, seed)
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := p.Noise2D(float64(x)*grainStretch, float64(y)*grainAcross)
			ring := n*grainRings - math.Floor(n*grainRings)
			shade := 0.7 + 0.3*ring
			i := (y*w + x) * 4
			pix[i] = uint8(float64(woodBase.R) * shade)
			pix[i+1] = uint8(float64(woodBase.G) * shade)
			pix[i+2] = uint8(float64(woodBase.B) * shade)
			pix[i+3] = 0xff
		}
	}
	return pix
}

// DieColor returns a pale tint for die i
func DieColor(i int) color.RGBA {
	h := float64(i) / float64(dice.Count) * 360
	r, g, b := hsvToRGB(h, 0.12, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB converts a hue in degrees with saturation and value in [0,1] to RGB in [0,1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
