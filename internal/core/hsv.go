package core

import "math"

// RGBColor is an 8-bit per channel RGB color.
type RGBColor struct {
	R, G, B uint8
}

// HSVColor holds a color in HSV space with H in [0, 360) and S, V in [0, 1].
type HSVColor struct {
	H float64
	S float64
	V float64
}

// HSV converts the color to HSV. Achromatic colors have hue 0 and saturation 0.
func (c RGBColor) HSV() HSVColor {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	var h float64
	switch {
	case diff == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/diff, 6)
	case maxC == g:
		h = 60 * ((b-r)/diff + 2)
	default:
		h = 60 * ((r-g)/diff + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxC > 0 {
		s = diff / maxC
	}

	return HSVColor{H: h, S: s, V: maxC}
}
