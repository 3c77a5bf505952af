package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// brightnessFactor is the step used by Darker and Brighter.
const brightnessFactor = 0.7

// RGB255 creates an opaque color from 8-bit components.
func RGB255(r, g, b uint8) gg.RGBA {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// RGBA255 creates a color from 8-bit components and an alpha in [0, 1].
func RGBA255(r, g, b uint8, a float64) gg.RGBA {
	return gg.RGBA2(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// HSB creates a color from hue [0, 360), saturation, brightness and alpha in [0, 1].
func HSB(h, s, v, a float64) gg.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(0, 1, s)
	v = clamp(0, 1, v)

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

	return gg.RGBA2(r+m, g+m, b+m, clamp(0, 1, a))
}

// ToHSB returns hue in degrees, saturation and brightness of c.
func ToHSB(c gg.RGBA) (h, s, v float64) {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxC {
	case c.R:
		h = 60 * math.Mod((c.G-c.B)/delta, 6)
	case c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// Derive shifts the hue of c and scales its saturation, brightness and
// opacity. A black color can still be brightened.
func Derive(c gg.RGBA, hueShift, satFactor, brightFactor, opacityFactor float64) gg.RGBA {
	h, s, v := ToHSB(c)
	if v == 0 && brightFactor > 1 {
		v = 0.05
	}
	h = math.Mod(math.Mod(h+hueShift, 360)+360, 360)
	return HSB(h, clamp(0, 1, s*satFactor), clamp(0, 1, v*brightFactor), clamp(0, 1, c.A*opacityFactor))
}

// Darker returns c with its brightness reduced by one step.
func Darker(c gg.RGBA) gg.RGBA {
	return Derive(c, 0, 1, brightnessFactor, 1)
}

// Brighter returns c with its brightness increased by one step.
func Brighter(c gg.RGBA) gg.RGBA {
	return Derive(c, 0, 1, 1/brightnessFactor, 1)
}

func clamp(lo, hi, x float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
