package gauge

import "github.com/gogpu/gg"

// ledFrame locates the LED on its layer.
type ledFrame struct {
	X, Y  float64
	Size  float64
	Face  float64 // viewport width
	Color gg.RGBA
	On    bool
}

// ledSize returns the LED diameter for kind.
func ledSize(kind LedType, vp Viewport) float64 {
	if kind == LedFlat {
		return 0.05 * vp.ScaledHeight
	}
	return 0.06 * vp.ScaledHeight
}

// ledOrigin returns the top left corner of the LED square.
func ledOrigin(vp Viewport) gg.Point {
	x := 0.425 * vp.Height
	if vp.Knob == CenterLeft {
		x = 0.025 * vp.Height
	}
	return gg.Pt(x, 0.35*vp.Height)
}

func (f ledFrame) at(fx, fy float64) (float64, float64) {
	return f.X + fx*f.Size, f.Y + fy*f.Size
}

// diagonal returns a linear gradient running from (a, a) to (b, b) in LED
// fractions.
func (f ledFrame) diagonal(a, b float64) *gg.LinearGradientBrush {
	x0, y0 := f.at(a, a)
	x1, y1 := f.at(b, b)
	return gg.NewLinearGradientBrush(x0, y0, x1, y1)
}

type ledRecipe func(p pen, f ledFrame)

var ledRecipes = map[LedType]ledRecipe{
	LedStandard: standardLed,
	LedFlat:     flatLed,
}

func paintLed(p pen, kind LedType, f ledFrame) {
	recipe, ok := ledRecipes[kind]
	if !ok {
		recipe = standardLed
	}
	recipe(p, f)
}

func standardLed(p pen, f ledFrame) {
	s := f.Size
	c := f.Color

	p.fillOval(f.X, f.Y, s, s, f.diagonal(0.14, 0.84).
		AddColorStop(0, RGBA255(20, 20, 20, 0.65)).
		AddColorStop(0.15, RGBA255(20, 20, 20, 0.65)).
		AddColorStop(0.26, RGBA255(41, 41, 41, 0.65)).
		AddColorStop(0.26, RGBA255(41, 41, 41, 0.64)).
		AddColorStop(0.85, RGBA255(200, 200, 200, 0.41)).
		AddColorStop(1, RGBA255(200, 200, 200, 0.35)))

	bx, by := f.at(0.14, 0.14)
	bs := 0.72 * s
	cx, cy := f.at(0.5, 0.5)

	var body *gg.LinearGradientBrush
	if f.On {
		glow := bs*0.5 + 0.36*s
		p.fillOval(cx-glow, cy-glow, 2*glow, 2*glow, gg.NewRadialGradientBrush(cx, cy, 0, glow).
			AddColorStop(0, c).
			AddColorStop(bs*0.5/glow, Derive(c, 0, 1, 1, 0.6)).
			AddColorStop(1, gg.Transparent))
		body = f.diagonal(0.25, 0.74).
			AddColorStop(0, Derive(c, 0, 1, 0.77, 1)).
			AddColorStop(0.49, Derive(c, 0, 1, 0.5, 1)).
			AddColorStop(1, c)
	} else {
		body = f.diagonal(0.25, 0.74).
			AddColorStop(0, Derive(c, 0, 1, 0.2, 1)).
			AddColorStop(0.49, Derive(c, 0, 1, 0.13, 1)).
			AddColorStop(1, Derive(c, 0, 1, 0.2, 1))
	}
	p.fillOval(bx, by, bs, bs, body)

	// Inner rim shadow.
	rim := 0.07 * s
	p.fillOval(bx, by, bs, bs, gg.NewRadialGradientBrush(cx, cy, 0, bs*0.5).
		AddColorStop(0, gg.Transparent).
		AddColorStop(1-rim/(bs*0.5), gg.Transparent).
		AddColorStop(1, RGBA255(0, 0, 0, 0.65)))

	hx, hy := f.at(0.21, 0.21)
	gx, gy := f.at(0.3, 0.3)
	p.fillOval(hx, hy, 0.58*s, 0.58*s, gg.NewRadialGradientBrush(gx, gy, 0, 0.29*s).
		AddColorStop(0, gg.White).
		AddColorStop(1, gg.Transparent))
}

func flatLed(p pen, f ledFrame) {
	s := f.Size
	c := f.Color
	lw := 0.0037037 * f.Face
	p.strokeOval(f.X+lw, f.Y+lw, s-2*lw, s-2*lw, gg.Solid(gg.White), lw)

	_, y0 := f.at(0, 0.25)
	_, y1 := f.at(0, 0.74)
	g := gg.NewLinearGradientBrush(0, y0, 0, y1)
	if f.On {
		g.AddColorStop(0, c).AddColorStop(1, Derive(c, 0, 1, 0.5, 1))
	} else {
		g.AddColorStop(0, Derive(c, 0, 1, 0.5, 1)).AddColorStop(1, Derive(c, 0, 1, 0.13, 1))
	}
	bx, by := f.at(0.2, 0.2)
	p.fillOval(bx, by, 0.6*s, 0.6*s, g)
}
