package gauge

import "github.com/gogpu/gg"

// knobFrame carries everything a knob recipe needs. X and Y locate the top
// left corner of the knob's bounding square on the layer.
type knobFrame struct {
	X, Y    float64
	Size    float64
	Face    float64 // viewport width
	Color   gg.RGBA
	Pressed bool
}

// at maps fractions of the knob size to layer coordinates.
func (f knobFrame) at(fx, fy float64) (float64, float64) {
	return f.X + fx*f.Size, f.Y + fy*f.Size
}

// tint returns the knob colour with its brightness scaled by k.
func (f knobFrame) tint(k float64) gg.RGBA {
	h, s, v := ToHSB(f.Color)
	if f.Color.R == 0 && f.Color.G == 0 && f.Color.B == 0 {
		v = 0.2
	}
	return HSB(h, s, v*k, f.Color.A)
}

// pick returns pressed when the knob is pressed and normal otherwise.
func (f knobFrame) pick(pressed, normal float64) float64 {
	if f.Pressed {
		return pressed
	}
	return normal
}

type knobRecipe func(p pen, f knobFrame)

var knobRecipes = map[KnobType]knobRecipe{
	KnobStandard: standardKnob,
	KnobPlain:    plainKnob,
	KnobMetal:    metalKnob,
	KnobFlat:     flatKnob,
}

// paintKnob draws the knob with the recipe of kind, falling back to the
// standard knob.
func paintKnob(p pen, kind KnobType, f knobFrame) {
	recipe, ok := knobRecipes[kind]
	if !ok {
		recipe = standardKnob
	}
	recipe(p, f)
}

func plainKnob(p pen, f knobFrame) {
	s := f.Size
	_, y0 := f.at(0, 0)
	_, y1 := f.at(0, 1)
	p.fillOval(f.X, f.Y, s, s, gg.NewLinearGradientBrush(0, y0, 0, y1).
		AddColorStop(0, RGB255(180, 180, 180)).
		AddColorStop(0.46, RGB255(63, 63, 63)).
		AddColorStop(1, RGB255(40, 40, 40)))

	const inset = 0.11764706
	ix, iy := f.at(inset, inset)
	is := s * (1 - 2*inset)
	_, gy0 := f.at(0, inset)
	_, gy1 := f.at(0, 0.76470588)
	p.fillOval(ix, iy, is, is, gg.NewLinearGradientBrush(0, gy0, 0, gy1).
		AddColorStop(0, f.tint(f.pick(0.9, 1))).
		AddColorStop(0.01, f.tint(f.pick(0.75, 0.85))).
		AddColorStop(0.5, f.tint(f.pick(0.4, 0.5))).
		AddColorStop(0.51, f.tint(f.pick(0.35, 0.45))).
		AddColorStop(1, f.tint(f.pick(0.7, 0.8))))

	cx, cy := f.at(0.5, 0.47)
	p.fillOval(ix, iy, is, is, gg.NewRadialGradientBrush(cx, cy, 0, s*0.38).
		AddColorStop(0, gg.Transparent).
		AddColorStop(0.76, gg.Transparent).
		AddColorStop(1, RGBA255(0, 0, 0, f.pick(0.5, 0.2))))
}

func metalKnob(p pen, f knobFrame) {
	s := f.Size
	_, y0 := f.at(0, 0)
	_, y1 := f.at(0, 1)
	p.fillOval(f.X, f.Y, s, s, gg.NewLinearGradientBrush(0, y0, 0, y1).
		AddColorStop(0, RGB255(92, 95, 101)).
		AddColorStop(0.47, RGB255(46, 49, 53)).
		AddColorStop(1, RGB255(22, 23, 26)))

	const inset = 0.05882353
	ix, iy := f.at(inset, inset)
	_, gy0 := f.at(0, inset)
	_, gy1 := f.at(0, 1-inset)
	p.fillOval(ix, iy, s*0.88235294, s*0.88235294, gg.NewLinearGradientBrush(0, gy0, 0, gy1).
		AddColorStop(0, f.tint(f.pick(0.7, 0.9))).
		AddColorStop(0, f.tint(f.pick(0.3, 0.5))))

	// Lower reflection.
	lower := f.path(
		[2]float64{0.17647059, 0.82352941},
		[6]float64{0.29411765, 0.88235294, 0.35294118, 0.94117647, 0.52941176, 0.94117647},
		[6]float64{0.64705882, 0.94117647, 0.70588235, 0.88235294, 0.82352941, 0.82352941},
		[6]float64{0.76470588, 0.70588235, 0.64705882, 0.58823529, 0.52941176, 0.58823529},
		[6]float64{0.35294118, 0.58823529, 0.23529412, 0.70588235, 0.17647059, 0.82352941},
	)
	lx, ly := f.at(0.47058824, 0.88235294)
	p.fill(lower, gg.NewRadialGradientBrush(lx, ly, 0, s*0.32352941).
		AddColorStop(0, RGBA255(255, 255, 255, f.pick(0.3, 0.6))).
		AddColorStop(1, gg.Transparent))

	// Upper reflection.
	upper := f.path(
		[2]float64{0.05882353, 0.29411765},
		[6]float64{0.17647059, 0.35294118, 0.35294118, 0.35294118, 0.52941176, 0.35294118},
		[6]float64{0.64705882, 0.35294118, 0.82352941, 0.35294118, 0.94117647, 0.29411765},
		[6]float64{0.88235294, 0.11764706, 0.70588235, 0, 0.52941176, 0},
		[6]float64{0.29411765, 0, 0.11764706, 0.11764706, 0.05882353, 0.29411765},
	)
	ux, uy := f.at(0.47058824, 0)
	p.fill(upper, gg.NewRadialGradientBrush(ux, uy, 0, s*0.44117647).
		AddColorStop(0, RGBA255(255, 255, 255, f.pick(0.45, 0.75))).
		AddColorStop(1, gg.Transparent))

	gx, gy0 := f.at(0.52941176, 0.23529412)
	_, gy1 = f.at(0.52941176, 0.76470588)
	ox, oy := f.at(0.23529412, 0.23529412)
	p.fillOval(ox, oy, s*0.52941176, s*0.52941176, gg.NewLinearGradientBrush(gx, gy0, gx, gy1).
		AddColorStop(0, gg.Black).
		AddColorStop(1, RGB255(204, 204, 204)))

	_, gy0 = f.at(0, 0.29411765)
	_, gy1 = f.at(0, 0.70588235)
	ox, oy = f.at(0.29411765, 0.29411765)
	p.fillOval(ox, oy, s*0.41176471, s*0.41176471, gg.NewLinearGradientBrush(gx, gy0, gx, gy1).
		AddColorStop(0, RGB255(1, 6, 11)).
		AddColorStop(1, RGB255(50, 52, 56)))
}

func flatKnob(p pen, f knobFrame) {
	lw := 0.00740741 * f.Face
	size := f.Size - 2*lw
	fill, stroke := f.Color, gg.White
	if f.Pressed {
		fill, stroke = Darker(fill), Darker(stroke)
	}
	p.fillOval(f.X+lw, f.Y+lw, size, size, gg.Solid(fill))
	p.strokeOval(f.X+lw, f.Y+lw, size, size, gg.Solid(stroke), lw)
}

func standardKnob(p pen, f knobFrame) {
	s := f.Size
	base := RGB255(133, 133, 133)
	p.fillOval(f.X, f.Y, s, s, gg.NewLinearGradientBrush(0, f.Y, 0, f.Y+s).
		AddColorStop(0, Brighter(Brighter(base))).
		AddColorStop(0.52, base).
		AddColorStop(1, Darker(Darker(base))))

	top, bottom := f.Face*0.005, s-f.Face*0.01
	if f.Pressed {
		top, bottom = bottom, top
	}
	inset := f.Face * 0.005
	p.fillOval(f.X+inset, f.Y+inset, s-2*inset, s-2*inset,
		gg.NewLinearGradientBrush(0, f.Y+top, 0, f.Y+bottom).
			AddColorStop(0, f.tint(0.85)).
			AddColorStop(0.45, f.tint(0.65)).
			AddColorStop(1, f.tint(0.4)))
}

// path builds a closed path from a start point and cubic segments given in
// fractions of the knob size.
func (f knobFrame) path(start [2]float64, curves ...[6]float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(f.at(start[0], start[1]))
	for _, c := range curves {
		x1, y1 := f.at(c[0], c[1])
		x2, y2 := f.at(c[2], c[3])
		x, y := f.at(c[4], c[5])
		p.CubicTo(x1, y1, x2, y2, x, y)
	}
	p.Close()
	return p
}
