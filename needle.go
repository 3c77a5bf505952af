package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Needle is a needle silhouette in its own coordinate space: the
// bounding box is [0, Width] x [0, Height] with the tip at y = 0. The needle
// rotates around Pivot.
type Needle struct {
	Type     NeedleType
	Path     *gg.Path
	Width    float64
	Height   float64
	Pivot    gg.Point
	FillRule gg.FillRule
}

// needleRecipe describes one needle variant. Heights and the pivot are
// indexed by TickLabelLocation.
type needleRecipe struct {
	// width as a fraction of the scaled height; 0 uses the NeedleSize factor.
	width    float64
	height   [2]float64
	pivotY   [2]float64
	fillRule gg.FillRule
	build    func(w, h, py float64) *gg.Path
}

var needleRecipes = map[NeedleType]needleRecipe{
	NeedleStandard: {
		height: [2]float64{TickLabelsInside: 0.455, TickLabelsOutside: 0.3965},
		pivotY: [2]float64{1, 1},
		build:  standardNeedle,
	},
	NeedleBig: {
		width:  0.06,
		height: [2]float64{TickLabelsInside: 0.4975, TickLabelsOutside: 0.415},
		pivotY: [2]float64{TickLabelsInside: 0.93969849, TickLabelsOutside: 0.92771084},
		build:  bigNeedle,
	},
	NeedleFat: {
		width:  0.3,
		height: [2]float64{0.505, 0.505},
		pivotY: [2]float64{0.7029703, 0.7029703},
		build:  fatNeedle,
	},
	NeedleScientific: {
		width:    0.1,
		height:   [2]float64{TickLabelsInside: 0.645, TickLabelsOutside: 0.5625},
		pivotY:   [2]float64{TickLabelsInside: 0.7248062, TickLabelsOutside: 0.68444444},
		fillRule: gg.FillRuleEvenOdd,
		build:    scientificNeedle,
	},
	NeedleAvionic: {
		width:  0.06,
		height: [2]float64{TickLabelsInside: 0.5975, TickLabelsOutside: 0.515},
		pivotY: [2]float64{TickLabelsInside: 0.78242678, TickLabelsOutside: 0.74757282},
		build:  avionicNeedle,
	},
	NeedleVariometer: {
		height: [2]float64{TickLabelsInside: 0.4675, TickLabelsOutside: 0.385},
		pivotY: [2]float64{1, 1},
		build:  variometerNeedle,
	},
}

// BuildNeedle builds the needle silhouette for a scaled height sh. It is a
// pure function of its arguments.
func BuildNeedle(t NeedleType, size NeedleSize, loc TickLabelLocation, sh float64) Needle {
	recipe, ok := needleRecipes[t]
	if !ok {
		t = NeedleStandard
		recipe = needleRecipes[t]
	}
	if loc != TickLabelsOutside {
		loc = TickLabelsInside
	}

	wf := recipe.width
	if wf == 0 {
		wf = size.Factor()
	}
	w := wf * sh
	h := recipe.height[loc] * sh
	py := recipe.pivotY[loc] * h

	return Needle{
		Type:     t,
		Path:     recipe.build(w, h, py),
		Width:    w,
		Height:   h,
		Pivot:    gg.Pt(w*0.5, py),
		FillRule: recipe.fillRule,
	}
}

// NeedleTransform places the needle pivot on center and rotates it by angle
// degrees clockwise.
func NeedleTransform(n Needle, center gg.Point, angle float64) gg.Matrix {
	return gg.Translate(center.X, center.Y).
		Multiply(gg.Rotate(angle * math.Pi / 180)).
		Multiply(gg.Translate(-n.Pivot.X, -n.Pivot.Y))
}

// NeedlePaint returns the fill brush of the needle placed by m. Gradient
// end points follow the needle rotation.
func NeedlePaint(n Needle, m gg.Matrix, shape NeedleShape, c gg.RGBA) gg.Brush {
	if n.Type == NeedleAvionic {
		top := m.TransformPoint(gg.Pt(n.Width*0.5, 0))
		bottom := m.TransformPoint(gg.Pt(n.Width*0.5, n.Height))
		return gg.NewLinearGradientBrush(top.X, top.Y, bottom.X, bottom.Y).
			AddColorStop(0, c).
			AddColorStop(0.3, c).
			AddColorStop(0.3, gg.Black).
			AddColorStop(1, gg.Black)
	}

	left := m.TransformPoint(gg.Pt(0, n.Pivot.Y))
	right := m.TransformPoint(gg.Pt(n.Width, n.Pivot.Y))
	switch shape {
	case NeedleFlat:
		return gg.Solid(c)
	case NeedleRound:
		return gg.NewLinearGradientBrush(left.X, left.Y, right.X, right.Y).
			AddColorStop(0, Darker(c)).
			AddColorStop(0.5, Brighter(Brighter(c))).
			AddColorStop(1, Darker(c))
	default:
		return gg.NewLinearGradientBrush(left.X, left.Y, right.X, right.Y).
			AddColorStop(0, Darker(c)).
			AddColorStop(0.5, Darker(c)).
			AddColorStop(0.5, Brighter(c)).
			AddColorStop(1, Brighter(c))
	}
}

// semicircle appends the lower half circle from (cx+r, cy) to (cx-r, cy).
func semicircle(p *gg.Path, cx, cy, r float64) {
	p.Arc(cx, cy, r, 0, math.Pi)
}

func standardNeedle(w, h, _ float64) *gg.Path {
	p := gg.NewPath()
	r := w * 0.5
	p.MoveTo(w*0.5, 0)
	p.LineTo(w, h-r)
	semicircle(p, r, h-r, r)
	p.Close()
	return p
}

func bigNeedle(w, h, py float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(w*0.5, 0)
	p.LineTo(w*0.6, h*0.05)
	p.LineTo(w, py)
	semicircle(p, w*0.5, py, math.Min(w*0.5, h-py))
	p.LineTo(w*0.4, h*0.05)
	p.Close()
	return p
}

func fatNeedle(w, h, py float64) *gg.Path {
	p := gg.NewPath()
	r := math.Min(w*0.5, h-py)
	p.MoveTo(w*0.5, 0)
	p.CubicTo(w*0.55, py*0.4, w, py*0.8, w, py)
	semicircle(p, w*0.5, py, r)
	p.CubicTo(0, py*0.8, w*0.45, py*0.4, w*0.5, 0)
	p.Close()
	return p
}

// scientificNeedle is a thin shaft with a ring shaped counterweight below
// the pivot; the ring hole relies on the even-odd fill rule.
func scientificNeedle(w, h, _ float64) *gg.Path {
	p := gg.NewPath()
	ringTop := h - w
	p.MoveTo(w*0.5, 0)
	p.LineTo(w*0.6, h*0.08)
	p.LineTo(w*0.6, ringTop)
	p.LineTo(w*0.4, ringTop)
	p.LineTo(w*0.4, h*0.08)
	p.Close()

	p.Circle(w*0.5, h-w*0.5, w*0.5)
	p.Circle(w*0.5, h-w*0.5, w*0.3)
	return p
}

func avionicNeedle(w, h, py float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(w*0.5, 0)
	p.LineTo(w, h*0.1)
	p.LineTo(w, py)
	p.LineTo(w*0.8, h)
	p.LineTo(w*0.2, h)
	p.LineTo(0, py)
	p.LineTo(0, h*0.1)
	p.Close()
	return p
}

func variometerNeedle(w, h, _ float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(w*0.5, 0)
	p.LineTo(w, h*0.85)
	p.LineTo(w*0.75, h)
	p.LineTo(w*0.25, h)
	p.LineTo(0, h*0.85)
	p.Close()
	return p
}
