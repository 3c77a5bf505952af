package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Ratios of the face geometry, in fractions of the scaled height unless
// noted otherwise.
const (
	sectionWidth      = 0.052
	majorTickWidth    = 0.0055
	minorTickWidth    = 0.00225
	tickLabelSize     = 0.045
	innerShadowOffset = 0.03
	innerShadowRadius = 0.04
	dropShadowOffset  = 0.008
	flatStrokeWidth   = 0.0037037 // of the viewport width
	knobSize          = 0.1       // of the viewport height
	maxTicks          = 1000
)

// painters maps every layer to the method that paints it.
var painters = [layerCount]func(e *Engine, p pen){
	LayerBackground: (*Engine).paintBackground,
	LayerSections:   (*Engine).paintSections,
	LayerTicks:      (*Engine).paintTicks,
	LayerMarkers:    (*Engine).paintMarkers,
	LayerLed:        (*Engine).paintLed,
	LayerText:       (*Engine).paintText,
	LayerNeedle:     (*Engine).paintNeedle,
	LayerKnob:       (*Engine).paintKnob,
}

// paint repaints the visible layers of set and returns the layers that were
// repainted.
func (e *Engine) paint(set LayerSet) LayerSet {
	var done LayerSet
	for _, id := range set.IDs() {
		if !e.surf.layers[id].visible {
			continue
		}
		p, ok := e.surf.begin(id)
		if !ok {
			continue
		}
		painters[id](e, p)
		done = done.With(id)
	}
	if done != 0 {
		Logger().Debug("gauge: repaint", "layers", done)
	}
	return done
}

func (e *Engine) paintBackground(p pen) {
	m := e.model
	w, h := e.vp.Width, e.vp.Height
	sh := e.vp.ScaledHeight

	p.fillRect(0, 0, w, h, gg.Solid(m.BackgroundColor))

	if m.InnerShadowEnabled {
		depth := (innerShadowOffset + innerShadowRadius) * sh
		p.fillRect(0, 0, w, depth, gg.NewLinearGradientBrush(0, 0, 0, depth).
			AddColorStop(0, RGBA255(10, 10, 10, 0.45)).
			AddColorStop(1, gg.Transparent))
	}

	if bw := m.BorderWidth / 125 * w; bw > 0 && m.BorderColor.A > 0 {
		border := gg.NewPath()
		border.Rectangle(bw*0.5, bw*0.5, w-bw, h-bw)
		p.stroke(border, gg.Solid(m.BorderColor), bw, gg.LineCapButt)
	}
}

// sectionColor picks the highlight colour when highlighting is on and the
// section contains v.
func sectionColor(s Section, highlight bool, v float64) gg.RGBA {
	if highlight && s.Contains(v) {
		return s.HighlightColor
	}
	return s.Color
}

func (e *Engine) paintSections(p pen) {
	sh := e.vp.ScaledHeight
	v := e.model.CurrentValue

	if e.vis.areas {
		r := e.vp.outside(0.4105, 0.475) * sh
		for _, a := range e.areas {
			arc, ok := SectionArc(a, e.cal)
			if !ok {
				continue
			}
			p.fill(WedgePath(e.vp.Center, r, arc), gg.Solid(sectionColor(a, e.highlightAreas, v)))
		}
	}

	if e.vis.sections {
		r := e.sectionRadius()
		for _, s := range e.sections {
			arc, ok := SectionArc(s, e.cal)
			if !ok {
				continue
			}
			p.stroke(ArcPath(e.vp.Center, r, arc), gg.Solid(sectionColor(s, e.highlightSections, v)),
				sectionWidth*sh, gg.LineCapButt)
		}
	}
}

func (e *Engine) sectionRadius() float64 {
	return e.vp.outside(0.385, 0.4485) * e.vp.ScaledHeight
}

func (e *Engine) paintTicks(p pen) {
	m := e.model
	sh := e.vp.ScaledHeight
	center := e.vp.Center

	if m.GradientBarEnabled && len(m.GradientBarStops) > 0 {
		if g := ConicalGradient(center, e.cal, m.GradientBarStops); g != nil {
			p.stroke(ArcPath(center, e.sectionRadius(), GradientBarArc(e.cal)), g, sectionWidth*sh, gg.LineCapButt)
		}
	}

	major, minor := e.tickSpaces()
	// The tick ring covers the section ring.
	outer := e.sectionRadius() + sectionWidth*0.5*sh
	inner := outer - sectionWidth*sh
	if e.vp.TickLocations == TickLabelsOutside {
		outer, inner = inner, outer
	}
	mid := (outer + inner) * 0.5
	brush := gg.Solid(m.TickMarkColor)

	if m.MinorTickMarksVisible && minor > 0 {
		ticks := gg.NewPath()
		for _, v := range Ticks(e.cal.Min, e.cal.Max, minor) {
			if major > 0 && isMultiple(v, major) {
				continue
			}
			tickLine(ticks, center, e.cal.ValueAngle(v), outer, mid)
		}
		p.stroke(ticks, brush, minorTickWidth*sh, gg.LineCapButt)
	}

	majors := Ticks(e.cal.Min, e.cal.Max, major)
	if m.MajorTickMarksVisible && len(majors) > 0 {
		ticks := gg.NewPath()
		for _, v := range majors {
			tickLine(ticks, center, e.cal.ValueAngle(v), outer, inner)
		}
		p.stroke(ticks, brush, majorTickWidth*sh, gg.LineCapButt)
	}

	if m.TickLabelsVisible && e.fonts.Regular != nil && len(majors) > 0 {
		face := e.fonts.Regular.Face(tickLabelSize * sh)
		format := newValueFormatter(e.opts.locale, tickDecimals(major))
		r := inner - sectionWidth*0.6*sh
		if e.vp.TickLocations == TickLabelsOutside {
			r = inner + sectionWidth*0.6*sh
		}
		p.dc.SetFont(face)
		p.dc.SetColor(m.TickLabelColor.Color())
		for _, v := range majors {
			at := AngleToPoint(e.cal.ValueAngle(v), r, center)
			p.dc.DrawStringAnchored(format.Format(v), at.X, at.Y, 0.5, 0.35)
		}
	}
}

// tickSpaces returns the major and minor tick spacing, falling back to an
// automatic scale when the model leaves them unset. Spacings that would
// produce more than maxTicks ticks are dropped.
func (e *Engine) tickSpaces() (major, minor float64) {
	major, minor = e.model.MajorTickSpace, e.model.MinorTickSpace
	r := e.cal.Range()
	if major <= 0 || minor <= 0 {
		autoMajor, autoMinor := defaultTickSpaces(r)
		if major <= 0 {
			major = autoMajor
		}
		if minor <= 0 {
			minor = autoMinor
		}
	}
	if major > 0 && r/major > maxTicks {
		major = 0
	}
	if minor > 0 && r/minor > maxTicks {
		minor = 0
	}
	return major, minor
}

func tickLine(p *gg.Path, center gg.Point, angle, r0, r1 float64) {
	a := AngleToPoint(angle, r0, center)
	b := AngleToPoint(angle, r1, center)
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
}

// isMultiple reports whether v is an integer multiple of step.
func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-6
}

// tickDecimals returns the number of fraction digits needed to print
// multiples of step.
func tickDecimals(step float64) int {
	if step <= 0 {
		return 0
	}
	for d := range maxDecimals {
		if isMultiple(step*math.Pow(10, float64(d)), 1) {
			return d
		}
	}
	return maxDecimals
}

func (e *Engine) paintMarkers(p pen) {
	m := e.model
	lw := flatStrokeWidth * e.vp.Width
	if m.MarkersVisible {
		e.registry.Each(func(_ MarkerID, mk *Marker, shape MarkerShape) bool {
			p.fill(shape.Path, gg.Solid(mk.Color))
			p.stroke(shape.Path, gg.Solid(Darker(mk.Color)), lw, gg.LineCapButt)
			return true
		})
	}
	if m.ThresholdVisible {
		p.fill(e.threshold.Path, gg.Solid(m.ThresholdColor))
		p.stroke(e.threshold.Path, gg.Solid(m.TickMarkColor), lw, gg.LineCapButt)
	}
}

func (e *Engine) paintLed(p pen) {
	m := e.model
	o := ledOrigin(e.vp)
	paintLed(p, m.LedType, ledFrame{
		X:     o.X,
		Y:     o.Y,
		Size:  ledSize(m.LedType, e.vp),
		Face:  e.vp.Width,
		Color: m.LedColor,
		On:    m.LedOn,
	})
}

func (e *Engine) paintText(p pen) {
	m := e.model
	draw := func(l label, c gg.RGBA) {
		if l.Text == "" || l.Face == nil {
			return
		}
		p.dc.SetFont(l.Face)
		p.dc.SetColor(c.Color())
		p.dc.DrawString(l.Text, l.X, l.Y)
	}

	draw(e.title, m.TitleColor)
	draw(e.unit, m.UnitColor)
	if m.ValueVisible {
		e.valueText = e.format.Format(m.CurrentValue)
		draw(valueLabel(e.vp, e.valueFace, e.valueText), m.ValueColor)
	}
}

// needleKey holds the inputs the needle silhouette depends on.
type needleKey struct {
	sh   float64
	kind NeedleType
	size NeedleSize
	loc  TickLabelLocation
}

// ensureNeedle rebuilds the needle silhouette when one of its inputs
// changed. It reports whether a rebuild happened.
func (e *Engine) ensureNeedle() bool {
	key := needleKey{
		sh:   e.vp.ScaledHeight,
		kind: e.model.NeedleType,
		size: e.model.NeedleSize,
		loc:  e.model.TickLabelLocation,
	}
	if e.needle.Path != nil && key == e.needleKey {
		return false
	}
	e.needle = BuildNeedle(key.kind, key.size, key.loc, key.sh)
	e.needleKey = key
	e.needleBuilds++
	Logger().Debug("gauge: needle rebuilt", "type", e.needle.Type, "size", key.size, "location", key.loc)
	return true
}

// NeedleAngle returns the current needle rotation in degrees.
func (e *Engine) NeedleAngle() float64 {
	return e.cal.NeedleAngle(e.model.CurrentValue)
}

func (e *Engine) paintNeedle(p pen) {
	m := e.model
	e.ensureNeedle()
	xf := NeedleTransform(e.needle, e.vp.Center, e.NeedleAngle())
	path := e.needle.Path.Transform(xf)

	if m.ShadowsEnabled {
		off := dropShadowOffset * e.vp.ScaledHeight
		shadow := path.Transform(gg.Translate(0, off))
		p.fillRule(shadow, gg.Solid(RGBA255(0, 0, 0, 0.25)), e.needle.FillRule)
	}

	p.fillRule(path, NeedlePaint(e.needle, xf, m.NeedleShape, m.NeedleColor), e.needle.FillRule)
	if m.NeedleShape == NeedleFlat && m.NeedleBorderColor.A > 0 {
		p.stroke(path, gg.Solid(m.NeedleBorderColor), flatStrokeWidth*e.vp.Width, gg.LineCapButt)
	}
}

func (e *Engine) paintKnob(p pen) {
	m := e.model
	size := knobSize * e.vp.Height
	c := e.vp.Center
	if m.ShadowsEnabled {
		off := dropShadowOffset * e.vp.ScaledHeight
		p.fillOval(c.X-size*0.5, c.Y-size*0.5+off, size, size, gg.Solid(RGBA255(0, 0, 0, 0.25)))
	}
	paintKnob(p, m.KnobType, knobFrame{
		X:       c.X - size*0.5,
		Y:       c.Y - size*0.5,
		Size:    size,
		Face:    e.vp.Width,
		Color:   m.KnobColor,
		Pressed: e.pressed,
	})
}
