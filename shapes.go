package gauge

import "github.com/gogpu/gg"

// MarkerShape is the outline of a marker or of the threshold indicator in
// layer coordinates.
type MarkerShape struct {
	Type MarkerType
	Path *gg.Path
}

// Contains reports whether pt lies inside the shape.
func (s MarkerShape) Contains(pt gg.Point) bool {
	return s.Path != nil && s.Path.Contains(pt)
}

// markerSize is the marker extent in pixels.
func markerSize(vp Viewport) float64 {
	return vp.Height * vp.outside(0.0125, 0.015)
}

// BuildMarker builds the shape of a marker of the given kind at value.
// Values outside the range are placed past the end stops.
func BuildMarker(kind MarkerType, value float64, cal Calibration, vp Viewport) MarkerShape {
	sh := vp.ScaledHeight
	size := markerSize(vp)
	angle := cal.ValueAngle(value)
	half := size * 0.3

	p := gg.NewPath()
	switch kind {
	case MarkerTriangle:
		polygon(p, vp.Center,
			polarPoint{angle, vp.outside(0.38, 0.465) * sh},
			polarPoint{angle - half, vp.outside(0.4075, 0.436) * sh},
			polarPoint{angle + half, vp.outside(0.4075, 0.436) * sh},
		)
	case MarkerDot:
		c := AngleToPoint(angle, vp.outside(0.3945, 0.449)*sh, vp.Center)
		p.Circle(c.X, c.Y, size)
	default:
		kind = MarkerStandard
		shoulder := vp.outside(0.4075, 0.436) * sh
		back := vp.outside(0.4575, 0.386) * sh
		polygon(p, vp.Center,
			polarPoint{angle, vp.outside(0.38, 0.465) * sh},
			polarPoint{angle - half, shoulder},
			polarPoint{angle - half, back},
			polarPoint{angle + half, back},
			polarPoint{angle + half, shoulder},
		)
	}
	return MarkerShape{Type: kind, Path: p}
}

// BuildThreshold builds the threshold triangle at value.
func BuildThreshold(value float64, cal Calibration, vp Viewport) MarkerShape {
	sh := vp.ScaledHeight
	half := clamp(3, 3.5, 0.01*sh)
	angle := cal.ValueAngle(value)
	base := vp.outside(0.34, 0.425) * sh

	p := gg.NewPath()
	polygon(p, vp.Center,
		polarPoint{angle, vp.outside(0.38, 0.465) * sh},
		polarPoint{angle - half, base},
		polarPoint{angle + half, base},
	)
	return MarkerShape{Type: MarkerTriangle, Path: p}
}

// polarPoint is a dial angle in degrees and a radius.
type polarPoint struct {
	angle, r float64
}

// polygon appends a closed polygon whose vertices are given relative to
// center.
func polygon(p *gg.Path, center gg.Point, pts ...polarPoint) {
	for i, pp := range pts {
		pt := AngleToPoint(pp.angle, pp.r, center)
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}
