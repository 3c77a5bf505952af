package gauge

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Arc is an angular span in the arc-drawing convention: 0° is 3 o'clock and
// positive angles run counter-clockwise. Both fields are in degrees.
type Arc struct {
	Start  float64
	Extent float64
}

// End returns Start + Extent.
func (a Arc) End() float64 {
	return a.Start + a.Extent
}

// SectionArc computes the arc of a section or area. Intervals entirely
// outside [Min, Max] are not drawn; intervals crossing a bound are clipped
// to it.
func SectionArc(s Section, cal Calibration) (Arc, bool) {
	if s.Start > cal.Max || s.Stop < cal.Min {
		return Arc{}, false
	}
	start := math.Max(s.Start, cal.Min)
	stop := math.Min(s.Stop, cal.Max)
	return cal.arc(start, stop), true
}

// GradientBarArc returns the arc of the whole track from Min to Max.
func GradientBarArc(cal Calibration) Arc {
	return cal.arc(cal.Min, cal.Max)
}

// arc converts the domain interval [start, stop] into an Arc.
func (c Calibration) arc(start, stop float64) Arc {
	relStart := (start - c.Min) * c.AngleStep
	relExtent := (stop - start) * c.AngleStep
	if c.Direction == CounterClockwise {
		relStart, relExtent = -relStart, -relExtent
	}
	return Arc{
		Start:  -(90 - c.StartAngle + relStart),
		Extent: -relExtent,
	}
}

// ConicalGradient returns an angular gradient around center whose stop
// offsets [0, 1] are spread over the dial from its start angle in the scale
// direction. It returns nil when there are no stops.
func ConicalGradient(center gg.Point, cal Calibration, stops []gg.ColorStop) *gg.SweepGradientBrush {
	if len(stops) == 0 {
		return nil
	}
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b gg.ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	// Screen angles grow clockwise because y points down.
	start := (90 - cal.StartAngle) * math.Pi / 180
	sweep := cal.AngleRange * math.Pi / 180
	if cal.Direction == CounterClockwise {
		sweep = -sweep
	}

	g := gg.NewSweepGradientBrush(center.X, center.Y, start).SetEndAngle(start + sweep)
	for _, s := range sorted {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}

// ArcPath returns the open arc of radius r around center. The path runs
// in increasing screen angle whatever the sign of the extent.
func ArcPath(center gg.Point, r float64, arc Arc) *gg.Path {
	p := gg.NewPath()
	lo, hi := screenAngles(arc)
	p.Arc(center.X, center.Y, r, lo, hi)
	return p
}

// WedgePath returns the closed pie wedge of radius r around center.
func WedgePath(center gg.Point, r float64, arc Arc) *gg.Path {
	p := gg.NewPath()
	lo, hi := screenAngles(arc)
	start := polar(center, r, lo)
	p.MoveTo(center.X, center.Y)
	p.LineTo(start.X, start.Y)
	p.Arc(center.X, center.Y, r, lo, hi)
	p.Close()
	return p
}

// screenAngles converts an Arc to ascending radians in screen space (y down).
func screenAngles(arc Arc) (lo, hi float64) {
	from, to := -arc.Start*math.Pi/180, -arc.End()*math.Pi/180
	return min(from, to), max(from, to)
}

func polar(center gg.Point, r, angle float64) gg.Point {
	sin, cos := math.Sincos(angle)
	return gg.Pt(center.X+r*cos, center.Y+r*sin)
}
