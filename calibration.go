package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Limits of the dial sweep in degrees.
const (
	MinAngleRange = 90.0
	MaxAngleRange = 180.0
)

// aspectRatio is height / width of the gauge face.
const aspectRatio = 2.0

// Calibration is the snapshot of the values that map a domain value onto
// the dial. It is recomputed on RECALC and never mutated afterwards.
type Calibration struct {
	Min               float64
	Max               float64
	AngleRange        float64
	AngleStep         float64
	StartAngle        float64
	Direction         ScaleDirection
	Knob              KnobPosition
	TickLabelLocation TickLabelLocation
}

// NewCalibration derives a calibration from the model. The angle range is
// clamped to [MinAngleRange, MaxAngleRange]; an empty value range yields a
// zero angle step.
func NewCalibration(m *Model) Calibration {
	cal := Calibration{
		Min:               m.MinValue,
		Max:               m.MaxValue,
		AngleRange:        clamp(MinAngleRange, MaxAngleRange, m.AngleRange),
		Direction:         m.ScaleDirection,
		Knob:              m.KnobPosition,
		TickLabelLocation: m.TickLabelLocation,
	}
	if r := cal.Max - cal.Min; r != 0 {
		cal.AngleStep = cal.AngleRange / r
	}
	cal.StartAngle = startAngle(cal.Knob, cal.Direction, cal.AngleRange)
	return cal
}

// startAngle returns the dial angle of the minimum value.
func startAngle(knob KnobPosition, dir ScaleDirection, angleRange float64) float64 {
	if knob == CenterLeft {
		if dir == Clockwise {
			return angleRange*0.5 + 90
		}
		return 90 - angleRange*0.5
	}
	if dir == Clockwise {
		return angleRange*0.5 - 90
	}
	return 270 - angleRange*0.5
}

// Range returns Max - Min.
func (c Calibration) Range() float64 {
	return c.Max - c.Min
}

// NeedleOffset is the needle rotation that corresponds to the minimum value.
func (c Calibration) NeedleOffset() float64 {
	return 180 - c.StartAngle
}

// NeedleAngle returns the needle rotation in degrees (clockwise on screen)
// for v. Values outside [Min, Max] rotate the needle to the nearest end stop.
func (c Calibration) NeedleAngle(v float64) float64 {
	offset := c.NeedleOffset()
	if c.Direction == Clockwise {
		return clamp(offset, offset+c.AngleRange, offset+(v-c.Min)*c.AngleStep)
	}
	return clamp(offset-c.AngleRange, offset, offset-(v-c.Min)*c.AngleStep)
}

// ValueForNeedleAngle is the inverse of NeedleAngle for angles between the
// end stops.
func (c Calibration) ValueForNeedleAngle(angle float64) float64 {
	if c.AngleStep == 0 {
		return c.Min
	}
	delta := angle - c.NeedleOffset()
	if c.Direction == CounterClockwise {
		delta = -delta
	}
	return c.Min + delta/c.AngleStep
}

// ValueAngle returns the dial angle of v as used by AngleToPoint. It is not
// clamped, so markers outside the range are placed past the end stops.
func (c Calibration) ValueAngle(v float64) float64 {
	if c.Direction == Clockwise {
		return c.StartAngle - (v-c.Min)*c.AngleStep
	}
	return c.StartAngle + (v-c.Min)*c.AngleStep
}

// Clamp limits v to [Min, Max].
func (c Calibration) Clamp(v float64) float64 {
	return clamp(c.Min, c.Max, v)
}

// AngleToPoint returns the point at radius r from center in the direction of
// the dial angle (degrees). The x offset uses sin and the y offset cos.
func AngleToPoint(angle, r float64, center gg.Point) gg.Point {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return gg.Pt(center.X+r*sin, center.Y+r*cos)
}

// Viewport is the face area after enforcing the 1:2 aspect ratio.
// All geometry is expressed in fractions of Height (or ScaledHeight).
type Viewport struct {
	// Offset of the face inside the available area.
	X, Y          float64
	Width         float64
	Height        float64
	ScaledHeight  float64
	Center        gg.Point
	Knob          KnobPosition
	TickLocations TickLabelLocation
}

// NewViewport fits a face with height = 2 * width into the available size.
func NewViewport(availW, availH float64, knob KnobPosition, loc TickLabelLocation) Viewport {
	w, h := math.Max(availW, 0), math.Max(availH, 0)
	if aspectRatio*w > h {
		w = h / aspectRatio
	} else if h/aspectRatio > w {
		h = aspectRatio * w
	}

	vp := Viewport{
		X:             (availW - w) * 0.5,
		Y:             (availH - h) * 0.5,
		Width:         w,
		Height:        h,
		ScaledHeight:  h * 0.9,
		Knob:          knob,
		TickLocations: loc,
	}
	vp.Center = gg.Pt(vp.anchorX(0.1, 0.9), h*0.5)
	return vp
}

// Empty reports whether the viewport has no drawable area.
func (vp Viewport) Empty() bool {
	return vp.Width < 1 || vp.Height < 1
}

// Size returns the surface size in whole pixels.
func (vp Viewport) Size() (int, int) {
	return int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))
}

// anchorX returns left*Width for CenterLeft and right*Width otherwise.
func (vp Viewport) anchorX(left, right float64) float64 {
	if vp.Knob == CenterLeft {
		return vp.Width * left
	}
	return vp.Width * right
}

// outside picks between the OUTSIDE and INSIDE variants of a constant.
func (vp Viewport) outside(out, in float64) float64 {
	if vp.TickLocations == TickLabelsOutside {
		return out
	}
	return in
}
