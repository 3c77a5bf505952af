package gauge

import "math"

// Upper bounds of tick counts used by AutoScale.
const (
	maxMajorTicks = 10
	maxMinorTicks = 10
)

// NiceNumber returns a "nice" number approximately equal to r: 1, 2, 5 or
// 10 times a power of ten. With round set the number is rounded, otherwise
// the ceiling is taken. Non-positive input yields 0.
func NiceNumber(r float64, round bool) float64 {
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return 0
	}
	exp := math.Floor(math.Log10(r))
	frac := r / math.Pow(10, exp)

	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// Scale is the result of AutoScale.
type Scale struct {
	Min, Max       float64
	MajorTickSpace float64
	MinorTickSpace float64
}

// AutoScale widens [lo, hi] to multiples of a nice major tick spacing and
// picks a matching minor spacing. An empty range is returned unchanged with
// zero spacings.
func AutoScale(lo, hi float64) Scale {
	niceRange := NiceNumber(hi-lo, false)
	if niceRange == 0 {
		return Scale{Min: lo, Max: hi}
	}
	major := NiceNumber(niceRange/(maxMajorTicks-1), true)
	return Scale{
		Min:            math.Floor(lo/major) * major,
		Max:            math.Ceil(hi/major) * major,
		MajorTickSpace: major,
		MinorTickSpace: NiceNumber(major/(maxMinorTicks-1), true),
	}
}

// Ticks returns the multiples of step inside [lo, hi] in ascending order.
func Ticks(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}
	const eps = 1e-9
	first := math.Ceil(lo/step-eps) * step
	n := int(math.Floor((hi-first)/step+eps)) + 1
	if n <= 0 {
		return nil
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = first + float64(i)*step
	}
	return ticks
}

// defaultTickSpaces returns the spacings used when the model leaves them
// unset.
func defaultTickSpaces(r float64) (major, minor float64) {
	s := AutoScale(0, math.Abs(r))
	return s.MajorTickSpace, s.MinorTickSpace
}
