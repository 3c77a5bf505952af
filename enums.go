package gauge

// ScaleDirection specifies whether increasing values rotate the needle
// clockwise or counter-clockwise.
type ScaleDirection int

const (
	// Clockwise rotates the needle clockwise for increasing values.
	Clockwise ScaleDirection = iota
	// CounterClockwise rotates the needle counter-clockwise for increasing values.
	CounterClockwise
)

// String returns the name of the scale direction.
func (d ScaleDirection) String() string {
	switch d {
	case CounterClockwise:
		return "COUNTER_CLOCKWISE"
	default:
		return "CLOCKWISE"
	}
}

// KnobPosition selects which half of the face the dial occupies.
// CenterLeft puts the needle pivot on the left edge and the dial on the right.
type KnobPosition int

const (
	// CenterRight places the knob on the right edge of the face.
	CenterRight KnobPosition = iota
	// CenterLeft places the knob on the left edge of the face.
	CenterLeft
)

// String returns the name of the knob position.
func (p KnobPosition) String() string {
	if p == CenterLeft {
		return "CENTER_LEFT"
	}
	return "CENTER_RIGHT"
}

// TickLabelLocation specifies whether tick labels are drawn inside or outside
// the tick ring. It selects one of two radius families used by every layer.
type TickLabelLocation int

const (
	// TickLabelsInside draws labels inside the tick ring.
	TickLabelsInside TickLabelLocation = iota
	// TickLabelsOutside draws labels outside the tick ring.
	TickLabelsOutside
)

// String returns the name of the tick label location.
func (l TickLabelLocation) String() string {
	if l == TickLabelsOutside {
		return "OUTSIDE"
	}
	return "INSIDE"
}

// NeedleType selects the needle silhouette.
type NeedleType int

const (
	NeedleStandard NeedleType = iota
	NeedleBig
	NeedleFat
	NeedleScientific
	NeedleAvionic
	NeedleVariometer
)

var needleTypeNames = [...]string{"STANDARD", "BIG", "FAT", "SCIENTIFIC", "AVIONIC", "VARIOMETER"}

// String returns the name of the needle type.
func (t NeedleType) String() string {
	if t < 0 || int(t) >= len(needleTypeNames) {
		return needleTypeNames[0]
	}
	return needleTypeNames[t]
}

// NeedleShape selects how the needle body is shaded.
type NeedleShape int

const (
	// NeedleAngled shades the needle with a hard split down its axis.
	NeedleAngled NeedleShape = iota
	// NeedleRound shades the needle with a soft cylindrical gradient.
	NeedleRound
	// NeedleFlat fills the needle with a single colour and a border.
	NeedleFlat
)

// String returns the name of the needle shape.
func (s NeedleShape) String() string {
	switch s {
	case NeedleRound:
		return "ROUND"
	case NeedleFlat:
		return "FLAT"
	default:
		return "ANGLED"
	}
}

// NeedleSize scales the width of the STANDARD and VARIOMETER needles.
type NeedleSize int

const (
	NeedleSizeStandard NeedleSize = iota
	NeedleSizeThin
	NeedleSizeThick
)

// Factor returns the needle width as a fraction of the scaled height.
func (s NeedleSize) Factor() float64 {
	switch s {
	case NeedleSizeThin:
		return 0.015
	case NeedleSizeThick:
		return 0.045
	default:
		return 0.025
	}
}

// String returns the name of the needle size.
func (s NeedleSize) String() string {
	switch s {
	case NeedleSizeThin:
		return "THIN"
	case NeedleSizeThick:
		return "THICK"
	default:
		return "STANDARD"
	}
}

// KnobType selects the knob material recipe.
type KnobType int

const (
	KnobStandard KnobType = iota
	KnobPlain
	KnobMetal
	KnobFlat
)

// String returns the name of the knob type.
func (t KnobType) String() string {
	switch t {
	case KnobPlain:
		return "PLAIN"
	case KnobMetal:
		return "METAL"
	case KnobFlat:
		return "FLAT"
	default:
		return "STANDARD"
	}
}

// LedType selects the LED recipe.
type LedType int

const (
	LedStandard LedType = iota
	LedFlat
)

// String returns the name of the LED type.
func (t LedType) String() string {
	if t == LedFlat {
		return "FLAT"
	}
	return "STANDARD"
}

// MarkerType selects the shape drawn for a marker.
type MarkerType int

const (
	MarkerStandard MarkerType = iota
	MarkerTriangle
	MarkerDot
)

// String returns the name of the marker type.
func (t MarkerType) String() string {
	switch t {
	case MarkerTriangle:
		return "TRIANGLE"
	case MarkerDot:
		return "DOT"
	default:
		return "STANDARD"
	}
}
