package gauge

import "github.com/gogpu/gg"

// Section is a highlighted numeric sub-range of the gauge. The same type
// describes sections (drawn as a ring segment) and areas (drawn as a wedge).
type Section struct {
	Start          float64
	Stop           float64
	Color          gg.RGBA
	HighlightColor gg.RGBA
	Text           string
}

// Contains reports whether v lies in the closed interval [Start, Stop].
func (s Section) Contains(v float64) bool {
	return v >= s.Start && v <= s.Stop
}

// Marker is a fixed-value indicator on the dial. Markers are referenced by
// pointer in the model; the engine assigns each one a MarkerID.
type Marker struct {
	Value float64
	Type  MarkerType
	Color gg.RGBA
	Text  string
}

// Model is the gauge state read by the engine. Change a field, then apply
// the matching Event. The engine writes to it in a few places: RECALC applies
// the auto scale and clamps Value and CurrentValue into range, and the
// Engine setters store the values they are given.
//
// Value is the target value. CurrentValue is the value currently displayed;
// it lags Value while an external animator drives it.
type Model struct {
	// Available size of the gauge in pixels. The engine derives a viewport
	// with a fixed 1:2 aspect ratio from it.
	Width, Height float64

	MinValue     float64
	MaxValue     float64
	Value        float64
	CurrentValue float64
	Threshold    float64
	Decimals     int
	AngleRange   float64
	BorderWidth  float64
	AutoScale    bool

	MajorTickSpace float64
	MinorTickSpace float64

	ScaleDirection    ScaleDirection
	KnobPosition      KnobPosition
	TickLabelLocation TickLabelLocation
	NeedleType        NeedleType
	NeedleShape       NeedleShape
	NeedleSize        NeedleSize
	KnobType          KnobType
	LedType           LedType

	Title string
	Unit  string

	LedVisible            bool
	LedOn                 bool
	KnobVisible           bool
	ThresholdVisible      bool
	ValueVisible          bool
	SectionsVisible       bool
	HighlightSections     bool
	AreasVisible          bool
	HighlightAreas        bool
	MarkersVisible        bool
	TickLabelsVisible     bool
	MajorTickMarksVisible bool
	MinorTickMarksVisible bool
	GradientBarEnabled    bool
	ShadowsEnabled        bool
	InnerShadowEnabled    bool
	Interactive           bool
	Disabled              bool
	CheckSectionsForValue bool
	CheckAreasForValue    bool

	Sections         []Section
	Areas            []Section
	Markers          []*Marker
	GradientBarStops []gg.ColorStop

	BorderColor       gg.RGBA
	BackgroundColor   gg.RGBA
	TitleColor        gg.RGBA
	UnitColor         gg.RGBA
	ValueColor        gg.RGBA
	NeedleColor       gg.RGBA
	NeedleBorderColor gg.RGBA
	KnobColor         gg.RGBA
	LedColor          gg.RGBA
	ThresholdColor    gg.RGBA
	TickMarkColor     gg.RGBA
	TickLabelColor    gg.RGBA
}

// NewModel returns a model with the default configuration of a 0..100 gauge.
func NewModel() *Model {
	return &Model{
		Width:                 125,
		Height:                250,
		MinValue:              0,
		MaxValue:              100,
		Threshold:             100,
		Decimals:              1,
		AngleRange:            180,
		BorderWidth:           1,
		KnobVisible:           true,
		ValueVisible:          true,
		SectionsVisible:       true,
		AreasVisible:          true,
		MarkersVisible:        true,
		TickLabelsVisible:     true,
		MajorTickMarksVisible: true,
		MinorTickMarksVisible: true,
		ShadowsEnabled:        true,

		BorderColor:       gg.Transparent,
		BackgroundColor:   gg.Transparent,
		TitleColor:        RGB255(51, 51, 51),
		UnitColor:         RGB255(51, 51, 51),
		ValueColor:        RGB255(51, 51, 51),
		NeedleColor:       RGB255(200, 0, 0),
		NeedleBorderColor: gg.Transparent,
		KnobColor:         RGB255(204, 204, 204),
		LedColor:          RGB255(255, 0, 0),
		ThresholdColor:    RGBA255(255, 0, 0, 0.85),
		TickMarkColor:     RGB255(51, 51, 51),
		TickLabelColor:    RGB255(51, 51, 51),
	}
}

// Range returns MaxValue - MinValue.
func (m *Model) Range() float64 {
	return m.MaxValue - m.MinValue
}
