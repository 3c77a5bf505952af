package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gauge"
)

// Gauge is the YAML description of a gauge. Unset fields keep the defaults
// of gauge.NewModel.
type Gauge struct {
	Title     string   `yaml:"title,omitempty"`
	Unit      string   `yaml:"unit,omitempty"`
	Width     float64  `yaml:"width,omitempty"`
	Height    float64  `yaml:"height,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Value     float64  `yaml:"value,omitempty"`
	Threshold *float64 `yaml:"threshold,omitempty"`
	Decimals  *int     `yaml:"decimals,omitempty"`

	AngleRange     float64  `yaml:"angle_range,omitempty"`
	AutoScale      bool     `yaml:"auto_scale,omitempty"`
	MajorTickSpace float64  `yaml:"major_tick_space,omitempty"`
	MinorTickSpace float64  `yaml:"minor_tick_space,omitempty"`
	BorderWidth    *float64 `yaml:"border_width,omitempty"`

	Direction  string `yaml:"direction,omitempty"`
	Knob       string `yaml:"knob,omitempty"`
	TickLabels string `yaml:"tick_labels,omitempty"`

	Needle Needle `yaml:"needle,omitempty"`
	Led    Led    `yaml:"led,omitempty"`
	Show   Show   `yaml:"show,omitempty"`
	Colors Colors `yaml:"colors,omitempty"`

	Interactive       bool `yaml:"interactive,omitempty"`
	HighlightSections bool `yaml:"highlight_sections,omitempty"`
	HighlightAreas    bool `yaml:"highlight_areas,omitempty"`
	CheckSections     bool `yaml:"check_sections,omitempty"`
	CheckAreas        bool `yaml:"check_areas,omitempty"`

	Sections    []Section `yaml:"sections,omitempty"`
	Areas       []Section `yaml:"areas,omitempty"`
	Markers     []Marker  `yaml:"markers,omitempty"`
	GradientBar []Stop    `yaml:"gradient_bar,omitempty"`
}

// Needle describes the needle and the knob it turns on.
type Needle struct {
	Type        string `yaml:"type,omitempty"`
	Shape       string `yaml:"shape,omitempty"`
	Size        string `yaml:"size,omitempty"`
	Knob        string `yaml:"knob,omitempty"`
	Color       Color  `yaml:"color,omitempty"`
	BorderColor Color  `yaml:"border_color,omitempty"`
	KnobColor   Color  `yaml:"knob_color,omitempty"`
}

// Led describes the status LED.
type Led struct {
	Type    string `yaml:"type,omitempty"`
	Visible bool   `yaml:"visible,omitempty"`
	On      bool   `yaml:"on,omitempty"`
	Color   Color  `yaml:"color,omitempty"`
}

// Show overrides visibility flags. Nil fields keep the model default.
type Show struct {
	Knob           *bool `yaml:"knob,omitempty"`
	Value          *bool `yaml:"value,omitempty"`
	Threshold      *bool `yaml:"threshold,omitempty"`
	Sections       *bool `yaml:"sections,omitempty"`
	Areas          *bool `yaml:"areas,omitempty"`
	Markers        *bool `yaml:"markers,omitempty"`
	TickLabels     *bool `yaml:"tick_labels,omitempty"`
	MajorTickMarks *bool `yaml:"major_tick_marks,omitempty"`
	MinorTickMarks *bool `yaml:"minor_tick_marks,omitempty"`
	Shadows        *bool `yaml:"shadows,omitempty"`
	InnerShadow    *bool `yaml:"inner_shadow,omitempty"`
}

// Colors overrides the face colours.
type Colors struct {
	Background Color `yaml:"background,omitempty"`
	Border     Color `yaml:"border,omitempty"`
	Title      Color `yaml:"title,omitempty"`
	Unit       Color `yaml:"unit,omitempty"`
	Value      Color `yaml:"value,omitempty"`
	Threshold  Color `yaml:"threshold,omitempty"`
	TickMarks  Color `yaml:"tick_marks,omitempty"`
	TickLabels Color `yaml:"tick_labels,omitempty"`
}

// Section describes a section or an area.
type Section struct {
	Start     float64 `yaml:"start"`
	Stop      float64 `yaml:"stop"`
	Color     Color   `yaml:"color"`
	Highlight Color   `yaml:"highlight,omitempty"`
	Text      string  `yaml:"text,omitempty"`
}

// Marker describes a marker.
type Marker struct {
	Value float64 `yaml:"value"`
	Type  string  `yaml:"type,omitempty"`
	Color Color   `yaml:"color,omitempty"`
	Text  string  `yaml:"text,omitempty"`
}

// Stop is one colour stop of the gradient bar.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  Color   `yaml:"color"`
}

// Color is a colour written as "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or
// "transparent".
type Color struct {
	RGBA gg.RGBA
	Set  bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	rgba, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = Color{RGBA: rgba, Set: true}
	return nil
}

// IsZero lets omitempty skip unset colours.
func (c Color) IsZero() bool {
	return !c.Set
}

// ErrColor is returned for malformed colours.
var ErrColor = errors.New("config: invalid color")

// ParseColor parses a hex colour or "transparent".
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return gg.Transparent, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w %q", ErrColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w %q", ErrColor, s)
		}
	}
	return gg.Hex(hex), nil
}

// Load reads a gauge description from a YAML file.
func Load(path string) (*gauge.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a gauge description and converts it to a model. Unknown
// keys are rejected.
func Parse(r io.Reader) (*gauge.Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var g Gauge
	if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return g.Model()
}

// Model converts the description to a gauge model.
func (g Gauge) Model() (*gauge.Model, error) {
	m := gauge.NewModel()
	m.Title, m.Unit = g.Title, g.Unit
	if g.Width > 0 {
		m.Width = g.Width
	}
	if g.Height > 0 {
		m.Height = g.Height
	}
	setFloat(&m.MinValue, g.Min)
	setFloat(&m.MaxValue, g.Max)
	setFloat(&m.Threshold, g.Threshold)
	setFloat(&m.BorderWidth, g.BorderWidth)
	if g.Decimals != nil {
		m.Decimals = *g.Decimals
	}
	if m.MinValue > m.MaxValue {
		return nil, fmt.Errorf("config: min %v is greater than max %v", m.MinValue, m.MaxValue)
	}
	m.Value, m.CurrentValue = g.Value, g.Value
	if g.AngleRange > 0 {
		m.AngleRange = g.AngleRange
	}
	m.AutoScale = g.AutoScale
	m.MajorTickSpace, m.MinorTickSpace = g.MajorTickSpace, g.MinorTickSpace

	var err error
	if m.ScaleDirection, err = parseEnum("direction", g.Direction, gauge.Clockwise, gauge.CounterClockwise); err != nil {
		return nil, err
	}
	if m.KnobPosition, err = parseEnum("knob", g.Knob, gauge.CenterRight, gauge.CenterLeft); err != nil {
		return nil, err
	}
	if m.TickLabelLocation, err = parseEnum("tick_labels", g.TickLabels, gauge.TickLabelsInside, gauge.TickLabelsOutside); err != nil {
		return nil, err
	}
	if err := g.Needle.apply(m); err != nil {
		return nil, err
	}
	if m.LedType, err = parseEnum("led type", g.Led.Type, gauge.LedStandard, gauge.LedFlat); err != nil {
		return nil, err
	}
	m.LedVisible, m.LedOn = g.Led.Visible, g.Led.On
	setColor(&m.LedColor, g.Led.Color)

	g.Show.apply(m)
	g.Colors.apply(m)

	m.Interactive = g.Interactive
	m.HighlightSections, m.HighlightAreas = g.HighlightSections, g.HighlightAreas
	m.CheckSectionsForValue, m.CheckAreasForValue = g.CheckSections, g.CheckAreas
	m.Sections = sections(g.Sections)
	m.Areas = sections(g.Areas)
	for _, s := range g.GradientBar {
		m.GradientBarStops = append(m.GradientBarStops, gg.ColorStop{Offset: s.Offset, Color: s.Color.RGBA})
	}
	m.GradientBarEnabled = len(m.GradientBarStops) > 0
	for i, mk := range g.Markers {
		kind, err := parseEnum(fmt.Sprintf("markers[%d] type", i), mk.Type, gauge.MarkerStandard, gauge.MarkerTriangle, gauge.MarkerDot)
		if err != nil {
			return nil, err
		}
		c := gg.Black
		if mk.Color.Set {
			c = mk.Color.RGBA
		}
		m.Markers = append(m.Markers, &gauge.Marker{Value: mk.Value, Type: kind, Color: c, Text: mk.Text})
	}
	return m, nil
}

func (n Needle) apply(m *gauge.Model) error {
	var err error
	if m.NeedleType, err = parseEnum("needle type", n.Type,
		gauge.NeedleStandard, gauge.NeedleBig, gauge.NeedleFat,
		gauge.NeedleScientific, gauge.NeedleAvionic, gauge.NeedleVariometer); err != nil {
		return err
	}
	if m.NeedleShape, err = parseEnum("needle shape", n.Shape, gauge.NeedleAngled, gauge.NeedleRound, gauge.NeedleFlat); err != nil {
		return err
	}
	if m.NeedleSize, err = parseEnum("needle size", n.Size, gauge.NeedleSizeStandard, gauge.NeedleSizeThin, gauge.NeedleSizeThick); err != nil {
		return err
	}
	if m.KnobType, err = parseEnum("knob type", n.Knob, gauge.KnobStandard, gauge.KnobPlain, gauge.KnobMetal, gauge.KnobFlat); err != nil {
		return err
	}
	setColor(&m.NeedleColor, n.Color)
	setColor(&m.NeedleBorderColor, n.BorderColor)
	setColor(&m.KnobColor, n.KnobColor)
	return nil
}

func (s Show) apply(m *gauge.Model) {
	setBool(&m.KnobVisible, s.Knob)
	setBool(&m.ValueVisible, s.Value)
	setBool(&m.ThresholdVisible, s.Threshold)
	setBool(&m.SectionsVisible, s.Sections)
	setBool(&m.AreasVisible, s.Areas)
	setBool(&m.MarkersVisible, s.Markers)
	setBool(&m.TickLabelsVisible, s.TickLabels)
	setBool(&m.MajorTickMarksVisible, s.MajorTickMarks)
	setBool(&m.MinorTickMarksVisible, s.MinorTickMarks)
	setBool(&m.ShadowsEnabled, s.Shadows)
	setBool(&m.InnerShadowEnabled, s.InnerShadow)
}

func (c Colors) apply(m *gauge.Model) {
	setColor(&m.BackgroundColor, c.Background)
	setColor(&m.BorderColor, c.Border)
	setColor(&m.TitleColor, c.Title)
	setColor(&m.UnitColor, c.Unit)
	setColor(&m.ValueColor, c.Value)
	setColor(&m.ThresholdColor, c.Threshold)
	setColor(&m.TickMarkColor, c.TickMarks)
	setColor(&m.TickLabelColor, c.TickLabels)
}

func sections(in []Section) []gauge.Section {
	if len(in) == 0 {
		return nil
	}
	out := make([]gauge.Section, 0, len(in))
	for _, s := range in {
		hl := s.Color.RGBA
		if s.Highlight.Set {
			hl = s.Highlight.RGBA
		}
		out = append(out, gauge.Section{
			Start:          s.Start,
			Stop:           s.Stop,
			Color:          s.Color.RGBA,
			HighlightColor: hl,
			Text:           s.Text,
		})
	}
	return out
}

// parseEnum matches name against the String form of values, ignoring case
// and treating '-' as '_'. An empty name selects values[0].
func parseEnum[T fmt.Stringer](field, name string, values ...T) (T, error) {
	if name == "" {
		return values[0], nil
	}
	key := strings.ReplaceAll(strings.TrimSpace(name), "-", "_")
	for _, v := range values {
		if strings.EqualFold(v.String(), key) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("config: unknown %s %q", field, name)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *gg.RGBA, c Color) {
	if c.Set {
		*dst = c.RGBA
	}
}
