package gauge

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// visibility is the snapshot of the model flags that decide which elements
// are shown.
type visibility struct {
	led         bool
	knob        bool
	value       bool
	title       bool
	unit        bool
	threshold   bool
	markers     bool
	sections    bool
	areas       bool
	tickLabels  bool
	majorTicks  bool
	minorTicks  bool
	gradientBar bool
	shadows     bool
	innerShadow bool
}

func snapshotVisibility(m *Model) visibility {
	return visibility{
		led:         m.LedVisible,
		knob:        m.KnobVisible,
		value:       m.ValueVisible,
		title:       m.Title != "",
		unit:        m.Unit != "",
		threshold:   m.ThresholdVisible,
		markers:     m.MarkersVisible,
		sections:    m.SectionsVisible,
		areas:       m.AreasVisible,
		tickLabels:  m.TickLabelsVisible,
		majorTicks:  m.MajorTickMarksVisible,
		minorTicks:  m.MinorTickMarksVisible,
		gradientBar: m.GradientBarEnabled,
		shadows:     m.ShadowsEnabled,
		innerShadow: m.InnerShadowEnabled,
	}
}

// dependents returns the layers whose content depends on a flag that
// differs between v and o.
func (v visibility) dependents(o visibility) LayerSet {
	var s LayerSet
	if v.led != o.led {
		s = s.With(LayerLed)
	}
	if v.knob != o.knob {
		s = s.With(LayerKnob)
	}
	if v.value != o.value || v.title != o.title || v.unit != o.unit {
		s = s.With(LayerText)
	}
	if v.threshold != o.threshold || v.markers != o.markers {
		s = s.With(LayerMarkers)
	}
	if v.sections != o.sections || v.areas != o.areas {
		s = s.With(LayerSections)
	}
	if v.tickLabels != o.tickLabels || v.majorTicks != o.majorTicks ||
		v.minorTicks != o.minorTicks || v.gradientBar != o.gradientBar {
		s = s.With(LayerTicks)
	}
	if v.shadows != o.shadows {
		s = s.With(LayerNeedle).With(LayerKnob)
	}
	if v.innerShadow != o.innerShadow {
		s = s.With(LayerBackground)
	}
	return s
}

// layerVisible reports whether layer id is shown for the flags in v.
func (v visibility) layerVisible(id LayerID) bool {
	switch id {
	case LayerLed:
		return v.led
	case LayerKnob:
		return v.knob
	case LayerSections:
		return v.sections || v.areas
	case LayerMarkers:
		return v.markers || v.threshold
	}
	return true
}

// Engine renders a Model into a stack of layers and keeps them up to date
// as change events arrive. An Engine is not safe for concurrent use.
type Engine struct {
	model *Model
	opts  options

	cal  Calibration
	vp   Viewport
	surf surfaces
	vis  visibility

	fonts     Fonts
	format    valueFormatter
	title     label
	unit      label
	valueFace text.Face
	valueText string

	needle       Needle
	needleKey    needleKey
	needleBuilds int

	registry  MarkerRegistry
	threshold MarkerShape

	sections          []Section
	areas             []Section
	sectionInside     []bool
	areaInside        []bool
	highlightSections bool
	highlightAreas    bool

	interactive   bool
	pressed       bool
	pressedMarker MarkerID
}

// New creates an engine for m and paints every visible layer. The engine
// keeps m and reads it on every event.
func New(m *Model, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.shaping {
		text.SetShaper(text.NewGoTextShaper())
	}

	e := &Engine{model: m, opts: o}
	e.surf.mode = o.rasterizer
	if o.fonts != nil {
		e.fonts = *o.fonts
	} else if f, err := GoFonts(); err != nil {
		Logger().Warn("gauge: fonts unavailable, text is not drawn", "err", err)
	} else {
		e.fonts = f
	}

	e.interactive = m.Interactive
	e.vis = snapshotVisibility(m)
	e.snapshotSections()
	e.registry.Reset(m.Markers)
	e.recalc()
	return e
}

// Model returns the model the engine renders.
func (e *Engine) Model() *Model {
	return e.model
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport {
	return e.vp
}

// Calibration returns the current calibration.
func (e *Engine) Calibration() Calibration {
	return e.cal
}

// Needle returns the current needle silhouette.
func (e *Engine) Needle() Needle {
	return e.needle
}

// ValueText returns the value text as last drawn.
func (e *Engine) ValueText() string {
	return e.valueText
}

// Apply handles ev and returns the layers that were repainted.
func (e *Engine) Apply(ev Event) LayerSet {
	Logger().Debug("gauge: event", "event", ev)
	switch ev {
	case EventResize:
		return e.resize()
	case EventValueFinished:
		e.checkSections(e.model.CurrentValue)
		if e.highlightSections || e.highlightAreas {
			return e.paint(Layers(LayerSections))
		}
		return 0
	case EventRedraw:
		return e.redraw()
	case EventVisibility:
		return e.applyVisibility()
	case EventLed:
		if e.model.LedVisible {
			return e.paint(Layers(LayerLed))
		}
		return 0
	case EventRecalc:
		return e.recalc()
	case EventSection:
		e.snapshotSections()
		e.syncVisibility()
		return e.paint(Layers(LayerSections))
	case EventInteractivity:
		e.interactive = e.model.Interactive
		return 0
	case EventMarkers:
		e.registry.Reset(e.model.Markers)
		e.reshapeMarkers()
		return e.paint(Layers(LayerMarkers))
	}
	Logger().Warn("gauge: unknown event", "event", ev)
	return 0
}

// SetCurrentValue sets the displayed value. Only the needle and the value
// text are repainted.
func (e *Engine) SetCurrentValue(v float64) LayerSet {
	e.model.CurrentValue = v
	return e.paint(Layers(LayerNeedle, LayerText))
}

// SetValue sets the target value. Nothing is repainted; an animator moves
// the current value towards it.
func (e *Engine) SetValue(v float64) {
	e.model.Value = v
}

// AddMarker appends m to the model and registers it.
func (e *Engine) AddMarker(m *Marker) MarkerID {
	e.model.Markers = append(e.model.Markers, m)
	id := e.registry.Add(m)
	e.registry.setShape(id, BuildMarker(m.Type, m.Value, e.cal, e.vp))
	e.paint(Layers(LayerMarkers))
	return id
}

// RemoveMarker removes the marker behind id from the registry and the
// model. It reports false for stale handles.
func (e *Engine) RemoveMarker(id MarkerID) bool {
	m, ok := e.registry.Get(id)
	if !ok {
		return false
	}
	e.registry.Remove(id)
	for i, mk := range e.model.Markers {
		if mk == m {
			e.model.Markers = append(e.model.Markers[:i], e.model.Markers[i+1:]...)
			break
		}
	}
	if e.pressedMarker == id {
		e.pressedMarker = MarkerID{}
	}
	e.paint(Layers(LayerMarkers))
	return true
}

// Marker returns the marker behind id and its current shape.
func (e *Engine) Marker(id MarkerID) (*Marker, MarkerShape, bool) {
	m, ok := e.registry.Get(id)
	if !ok {
		return nil, MarkerShape{}, false
	}
	shape, _ := e.registry.Shape(id)
	return m, shape, true
}

// Markers calls fn for every registered marker in insertion order.
func (e *Engine) Markers(fn func(id MarkerID, m *Marker, shape MarkerShape) bool) {
	e.registry.Each(fn)
}

// Image composites the visible layers. It returns nil when the viewport is
// empty.
func (e *Engine) Image() image.Image {
	return e.surf.composite()
}

// EncodePNG writes the composited gauge to w as PNG.
func (e *Engine) EncodePNG(w io.Writer) error {
	dc, err := e.composed()
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("gauge: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the composited gauge to a PNG file.
func (e *Engine) SavePNG(path string) error {
	dc, err := e.composed()
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("gauge: save %s: %w", path, err)
	}
	return nil
}

func (e *Engine) composed() (*gg.Context, error) {
	if e.vp.Empty() {
		return nil, ErrEmptyViewport
	}
	dc := e.surf.compose()
	if dc == nil {
		return nil, ErrEmptyViewport
	}
	return dc, nil
}

// resize derives the viewport from the model size, rebuilds size dependent
// geometry and repaints everything.
func (e *Engine) resize() LayerSet {
	m := e.model
	e.vp = NewViewport(m.Width, m.Height, m.KnobPosition, m.TickLabelLocation)
	if e.vp.Empty() {
		e.surf.resize(0, 0)
		return 0
	}
	e.surf.resize(e.vp.Size())
	e.syncVisibility()
	e.ensureNeedle()
	e.reshapeMarkers()
	return e.redraw()
}

// redraw re-reads paints, texts and formats and repaints every visible layer.
func (e *Engine) redraw() LayerSet {
	m := e.model
	e.format = newValueFormatter(e.opts.locale, m.Decimals)
	e.relabel()
	if e.fonts.Medium != nil {
		e.valueFace = e.fonts.Medium.Face(0.1 * e.vp.ScaledHeight)
	}
	e.threshold = BuildThreshold(m.Threshold, e.cal, e.vp)
	return e.paint(AllLayers)
}

// recalc applies the auto scale, derives a new calibration, clamps the model
// values into range and resizes.
func (e *Engine) recalc() LayerSet {
	m := e.model
	if m.AutoScale {
		s := AutoScale(m.MinValue, m.MaxValue)
		if s.MajorTickSpace > 0 {
			m.MinValue, m.MaxValue = s.Min, s.Max
			m.MajorTickSpace, m.MinorTickSpace = s.MajorTickSpace, s.MinorTickSpace
		}
	}
	e.cal = NewCalibration(m)
	m.Value = e.cal.Clamp(m.Value)
	m.CurrentValue = e.cal.Clamp(m.CurrentValue)
	return e.resize()
}

// applyVisibility diffs the visibility flags against the last snapshot and
// repaints the layers that depend on a changed flag.
func (e *Engine) applyVisibility() LayerSet {
	next := snapshotVisibility(e.model)
	changed := next.dependents(e.vis)
	e.vis = next
	e.syncVisibility()
	if changed.Has(LayerText) {
		e.relabel()
	}
	return e.paint(changed)
}

// relabel lays out the title and unit for the current viewport. Value
// updates reuse the result.
func (e *Engine) relabel() {
	e.title = titleLabel(e.vp, e.fonts.Medium, e.model.Title)
	e.unit = unitLabel(e.vp, e.fonts.Regular, e.model.Unit)
}

// syncVisibility shows or hides layers according to the current snapshot.
func (e *Engine) syncVisibility() {
	for id := range layerCount {
		e.surf.layers[id].visible = e.vis.layerVisible(id)
	}
}

// snapshotSections copies the section and area lists and their flags.
// Section visibility is part of the snapshot, so it also changes the
// SECTIONS layer visibility.
func (e *Engine) snapshotSections() {
	m := e.model
	e.sections = append(e.sections[:0], m.Sections...)
	e.areas = append(e.areas[:0], m.Areas...)
	e.sectionInside = make([]bool, len(e.sections))
	e.areaInside = make([]bool, len(e.areas))
	e.vis.sections = m.SectionsVisible
	e.vis.areas = m.AreasVisible
	e.highlightSections = m.HighlightSections
	e.highlightAreas = m.HighlightAreas
}

func (e *Engine) reshapeMarkers() {
	e.registry.reshape(func(mk *Marker, kind MarkerType) MarkerShape {
		return BuildMarker(kind, mk.Value, e.cal, e.vp)
	})
}
