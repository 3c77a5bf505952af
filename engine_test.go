package gauge

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

// paintCounts returns how often each layer has been painted.
func paintCounts(e *Engine) [layerCount]int {
	var n [layerCount]int
	for id := range layerCount {
		n[id] = e.surf.layers[id].paints
	}
	return n
}

// repainted returns the layers whose paint count changed between a and b.
func repainted(a, b [layerCount]int) LayerSet {
	var s LayerSet
	for id := range layerCount {
		if a[id] != b[id] {
			s = s.With(id)
		}
	}
	return s
}

func TestNewPaintsVisibleLayers(t *testing.T) {
	e := New(NewModel())
	for id := range layerCount {
		l := e.surf.layers[id]
		want := 1
		if !l.visible {
			want = 0
		}
		if l.paints != want {
			t.Errorf("layer %v painted %d times, want %d", id, l.paints, want)
		}
	}
	if e.surf.layers[LayerLed].visible {
		t.Error("LED layer visible by default")
	}
	if got := e.ValueText(); got != "0.0" {
		t.Errorf("ValueText() = %q, want %q", got, "0.0")
	}
}

func TestSetCurrentValueRepaintsNeedleAndText(t *testing.T) {
	e := New(NewModel())
	before := paintCounts(e)
	builds := e.needleBuilds

	got := e.SetCurrentValue(42)
	want := Layers(LayerNeedle, LayerText)
	if got != want {
		t.Errorf("SetCurrentValue() = %v, want %v", got, want)
	}
	if changed := repainted(before, paintCounts(e)); changed != want {
		t.Errorf("repainted %v, want %v", changed, want)
	}
	if e.needleBuilds != builds {
		t.Errorf("needle rebuilt %d times on a value change", e.needleBuilds-builds)
	}
	if e.ValueText() != "42.0" {
		t.Errorf("ValueText() = %q, want %q", e.ValueText(), "42.0")
	}
	if want := e.Calibration().NeedleAngle(42); e.NeedleAngle() != want {
		t.Errorf("NeedleAngle() = %v, want %v", e.NeedleAngle(), want)
	}
}

func TestRecalcClampsValues(t *testing.T) {
	m := NewModel()
	e := New(m)
	m.Value = -5
	m.CurrentValue = 150
	if got := e.Apply(EventRecalc); got == 0 {
		t.Error("Apply(RECALC) repainted nothing")
	}
	if m.Value != 0 || m.CurrentValue != 100 {
		t.Errorf("after RECALC Value = %v, CurrentValue = %v, want 0, 100", m.Value, m.CurrentValue)
	}

	m.MinValue, m.MaxValue = -50, 50
	e.Apply(EventRecalc)
	if cal := e.Calibration(); cal.Min != -50 || cal.AngleStep != 1.8 {
		t.Errorf("calibration = %+v, want Min -50 and AngleStep 1.8", cal)
	}
	if m.CurrentValue != 50 {
		t.Errorf("CurrentValue = %v, want 50", m.CurrentValue)
	}
}

func TestAutoScaleOnCreate(t *testing.T) {
	m := NewModel()
	m.AutoScale = true
	m.MaxValue = 87
	New(m)
	if m.MaxValue != 90 || m.MajorTickSpace != 10 || m.MinorTickSpace != 1 {
		t.Errorf("auto scale = max %v major %v minor %v, want 90, 10, 1", m.MaxValue, m.MajorTickSpace, m.MinorTickSpace)
	}
}

func TestVisibilityShowsLed(t *testing.T) {
	m := NewModel()
	e := New(m)
	before := paintCounts(e)

	m.LedVisible = true
	if got := e.Apply(EventVisibility); got != Layers(LayerLed) {
		t.Errorf("Apply(VISIBILITY) = %v, want {LED}", got)
	}
	if changed := repainted(before, paintCounts(e)); changed != Layers(LayerLed) {
		t.Errorf("repainted %v, want {LED}", changed)
	}
	if !e.surf.layers[LayerLed].visible {
		t.Error("LED layer still hidden")
	}

	// Nothing changed, nothing repainted.
	if got := e.Apply(EventVisibility); got != 0 {
		t.Errorf("second Apply(VISIBILITY) = %v, want {}", got)
	}
}

func TestVisibilityHidesKnob(t *testing.T) {
	m := NewModel()
	e := New(m)
	m.KnobVisible = false
	if got := e.Apply(EventVisibility); got != 0 {
		t.Errorf("Apply(VISIBILITY) = %v, want {}", got)
	}
	if e.surf.layers[LayerKnob].visible {
		t.Error("knob layer still visible")
	}
}

func TestLedEvent(t *testing.T) {
	m := NewModel()
	e := New(m)
	if got := e.Apply(EventLed); got != 0 {
		t.Errorf("Apply(LED) on hidden LED = %v, want {}", got)
	}
	m.LedVisible = true
	e.Apply(EventVisibility)
	m.LedOn = true
	if got := e.Apply(EventLed); got != Layers(LayerLed) {
		t.Errorf("Apply(LED) = %v, want {LED}", got)
	}
}

func TestUnknownEvent(t *testing.T) {
	e := New(NewModel())
	if got := e.Apply(Event(99)); got != 0 {
		t.Errorf("Apply(99) = %v, want {}", got)
	}
}

func TestNeedleRebuildOnTypeChange(t *testing.T) {
	m := NewModel()
	e := New(m)
	builds := e.needleBuilds

	e.Apply(EventRedraw)
	if e.needleBuilds != builds {
		t.Error("REDRAW rebuilt an unchanged needle")
	}

	m.NeedleType = NeedleAvionic
	e.Apply(EventRedraw)
	if e.needleBuilds != builds+1 {
		t.Errorf("needle builds = %d, want %d", e.needleBuilds, builds+1)
	}
	if e.Needle().Type != NeedleAvionic {
		t.Errorf("Needle().Type = %v, want %v", e.Needle().Type, NeedleAvionic)
	}
}

func TestTextLabelsCached(t *testing.T) {
	m := NewModel()
	m.MaxValue = 5000
	m.Title = "Pressure"
	m.Unit = "bar"
	e := New(m)
	title, unit := e.title, e.unit
	if title.Text != "Pressure" || unit.Text != "bar" {
		t.Fatalf("labels = %q/%q, want Pressure/bar", title.Text, unit.Text)
	}

	e.SetCurrentValue(1234.5)
	if got := e.ValueText(); got != "1234.5" {
		t.Errorf("ValueText() = %q, want 1234.5", got)
	}
	if e.title != title || e.unit != unit {
		t.Error("SetCurrentValue laid out the title and unit again")
	}

	m.Title = "Temperature"
	e.Apply(EventRedraw)
	if e.title.Text != "Temperature" {
		t.Errorf("title after REDRAW = %q, want Temperature", e.title.Text)
	}

	m.Unit = ""
	e.Apply(EventVisibility)
	if e.unit.Text != "" {
		t.Errorf("unit after VISIBILITY = %q, want empty", e.unit.Text)
	}
}

func TestAddRemoveMarker(t *testing.T) {
	m := NewModel()
	e := New(m)
	before := paintCounts(e)

	id := e.AddMarker(&Marker{Value: 40, Type: MarkerTriangle, Color: gg.Black})
	if changed := repainted(before, paintCounts(e)); changed != Layers(LayerMarkers) {
		t.Errorf("AddMarker repainted %v, want {MARKERS}", changed)
	}
	if len(m.Markers) != 1 {
		t.Fatalf("model has %d markers, want 1", len(m.Markers))
	}
	mk, shape, ok := e.Marker(id)
	if !ok || mk != m.Markers[0] {
		t.Fatal("Marker(id) did not resolve the added marker")
	}
	if shape.Type != MarkerTriangle || shape.Path == nil {
		t.Errorf("shape = %+v, want a triangle path", shape)
	}

	n := 0
	e.Markers(func(MarkerID, *Marker, MarkerShape) bool { n++; return true })
	if n != 1 {
		t.Errorf("Markers() visited %d markers, want 1", n)
	}

	if !e.RemoveMarker(id) {
		t.Fatal("RemoveMarker() = false")
	}
	if len(m.Markers) != 0 {
		t.Errorf("model has %d markers after removal", len(m.Markers))
	}
	if e.RemoveMarker(id) {
		t.Error("RemoveMarker() accepted a stale handle")
	}
}

func TestMarkersEvent(t *testing.T) {
	m := NewModel()
	e := New(m)
	m.Markers = []*Marker{{Value: 10}, {Value: 90, Type: MarkerDot}}
	if got := e.Apply(EventMarkers); got != Layers(LayerMarkers) {
		t.Errorf("Apply(MARKERS) = %v, want {MARKERS}", got)
	}
	var values []float64
	e.Markers(func(_ MarkerID, mk *Marker, shape MarkerShape) bool {
		values = append(values, mk.Value)
		if shape.Path == nil {
			t.Errorf("marker at %v has no shape", mk.Value)
		}
		return true
	})
	if diff := cmp.Diff([]float64{10, 90}, values); diff != "" {
		t.Errorf("marker order mismatch (-want +got):\n%s", diff)
	}
}

func highlightModel() *Model {
	m := NewModel()
	m.HighlightSections = true
	m.CheckSectionsForValue = true
	m.Sections = []Section{{
		Start:          20,
		Stop:           40,
		Color:          RGB255(0, 0, 255),
		HighlightColor: RGB255(255, 0, 0),
	}}
	return m
}

func TestSectionColor(t *testing.T) {
	s := highlightModel().Sections[0]
	tests := []struct {
		highlight bool
		v         float64
		want      gg.RGBA
	}{
		{true, 30, s.HighlightColor},
		{true, 20, s.HighlightColor},
		{true, 50, s.Color},
		{false, 30, s.Color},
	}
	for _, tt := range tests {
		if got := sectionColor(s, tt.highlight, tt.v); got != tt.want {
			t.Errorf("sectionColor(highlight %v, %v) = %v, want %v", tt.highlight, tt.v, got, tt.want)
		}
	}
}

func TestSectionHighlightPixels(t *testing.T) {
	m := highlightModel()
	e := New(m)
	spot := AngleToPoint(e.Calibration().ValueAngle(30), e.sectionRadius(), e.Viewport().Center)

	sample := func() (r, b uint32) {
		img := e.surf.layers[LayerSections].dc.Image()
		r, _, b, _ = img.At(int(spot.X), int(spot.Y)).RGBA()
		return r >> 8, b >> 8
	}

	if r, b := sample(); b < 200 || r > 50 {
		t.Errorf("idle section pixel r=%d b=%d, want blue", r, b)
	}

	e.SetCurrentValue(30)
	if got := e.Apply(EventValueFinished); got != Layers(LayerSections) {
		t.Errorf("Apply(FINISHED) = %v, want {SECTIONS}", got)
	}
	if r, b := sample(); r < 200 || b > 50 {
		t.Errorf("highlighted section pixel r=%d b=%d, want red", r, b)
	}

	e.SetCurrentValue(50)
	e.Apply(EventValueFinished)
	if r, b := sample(); b < 200 || r > 50 {
		t.Errorf("section pixel after leaving r=%d b=%d, want blue", r, b)
	}
}

func TestSectionNotifications(t *testing.T) {
	m := highlightModel()
	var got []NotificationKind
	e := New(m, WithListener(func(n Notification) {
		if n.Area || n.Index != 0 {
			t.Errorf("notification %+v for an unexpected section", n)
		}
		got = append(got, n.Kind)
	}))

	for _, v := range []float64{30, 35, 50, 50, 20} {
		e.SetCurrentValue(v)
		e.Apply(EventValueFinished)
	}
	want := []NotificationKind{SectionEntered, SectionLeft, SectionEntered}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionEventRepaintsSections(t *testing.T) {
	m := NewModel()
	e := New(m)
	before := paintCounts(e)
	m.Sections = append(m.Sections, Section{Start: 60, Stop: 80, Color: gg.Black})
	if got := e.Apply(EventSection); got != Layers(LayerSections) {
		t.Errorf("Apply(SECTION) = %v, want {SECTIONS}", got)
	}
	if changed := repainted(before, paintCounts(e)); changed != Layers(LayerSections) {
		t.Errorf("repainted %v, want {SECTIONS}", changed)
	}
	if len(e.sections) != 1 || len(e.sectionInside) != 1 {
		t.Errorf("engine holds %d sections, want 1", len(e.sections))
	}
}

func TestPressKnob(t *testing.T) {
	m := NewModel()
	m.Interactive = true
	var got []NotificationKind
	e := New(m, WithListener(func(n Notification) { got = append(got, n.Kind) }))
	c := e.Viewport().Center

	if set := e.Press(c.X, c.Y); set != Layers(LayerKnob) {
		t.Errorf("Press(knob) = %v, want {KNOB}", set)
	}
	if !e.pressed {
		t.Error("knob not pressed")
	}
	// The release is delivered to the knob even off the knob.
	e.Release(0, 0)
	if diff := cmp.Diff([]NotificationKind{ButtonPressed, ButtonReleased}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}

	got = nil
	m.Interactive = false
	e.Apply(EventInteractivity)
	e.Press(c.X, c.Y)
	e.Release(c.X, c.Y)
	if len(got) != 0 {
		t.Errorf("non-interactive knob sent %v", got)
	}
}

func TestPressMarker(t *testing.T) {
	m := NewModel()
	var got []Notification
	e := New(m, WithListener(func(n Notification) { got = append(got, n) }))
	id := e.AddMarker(&Marker{Value: 50})
	at := AngleToPoint(e.Calibration().ValueAngle(50), 0.42*e.Viewport().ScaledHeight, e.Viewport().Center)

	m.Disabled = true
	e.Press(at.X, at.Y)
	if len(got) != 0 {
		t.Fatalf("disabled gauge sent %v", got)
	}

	m.Disabled = false
	e.Press(at.X, at.Y)
	e.Release(at.X, at.Y)
	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0].Kind != MarkerPressed || got[0].Marker != id {
		t.Errorf("press = %+v, want MARKER_PRESSED for %v", got[0], id)
	}
	if got[1].Kind != MarkerReleased || got[1].Marker != id {
		t.Errorf("release = %+v, want MARKER_RELEASED for %v", got[1], id)
	}
}

func TestEmptyViewport(t *testing.T) {
	m := NewModel()
	m.Width = 0
	e := New(m)
	if img := e.Image(); img != nil {
		t.Error("Image() returned an image for an empty viewport")
	}
	var buf bytes.Buffer
	if err := e.EncodePNG(&buf); !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("EncodePNG() = %v, want ErrEmptyViewport", err)
	}
	// Events on an empty gauge do not paint.
	if got := e.SetCurrentValue(10); got != 0 {
		t.Errorf("SetCurrentValue() = %v, want {}", got)
	}
}

func TestEncodePNG(t *testing.T) {
	m := NewModel()
	m.Width, m.Height = 400, 250
	m.Title = "Pressure"
	m.Unit = "bar"
	m.LedVisible = true
	m.LedOn = true
	m.ThresholdVisible = true
	m.Threshold = 80
	m.GradientBarEnabled = true
	m.GradientBarStops = []gg.ColorStop{
		{Offset: 0, Color: RGB255(0, 200, 0)},
		{Offset: 1, Color: RGB255(200, 0, 0)},
	}
	e := New(m)
	e.SetCurrentValue(65)

	var buf bytes.Buffer
	if err := e.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 125 || b.Dy() != 250 {
		t.Errorf("image is %dx%d, want 125x250", b.Dx(), b.Dy())
	}
}

func TestEveryNeedleAndKnobPaints(t *testing.T) {
	for _, nt := range allNeedleTypes {
		for _, kt := range []KnobType{KnobStandard, KnobPlain, KnobMetal, KnobFlat} {
			m := NewModel()
			m.NeedleType = nt
			m.KnobType = kt
			m.LedVisible = true
			m.LedType = LedFlat
			e := New(m)
			if img := e.Image(); img == nil {
				t.Errorf("%v/%v: Image() = nil", nt, kt)
			}
		}
	}
}
