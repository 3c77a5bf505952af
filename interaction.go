package gauge

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Event is a change notification delivered to Engine.Apply.
type Event int

const (
	// EventResize re-derives the viewport and repaints everything.
	EventResize Event = iota
	// EventValueFinished marks the end of a value animation.
	EventValueFinished
	// EventRedraw repaints every visible layer with the current model.
	EventRedraw
	// EventVisibility applies changed visibility flags.
	EventVisibility
	// EventLed repaints the LED.
	EventLed
	// EventRecalc recomputes the calibration after a range change.
	EventRecalc
	// EventSection re-reads sections and areas.
	EventSection
	// EventInteractivity enables or disables knob interaction.
	EventInteractivity
	// EventMarkers re-reads the marker list of the model.
	EventMarkers
)

var eventNames = [...]string{
	"RESIZE", "FINISHED", "REDRAW", "VISIBILITY", "LED", "RECALC", "SECTION", "INTERACTIVITY", "MARKERS",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// NotificationKind identifies what a Notification reports.
type NotificationKind int

const (
	ButtonPressed NotificationKind = iota
	ButtonReleased
	MarkerPressed
	MarkerReleased
	SectionEntered
	SectionLeft
)

func (k NotificationKind) String() string {
	switch k {
	case ButtonPressed:
		return "BUTTON_PRESSED"
	case ButtonReleased:
		return "BUTTON_RELEASED"
	case MarkerPressed:
		return "MARKER_PRESSED"
	case MarkerReleased:
		return "MARKER_RELEASED"
	case SectionEntered:
		return "SECTION_ENTERED"
	case SectionLeft:
		return "SECTION_LEFT"
	}
	return fmt.Sprintf("NotificationKind(%d)", int(k))
}

// Notification is sent to listeners. Marker is set for marker
// notifications. Section, Index and Area are set for section notifications;
// Area tells whether the section is one of the model's areas.
type Notification struct {
	Kind    NotificationKind
	Marker  MarkerID
	Section Section
	Index   int
	Area    bool
}

// Listener receives notifications. It must not call back into the engine.
type Listener func(Notification)

func (e *Engine) notify(n Notification) {
	for _, l := range e.opts.listeners {
		l(n)
	}
}

// Press handles a pointer press at (x, y) in image coordinates. Pressing
// the knob of an interactive gauge fires ButtonPressed and draws the
// pressed knob; pressing a marker fires MarkerPressed. Disabled gauges
// ignore input.
func (e *Engine) Press(x, y float64) LayerSet {
	if e.model.Disabled {
		return 0
	}
	pt := gg.Pt(x, y)
	if e.interactive && e.model.KnobVisible && e.onKnob(pt) {
		e.pressed = true
		e.notify(Notification{Kind: ButtonPressed})
		return e.paint(Layers(LayerKnob))
	}
	if id, ok := e.markerAt(pt); ok {
		e.pressedMarker = id
		e.notify(Notification{Kind: MarkerPressed, Marker: id})
	}
	return 0
}

// Release ends a press started with Press. The release is reported to the
// element that received the press wherever it happens.
func (e *Engine) Release(x, y float64) LayerSet {
	if e.model.Disabled {
		return 0
	}
	if e.pressed {
		e.pressed = false
		e.notify(Notification{Kind: ButtonReleased})
		return e.paint(Layers(LayerKnob))
	}
	if !e.pressedMarker.IsZero() {
		id := e.pressedMarker
		e.pressedMarker = MarkerID{}
		if _, ok := e.registry.Get(id); ok {
			e.notify(Notification{Kind: MarkerReleased, Marker: id})
		}
	}
	return 0
}

// onKnob reports whether pt is inside the knob circle.
func (e *Engine) onKnob(pt gg.Point) bool {
	r := 0.05 * e.vp.Height
	c := e.vp.Center
	return math.Hypot(pt.X-c.X, pt.Y-c.Y) <= r
}

// markerAt returns the topmost visible marker under pt.
func (e *Engine) markerAt(pt gg.Point) (MarkerID, bool) {
	if !e.model.MarkersVisible {
		return MarkerID{}, false
	}
	var hit MarkerID
	e.registry.Each(func(id MarkerID, _ *Marker, shape MarkerShape) bool {
		if shape.Contains(pt) {
			hit = id
		}
		return true
	})
	return hit, !hit.IsZero()
}

// checkSections fires enter and leave notifications for sections (and
// areas) whose containment of v changed since the previous check.
func (e *Engine) checkSections(v float64) {
	if e.model.CheckSectionsForValue {
		crossings(e.sections, e.sectionInside, v, false, e.notify)
	}
	if e.model.CheckAreasForValue {
		crossings(e.areas, e.areaInside, v, true, e.notify)
	}
}

func crossings(list []Section, inside []bool, v float64, area bool, notify func(Notification)) {
	for i, s := range list {
		now := s.Contains(v)
		switch {
		case now && !inside[i]:
			notify(Notification{Kind: SectionEntered, Section: s, Index: i, Area: area})
		case !now && inside[i]:
			notify(Notification{Kind: SectionLeft, Section: s, Index: i, Area: area})
		}
		inside[i] = now
	}
}
