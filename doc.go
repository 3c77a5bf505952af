// Package gauge renders a vertical radial gauge: a half dial with a needle
// pivoting on the left or right edge of a face twice as tall as it is wide.
//
// # Overview
//
// A gauge is described by a [Model]. An [Engine] turns the model into a
// stack of layers drawn with gg and keeps them current as the model
// changes. Every change is announced with an [Event]; [Engine.Apply]
// repaints only the layers the event affects and reports them as a
// [LayerSet].
//
// # Quick Start
//
//	m := gauge.NewModel()
//	m.Title = "Pressure"
//	m.Unit = "bar"
//	m.Sections = []gauge.Section{
//	    {Start: 80, Stop: 100, Color: gauge.RGB255(200, 0, 0)},
//	}
//
//	e := gauge.New(m)
//	e.SetCurrentValue(42)
//	if err := e.SavePNG("gauge.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Layers
//
// Layers are composited in this order: background, sections and areas,
// tick marks and labels, markers and threshold, LED, text, needle, knob.
// Moving the needle with [Engine.SetCurrentValue] repaints the needle and
// text layers only.
//
// # Angles
//
// Dial angles follow the skin geometry: angle a points in direction
// (sin a, cos a) from the dial centre, so 0° points down and 90° points
// right. [Arc] values use the arc-drawing convention instead: 0° is
// 3 o'clock and positive extents run counter-clockwise.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Confine it to one goroutine and
// hand images produced by [Engine.Image] to other goroutines.
package gauge
