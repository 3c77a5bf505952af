package gauge

import (
	"image"
	"strings"

	"github.com/gogpu/gg"
)

// LayerID identifies one drawing surface of the gauge. Layers are
// composited in ascending order.
type LayerID uint8

const (
	LayerBackground LayerID = iota
	LayerSections
	LayerTicks
	LayerMarkers
	LayerLed
	LayerText
	LayerNeedle
	LayerKnob

	layerCount
)

var layerNames = [layerCount]string{
	"BACKGROUND", "SECTIONS", "TICKS", "MARKERS", "LED", "TEXT", "NEEDLE", "KNOB",
}

// String returns the name of the layer.
func (id LayerID) String() string {
	if id >= layerCount {
		return "UNKNOWN"
	}
	return layerNames[id]
}

// LayerSet is a set of layers.
type LayerSet uint16

// AllLayers contains every layer.
const AllLayers LayerSet = 1<<layerCount - 1

// Layers returns the set containing ids.
func Layers(ids ...LayerID) LayerSet {
	var s LayerSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Has reports whether id is in s.
func (s LayerSet) Has(id LayerID) bool {
	return s&(1<<id) != 0
}

// With returns s with id added.
func (s LayerSet) With(id LayerID) LayerSet {
	return s | 1<<id
}

// Without returns s with id removed.
func (s LayerSet) Without(id LayerID) LayerSet {
	return s &^ (1 << id)
}

// IDs returns the members of s in composition order.
func (s LayerSet) IDs() []LayerID {
	var ids []LayerID
	for id := range layerCount {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s LayerSet) String() string {
	ids := s.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// layer is one viewport sized drawing surface.
type layer struct {
	dc      *gg.Context
	visible bool
	paints  int
}

// surfaces owns the gauge layers.
type surfaces struct {
	layers [layerCount]layer
	w, h   int
	mode   gg.RasterizerMode
}

// resize replaces every layer with a blank surface of w x h pixels.
// Visibility flags are kept.
func (s *surfaces) resize(w, h int) {
	for i := range s.layers {
		l := &s.layers[i]
		if l.dc != nil {
			if err := l.dc.Close(); err != nil {
				Logger().Warn("gauge: release layer", "layer", LayerID(i), "err", err)
			}
			l.dc = nil
		}
		if w > 0 && h > 0 {
			l.dc = gg.NewContext(w, h)
			l.dc.SetRasterizerMode(s.mode)
		}
	}
	s.w, s.h = w, h
}

// begin clears a layer and returns a pen for it. The second result is false
// when the layer has no surface.
func (s *surfaces) begin(id LayerID) (pen, bool) {
	l := &s.layers[id]
	if l.dc == nil {
		return pen{}, false
	}
	l.dc.Identity()
	l.dc.ClearWithColor(gg.Transparent)
	l.paints++
	return pen{dc: l.dc, layer: id}, true
}

// compose draws every visible layer onto a new context of the surface
// size. It returns nil when there is no surface.
func (s *surfaces) compose() *gg.Context {
	if s.w <= 0 || s.h <= 0 {
		return nil
	}
	dst := gg.NewContext(s.w, s.h)
	for id := range layerCount {
		l := s.layers[id]
		if !l.visible || l.dc == nil {
			continue
		}
		if err := l.dc.FlushGPU(); err != nil {
			Logger().Warn("gauge: flush layer", "layer", id, "err", err)
		}
		dst.DrawImage(gg.ImageBufFromImage(l.dc.Image()), 0, 0)
	}
	return dst
}

// composite returns the composed layers as an image.
func (s *surfaces) composite() image.Image {
	dst := s.compose()
	if dst == nil {
		return nil
	}
	defer dst.Close()
	if err := dst.FlushGPU(); err != nil {
		Logger().Warn("gauge: flush composite", "err", err)
	}
	return dst.Image()
}

// pen draws paths on one layer. Drawing errors are logged and do not stop
// the layer from being painted.
type pen struct {
	dc    *gg.Context
	layer LayerID
}

func (p pen) warn(op string, err error) {
	if err != nil {
		Logger().Warn("gauge: draw failed", "layer", p.layer, "op", op, "err", err)
	}
}

// trace replays path onto the context's current path.
func (p pen) trace(path *gg.Path) {
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			p.dc.MoveTo(c[0], c[1])
		case gg.LineTo:
			p.dc.LineTo(c[0], c[1])
		case gg.QuadTo:
			p.dc.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			p.dc.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			p.dc.ClosePath()
		}
	})
}

func (p pen) fill(path *gg.Path, b gg.Brush) {
	p.fillRule(path, b, gg.FillRuleNonZero)
}

func (p pen) fillRule(path *gg.Path, b gg.Brush, rule gg.FillRule) {
	if path == nil || b == nil {
		return
	}
	p.trace(path)
	p.dc.SetFillRule(rule)
	p.dc.SetFillBrush(b)
	p.warn("fill", p.dc.Fill())
}

func (p pen) stroke(path *gg.Path, b gg.Brush, width float64, lineCap gg.LineCap) {
	if path == nil || b == nil || width <= 0 {
		return
	}
	p.trace(path)
	p.dc.SetStrokeBrush(b)
	p.dc.SetLineWidth(width)
	p.dc.SetLineCap(lineCap)
	p.warn("stroke", p.dc.Stroke())
}

func (p pen) fillOval(x, y, w, h float64, b gg.Brush) {
	p.dc.DrawEllipse(x+w*0.5, y+h*0.5, w*0.5, h*0.5)
	p.dc.SetFillRule(gg.FillRuleNonZero)
	p.dc.SetFillBrush(b)
	p.warn("fill", p.dc.Fill())
}

func (p pen) strokeOval(x, y, w, h float64, b gg.Brush, width float64) {
	p.dc.DrawEllipse(x+w*0.5, y+h*0.5, w*0.5, h*0.5)
	p.dc.SetStrokeBrush(b)
	p.dc.SetLineWidth(width)
	p.warn("stroke", p.dc.Stroke())
}

func (p pen) fillRect(x, y, w, h float64, b gg.Brush) {
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.SetFillRule(gg.FillRuleNonZero)
	p.dc.SetFillBrush(b)
	p.warn("fill", p.dc.Fill())
}
