package gauge

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDecimals bounds the number of fraction digits shown for values.
const maxDecimals = 6

// Fonts holds the font sources used for gauge text. Medium is used for the
// title and the value, Regular for the unit and the tick labels.
type Fonts struct {
	Regular *text.FontSource
	Medium  *text.FontSource
}

var (
	goFontsOnce sync.Once
	goFonts     Fonts
	goFontsErr  error
)

// GoFonts returns the embedded Go Regular and Go Medium fonts. They are
// parsed once.
func GoFonts() (Fonts, error) {
	goFontsOnce.Do(func() {
		var f Fonts
		if f.Regular, goFontsErr = text.NewFontSource(goregular.TTF); goFontsErr != nil {
			goFontsErr = fmt.Errorf("gauge: parse regular font: %w", goFontsErr)
			return
		}
		if f.Medium, goFontsErr = text.NewFontSource(gomedium.TTF); goFontsErr != nil {
			goFontsErr = fmt.Errorf("gauge: parse medium font: %w", goFontsErr)
			return
		}
		goFonts = f
	})
	return goFonts, goFontsErr
}

// label is a piece of text placed on the face. X is the left edge and Y the
// baseline.
type label struct {
	Text string
	Face text.Face
	X, Y float64
}

// width returns the advance width of the label.
func (l label) width() float64 {
	if l.Face == nil {
		return 0
	}
	return l.Face.Advance(l.Text)
}

// fitFace returns a face of src at size, shrunk until s is no wider than
// maxWidth.
func fitFace(src *text.FontSource, size float64, s string, maxWidth float64) text.Face {
	face := src.Face(size)
	for size > 1 && face.Advance(s) > maxWidth {
		size *= 0.95
		face = src.Face(size)
	}
	return face
}

// lineHeight returns the line height of face.
func lineHeight(face text.Face) float64 {
	return face.Metrics().LineHeight()
}

// titleLabel places the title to the side of the dial, vertically centred.
func titleLabel(vp Viewport, src *text.FontSource, s string) label {
	return sideLabel(vp, src, s, 0.06, 0.5)
}

// unitLabel places the unit above the title.
func unitLabel(vp Viewport, src *text.FontSource, s string) label {
	return sideLabel(vp, src, s, 0.04, 0.38)
}

// sideLabel places s at the x position shared by title and unit. The top of
// the text is at (Height - lineHeight) * top.
func sideLabel(vp Viewport, src *text.FontSource, s string, size, top float64) label {
	if s == "" || src == nil {
		return label{}
	}
	face := fitFace(src, size*vp.ScaledHeight, s, 0.4*vp.Width)
	l := label{Text: s, Face: face}
	if vp.Knob == CenterLeft {
		l.X = 0.6*vp.Width - l.width()
	} else {
		l.X = 0.4 * vp.Width
	}
	m := face.Metrics()
	l.Y = (vp.Height-m.LineHeight())*top + m.Ascent
	return l
}

// valueLabel right aligns the formatted value and centres it vertically on
// 0.6 of the face height.
func valueLabel(vp Viewport, face text.Face, s string) label {
	if face == nil {
		return label{}
	}
	l := label{Text: s, Face: face}
	l.X = vp.anchorX(0.6, 0.9) - l.width()
	m := face.Metrics()
	l.Y = 0.6*vp.Height + (m.Ascent-m.Descent)*0.5
	return l
}

// valueFormatter formats values for one locale with a fixed number of
// fraction digits. It keeps the locale decimal separator but never groups
// digits.
type valueFormatter struct {
	printer  *message.Printer
	decimals int
}

func newValueFormatter(tag language.Tag, decimals int) valueFormatter {
	return valueFormatter{
		printer:  message.NewPrinter(tag),
		decimals: int(clamp(0, maxDecimals, float64(decimals))),
	}
}

func (f valueFormatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(f.decimals), number.NoSeparator()))
}
