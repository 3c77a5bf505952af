package gauge

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := gauge.New(m,
//	    gauge.WithLocale(language.German),
//	    gauge.WithListener(func(n gauge.Notification) { log.Println(n) }),
//	)
type Option func(*options)

type options struct {
	listeners  []Listener
	locale     language.Tag
	fonts      *Fonts
	shaping    bool
	rasterizer gg.RasterizerMode
}

func defaultOptions() options {
	return options{
		locale:     language.AmericanEnglish,
		rasterizer: gg.RasterizerAuto,
	}
}

// WithListener registers l for button, marker and section notifications.
// Listeners are called synchronously in registration order.
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listeners = append(o.listeners, l)
		}
	}
}

// WithLocale sets the locale used to format the value and the tick labels.
// The default is American English.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithFonts replaces the embedded Go fonts.
func WithFonts(f Fonts) Option {
	return func(o *options) {
		if f.Regular != nil && f.Medium != nil {
			o.fonts = &f
		}
	}
}

// WithTextShaping enables HarfBuzz shaping through go-text/typesetting for
// all text drawn by gg. The shaper is process wide.
func WithTextShaping(enabled bool) Option {
	return func(o *options) {
		o.shaping = enabled
	}
}

// WithRasterizerMode sets the gg rasterizer used for every layer.
func WithRasterizerMode(mode gg.RasterizerMode) Option {
	return func(o *options) {
		o.rasterizer = mode
	}
}
