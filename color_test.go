package gauge

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func colorClose(a, b gg.RGBA) bool {
	const tol = 1e-6
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol && math.Abs(a.A-b.A) < tol
}

func TestRGB255(t *testing.T) {
	c := RGB255(255, 51, 0)
	want := gg.RGBA{R: 1, G: 0.2, B: 0, A: 1}
	if !colorClose(c, want) {
		t.Errorf("RGB255(255, 51, 0) = %+v, want %+v", c, want)
	}
	if a := RGBA255(0, 0, 0, 0.45).A; a != 0.45 {
		t.Errorf("RGBA255 alpha = %v, want 0.45", a)
	}
}

func TestHSBRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    gg.RGBA
		h    float64
	}{
		{"red", gg.RGBA{R: 1, A: 1}, 0},
		{"green", gg.RGBA{G: 1, A: 1}, 120},
		{"blue", gg.RGBA{B: 1, A: 1}, 240},
		{"orange", RGB255(255, 128, 0), 30.117647},
		{"grey", RGB255(128, 128, 128), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := ToHSB(tt.c)
			if math.Abs(h-tt.h) > 1e-4 {
				t.Errorf("ToHSB() hue = %v, want %v", h, tt.h)
			}
			if got := HSB(h, s, v, tt.c.A); !colorClose(got, tt.c) {
				t.Errorf("HSB(ToHSB(c)) = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestHSBWrapsHue(t *testing.T) {
	if got, want := HSB(-120, 1, 1, 1), HSB(240, 1, 1, 1); !colorClose(got, want) {
		t.Errorf("HSB(-120) = %+v, want %+v", got, want)
	}
	if got, want := HSB(480, 1, 1, 1), HSB(120, 1, 1, 1); !colorClose(got, want) {
		t.Errorf("HSB(480) = %+v, want %+v", got, want)
	}
}

func TestDarkerBrighter(t *testing.T) {
	c := RGB255(100, 150, 200)
	_, _, v := ToHSB(c)

	_, _, dv := ToHSB(Darker(c))
	if math.Abs(dv-v*0.7) > 1e-9 {
		t.Errorf("Darker brightness = %v, want %v", dv, v*0.7)
	}
	_, _, bv := ToHSB(Brighter(c))
	if math.Abs(bv-math.Min(1, v/0.7)) > 1e-9 {
		t.Errorf("Brighter brightness = %v, want %v", bv, math.Min(1, v/0.7))
	}
	if got := Brighter(gg.White); !colorClose(got, gg.White) {
		t.Errorf("Brighter(white) = %+v, want white", got)
	}
}

func TestDeriveBlack(t *testing.T) {
	if got := Darker(gg.Black); !colorClose(got, gg.Black) {
		t.Errorf("Darker(black) = %+v, want black", got)
	}
	_, _, v := ToHSB(Brighter(gg.Black))
	if v <= 0 {
		t.Error("Brighter(black) is still black")
	}
}

func TestDeriveOpacityAndHue(t *testing.T) {
	c := gg.RGBA{R: 1, A: 0.8}
	got := Derive(c, 120, 1, 1, 0.5)
	if !colorClose(got, gg.RGBA{G: 1, A: 0.4}) {
		t.Errorf("Derive(red, +120°, opacity 0.5) = %+v", got)
	}
	if a := Derive(c, 0, 1, 1, 2).A; a != 1 {
		t.Errorf("opacity clamped to %v, want 1", a)
	}
}
