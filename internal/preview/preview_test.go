package preview

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func square(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestRenderGridSize(t *testing.T) {
	t.Parallel()

	p := New(10, 5, WithMono())
	lines := strings.Split(p.Render(square(40, 40, color.Black)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 10 {
			t.Errorf("line %d has %d cells, want 10", i, n)
		}
	}
}

func TestRenderTransparentIsBlank(t *testing.T) {
	t.Parallel()

	out := New(4, 2).Render(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if diff := cmp.Diff("    \n    ", out); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderKeepsAspect(t *testing.T) {
	t.Parallel()

	// A square image in a wide grid fills only the middle columns.
	lines := strings.Split(New(8, 2, WithMono()).Render(square(16, 16, color.Black)), "\n")
	for i, l := range lines {
		r := []rune(l)
		if r[0] != ' ' && r[0] != blank {
			t.Errorf("line %d: left margin set: %q", i, l)
		}
		if mid := r[4]; mid == ' ' || mid == blank {
			t.Errorf("line %d: centre cell empty: %q", i, l)
		}
	}
}

func TestRenderColorMatchesMono(t *testing.T) {
	t.Parallel()

	img := square(20, 20, color.RGBA{R: 200, A: 255})
	mono := New(5, 3, WithMono()).Render(img)
	colored := New(5, 3).Render(img)
	if diff := cmp.Diff(mono, ansi.Strip(colored)); diff != "" {
		t.Errorf("stripped colour output differs from mono (-want +got):\n%s", diff)
	}
}

func TestCellColor(t *testing.T) {
	t.Parallel()

	dots := image.NewRGBA(image.Rect(0, 0, 2, 4))
	dots.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, A: 255})
	dots.SetRGBA(1, 0, color.RGBA{R: 50, B: 50, A: 128})
	got := New(1, 1).cellColor(dots, 0, 0)
	want := color.RGBA{R: (100 + 99) / 2, G: 25, B: 49, A: 255}
	if got != want {
		t.Errorf("cellColor() = %v, want %v", got, want)
	}
}
