// Package preview draws gauge images as coloured braille text for terminals.
package preview

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
	xdraw "golang.org/x/image/draw"
)

const (
	// braille cell size in dots
	cellW = 2
	cellH = 4

	blank rune = '⠀'
)

// Preview renders images into a fixed grid of terminal cells.
type Preview struct {
	Cols, Rows int
	// Alpha is the minimum pixel alpha that sets a dot.
	Alpha uint8
	// Mono disables per-cell colouring.
	Mono bool
}

// Option configures a Preview.
type Option func(*Preview)

// WithAlpha sets the minimum pixel alpha that sets a dot.
func WithAlpha(a uint8) Option {
	return func(p *Preview) {
		p.Alpha = a
	}
}

// WithMono disables per-cell colouring.
func WithMono() Option {
	return func(p *Preview) {
		p.Mono = true
	}
}

// New returns a Preview of cols by rows cells. Alpha defaults to 96.
func New(cols, rows int, opts ...Option) Preview {
	p := Preview{Cols: max(cols, 1), Rows: max(rows, 1), Alpha: 96}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Render scales img to fit the grid, keeping its aspect ratio, and returns
// Rows lines of Cols cells each.
func (p Preview) Render(img image.Image) string {
	dots := p.scale(img)
	w, h := p.Cols*cellW, p.Rows*cellH

	canvas := drawille.NewCanvas()
	for y := range h {
		for x := range w {
			if dots.RGBAAt(x, y).A >= p.Alpha {
				canvas.Set(x, y)
			}
		}
	}
	lines := gridLines(canvas.Rows(0, 0, w-1, h-1), p.Cols, p.Rows)
	if p.Mono {
		return strings.Join(lines, "\n")
	}

	out := make([]string, len(lines))
	for row, line := range lines {
		var b strings.Builder
		for col, r := range []rune(line) {
			if r == ' ' || r == blank {
				b.WriteRune(' ')
				continue
			}
			c := p.cellColor(dots, col, row)
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
		}
		out[row] = b.String()
	}
	return strings.Join(out, "\n")
}

// scale draws img centred into a Cols*2 x Rows*4 dot buffer.
func (p Preview) scale(img image.Image) *image.RGBA {
	w, h := p.Cols*cellW, p.Rows*cellH
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Empty() {
		return dst
	}
	sx := float64(w) / float64(b.Dx())
	sy := float64(h) / float64(b.Dy())
	s := min(sx, sy)
	fw, fh := max(int(float64(b.Dx())*s), 1), max(int(float64(b.Dy())*s), 1)
	ox, oy := (w-fw)/2, (h-fh)/2
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(ox, oy, ox+fw, oy+fh), img, b, xdraw.Over, nil)
	return dst
}

// cellColor averages the set dots of one cell.
func (p Preview) cellColor(dots *image.RGBA, col, row int) color.Color {
	var r, g, b, n uint32
	for y := row * cellH; y < (row+1)*cellH; y++ {
		for x := col * cellW; x < (col+1)*cellW; x++ {
			c := dots.RGBAAt(x, y)
			if c.A == 0 || c.A < p.Alpha {
				continue
			}
			// un-premultiply
			r += uint32(c.R) * 255 / uint32(c.A)
			g += uint32(c.G) * 255 / uint32(c.A)
			b += uint32(c.B) * 255 / uint32(c.A)
			n++
		}
	}
	if n == 0 {
		return color.White
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}

// gridLines pads or truncates canvas rows to exactly rows lines of cols runes.
func gridLines(canvasRows []string, cols, rows int) []string {
	lines := make([]string, rows)
	for i := range rows {
		var line []rune
		if i < len(canvasRows) {
			line = []rune(canvasRows[i])
		}
		if len(line) > cols {
			line = line[:cols]
		}
		lines[i] = string(line) + strings.Repeat(" ", cols-len(line))
	}
	return lines
}
