package field

import (
	"image/color"
	"math"
)

// Surface is a 2D drawing target the field owns for the duration of a frame.
type Surface interface {
	Clear(bg color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Theme is polled once per frame for the current look.
type Theme interface {
	Dark() bool
	Background() color.Color
}

var (
	darkInk  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	lightInk = color.RGBA{R: 33, G: 37, B: 41, A: 255}
)

// Ink returns the opaque base colour for particles and lines.
func Ink(dark bool) color.RGBA {
	if dark {
		return darkInk
	}
	return lightInk
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Render redraws the whole surface from the current particle state.
// Nothing from a previous frame is assumed to survive.
func (f *Field) Render(dst Surface, th Theme) {
	dst.Clear(th.Background())

	ink := Ink(th.Dark())
	dot := withAlpha(ink, f.params.Alpha)
	for _, p := range f.particles {
		dst.FillCircle(p.X, p.Y, p.Size, dot)
	}

	for _, c := range f.Connections() {
		a, b := f.particles[c.A], f.particles[c.B]
		dst.StrokeLine(a.X, a.Y, b.X, b.Y, f.params.LineWidth, withAlpha(ink, c.Opacity))
	}
}

// Tick runs one frame: every particle is updated, then the frame is drawn.
func (f *Field) Tick(dst Surface, th Theme) {
	f.Step()
	f.Render(dst, th)
}
