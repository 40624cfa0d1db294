package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface lets the field draw straight onto an ebiten frame.
type screenSurface struct {
	dst *ebiten.Image
	// backdrop paints decorations that sit behind the particles.
	backdrop func(dst *ebiten.Image)
}

func (s screenSurface) Clear(bg color.Color) {
	s.dst.Fill(bg)
	if s.backdrop != nil {
		s.backdrop(s.dst)
	}
}

func (s screenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
