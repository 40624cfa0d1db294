// Package theme tracks the light/dark slider and the palette derived from it.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Slider bounds.
const (
	Min = 0
	Max = 100
)

// Mode is the discrete theme the slider currently resolves to.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Palette is the set of named colours the page is painted with.
type Palette struct {
	BgPrimary     color.RGBA
	BgSecondary   color.RGBA
	TextPrimary   color.RGBA
	TextSecondary color.RGBA
	EarthBrown    color.RGBA
	CyanPrimary   color.RGBA
}

var (
	LightPalette = Palette{
		BgPrimary:     rgb(250, 247, 242),
		BgSecondary:   rgb(250, 247, 242),
		TextPrimary:   rgb(26, 22, 18),
		TextSecondary: rgb(61, 52, 42),
		EarthBrown:    rgb(139, 115, 85),
		CyanPrimary:   rgb(0, 206, 209),
	}
	DarkPalette = Palette{
		BgPrimary:     rgb(26, 22, 18),
		BgSecondary:   rgb(26, 22, 18),
		TextPrimary:   rgb(245, 230, 211),
		TextSecondary: rgb(232, 220, 196),
		EarthBrown:    rgb(212, 165, 116),
		CyanPrimary:   rgb(0, 229, 232),
	}
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Blend returns the palette at slider position t in [0,1]. Backgrounds fade
// continuously; everything else flips at the midpoint to stay readable.
func Blend(t float64) Palette {
	snap := 0.0
	if t >= 0.5 {
		snap = 1
	}
	return Palette{
		BgPrimary:     lerp(LightPalette.BgPrimary, DarkPalette.BgPrimary, t),
		BgSecondary:   lerp(LightPalette.BgSecondary, DarkPalette.BgSecondary, t),
		TextPrimary:   lerp(LightPalette.TextPrimary, DarkPalette.TextPrimary, snap),
		TextSecondary: lerp(LightPalette.TextSecondary, DarkPalette.TextSecondary, snap),
		EarthBrown:    lerp(LightPalette.EarthBrown, DarkPalette.EarthBrown, snap),
		CyanPrimary:   lerp(LightPalette.CyanPrimary, DarkPalette.CyanPrimary, snap),
	}
}

func lerp(from, to color.RGBA, t float64) color.RGBA {
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)
	r, g, bl := a.BlendRgb(b, t).RGB255()
	return rgb(r, g, bl)
}

// State is the slider position plus the palette it resolves to.
type State struct {
	value   int
	palette Palette
}

// NewState returns a state positioned at value, clamped to [Min, Max].
func NewState(value int) *State {
	s := &State{value: -1}
	s.Set(value)
	return s
}

// Set moves the slider. It reports whether the value changed.
func (s *State) Set(value int) bool {
	value = min(max(value, Min), Max)
	if value == s.value {
		return false
	}
	s.value = value
	s.palette = Blend(s.T())
	return true
}

// Nudge moves the slider by delta.
func (s *State) Nudge(delta int) bool { return s.Set(s.value + delta) }

// Toggle jumps to the opposite end from the current mode.
func (s *State) Toggle() {
	if s.Dark() {
		s.Set(Min)
		return
	}
	s.Set(Max)
}

func (s *State) Value() int { return s.value }

// T is the slider position normalised to [0,1].
func (s *State) T() float64 { return float64(s.value) / Max }

// Mode is dark only strictly past the midpoint.
func (s *State) Mode() Mode {
	if s.T() > 0.5 {
		return Dark
	}
	return Light
}

func (s *State) Dark() bool { return s.Mode() == Dark }

func (s *State) Palette() Palette { return s.palette }

func (s *State) Background() color.Color { return s.palette.BgPrimary }

// SunOpacity fades the decorative sun out as the slider approaches night.
func (s *State) SunOpacity() float64 { return 1 - s.T() }
