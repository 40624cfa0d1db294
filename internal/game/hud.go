package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudX          = 12
	hudY          = 20
	hudLineHeight = 16
	hudPadding    = 6
	meterWidth    = 20
)

// hudLines builds the overlay text, top to bottom.
func (g *Game) hudLines(tps float64) []string {
	lines := []string{
		fmt.Sprintf("particles: %d  links: %d  tps: %.1f", g.field.Len(), len(g.field.Connections()), tps),
		fmt.Sprintf("theme: %d (%s)  left/right slide  T toggle", g.theme.Value(), g.theme.Mode()),
	}

	if st, ok := g.track.status(); ok {
		state := "playing"
		if st.Paused {
			state = "paused"
		}
		lines = append(lines, fmt.Sprintf("track: %s  %s / %s  %s %s",
			st.Name, formatDuration(st.Position), formatDuration(st.Duration), state, meterBar(g.level, meterWidth)))
	} else {
		lines = append(lines, "track: none")
	}

	lines = append(lines, "O open track  Space pause  H hud  Esc quit")
	if g.lastErr != nil {
		lines = append(lines, "error: "+g.lastErr.Error())
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines(ebiten.ActualTPS())
	pal := g.theme.Palette()

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	bg := pal.BgSecondary
	panel := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 200}
	vector.DrawFilledRect(screen,
		hudX-hudPadding, hudY-hudLineHeight+2-hudPadding,
		float32(width*7+2*hudPadding), float32(len(lines)*hudLineHeight+2*hudPadding),
		panel, false)

	for i, l := range lines {
		c := color.Color(pal.TextPrimary)
		if strings.HasPrefix(l, "error:") {
			c = pal.EarthBrown
		}
		text.Draw(screen, l, basicfont.Face7x13, hudX, hudY+i*hudLineHeight, c)
	}
}
