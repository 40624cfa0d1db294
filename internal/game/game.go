// Package game hosts the particle field in an ebiten window: it feeds the
// field pointer and resize events, polls the theme slider each frame and
// draws an optional HUD and soundtrack meter on top.
package game

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/theme"
)

const (
	smoothingFactor = 0.6
	meterWindow     = 2048

	sunRadius = 36
	sunMargin = 72
)

var sunColor = color.RGBA{R: 255, G: 196, B: 87, A: 255}

// Game implements ebiten.Game.
type Game struct {
	cfg   *config.Config
	log   *slog.Logger
	field *field.Field
	theme *theme.State
	prefs *theme.Store
	track *soundtrack

	width, height int

	showHUD bool
	level   float64
	lastErr error
}

// New builds a game sized to the configured window. prefs may be nil, in
// which case slider changes are not persisted.
func New(cfg *config.Config, th *theme.State, prefs *theme.Store, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		cfg:     cfg,
		log:     logger,
		field:   field.New(cfg.FieldParams(), nil),
		theme:   th,
		prefs:   prefs,
		track:   newSoundtrack(cfg.RingSize, logger),
		showHUD: cfg.ShowHUD,
	}
	g.resize(cfg.WindowWidth, cfg.WindowHeight)
	return g
}

// Field exposes the simulated field.
func (g *Game) Field() *field.Field { return g.field }

// PlayTrack starts the soundtrack at path. Failures are kept for the HUD
// and returned.
func (g *Game) PlayTrack(path string) error {
	if err := g.track.load(path); err != nil {
		g.fail("loading soundtrack", err)
		return err
	}
	return nil
}

// Close stops the soundtrack.
func (g *Game) Close() {
	g.track.stop()
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.trackPointer(x, y, ebiten.IsFocused())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.nudgeTheme(-g.cfg.ThemeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.nudgeTheme(g.cfg.ThemeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.track.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openTrack()
	}

	g.field.Step()
	g.level = meter(g.level, g.track.rms())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Render(screenSurface{dst: screen, backdrop: g.drawSun}, g.theme)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout follows the window size; any change reseeds the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	g.field.Resize(width, height)
	g.log.Debug("field reseeded", "width", width, "height", height, "particles", g.field.Len())
}

// trackPointer treats a cursor outside the window, or an unfocused window,
// as the pointer having left the surface.
func (g *Game) trackPointer(x, y int, focused bool) {
	if !focused || x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.field.ClearPointer()
		return
	}
	g.field.SetPointer(float64(x), float64(y))
}

func (g *Game) nudgeTheme(delta int) {
	if g.theme.Nudge(delta) {
		g.themeChanged()
	}
}

func (g *Game) toggleTheme() {
	g.theme.Toggle()
	g.themeChanged()
}

func (g *Game) themeChanged() {
	g.log.Debug("theme changed", "value", g.theme.Value(), "mode", g.theme.Mode())
	if g.prefs == nil {
		return
	}
	if err := g.prefs.Save(g.theme.Value()); err != nil {
		g.fail("saving theme preference", err)
	}
}

func (g *Game) openTrack() {
	path, err := selectTrack()
	if err != nil {
		g.fail("selecting soundtrack", err)
		return
	}
	if path == "" {
		return
	}
	_ = g.PlayTrack(path)
}

func (g *Game) fail(what string, err error) {
	g.lastErr = fmt.Errorf("%s: %w", what, err)
	g.log.Warn(what, "error", err)
}

func (g *Game) drawSun(screen *ebiten.Image) {
	a := clamp01(g.theme.SunOpacity())
	if a == 0 {
		return
	}
	c := color.NRGBA{R: sunColor.R, G: sunColor.G, B: sunColor.B, A: uint8(a * 255)}
	vector.DrawFilledCircle(screen, float32(g.width-sunMargin), float32(sunMargin), sunRadius, c, true)
}
