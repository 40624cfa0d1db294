package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

func newTestGame(t *testing.T) (*Game, *theme.Store) {
	t.Helper()
	store := theme.NewStore(filepath.Join(t.TempDir(), "prefs.yml"))
	return New(config.DefaultConfig(), theme.NewState(0), store, nil), store
}

func TestNewSeedsField(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, config.ParticleCount, g.Field().Len())
	w, h := g.Field().Size()
	assert.Equal(t, float64(config.WindowWidth), w)
	assert.Equal(t, float64(config.WindowHeight), h)
}

func TestLayoutResizes(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Field().Particles()[0]

	w, h := g.Layout(config.WindowWidth, config.WindowHeight)
	assert.Equal(t, config.WindowWidth, w)
	assert.Equal(t, config.WindowHeight, h)
	assert.Equal(t, before, g.Field().Particles()[0], "same size keeps the field")

	w, h = g.Layout(480, 800)
	assert.Equal(t, 480, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, config.NarrowParticleCount, g.Field().Len())
	fw, fh := g.Field().Size()
	assert.Equal(t, 480.0, fw)
	assert.Equal(t, 800.0, fh)

	g.Layout(0, 0)
	assert.Equal(t, config.NarrowParticleCount, g.Field().Len())
	g.Field().Step()
}

func TestTrackPointer(t *testing.T) {
	g, _ := newTestGame(t)

	g.trackPointer(10, 20, true)
	p := g.Field().Pointer()
	assert.True(t, p.Active)
	assert.Equal(t, 10.0, p.X)
	assert.Equal(t, 20.0, p.Y)

	g.trackPointer(10, 20, false)
	assert.False(t, g.Field().Pointer().Active, "unfocused window")

	g.trackPointer(5, 5, true)
	g.trackPointer(-1, 5, true)
	assert.False(t, g.Field().Pointer().Active, "left edge")

	g.trackPointer(config.WindowWidth, 5, true)
	assert.False(t, g.Field().Pointer().Active, "right edge")
}

func TestThemeChangesPersist(t *testing.T) {
	g, store := newTestGame(t)

	g.nudgeTheme(5)
	g.nudgeTheme(5)
	v, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	g.toggleTheme()
	assert.True(t, g.theme.Dark())
	v, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, theme.Max, v)

	g.toggleTheme()
	assert.False(t, g.theme.Dark())
	v, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, theme.Min, v)
	assert.NoError(t, g.lastErr)
}

func TestThemeWithoutStore(t *testing.T) {
	g := New(config.DefaultConfig(), theme.NewState(60), nil, nil)
	g.nudgeTheme(-20)
	assert.Equal(t, 40, g.theme.Value())
	assert.NoError(t, g.lastErr)
}

func TestThemeSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	g := New(config.DefaultConfig(), theme.NewState(0), theme.NewStore(filepath.Join(blocker, "prefs.yml")), nil)
	g.toggleTheme()
	assert.Error(t, g.lastErr)
	assert.True(t, g.theme.Dark(), "slider still moves when saving fails")
}

func TestPlayTrackUnsupported(t *testing.T) {
	g, _ := newTestGame(t)
	path := filepath.Join(t.TempDir(), "song.ogg")
	require.NoError(t, os.WriteFile(path, []byte("OggS"), 0644))

	err := g.PlayTrack(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnsupported))
	assert.Error(t, g.lastErr)

	_, ok := g.track.status()
	assert.False(t, ok)
}

func TestPlayTrackMissing(t *testing.T) {
	g, _ := newTestGame(t)
	err := g.PlayTrack(filepath.Join(t.TempDir(), "missing.wav"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestHUDLines(t *testing.T) {
	g, _ := newTestGame(t)
	g.theme.Set(75)

	lines := g.hudLines(59.94)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "particles: 50  links: "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "tps: 59.9"), lines[0])
	assert.Equal(t, "theme: 75 (dark)  left/right slide  T toggle", lines[1])
	assert.Equal(t, "track: none", lines[2])

	g.fail("loading soundtrack", errUnsupported)
	lines = g.hudLines(60)
	require.Len(t, lines, 5)
	assert.Equal(t, "error: loading soundtrack: unsupported file type", lines[4])
}
