package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

// errUnsupported is returned for files no decoder claims.
var errUnsupported = errors.New("unsupported file type")

// soundtrack plays an optional ambient track behind the field. It never
// touches the simulation; the HUD only meters what it hears.
type soundtrack struct {
	log      *slog.Logger
	ringSize int

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *visualTap
	name        string

	paused   bool
	initDone bool
}

type trackStatus struct {
	Name     string
	Position time.Duration
	Duration time.Duration
	Paused   bool
}

func newSoundtrack(ringSize int, logger *slog.Logger) *soundtrack {
	return &soundtrack{ringSize: ringSize, log: logger}
}

// selectTrack asks the user for an audio file. A cancelled dialog yields "".
func selectTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return filename, nil
}

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", errUnsupported, ext)
	}
}

// load replaces whatever is playing with the file at path.
func (s *soundtrack) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening track: %w", err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	// streamer -> tap -> ctrl
	t := newVisualTap(streamer, s.ringSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !s.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("initialising speaker: %w", err)
		}
		s.initDone = true
	} else {
		s.stop()
		if s.format.SampleRate != format.SampleRate {
			if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
				_ = streamer.Close()
				_ = f.Close()
				return fmt.Errorf("reinitialising speaker: %w", err)
			}
		}
	}

	speaker.Lock()
	s.currentFile = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.tap = t
	s.name = filepath.Base(path)
	s.paused = false
	speaker.Unlock()

	s.log.Info("soundtrack loaded", "path", path, "rate", int(format.SampleRate))

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// runs on the speaker goroutine with the speaker lock held
		s.release()
	})))
	return nil
}

// release closes the current track. Callers hold the speaker lock.
func (s *soundtrack) release() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
	s.ctrl = nil
	s.tap = nil
}

// stop silences the speaker and closes the current track.
func (s *soundtrack) stop() {
	if !s.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	s.release()
	speaker.Unlock()
}

func (s *soundtrack) togglePause() {
	if !s.initDone {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.ctrl == nil {
		return
	}
	s.paused = !s.paused
	s.ctrl.Paused = s.paused
	s.log.Debug("soundtrack pause toggled", "paused", s.paused)
}

// status reports the playing track. ok is false when nothing is loaded.
func (s *soundtrack) status() (st trackStatus, ok bool) {
	if !s.initDone {
		return trackStatus{}, false
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.streamer == nil {
		return trackStatus{}, false
	}
	return trackStatus{
		Name:     s.name,
		Position: s.format.SampleRate.D(s.streamer.Position()),
		Duration: s.format.SampleRate.D(s.streamer.Len()),
		Paused:   s.paused,
	}, true
}

// rms meters the most recently played samples.
func (s *soundtrack) rms() float64 {
	if !s.initDone {
		return 0
	}
	speaker.Lock()
	t := s.tap
	speaker.Unlock()
	if t == nil {
		return 0
	}
	return t.rms(meterWindow)
}
