package game

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "61:01", formatDuration(time.Hour+61*time.Second))
	assert.Equal(t, "00:00", formatDuration(-time.Second))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-2))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(3))
}

func TestMeter(t *testing.T) {
	assert.Equal(t, 0.0, meter(0, 0))
	assert.InDelta(t, 0.4, meter(0, 1), 1e-12)
	assert.InDelta(t, 0.6*0.4, meter(0.4, 0), 1e-12)
}

func TestMeterBar(t *testing.T) {
	assert.Equal(t, "[....]", meterBar(0, 4))
	assert.Equal(t, "[##..]", meterBar(0.5, 4))
	assert.Equal(t, "[####]", meterBar(2, 4))
}

func constStreamer(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestVisualTapSnapshot(t *testing.T) {
	n := 0.0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			n++
			samples[i] = [2]float64{n, -n}
		}
		return len(samples), true
	})
	tap := newVisualTap(src, 4)

	buf := make([][2]float64, 3)
	tap.Stream(buf)
	assert.Equal(t, [][2]float64{{2, -2}, {3, -3}}, tap.snapshot(2))

	// wraps around the ring
	tap.Stream(buf)
	assert.Equal(t, [][2]float64{{3, -3}, {4, -4}, {5, -5}, {6, -6}}, tap.snapshot(10))
}

func TestVisualTapRMS(t *testing.T) {
	tap := newVisualTap(constStreamer(0.5), 16)
	assert.Equal(t, 0.0, tap.rms(16), "silent before playback")

	tap.Stream(make([][2]float64, 16))
	assert.InDelta(t, 0.5, tap.rms(16), 1e-12)
	assert.Equal(t, 0.0, tap.rms(0))
}
