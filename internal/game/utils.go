package game

import (
	"fmt"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// meter compresses an RMS value for display and smooths it against prev.
func meter(prev, rms float64) float64 {
	mag := math.Pow(clamp01(rms), 0.3)
	return smoothingFactor*prev + (1-smoothingFactor)*mag
}

// meterBar renders v in [0,1] as an ASCII bar of the given width.
func meterBar(v float64, width int) string {
	filled := int(math.Round(clamp01(v) * float64(width)))
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return "[" + string(bar) + "]"
}
