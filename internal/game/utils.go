package game

import (
	"fmt"
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

// formatDuration formats a duration as SS.t
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%04.1fs", d.Seconds())
}

// repeating reports whether a key held for d ticks should fire this tick:
// once on press, then every few ticks after a short delay.
func repeating(d int) bool {
	const delay, interval = 30, 4
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

// deviceSize converts a logical window size to device pixels.
func deviceSize(width, height int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(width) * scale), int(float64(height) * scale)
}
