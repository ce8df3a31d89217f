package game

import "time"

// frameTap records the last N frame times into a ring buffer so the HUD can
// show a smoothed frame rate.
type frameTap struct {
	buffer    []time.Time
	nextIndex int
	filled    bool
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{buffer: make([]time.Time, max(ringSize, 2))}
}

func (t *frameTap) record(now time.Time) {
	t.buffer[t.nextIndex] = now
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.filled = true
	}
}

// fps averages over every recorded frame, or returns 0 until two frames are in.
func (t *frameTap) fps() float64 {
	n := t.nextIndex
	oldest := 0
	if t.filled {
		n = len(t.buffer)
		oldest = t.nextIndex
	}
	if n < 2 {
		return 0
	}
	newest := (oldest + n - 1) % len(t.buffer)
	span := t.buffer[newest].Sub(t.buffer[oldest])
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span.Seconds()
}
