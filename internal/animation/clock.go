package animation

import (
	"math/rand/v2"
	"time"
)

// Clock is where the driver reads frame time from.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used by exports and tests.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// PausableClock freezes time while paused, so progress holds still and
// resumes where it left off.
type PausableClock struct {
	base     Clock
	offset   time.Duration
	pausedAt time.Time
	paused   bool
}

func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.base.Now().Add(-c.offset)
}

func (c *PausableClock) Paused() bool { return c.paused }

// Toggle flips between paused and running and reports the new paused state.
func (c *PausableClock) Toggle() bool {
	if c.paused {
		c.offset += c.base.Now().Sub(c.pausedAt)
		c.paused = false
	} else {
		c.pausedAt = c.base.Now()
		c.paused = true
	}
	return c.paused
}

// NewSource returns the random source geometry is drawn from. A zero seed
// picks one from the wall clock.
func NewSource(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)), seed
}
