// Package tween advances the shared morph progress over a fixed duration.
package tween

import "time"

// Phase is the state of the current morph cycle.
type Phase int

const (
	// Running means progress is advancing from 0 toward 1.
	Running Phase = iota
	// Completing means progress reached 1 and the owner must promote its
	// target geometry, then call Restart.
	Completing
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Completing:
		return "completing"
	}
	return "unknown"
}

// Engine is a two-state machine evaluated once per frame. Only one cycle is
// in flight at a time and there is no terminal state.
type Engine struct {
	duration time.Duration
	ease     Easing
	start    time.Time
	progress float64
	phase    Phase
	cycles   int
}

func NewEngine(duration time.Duration, ease Easing) *Engine {
	if ease == nil {
		ease = Cubic
	}
	return &Engine{duration: duration, ease: ease}
}

// Start begins the first cycle at now.
func (e *Engine) Start(now time.Time) {
	e.start = now
	e.progress = 0
	e.phase = Running
}

// Update recomputes progress for now. Once the full duration has elapsed it
// pins progress at 1 and reports Completing until Restart is called.
func (e *Engine) Update(now time.Time) Phase {
	if e.phase == Completing {
		return e.phase
	}
	elapsed := now.Sub(e.start)
	if elapsed >= e.duration {
		e.progress = 1
		e.phase = Completing
		return e.phase
	}
	x := float64(max(elapsed, 0)) / float64(e.duration)
	e.progress = e.ease(x)
	return e.phase
}

// Restart resets progress to exactly 0 and re-enters Running at now.
func (e *Engine) Restart(now time.Time) {
	e.cycles++
	e.Start(now)
}

func (e *Engine) Progress() float64 { return e.progress }

func (e *Engine) Phase() Phase { return e.phase }

// Cycles counts completed cycles.
func (e *Engine) Cycles() int { return e.cycles }

func (e *Engine) Duration() time.Duration { return e.duration }

// Elapsed reports how far into the current cycle now is, capped at the duration.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	return min(max(now.Sub(e.start), 0), e.duration)
}
