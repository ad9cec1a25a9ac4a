package common

import "math"

// timerEpsilon absorbs float drift so a 0.05 s timer fed three 1/60 s ticks
// fires on the third tick.
const timerEpsilon = 1e-9

// Timer counts elapsed game time in seconds.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	finished bool
}

func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick advances the timer by dt and reports whether it finished during this
// tick. A repeating timer keeps the overshoot for the next period and fires
// at most once per tick.
func (t *Timer) Tick(dt float64) bool {
	if t == nil || dt < 0 {
		return false
	}
	if t.finished && !t.Repeating {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed+timerEpsilon < t.Duration {
		return false
	}
	if !t.Repeating {
		t.Elapsed = t.Duration
		t.finished = true
		return true
	}
	if t.Duration <= 0 {
		t.Elapsed = 0
		return true
	}
	t.Elapsed = math.Mod(t.Elapsed+timerEpsilon, t.Duration)
	return true
}

// Finished reports whether a one-shot timer has run out.
func (t *Timer) Finished() bool {
	return t != nil && t.finished
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.Elapsed = 0
	t.finished = false
}
