package gamemath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timer is a one-shot countdown driven by a linear tween. It tracks the tick
// on which it completed so callers can react to the edge exactly once.
type Timer struct {
	tween    *gween.Tween
	duration float64
	elapsed  float64
	done     bool
	justDone bool
}

// NewTimer returns a timer that starts already elapsed.
func NewTimer(duration float64) *Timer {
	t := &Timer{
		tween:    gween.New(0, float32(duration), float32(duration), ease.Linear),
		duration: duration,
	}
	t.Finish()
	return t
}

// NewRunningTimer returns a timer that starts from zero.
func NewRunningTimer(duration float64) *Timer {
	t := NewTimer(duration)
	t.Reset()
	return t
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.justDone = false
	if t.done {
		return
	}
	current, finished := t.tween.Update(float32(dt))
	t.elapsed = float64(current)
	if finished {
		t.elapsed = t.duration
		t.done = true
		t.justDone = true
	}
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.tween.Set(0)
	t.elapsed = 0
	t.done = false
	t.justDone = false
}

// ResetTo restarts the countdown with a new duration.
func (t *Timer) ResetTo(duration float64) {
	t.tween = gween.New(0, float32(duration), float32(duration), ease.Linear)
	t.duration = duration
	t.Reset()
}

// Finish marks the timer elapsed without raising the just-finished edge.
func (t *Timer) Finish() {
	t.tween.Set(float32(t.duration))
	t.elapsed = t.duration
	t.done = true
	t.justDone = false
}

func (t *Timer) Finished() bool {
	return t.done
}

// JustFinished is true only on the tick the timer completed.
func (t *Timer) JustFinished() bool {
	return t.justDone
}

func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

func (t *Timer) Duration() float64 {
	return t.duration
}

// Fraction is elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		if t.done {
			return 1
		}
		return 0
	}
	return t.elapsed / t.duration
}
