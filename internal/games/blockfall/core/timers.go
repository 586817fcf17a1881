package core

import "time"

// Timer accumulates elapsed time.
type Timer struct {
	elapsed time.Duration
}

// Add accumulates dt.
func (t *Timer) Add(dt time.Duration) {
	t.elapsed += dt
}

// Elapsed returns the accumulated time.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset sets the accumulated time to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Repeat reports whether a period has elapsed. When it has, one period is
// subtracted so the overflow carries into the next period.
func (t *Timer) Repeat(period time.Duration) bool {
	if t.elapsed < period {
		return false
	}
	t.elapsed -= period
	return true
}

// Exceeded reports whether the accumulated time is strictly over threshold.
func (t *Timer) Exceeded(threshold time.Duration) bool {
	return t.elapsed > threshold
}

// timers are the per-session clocks.
type timers struct {
	fall     Timer
	input    Timer
	lock     Timer
	clearRow Timer
	flash    Timer
}
