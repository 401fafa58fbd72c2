package loop

import "time"

// Clock tells the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameTimer measures time between successive frames.
type FrameTimer struct {
	clock Clock
	last  time.Time
	begun bool
}

// NewFrameTimer returns a timer reading from clock. A nil clock means SystemClock.
func NewFrameTimer(clock Clock) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameTimer{clock: clock}
}

// Elapsed returns the time since the previous call. The first call, and any
// call after the clock went backwards, returns zero.
func (t *FrameTimer) Elapsed() time.Duration {
	now := t.clock.Now()
	if !t.begun {
		t.begun = true
		t.last = now
		return 0
	}
	d := now.Sub(t.last)
	t.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Restart makes the next Elapsed call return zero.
func (t *FrameTimer) Restart() {
	t.begun = false
}
