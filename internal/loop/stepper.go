// Package loop drives a simulation at a fixed logical tick rate independent
// of how often the host delivers frames.
package loop

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTickRate is returned for a non-positive tick rate or catch-up limit.
var ErrInvalidTickRate = errors.New("loop: invalid tick rate")

// Stepper accumulates frame time and converts it into whole ticks.
// It is not safe for concurrent use.
type Stepper struct {
	interval   time.Duration
	maxCatchUp int
	acc        time.Duration
	dropped    uint64
}

// NewStepper returns a stepper running tickRate ticks per second that runs at
// most maxCatchUp ticks for a single frame.
func NewStepper(tickRate, maxCatchUp int) (*Stepper, error) {
	if tickRate < 1 {
		return nil, fmt.Errorf("%w: %d ticks per second", ErrInvalidTickRate, tickRate)
	}
	if maxCatchUp < 1 {
		return nil, fmt.Errorf("%w: catch-up limit %d", ErrInvalidTickRate, maxCatchUp)
	}
	return &Stepper{
		interval:   time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}, nil
}

// Advance adds elapsed frame time and calls tick once per whole interval.
// Backlog beyond the catch-up limit is dropped and counted. If tick returns
// false the remaining backlog is discarded; the caller resumes later from a
// clean accumulator. Returns the number of ticks run.
func (s *Stepper) Advance(elapsed time.Duration, tick func() bool) int {
	if elapsed > 0 {
		s.acc += elapsed
	}

	ran := 0
	for s.acc >= s.interval {
		if ran == s.maxCatchUp {
			behind := s.acc / s.interval
			s.dropped += uint64(behind) //#nosec G115 -- behind is positive here
			s.acc -= behind * s.interval
			break
		}
		s.acc -= s.interval
		ran++
		if !tick() {
			s.acc = 0
			break
		}
	}
	return ran
}

// Reset clears accumulated time. The dropped counter is kept.
func (s *Stepper) Reset() {
	s.acc = 0
}

// Dropped returns how many ticks were skipped because of the catch-up limit.
func (s *Stepper) Dropped() uint64 {
	return s.dropped
}
