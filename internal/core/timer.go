package core

import (
	"context"
	"time"
)

// Loop drives a Sim from a fixed-rate ticker until it is stopped.
type Loop struct {
	step  time.Duration
	start time.Time
	now   func() time.Time
}

// NewLoop constructs a Loop targeting the given ticks per second.
func NewLoop(tps int) *Loop {
	l := &Loop{now: time.Now}
	l.SetTPS(tps)
	return l
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (l *Loop) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	l.step = time.Second / time.Duration(tps)
}

// Step reports the interval between ticks.
func (l *Loop) Step() time.Duration { return l.step }

// Run ticks sim until ctx is cancelled. A positive limit stops the loop once
// that much simulated time has passed. The returned error is nil when the
// limit was reached and ctx.Err() otherwise.
func (l *Loop) Run(ctx context.Context, sim Sim, limit time.Duration) error {
	ticker := time.NewTicker(l.step)
	defer ticker.Stop()

	l.start = l.now()
	sim.Tick(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			elapsed := l.now().Sub(l.start)
			if limit > 0 && elapsed >= limit {
				sim.Tick(limit)
				return nil
			}
			sim.Tick(elapsed)
		}
	}
}

// Replay ticks sim frames times at the loop rate without waiting on a clock.
// It is used for deterministic headless runs.
func (l *Loop) Replay(sim Sim, frames int, each func(frame int, now time.Duration)) {
	for i := 0; i < frames; i++ {
		now := time.Duration(i) * l.step
		if each != nil {
			each(i, now)
		}
		sim.Tick(now)
	}
}
