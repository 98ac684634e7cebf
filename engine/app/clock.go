package app

import "time"

// Clock is the time source the loop measures frames with
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a Clock that only moves when told to. Sleep advances it
// instantly, which keeps frame-capped loops deterministic in tests and
// headless replays.
type ManualClock struct {
	now   time.Time
	slept time.Duration
}

// NewManualClock starts a manual clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Sleep advances the clock by d
func (c *ManualClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
}

// Advance moves the clock forward by d without counting it as sleep
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Slept returns the total time spent in Sleep
func (c *ManualClock) Slept() time.Duration { return c.slept }
