package animation

import "time"

// Clock is the time source for tickers. Production code reads wall time;
// tests install a fake clock with SetClock so fades advance only when the
// test says so.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock installs c as the ticker time source and returns the clock it
// replaced, so a test can restore it in cleanup. Passing nil restores the
// system clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now reports the current time of the installed clock.
func Now() time.Time { return clock.Now() }
