package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
	"github.com/go-drift/multistate/pkg/view"
)

// FrameDuration is the clock advance per frame in PumpFor and PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester owns the animation clock for a test and pumps frames.
type Tester struct {
	clock     *FakeClock
	prevClock animation.Clock
	frames    int
}

// NewTester installs a fake animation clock. Call Cleanup when done, or use
// NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops leftover tickers and restores the previous clock.
func (t *Tester) Cleanup() {
	animation.StopAllTickers()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Frames returns how many frames have been pumped.
func (t *Tester) Frames() int {
	return t.frames
}

// Pump runs one frame at the current time.
func (t *Tester) Pump() {
	t.frames++
	animation.StepTickers()
}

// PumpFor advances the clock by d in FrameDuration steps, pumping a frame
// after each step. A remainder shorter than a frame is pumped last.
func (t *Tester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(FrameDuration, d)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle pumps frames until no ticker is active or timeout elapses.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Shown returns the direct children of root that are visible with non-zero
// alpha.
func Shown(root interface{ Children() []view.View }) []view.View {
	var out []view.View
	for _, child := range root.Children() {
		if child.Visibility() == view.Visible && child.Alpha() > 0 {
			out = append(out, child)
		}
	}
	return out
}
