package multistate

import (
	"fmt"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
)

// DefaultFadeDuration is the length of each half of an animated transition.
const DefaultFadeDuration = 250 * time.Millisecond

// Animator fades a view's alpha from one value to another.
//
// done runs once, on the UI thread, after the final alpha is written. The
// returned cancel stops the fade without running done. *animation.Fader is
// the frame-driven implementation; pkg/testing provides synchronous and
// manually stepped ones.
type Animator interface {
	Fade(target animation.Alpha, from, to float64, duration time.Duration, done func()) (cancel func())
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(target animation.Alpha, from, to float64, duration time.Duration, done func()) func()

// Fade calls f.
func (f AnimatorFunc) Fade(target animation.Alpha, from, to float64, duration time.Duration, done func()) (cancel func()) {
	return f(target, from, to, duration, done)
}

// Phase is the step a transition is in.
//
//	PhaseSettled ──► PhaseFadingOut ──► PhaseFadingIn ──► PhaseSettled
//
// Transitions that are not animated never leave PhaseSettled.
type Phase int

const (
	// PhaseSettled means no fade is running.
	PhaseSettled Phase = iota
	// PhaseFadingOut means the previous view is fading to transparent.
	PhaseFadingOut
	// PhaseFadingIn means the new view is fading to opaque.
	PhaseFadingIn
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSettled:
		return "settled"
	case PhaseFadingOut:
		return "fading_out"
	case PhaseFadingIn:
		return "fading_in"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
