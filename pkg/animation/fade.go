package animation

import "time"

// Alpha is anything whose opacity can be animated.
type Alpha interface {
	SetAlpha(alpha float64)
}

// Fader animates opacity on ticker frames.
//
// It is the frame-driven implementation of the fade capability used by
// multi-state views: the target's alpha is set to from immediately, moves to
// to over the duration, and done runs once after the final value is written.
type Fader struct {
	// Curve shapes the fade. Nil means linear.
	Curve func(float64) float64
}

// NewFader returns a Fader on the AccelerateDecelerate curve.
func NewFader() *Fader {
	return &Fader{Curve: AccelerateDecelerate}
}

// Fade starts a fade and returns a cancel function. Cancel stops the fade
// where it is and suppresses done; calling it after completion is a no-op.
func (f *Fader) Fade(target Alpha, from, to float64, duration time.Duration, done func()) (cancel func()) {
	c := NewAnimationController(duration)
	if f != nil && f.Curve != nil {
		c.Curve = f.Curve
	}
	tween := TweenFloat64(from, to)
	finished := false

	target.SetAlpha(from)
	c.AddListener(func() {
		target.SetAlpha(tween.Transform(c))
	})
	c.AddStatusListener(func(status AnimationStatus) {
		if status != AnimationCompleted || finished {
			return
		}
		finished = true
		c.Dispose()
		if done != nil {
			done()
		}
	})
	c.Forward()

	return func() {
		if finished {
			return
		}
		finished = true
		c.Dispose()
	}
}
