package testing

import (
	"time"

	"github.com/go-drift/multistate/pkg/animation"
)

// Fade records one call to an animator.
type Fade struct {
	Target    animation.Alpha
	From      float64
	To        float64
	Duration  time.Duration
	Cancelled bool
	Done      bool

	done func()
}

// ImmediateAnimator completes every fade synchronously, inside Fade.
type ImmediateAnimator struct {
	// Fades lists every fade started, in order.
	Fades []*Fade
}

// Fade writes the final alpha and runs done before returning.
func (a *ImmediateAnimator) Fade(target animation.Alpha, from, to float64, duration time.Duration, done func()) func() {
	f := &Fade{Target: target, From: from, To: to, Duration: duration, Done: true}
	a.Fades = append(a.Fades, f)
	target.SetAlpha(to)
	if done != nil {
		done()
	}
	return func() {}
}

// ManualAnimator records fades and completes them only when told to.
// The start alpha is written when a fade starts, as a real animator would.
type ManualAnimator struct {
	fades []*Fade
}

// Fade records the fade and returns a cancel function.
func (a *ManualAnimator) Fade(target animation.Alpha, from, to float64, duration time.Duration, done func()) func() {
	f := &Fade{Target: target, From: from, To: to, Duration: duration, done: done}
	a.fades = append(a.fades, f)
	target.SetAlpha(from)
	return func() {
		if !f.Done {
			f.Cancelled = true
		}
	}
}

// Fades returns every fade started, in order.
func (a *ManualAnimator) Fades() []*Fade {
	return a.fades
}

// Pending returns fades that are neither done nor cancelled.
func (a *ManualAnimator) Pending() []*Fade {
	var out []*Fade
	for _, f := range a.fades {
		if !f.Done && !f.Cancelled {
			out = append(out, f)
		}
	}
	return out
}

// Complete finishes the oldest pending fade: the target alpha is set to the
// end value and the completion callback runs. It reports whether a fade was
// pending.
func (a *ManualAnimator) Complete() bool {
	pending := a.Pending()
	if len(pending) == 0 {
		return false
	}
	f := pending[0]
	f.Done = true
	f.Target.SetAlpha(f.To)
	if f.done != nil {
		f.done()
	}
	return true
}

// CompleteAll finishes pending fades, including ones started by completion
// callbacks, and returns how many it finished.
func (a *ManualAnimator) CompleteAll() int {
	n := 0
	for a.Complete() {
		n++
	}
	return n
}
