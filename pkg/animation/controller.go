package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	             Forward()
//	Dismissed ──────────────► Completed
//	    ▲                         │
//	    └──────── Reset() ────────┘
//
// While running, status is AnimationForward.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound.
	AnimationForward
	// AnimationCompleted means the animation is stopped at the upper bound.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController produces a value between 0 and 1 over Duration.
//
// The value moves on ticker frames only (see [StepTickers]); Curve shapes
// linear progress. Call Dispose when the controller is no longer needed.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of a full 0-to-1 run.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.startValue = c.Value
	c.setStatus(AnimationForward)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (1-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.settle()
	}
}

func (c *AnimationController) settle() {
	c.Stop()
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and sets the value to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value without changing status.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if a ticker is driving the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = map[int]func(){}
	c.statusListeners = map[int]func(AnimationStatus){}
}
