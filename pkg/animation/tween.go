package animation

// Tween maps controller progress onto the range Begin..End.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between a and b at t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value for the controller's current value.
func (tw *Tween[T]) Transform(c *AnimationController) T {
	return tw.Evaluate(c.Value)
}

// TweenFloat64 returns a linear float64 tween.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b, t float64) float64 {
			return a + (b-a)*t
		},
	}
}
