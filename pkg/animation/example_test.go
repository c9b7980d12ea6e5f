package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/multistate/pkg/animation"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseOut

	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Frames advance the value; see StepTickers.
	controller.Forward()

	controller.Dispose()
}

// This example shows how to fade a view's alpha and react to completion.
func ExampleFader() {
	fader := animation.NewFader()

	var panel alphaRecorder
	cancel := fader.Fade(&panel, 1, 0, 250*time.Millisecond, func() {
		fmt.Println("faded out")
	})
	defer cancel()

	fmt.Printf("alpha: %.1f\n", panel.alpha)

	// Output:
	// alpha: 1.0
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenFloat64(0.0, 1.0)
	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))

	// Output:
	// Opacity at 0.5: 0.5
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}

type alphaRecorder struct {
	alpha float64
}

func (a *alphaRecorder) SetAlpha(alpha float64) { a.alpha = alpha }
