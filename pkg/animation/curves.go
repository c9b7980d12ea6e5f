package animation

import (
	"math"
	"slices"
	"strings"
)

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly along a cosine. It is the
// default curve for fades.
func AccelerateDecelerate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return (1 - math.Cos(t*math.Pi)) / 2
}

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

var namedCurves = map[string]func(float64) float64{
	"linear":               LinearCurve,
	"easein":               EaseIn,
	"easeout":              EaseOut,
	"easeinout":            EaseInOut,
	"acceleratedecelerate": AccelerateDecelerate,
}

// CurveByName looks up a curve by name. Matching ignores case, dashes and
// underscores, so "ease-in-out", "easeInOut" and "EASE_IN_OUT" are equal.
func CurveByName(name string) (func(float64) float64, bool) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	curve, ok := namedCurves[key]
	return curve, ok
}

// CurveNames returns the names CurveByName accepts, sorted.
func CurveNames() []string {
	names := []string{"accelerateDecelerate", "easeIn", "easeInOut", "easeOut", "linear"}
	slices.Sort(names)
	return names
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not converge; bisect on [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
