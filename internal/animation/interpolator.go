package animation

import "math"

// Interpolator maps a linear animation fraction in [0,1] to an eased
// fraction. Implementations must return 0 at 0 and 1 at 1.
type Interpolator func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// EaseIn accelerates from a standstill.
func EaseIn(t float64) float64 {
	return t * t
}

// EaseOut decelerates into the endpoint.
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOut accelerates through the first half and decelerates through the
// second. This is the default for transitions that do not name an
// interpolator.
func EaseInOut(t float64) float64 {
	return 0.5 - math.Cos(math.Pi*t)/2
}

// ByName resolves an interpolator from its configuration name. An empty name
// resolves to EaseInOut.
func ByName(name string) (Interpolator, bool) {
	switch name {
	case "", "ease-in-out":
		return EaseInOut, true
	case "linear":
		return Linear, true
	case "ease-in":
		return EaseIn, true
	case "ease-out":
		return EaseOut, true
	default:
		return nil, false
	}
}
