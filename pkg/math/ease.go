package math

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

// EaseLinear leaves progress unchanged.
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates: 1 - (1-t)^3.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutQuad decelerates: 1 - (1-t)^2.
func EaseOutQuad(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseByName resolves an easing curve from its config name.
// Unknown names fall back to EaseLinear.
func EaseByName(name string) Ease {
	switch name {
	case "out-cubic":
		return EaseOutCubic
	case "out-quad":
		return EaseOutQuad
	case "in-out-quad":
		return EaseInOutQuad
	default:
		return EaseLinear
	}
}
