package panzoom

// EasingFunc maps an elapsed fraction t in [0, 1] to an eased fraction.
// Every easing must satisfy f(0) = 0 and f(1) = 1 so animations start at
// their start value and finish exactly on their target.
type EasingFunc func(t float64) float64

// Easing names accepted in animation configs.
const (
	EasingLinear         = "linear"
	EasingEaseOut        = "easeOut"
	EasingEaseInOut      = "easeInOut"
	EasingEaseOutCubic   = "easeOutCubic"
	EasingEaseInOutCubic = "easeInOutCubic"
)

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the target.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic decelerates sharply, approximating exponential decay.
// Inertial panning uses it to bleed off release velocity.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates then decelerates with a cubic profile.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// easingByName resolves an easing name to its function.
// Unknown names fall back to EaseOutQuad, the default animation feel.
func easingByName(name string) EasingFunc {
	switch name {
	case EasingLinear:
		return Linear
	case EasingEaseOut:
		return EaseOutQuad
	case EasingEaseInOut:
		return EaseInOutQuad
	case EasingEaseOutCubic:
		return EaseOutCubic
	case EasingEaseInOutCubic:
		return EaseInOutCubic
	default:
		return EaseOutQuad
	}
}
