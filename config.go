package panzoom

import "time"

// Default constraint values, matching common viewer expectations.
const (
	defaultMinScale     = 1.0
	defaultMaxScale     = 8.0
	defaultInitialScale = 1.0

	defaultWheelStep     = 0.2
	defaultWheelDebounce = 160 * time.Millisecond

	defaultPinchStep = 1.0

	defaultDoubleClickStep = 0.7
	defaultAnimationTime   = 200 * time.Millisecond

	// defaultZoomAnimationTime is used by imperative animated operations
	// (ZoomTo, PanTo, Reset, CenterView) that carry no per-call duration.
	defaultZoomAnimationTime = 300 * time.Millisecond
)

// DoubleClickMode selects what a double click does.
type DoubleClickMode int

const (
	// DoubleClickZoomIn steps the scale up around the click point.
	DoubleClickZoomIn DoubleClickMode = iota
	// DoubleClickZoomOut steps the scale down around the click point.
	DoubleClickZoomOut
	// DoubleClickReset animates back to the initial transform.
	DoubleClickReset
)

// WheelConfig controls zooming with the mouse wheel.
type WheelConfig struct {
	// Disabled turns wheel zooming off entirely.
	Disabled bool
	// Step is the relative scale change per wheel tick: each tick
	// multiplies or divides the scale by (1 + Step). Zero means the
	// default of 0.2.
	Step float64
	// ActivationKeys, when non-empty, requires at least one of the named
	// keys to be held (see Engine.KeyDown) for wheel events to zoom.
	ActivationKeys []string
	// TouchPadDisabled ignores ctrl-modified wheel events, which is how
	// trackpad pinches are reported on most platforms.
	TouchPadDisabled bool
	// StopDebounce is the wheel inactivity period after which the zoom
	// is considered finished and OnZoomStop fires. Zero means 160ms.
	StopDebounce time.Duration
}

func (c *WheelConfig) normalize() {
	if c.Step <= 0 {
		c.Step = defaultWheelStep
	}
	if c.StopDebounce <= 0 {
		c.StopDebounce = defaultWheelDebounce
	}
}

// PanConfig controls panning by dragging.
type PanConfig struct {
	// Disabled turns panning off entirely.
	Disabled bool
	// VelocityDisabled suppresses the inertial animation after release.
	VelocityDisabled bool
	// LockAxisX and LockAxisY discard movement along the locked axis.
	LockAxisX bool
	LockAxisY bool
	// ExcludedTargets lists element identifiers a pan may not start on.
	ExcludedTargets []string
	// Buttons is the set of pointer buttons that may initiate a pan.
	// Zero means ButtonPrimary.
	Buttons Buttons
}

func (c *PanConfig) normalize() {
	if c.Buttons == 0 {
		c.Buttons = ButtonPrimary
	}
}

// PinchConfig controls two-finger pinch zooming.
type PinchConfig struct {
	// Disabled turns pinch zooming off entirely.
	Disabled bool
	// Step scales pinch sensitivity: the scale factor applied is
	// 1 + (distanceRatio - 1) * Step. Zero means 1 (direct ratio).
	Step float64
	// Overshoot allows the scale to exceed the configured limits by the
	// given relative amount during the gesture; the release animates the
	// scale back to the nearest limit. Zero disallows overshoot.
	Overshoot float64
}

func (c *PinchConfig) normalize() {
	if c.Step <= 0 {
		c.Step = defaultPinchStep
	}
	if c.Overshoot < 0 {
		c.Overshoot = 0
	}
}

// DoubleClickConfig controls double-click zooming.
type DoubleClickConfig struct {
	// Disabled turns double-click zooming off entirely.
	Disabled bool
	// Step is the relative scale change per double click. Zero means 0.7.
	Step float64
	// Mode selects zoom in, zoom out, or reset.
	Mode DoubleClickMode
	// AnimationTime is the duration of the zoom animation. Zero means 200ms.
	AnimationTime time.Duration
	// AnimationType names the easing curve (see the Easing constants).
	// Empty means easeOut.
	AnimationType string
}

func (c *DoubleClickConfig) normalize() {
	if c.Step <= 0 {
		c.Step = defaultDoubleClickStep
	}
	if c.AnimationTime <= 0 {
		c.AnimationTime = defaultAnimationTime
	}
	if c.AnimationType == "" {
		c.AnimationType = EasingEaseOut
	}
}

// config is the resolved engine configuration. It is immutable once the
// Engine is constructed; options mutate it only inside New.
type config struct {
	disabled       bool
	minScale       float64
	maxScale       float64
	initialScale   float64
	limitToBounds  bool
	limitToWrapper bool
	centerOnInit   bool

	wheel       WheelConfig
	pan         PanConfig
	pinch       PinchConfig
	doubleClick DoubleClickConfig

	callbacks Callbacks
}

func defaultConfig() config {
	c := config{
		minScale:      defaultMinScale,
		maxScale:      defaultMaxScale,
		initialScale:  defaultInitialScale,
		limitToBounds: true,
		centerOnInit:  true,
	}
	c.wheel.normalize()
	c.pan.normalize()
	c.pinch.normalize()
	c.doubleClick.normalize()
	return c
}

// clampScale limits a scale to the configured range.
func (c *config) clampScale(s float64) float64 {
	return clamp(s, c.minScale, c.maxScale)
}

// clampScaleOvershoot limits a scale to the range widened by the pinch
// overshoot allowance.
func (c *config) clampScaleOvershoot(s float64) float64 {
	ov := c.pinch.Overshoot
	lo := c.minScale * (1 - ov)
	if lo < minPinchScale {
		lo = minPinchScale
	}
	return clamp(s, lo, c.maxScale*(1+ov))
}
