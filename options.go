package panzoom

// Option configures an Engine during creation.
// Use functional options to customize constraints and gestures:
//
//	eng := panzoom.New(
//	    panzoom.WithScaleLimits(0.5, 4),
//	    panzoom.WithWheel(panzoom.WheelConfig{Step: 0.1}),
//	    panzoom.WithLimitToBounds(false),
//	)
type Option func(*config)

// WithDisabled disables every gesture and imperative operation.
// The engine still publishes its (frozen) transform.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithScaleLimits sets the allowed scale range [min, max].
// Non-positive or inverted values are ignored, keeping the defaults.
func WithScaleLimits(min, max float64) Option {
	return func(c *config) {
		if min > 0 && max >= min {
			c.minScale = min
			c.maxScale = max
		}
	}
}

// WithInitialScale sets the scale applied on Attach and restored by Reset.
// The value is clamped to the configured scale limits at attach time.
func WithInitialScale(scale float64) Option {
	return func(c *config) {
		if scale > 0 {
			c.initialScale = scale
		}
	}
}

// WithLimitToBounds controls whether positions are clamped to the pan
// bounds computed for the current scale. Default true.
func WithLimitToBounds(limit bool) Option {
	return func(c *config) {
		c.limitToBounds = limit
	}
}

// WithLimitToWrapper allows content smaller than the wrapper to move
// freely inside it instead of being pinned centered. Only meaningful
// together with limit-to-bounds. Default false.
func WithLimitToWrapper(limit bool) Option {
	return func(c *config) {
		c.limitToWrapper = limit
	}
}

// WithCenterOnInit controls whether Attach centers the content in the
// wrapper. Default true.
func WithCenterOnInit(center bool) Option {
	return func(c *config) {
		c.centerOnInit = center
	}
}

// WithWheel replaces the wheel gesture configuration.
// Zero fields fall back to their defaults.
func WithWheel(wc WheelConfig) Option {
	return func(c *config) {
		wc.normalize()
		c.wheel = wc
	}
}

// WithPan replaces the pan gesture configuration.
// Zero fields fall back to their defaults.
func WithPan(pc PanConfig) Option {
	return func(c *config) {
		pc.normalize()
		c.pan = pc
	}
}

// WithPinch replaces the pinch gesture configuration.
// Zero fields fall back to their defaults.
func WithPinch(pc PinchConfig) Option {
	return func(c *config) {
		pc.normalize()
		c.pinch = pc
	}
}

// WithDoubleClick replaces the double-click configuration.
// Zero fields fall back to their defaults.
func WithDoubleClick(dc DoubleClickConfig) Option {
	return func(c *config) {
		dc.normalize()
		c.doubleClick = dc
	}
}

// WithCallbacks registers lifecycle hooks. Nil hooks are simply skipped.
func WithCallbacks(cb Callbacks) Option {
	return func(c *config) {
		c.callbacks = cb
	}
}
