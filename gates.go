package panzoom

// Gesture gates. Pure predicates deciding whether an incoming event may
// start or continue a gesture, given the immutable configuration and the
// relevant pieces of session state. The Engine consults these before any
// mutation; a failed gate means the event is ignored entirely (no
// mutation, no callback, no log).

// wheelAllowed reports whether a wheel event may zoom.
func wheelAllowed(c *config, keys keySet, attached bool, kind sessionKind, ctrl bool) bool {
	if c.disabled || c.wheel.Disabled || !attached {
		return false
	}
	if ctrl && c.wheel.TouchPadDisabled {
		return false
	}
	if kind == sessionPanning || kind == sessionPinching {
		return false
	}
	return keys.anyDown(c.wheel.ActivationKeys)
}

// panStartAllowed reports whether a pointer press may start a pan.
func panStartAllowed(c *config, kind sessionKind, attached bool, buttons Buttons, target string) bool {
	if c.disabled || c.pan.Disabled || !attached {
		return false
	}
	if kind == sessionPinching || kind == sessionPanning {
		return false
	}
	if buttons&c.pan.Buttons == 0 {
		return false
	}
	for _, excluded := range c.pan.ExcludedTargets {
		if target == excluded {
			return false
		}
	}
	return true
}

// panContinueAllowed reports whether a pan session is active.
func panContinueAllowed(kind sessionKind) bool {
	return kind == sessionPanning
}

// pinchStartAllowed reports whether a two-touch contact may start a pinch.
// The two-touch requirement is structural: a PinchEvent carries exactly
// two points.
func pinchStartAllowed(c *config, attached bool) bool {
	return !c.disabled && !c.pinch.Disabled && attached
}

// pinchContinueAllowed reports whether a pinch session is active.
func pinchContinueAllowed(kind sessionKind) bool {
	return kind == sessionPinching
}

// doubleClickAllowed reports whether a double click may trigger a step
// zoom. Mid-pinch double taps are artifacts of fast two-finger contact
// and are ignored.
func doubleClickAllowed(c *config, kind sessionKind, attached bool) bool {
	if c.disabled || c.doubleClick.Disabled || !attached {
		return false
	}
	return kind != sessionPinching
}
