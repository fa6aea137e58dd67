package panzoom

import "log/slog"

// ApplyWheel converts a wheel tick into a scale step anchored at the
// cursor. Wheel zooming is discrete and high-frequency, so the transform
// commits synchronously per tick with no animation; the wheel session
// ends when Update sees the configured inactivity debounce elapse, which
// fires OnZoomStop.
func (e *Engine) ApplyWheel(ev WheelEvent) {
	if !wheelAllowed(&e.cfg, e.keys, e.attached, e.session, ev.Ctrl) {
		return
	}
	e.cancelAnimation()

	factor := 1 + e.cfg.wheel.Step
	newScale := e.transform.Scale
	switch {
	case ev.DeltaY < 0:
		newScale *= factor
	case ev.DeltaY > 0:
		newScale /= factor
	}
	// Clamp before anchoring; zoom-to-point with an unclamped scale makes
	// the view jump when the clamp kicks in.
	newScale = e.cfg.clampScale(newScale)

	if e.session != sessionWheel {
		e.session = sessionWheel
		fire(e.cfg.callbacks.OnZoomStart, e.transform)
		Logger().Debug("panzoom: wheel session started",
			slog.Float64("scale", e.transform.Scale))
	}

	e.commit(e.transform.zoomedAt(newScale, ev.Position))
	e.wheelLast = ev.Time
	fire(e.cfg.callbacks.OnZoom, e.transform)
}

// endWheelSession closes a live wheel session early, before the debounce
// elapses, so a superseding gesture leaves the zoom hooks paired.
func (e *Engine) endWheelSession() {
	if e.session != sessionWheel {
		return
	}
	e.session = sessionIdle
	fire(e.cfg.callbacks.OnZoomStop, e.transform)
	Logger().Debug("panzoom: wheel session superseded")
}
