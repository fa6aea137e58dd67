package panzoom

import (
	"log/slog"
	"time"
)

// pinchSnapBackTime is the duration of the scale snap-back animation when
// a pinch releases outside the configured scale limits.
const pinchSnapBackTime = 200 * time.Millisecond

// minPinchScale floors the overshoot range so a collapsing pinch can
// never drive the scale to zero or below.
const minPinchScale = 0.01

// pinchSession is the transient bookkeeping of one pinch gesture.
type pinchSession struct {
	startDistance float64
	startScale    float64
	lastMid       Point
}

// StartPinch begins a pinch session from the two touch points. When a pan
// is in flight (the second touch landed mid-drag) the pan session ends
// first, its stop hook fires, and the transform is left untouched so the
// handover is free of discontinuity.
func (e *Engine) StartPinch(ev PinchEvent) {
	if !pinchStartAllowed(&e.cfg, e.attached) {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	if e.session == sessionPanning {
		e.session = sessionIdle
		fire(e.cfg.callbacks.OnPanStop, e.transform)
		Logger().Debug("panzoom: pan superseded by pinch")
	}
	e.session = sessionPinching
	e.pinch = pinchSession{
		startDistance: ev.Distance(),
		startScale:    e.transform.Scale,
		lastMid:       ev.Midpoint(),
	}
	fire(e.cfg.callbacks.OnPinchStart, e.transform)
	Logger().Debug("panzoom: pinch started",
		slog.Float64("distance", e.pinch.startDistance))
}

// Pinch derives the scale from the current two-touch distance relative to
// the start distance and anchors it at the touch midpoint. The scale may
// exceed the configured limits by the overshoot allowance; StopPinch
// animates it back.
func (e *Engine) Pinch(ev PinchEvent) {
	if !pinchContinueAllowed(e.session) {
		return
	}
	if e.pinch.startDistance <= 0 {
		return
	}
	ratio := ev.Distance() / e.pinch.startDistance
	factor := 1 + (ratio-1)*e.cfg.pinch.Step
	newScale := e.cfg.clampScaleOvershoot(e.pinch.startScale * factor)

	mid := ev.Midpoint()
	e.pinch.lastMid = mid
	e.commit(e.transform.zoomedAt(newScale, mid))
	fire(e.cfg.callbacks.OnPinch, e.transform)
}

// StopPinch ends the pinch session. A scale left outside the configured
// limits by overshoot animates back to the nearest limit, anchored at the
// last touch midpoint.
func (e *Engine) StopPinch(now time.Time) {
	if !pinchContinueAllowed(e.session) {
		return
	}
	mid := e.pinch.lastMid
	e.session = sessionIdle
	fire(e.cfg.callbacks.OnPinchStop, e.transform)
	Logger().Debug("panzoom: pinch stopped",
		slog.Float64("scale", e.transform.Scale))

	clamped := e.cfg.clampScale(e.transform.Scale)
	if clamped != e.transform.Scale {
		e.startAnimation(e.transform.zoomedAt(clamped, mid),
			pinchSnapBackTime, EaseOutQuad, animMove, now)
	}
}
