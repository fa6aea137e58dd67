package panzoom

import (
	"log/slog"
	"time"
)

// panVelocityThreshold is the minimum release speed, in px/ms, that
// triggers an inertial animation.
const panVelocityThreshold = 0.1

// panInertiaTime is the duration of the inertial deceleration.
const panInertiaTime = 500 * time.Millisecond

// panSession is the transient bookkeeping of one pan gesture.
type panSession struct {
	start Point
	last  Point
}

// StartPan begins a pan session at the pressed position. The press point
// is also the first velocity sample.
func (e *Engine) StartPan(ev PointerEvent) {
	if !panStartAllowed(&e.cfg, e.session, e.attached, ev.Buttons, ev.Target) {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	e.session = sessionPanning
	e.pan = panSession{start: ev.Position, last: ev.Position}
	e.vt.Reset()
	e.vt.Add(ev.Position, ev.Time)
	fire(e.cfg.callbacks.OnPanStart, e.transform)
	Logger().Debug("panzoom: pan started",
		slog.Float64("x", ev.Position.X), slog.Float64("y", ev.Position.Y))
}

// Pan applies the drag delta since the previous pointer position to the
// transform, clamped to the pan bounds when limit-to-bounds is on.
func (e *Engine) Pan(ev PointerEvent) {
	if !panContinueAllowed(e.session) {
		return
	}
	delta := ev.Position.Sub(e.pan.last)
	if e.cfg.pan.LockAxisX {
		delta.X = 0
	}
	if e.cfg.pan.LockAxisY {
		delta.Y = 0
	}
	e.pan.last = ev.Position
	e.vt.Add(ev.Position, ev.Time)
	e.commit(e.transform.withPosition(e.transform.Position().Add(delta)))
	fire(e.cfg.callbacks.OnPan, e.transform)
}

// StopPan ends the pan session. If the release velocity exceeds the
// threshold and inertia is enabled, a decelerating animation carries the
// view onward, clamped to the bounds at every step so it stops exactly at
// a boundary rather than overshooting past it.
func (e *Engine) StopPan(now time.Time) {
	if !panContinueAllowed(e.session) {
		return
	}
	e.session = sessionIdle
	fire(e.cfg.callbacks.OnPanStop, e.transform)
	Logger().Debug("panzoom: pan stopped")

	if e.cfg.pan.VelocityDisabled {
		return
	}
	v := e.vt.Velocity()
	if v.Length() < panVelocityThreshold {
		return
	}

	// Aim where an exponential decay of the release velocity would come
	// to rest. EaseOutCubic has initial slope 3, so scaling the travel by
	// duration/3 makes the animation start at exactly the release speed.
	travelMs := float64(panInertiaTime/time.Millisecond) / 3
	target := e.transform.withPosition(e.transform.Position().Add(v.Mul(travelMs)))
	e.startAnimation(target, panInertiaTime, EaseOutCubic, animMove, now)
}
