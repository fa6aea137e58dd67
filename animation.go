package panzoom

import (
	"log/slog"
	"time"
)

// animKind distinguishes animations for callback pairing: zoom animations
// bracket themselves with OnZoomStart/OnZoomStop, move animations
// (inertial pan, pinch snap-back, animated PanTo) fire no gesture hooks
// of their own.
type animKind uint8

const (
	animMove animKind = iota
	animZoom
)

// animation is the single in-flight animation slot. At most one exists;
// starting a new animation or any gesture cancels the previous one
// immediately, with no queueing.
type animation struct {
	from, to Transform
	start    time.Time
	duration time.Duration
	ease     EasingFunc
	kind     animKind
}

// startAnimation begins animating from the current transform toward to.
// The target position is clamped against the bounds of the target scale
// up front so the animation never aims outside the allowed range.
// A zero at timestamp arms the animation on the next Update tick.
func (e *Engine) startAnimation(to Transform, d time.Duration, ease EasingFunc, kind animKind, at time.Time) {
	if e.cfg.limitToBounds {
		b := computeBounds(e.wrapper, e.content, to.Scale, e.cfg.limitToWrapper)
		to = to.withPosition(b.Clamp(to.Position()))
	}
	e.cancelAnimation()
	e.anim = &animation{
		from:     e.transform,
		to:       to,
		start:    at,
		duration: d,
		ease:     ease,
		kind:     kind,
	}
	e.session = sessionAnimating
	Logger().Debug("panzoom: animation start",
		slog.Float64("targetScale", to.Scale),
		slog.Duration("duration", d))
}

// stepAnimation advances the in-flight animation to now and commits the
// interpolated transform. The final frame commits exactly the target
// value so completion carries no floating-point drift.
// Reports whether the transform changed.
func (e *Engine) stepAnimation(now time.Time) bool {
	a := e.anim
	if a == nil {
		return false
	}
	if a.start.IsZero() {
		a.start = now
	}
	frac := 1.0
	if a.duration > 0 {
		frac = float64(now.Sub(a.start)) / float64(a.duration)
	}
	if frac >= 1 {
		e.commit(a.to)
		e.finishAnimation()
		return true
	}
	if frac < 0 {
		frac = 0
	}
	e.commit(lerpTransform(a.from, a.to, a.ease(frac)))
	return true
}

// finishAnimation clears the animation slot after its final commit and
// fires the paired stop hook.
func (e *Engine) finishAnimation() {
	kind := e.anim.kind
	e.anim = nil
	if e.session == sessionAnimating {
		e.session = sessionIdle
	}
	if kind == animZoom {
		fire(e.cfg.callbacks.OnZoomStop, e.transform)
	}
}

// CancelAnimation stops any in-flight animation immediately, leaving the
// transform at its current interpolated value. A cancelled zoom animation
// still fires OnZoomStop so start/stop hooks stay paired.
func (e *Engine) CancelAnimation() {
	e.cancelAnimation()
}

func (e *Engine) cancelAnimation() {
	if e.anim == nil {
		return
	}
	e.finishAnimation()
}
