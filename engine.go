package panzoom

import (
	"fmt"
	"log/slog"
	"time"
)

// sessionKind tags the engine's gesture state. Exactly one session is
// active at a time; transitions are gated and mutually interrupting.
type sessionKind uint8

const (
	sessionIdle sessionKind = iota
	sessionPanning
	sessionPinching
	sessionWheel
	sessionAnimating
)

func (k sessionKind) String() string {
	switch k {
	case sessionIdle:
		return "idle"
	case sessionPanning:
		return "panning"
	case sessionPinching:
		return "pinching"
	case sessionWheel:
		return "wheel"
	case sessionAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Engine is the gesture-to-transform state machine. It owns the live
// transform, the derived pan bounds, and the per-gesture session state,
// and it is the only code that mutates any of them. Handlers and bindings
// feed it events; hosts read the result via State or the callbacks.
//
// Engine is not safe for concurrent use. All methods must be called from
// the host's event loop, which also gives the ordering guarantees the
// callbacks rely on.
type Engine struct {
	cfg config

	transform Transform
	bounds    Bounds

	wrapper  Size
	content  Size
	attached bool

	session   sessionKind
	pan       panSession
	pinch     pinchSession
	wheelLast time.Time

	vt   velocityTracker
	keys keySet
	anim *animation
}

// New creates an Engine with the given options. The engine ignores all
// gestures until Attach provides the wrapper and content measurements.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		cfg:  cfg,
		keys: make(keySet),
	}
}

// Attach registers the measured wrapper and content elements, computes
// the initial bounds, and applies the initial transform (centered when
// configured). Gestures are no-ops until Attach succeeds.
func (e *Engine) Attach(wrapper, content Size) error {
	if !wrapper.valid() || !content.valid() {
		return fmt.Errorf("%w: wrapper %gx%g, content %gx%g", ErrInvalidSize,
			wrapper.Width, wrapper.Height, content.Width, content.Height)
	}
	e.wrapper = wrapper
	e.content = content
	e.attached = true
	e.session = sessionIdle
	e.anim = nil
	e.commit(e.resetTransform())
	Logger().Debug("panzoom: attached",
		slog.Float64("wrapperW", wrapper.Width), slog.Float64("wrapperH", wrapper.Height),
		slog.Float64("contentW", content.Width), slog.Float64("contentH", content.Height))
	return nil
}

// Detach tears the engine down: any animation is cancelled, session state
// and the pressed-key set are cleared, and gestures become no-ops again.
// The last committed transform remains readable.
func (e *Engine) Detach() {
	e.cancelAnimation()
	e.endWheelSession()
	e.attached = false
	e.session = sessionIdle
	e.keys.clear()
	e.vt.Reset()
}

// SetWrapperSize updates the wrapper measurement after a resize. Bounds
// are recomputed and the position re-clamped. Invalid sizes are ignored.
func (e *Engine) SetWrapperSize(s Size) {
	if !s.valid() {
		Logger().Warn("panzoom: ignoring invalid wrapper size",
			slog.Float64("width", s.Width), slog.Float64("height", s.Height))
		return
	}
	e.wrapper = s
	if e.attached {
		e.commit(e.transform)
	}
}

// SetContentSize updates the content measurement. Bounds are recomputed
// and the position re-clamped. Invalid sizes are ignored.
func (e *Engine) SetContentSize(s Size) {
	if !s.valid() {
		Logger().Warn("panzoom: ignoring invalid content size",
			slog.Float64("width", s.Width), slog.Float64("height", s.Height))
		return
	}
	e.content = s
	if e.attached {
		e.commit(e.transform)
	}
}

// State returns the current transform snapshot.
func (e *Engine) State() Transform {
	return e.transform
}

// Bounds returns the pan bounds for the current scale.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// IsPanning reports whether a pan session is active.
func (e *Engine) IsPanning() bool { return e.session == sessionPanning }

// IsPinching reports whether a pinch session is active.
func (e *Engine) IsPinching() bool { return e.session == sessionPinching }

// IsAnimating reports whether an animation is in flight. Bindings keep
// requesting frames while this is true.
func (e *Engine) IsAnimating() bool { return e.anim != nil }

// IsZooming reports whether the scale is actively changing: a wheel
// session is live or a zoom animation is in flight.
func (e *Engine) IsZooming() bool {
	return e.session == sessionWheel || (e.anim != nil && e.anim.kind == animZoom)
}

// KeyDown records a key press. Key state feeds the activation-key gates.
func (e *Engine) KeyDown(name string) { e.keys.press(name) }

// KeyUp records a key release.
func (e *Engine) KeyUp(name string) { e.keys.release(name) }

// Update advances time-driven state to now: the in-flight animation and
// the wheel stop debounce. Bindings call it once per frame with the frame
// timestamp. Reports whether the transform changed, so callers know to
// re-render.
func (e *Engine) Update(now time.Time) bool {
	if e.session == sessionWheel && now.Sub(e.wheelLast) >= e.cfg.wheel.StopDebounce {
		e.session = sessionIdle
		fire(e.cfg.callbacks.OnZoomStop, e.transform)
		Logger().Debug("panzoom: wheel session ended")
	}
	return e.stepAnimation(now)
}

// ZoomTo zooms to the given scale, keeping the anchor point visually
// stationary. The scale is clamped to the configured limits before
// anchoring. Animated zooms use the default zoom animation.
func (e *Engine) ZoomTo(scale float64, anchor Point, animated bool) {
	if e.cfg.disabled || !e.attached {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	target := e.transform.zoomedAt(e.cfg.clampScale(scale), anchor)
	if animated {
		e.animateZoom(target, defaultZoomAnimationTime, EaseOutQuad, time.Time{})
		return
	}
	e.commit(target)
}

// ZoomIn steps the scale up by the wheel step, anchored at the wrapper
// center, animated.
func (e *Engine) ZoomIn() {
	e.ZoomTo(e.transform.Scale*(1+e.cfg.wheel.Step), e.wrapperCenter(), true)
}

// ZoomOut steps the scale down by the wheel step, anchored at the wrapper
// center, animated.
func (e *Engine) ZoomOut() {
	e.ZoomTo(e.transform.Scale/(1+e.cfg.wheel.Step), e.wrapperCenter(), true)
}

// PanTo moves the view to the given position at the current scale.
func (e *Engine) PanTo(x, y float64, animated bool) {
	if e.cfg.disabled || !e.attached {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	target := e.transform.withPosition(Pt(x, y))
	if animated {
		e.startAnimation(target, defaultZoomAnimationTime, EaseOutQuad, animMove, time.Time{})
		return
	}
	e.commit(target)
}

// SetTransform sets scale and position in one step. The scale is clamped
// to the configured limits; the position to the bounds of the new scale.
func (e *Engine) SetTransform(scale, x, y float64, animated bool) {
	if e.cfg.disabled || !e.attached {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	target := Transform{Scale: e.cfg.clampScale(scale), PositionX: x, PositionY: y}
	if animated {
		e.startAnimation(target, defaultZoomAnimationTime, EaseOutQuad, animMove, time.Time{})
		return
	}
	e.commit(target)
}

// Reset returns to the initial transform: the configured initial scale,
// centered when centerOnInit is set.
func (e *Engine) Reset(animated bool) {
	if e.cfg.disabled || !e.attached {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	target := e.resetTransform()
	if animated {
		e.animateZoom(target, defaultZoomAnimationTime, EaseOutQuad, time.Time{})
		return
	}
	e.commit(target)
}

// CenterView centers the content in the wrapper at the current scale.
func (e *Engine) CenterView(animated bool) {
	if e.cfg.disabled || !e.attached {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()
	target := e.transform.withPosition(e.centeredPosition(e.transform.Scale))
	if animated {
		e.startAnimation(target, defaultZoomAnimationTime, EaseOutQuad, animMove, time.Time{})
		return
	}
	e.commit(target)
}

// commit is the single mutation point for the transform. It recomputes
// the bounds for the incoming scale first and clamps the position against
// them, so stale bounds can never leak into a clamp. Every commit
// publishes the new snapshot through OnTransform.
func (e *Engine) commit(t Transform) {
	e.bounds = computeBounds(e.wrapper, e.content, t.Scale, e.cfg.limitToWrapper)
	if e.cfg.limitToBounds {
		t = t.withPosition(e.bounds.Clamp(t.Position()))
	}
	e.transform = t
	fire(e.cfg.callbacks.OnTransform, t)
}

// animateZoom starts a zoom-kind animation bracketed by the zoom hooks.
func (e *Engine) animateZoom(target Transform, d time.Duration, ease EasingFunc, at time.Time) {
	fire(e.cfg.callbacks.OnZoomStart, e.transform)
	e.startAnimation(target, d, ease, animZoom, at)
}

// resetTransform is the transform applied on Attach and restored by Reset.
func (e *Engine) resetTransform() Transform {
	s := e.cfg.clampScale(e.cfg.initialScale)
	t := Transform{Scale: s}
	if e.cfg.centerOnInit {
		t = t.withPosition(e.centeredPosition(s))
	}
	return t
}

// centeredPosition is the translation that centers the scaled content in
// the wrapper.
func (e *Engine) centeredPosition(scale float64) Point {
	return Point{
		X: (e.wrapper.Width - e.content.Width*scale) / 2,
		Y: (e.wrapper.Height - e.content.Height*scale) / 2,
	}
}

// wrapperCenter is the wrapper midpoint in screen coordinates, the anchor
// for ZoomIn/ZoomOut.
func (e *Engine) wrapperCenter() Point {
	return Point{X: e.wrapper.Width / 2, Y: e.wrapper.Height / 2}
}
