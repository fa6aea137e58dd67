package panzoom

import (
	"testing"
	"time"
)

func TestPinchScaleFromDistanceRatio(t *testing.T) {
	e := newTestEngine(t)
	t0 := time.Unix(0, 0)

	// Two touches 50px apart spreading to 100px: ratio 2, default step 1.
	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	if !e.IsPinching() {
		t.Fatal("IsPinching() = false after StartPinch")
	}
	e.Pinch(PinchEvent{A: Pt(150, 150), B: Pt(250, 150), Time: t0.Add(50 * time.Millisecond)})

	if got := e.State().Scale; !near(got, 2) {
		t.Errorf("Scale = %g, want 2", got)
	}
	e.StopPinch(t0.Add(100 * time.Millisecond))
	if e.IsPinching() {
		t.Error("IsPinching() = true after StopPinch")
	}
	if e.IsAnimating() {
		t.Error("in-range release started a snap-back animation")
	}
}

func TestPinchClampedToMaxScale(t *testing.T) {
	e := newTestEngine(t, WithScaleLimits(1, 1.5))
	t0 := time.Unix(0, 0)

	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	e.Pinch(PinchEvent{A: Pt(150, 150), B: Pt(250, 150), Time: t0.Add(50 * time.Millisecond)})

	if got := e.State().Scale; !near(got, 1.5) {
		t.Errorf("Scale = %g, want 1.5 (clamped)", got)
	}
}

func TestPinchStepDampens(t *testing.T) {
	e := newTestEngine(t, WithPinch(PinchConfig{Step: 0.5}))
	t0 := time.Unix(0, 0)

	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	e.Pinch(PinchEvent{A: Pt(150, 150), B: Pt(250, 150), Time: t0.Add(50 * time.Millisecond)})

	// ratio 2, step 0.5: factor = 1 + (2-1)*0.5 = 1.5.
	if got := e.State().Scale; !near(got, 1.5) {
		t.Errorf("Scale = %g, want 1.5", got)
	}
}

func TestPinchOvershootSnapsBack(t *testing.T) {
	e := newTestEngine(t,
		WithScaleLimits(1, 2),
		WithPinch(PinchConfig{Overshoot: 0.5}),
	)
	t0 := time.Unix(0, 0)

	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	// ratio 4: the raw factor 4 exceeds max 2 and lands on the overshoot
	// ceiling 2*(1+0.5) = 3.
	e.Pinch(PinchEvent{A: Pt(100, 150), B: Pt(300, 150), Time: t0.Add(50 * time.Millisecond)})
	if got := e.State().Scale; !near(got, 3) {
		t.Fatalf("overshot Scale = %g, want 3", got)
	}

	e.StopPinch(t0.Add(100 * time.Millisecond))
	if !e.IsAnimating() {
		t.Fatal("out-of-range release did not start a snap-back animation")
	}
	finishAnimation(t, e)
	if got := e.State().Scale; !near(got, 2) {
		t.Errorf("snapped-back Scale = %g, want 2", got)
	}
	if !e.Bounds().Contains(e.State().Position()) {
		t.Errorf("snapped-back position %+v outside bounds %+v",
			e.State().Position(), e.Bounds())
	}
}

func TestPinchNoOvershootByDefault(t *testing.T) {
	e := newTestEngine(t, WithScaleLimits(1, 2))
	t0 := time.Unix(0, 0)

	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	e.Pinch(PinchEvent{A: Pt(100, 150), B: Pt(300, 150), Time: t0.Add(50 * time.Millisecond)})
	if got := e.State().Scale; !near(got, 2) {
		t.Fatalf("Scale = %g, want 2 (hard clamp)", got)
	}
	e.StopPinch(t0.Add(100 * time.Millisecond))
	if e.IsAnimating() {
		t.Error("hard-clamped release started a snap-back animation")
	}
}

func TestPanToPinchHandover(t *testing.T) {
	var panStops, pinchStarts int
	e := New(
		WithLimitToBounds(false),
		WithCallbacks(Callbacks{
			OnPanStop:    func(Transform) { panStops++ },
			OnPinchStart: func(Transform) { pinchStarts++ },
		}),
	)
	if err := e.Attach(Size{Width: 400, Height: 300}, Size{Width: 400, Height: 300}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t0 := time.Unix(0, 0)

	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Time: t0})
	e.Pan(PointerEvent{Position: Pt(140, 100), Time: t0.Add(40 * time.Millisecond)})
	before := e.State()

	// Second finger lands mid-drag.
	e.StartPinch(PinchEvent{A: Pt(140, 100), B: Pt(200, 100), Time: t0.Add(60 * time.Millisecond)})

	if panStops != 1 {
		t.Errorf("OnPanStop fired %d times on handover, want 1", panStops)
	}
	if pinchStarts != 1 {
		t.Errorf("OnPinchStart fired %d times, want 1", pinchStarts)
	}
	if !e.IsPinching() || e.IsPanning() {
		t.Error("handover did not land in the pinching state")
	}
	// The transform must not jump at the handover.
	if got := e.State(); !transformNear(got, before) {
		t.Errorf("handover moved transform from %+v to %+v", before, got)
	}
}

func TestPinchZeroStartDistance(t *testing.T) {
	e := newTestEngine(t)
	t0 := time.Unix(0, 0)

	// Both touches at the same point: the ratio is undefined and motion
	// must be ignored rather than producing NaN.
	e.StartPinch(PinchEvent{A: Pt(200, 150), B: Pt(200, 150), Time: t0})
	e.Pinch(PinchEvent{A: Pt(150, 150), B: Pt(250, 150), Time: t0.Add(50 * time.Millisecond)})

	if got := e.State().Scale; !near(got, 1) {
		t.Errorf("Scale = %g, want 1", got)
	}
}

func TestPinchCallbacksPaired(t *testing.T) {
	var starts, moves, stops int
	e := New(WithCallbacks(Callbacks{
		OnPinchStart: func(Transform) { starts++ },
		OnPinch:      func(Transform) { moves++ },
		OnPinchStop:  func(Transform) { stops++ },
	}))
	if err := e.Attach(Size{Width: 400, Height: 300}, Size{Width: 400, Height: 300}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t0 := time.Unix(0, 0)

	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	e.Pinch(PinchEvent{A: Pt(170, 150), B: Pt(230, 150), Time: t0.Add(20 * time.Millisecond)})
	e.Pinch(PinchEvent{A: Pt(160, 150), B: Pt(240, 150), Time: t0.Add(40 * time.Millisecond)})
	e.StopPinch(t0.Add(60 * time.Millisecond))

	if starts != 1 || moves != 2 || stops != 1 {
		t.Errorf("callbacks = start %d / move %d / stop %d, want 1/2/1", starts, moves, stops)
	}
}

func TestPinchDisabled(t *testing.T) {
	e := newTestEngine(t, WithPinch(PinchConfig{Disabled: true}))
	t0 := time.Unix(0, 0)
	e.StartPinch(PinchEvent{A: Pt(175, 150), B: Pt(225, 150), Time: t0})
	if e.IsPinching() {
		t.Error("disabled pinch started a session")
	}
}
