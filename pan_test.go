package panzoom

import (
	"testing"
	"time"
)

// dragRight feeds a constant-speed horizontal drag: from start, dx pixels
// over dur, sampled every 20ms, and returns the time of the last sample.
func dragRight(e *Engine, start Point, dx float64, dur time.Duration, t0 time.Time) time.Time {
	e.StartPan(PointerEvent{Position: start, Buttons: ButtonPrimary, Time: t0})
	steps := int(dur / (20 * time.Millisecond))
	now := t0
	for i := 1; i <= steps; i++ {
		now = t0.Add(time.Duration(i) * 20 * time.Millisecond)
		e.Pan(PointerEvent{
			Position: Pt(start.X+dx*float64(i)/float64(steps), start.Y),
			Time:     now,
		})
	}
	return now
}

func TestPanMovesByDelta(t *testing.T) {
	e := newTestEngine(t, WithLimitToBounds(false))
	t0 := time.Unix(0, 0)

	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Time: t0})
	if !e.IsPanning() {
		t.Fatal("IsPanning() = false after StartPan")
	}
	e.Pan(PointerEvent{Position: Pt(300, 100), Time: t0.Add(200 * time.Millisecond)})

	got := e.State()
	if !near(got.PositionX, 200) || !near(got.PositionY, 0) {
		t.Errorf("position = (%g, %g), want (200, 0)", got.PositionX, got.PositionY)
	}
	if !near(got.Scale, 1) {
		t.Errorf("pan changed scale to %g", got.Scale)
	}
}

func TestPanReleaseVelocityTriggersInertia(t *testing.T) {
	e := newTestEngine(t, WithLimitToBounds(false))
	t0 := time.Unix(0, 0)

	// 200px over 200ms: release velocity 1 px/ms, above the threshold.
	end := dragRight(e, Pt(100, 100), 200, 200*time.Millisecond, t0)
	e.StopPan(end)

	if !e.IsAnimating() {
		t.Fatal("fast release did not start an inertial animation")
	}
	finishAnimation(t, e)

	// EaseOutCubic with travel v*duration/3 starts at the release speed and
	// comes to rest at pos + v*duration/3.
	want := 200 + 1.0*float64(panInertiaTime/time.Millisecond)/3
	if got := e.State().PositionX; !nearTol(got, want, 1e-6) {
		t.Errorf("settled PositionX = %g, want %g", got, want)
	}
}

func TestPanSlowReleaseNoInertia(t *testing.T) {
	e := newTestEngine(t, WithLimitToBounds(false))
	t0 := time.Unix(0, 0)

	// 10px over 200ms: 0.05 px/ms, below the 0.1 threshold.
	end := dragRight(e, Pt(100, 100), 10, 200*time.Millisecond, t0)
	e.StopPan(end)

	if e.IsAnimating() {
		t.Error("slow release started an inertial animation")
	}
	if got := e.State().PositionX; !near(got, 10) {
		t.Errorf("PositionX = %g, want 10", got)
	}
}

func TestPanVelocityDisabled(t *testing.T) {
	e := newTestEngine(t,
		WithLimitToBounds(false),
		WithPan(PanConfig{VelocityDisabled: true}),
	)
	t0 := time.Unix(0, 0)

	end := dragRight(e, Pt(100, 100), 200, 200*time.Millisecond, t0)
	e.StopPan(end)

	if e.IsAnimating() {
		t.Error("inertia ran with VelocityDisabled")
	}
}

func TestPanInertiaStopsAtBounds(t *testing.T) {
	e := newTestEngine(t)
	e.ZoomTo(2, Pt(0, 0), false) // bounds are [-400,0]x[-300,0]
	t0 := time.Unix(0, 0)

	// Fast rightward fling; the free target would overshoot the max bound.
	end := dragRight(e, Pt(100, 100), 300, 150*time.Millisecond, t0)
	e.StopPan(end)
	if e.IsAnimating() {
		finishAnimation(t, e)
	}

	got := e.State()
	if !e.Bounds().Contains(got.Position()) {
		t.Errorf("inertia settled at %+v outside bounds %+v", got.Position(), e.Bounds())
	}
	if got.PositionX != 0 {
		t.Errorf("PositionX = %g, want 0 (pinned at the bound)", got.PositionX)
	}
}

func TestPanAxisLock(t *testing.T) {
	tests := []struct {
		name  string
		cfg   PanConfig
		want  Point
		delta Point
	}{
		{"lock x", PanConfig{LockAxisX: true}, Pt(0, 40), Pt(70, 40)},
		{"lock y", PanConfig{LockAxisY: true}, Pt(70, 0), Pt(70, 40)},
		{"lock both", PanConfig{LockAxisX: true, LockAxisY: true}, Pt(0, 0), Pt(70, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, WithLimitToBounds(false), WithPan(tt.cfg))
			t0 := time.Unix(0, 0)
			e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Time: t0})
			e.Pan(PointerEvent{
				Position: Pt(100+tt.delta.X, 100+tt.delta.Y),
				Time:     t0.Add(50 * time.Millisecond),
			})
			got := e.State().Position()
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("position = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPanClampedToBounds(t *testing.T) {
	e := newTestEngine(t)
	e.ZoomTo(2, Pt(0, 0), false) // bounds are [-400,0]x[-300,0]
	t0 := time.Unix(0, 0)

	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Time: t0})
	e.Pan(PointerEvent{Position: Pt(900, 900), Time: t0.Add(50 * time.Millisecond)})

	got := e.State()
	if got.PositionX != 0 || got.PositionY != 0 {
		t.Errorf("position = (%g, %g), want (0, 0)", got.PositionX, got.PositionY)
	}
}

func TestPanExcludedTarget(t *testing.T) {
	e := newTestEngine(t, WithPan(PanConfig{ExcludedTargets: []string{"slider"}}))
	t0 := time.Unix(0, 0)

	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Target: "slider", Time: t0})
	if e.IsPanning() {
		t.Error("pan started on an excluded target")
	}
	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Target: "canvas", Time: t0})
	if !e.IsPanning() {
		t.Error("pan blocked on a non-excluded target")
	}
}

func TestPanCallbackOrder(t *testing.T) {
	var order []string
	e := New(WithCallbacks(Callbacks{
		OnPanStart: func(Transform) { order = append(order, "start") },
		OnPan:      func(Transform) { order = append(order, "pan") },
		OnPanStop:  func(Transform) { order = append(order, "stop") },
	}))
	if err := e.Attach(Size{Width: 400, Height: 300}, Size{Width: 400, Height: 300}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t0 := time.Unix(0, 0)

	e.StartPan(PointerEvent{Position: Pt(100, 100), Buttons: ButtonPrimary, Time: t0})
	e.Pan(PointerEvent{Position: Pt(110, 100), Time: t0.Add(20 * time.Millisecond)})
	e.Pan(PointerEvent{Position: Pt(120, 100), Time: t0.Add(40 * time.Millisecond)})
	e.StopPan(t0.Add(60 * time.Millisecond))

	want := []string{"start", "pan", "pan", "stop"}
	if len(order) != len(want) {
		t.Fatalf("callback order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("callback order = %v, want %v", order, want)
		}
	}
}

func TestPanMotionWithoutSessionIgnored(t *testing.T) {
	e := newTestEngine(t, WithLimitToBounds(false))
	t0 := time.Unix(0, 0)
	e.Pan(PointerEvent{Position: Pt(300, 300), Time: t0})
	e.StopPan(t0)
	if got := e.State(); !transformNear(got, Transform{Scale: 1}) {
		t.Errorf("pan motion without a session mutated transform: %+v", got)
	}
}
