// Package panzoom provides a framework-agnostic pan/zoom/pinch
// gesture-to-transform engine for Go.
//
// # Overview
//
// panzoom turns raw pointer, wheel, touch, and key events into a single
// coherent 2D transform (scale, positionX, positionY) that always respects
// the configured constraints: scale limits, pan bounds, step sizes, and
// per-gesture enable flags. It handles gesture arbitration (a pinch
// supersedes a pan when a second touch lands, any gesture cancels a running
// animation), inertial panning after release, and eased animations for
// double-click and imperative zooms.
//
// The engine is deliberately free of UI-framework dependencies. Bindings
// for gioui and ebiten live under integration/.
//
// # Quick Start
//
//	import "github.com/gogpu/panzoom"
//
//	eng := panzoom.New(
//	    panzoom.WithScaleLimits(1, 8),
//	    panzoom.WithWheel(panzoom.WheelConfig{Step: 0.2}),
//	)
//	if err := eng.Attach(panzoom.Size{Width: 800, Height: 600},
//	    panzoom.Size{Width: 1600, Height: 1200}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Feed events from the host event loop:
//	eng.ApplyWheel(panzoom.WheelEvent{Position: cursor, DeltaY: dy, Time: now})
//	eng.Update(now) // advance animations once per frame
//
//	tf := eng.State() // {Scale, PositionX, PositionY}
//
// # Time
//
// The engine never reads the wall clock. Every event carries its own
// timestamp and bindings call [Engine.Update] once per frame with the frame
// time. This keeps gesture handling deterministic and directly testable.
//
// # Architecture
//
// The library is organized into:
//   - Engine: the gesture state machine owning the transform
//   - Bounds, Transform, Matrix, Point: geometry primitives
//   - Wheel/Pan/Pinch/DoubleClick handlers: per-gesture logic
//   - integration/giopan, integration/ebitenpan: framework bindings
package panzoom
