// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package giopan connects a panzoom.Engine to a Gio window.
//
// Viewport is a widget that owns an engine, feeds it the pointer and
// scroll events Gio routes to its area, and lays its content out under
// the resulting transform. The data flow per frame is:
//
//	pointer.Event -> Engine (gestures) -> Transform -> op.Affine -> content
//
// # Architecture
//
// Viewport translates between the two event models:
//
//   - Gio pointer events become engine gesture calls (pan, pinch, wheel,
//     double click), keyed by pointer source and live touch count
//   - Keyboard modifiers on each event are mirrored into the engine's
//     key state for activation-key gates
//   - Engine.Update runs once per Layout with the frame time, and the
//     frame is invalidated while an animation or wheel session is live
//
// # Usage
//
//	vp := giopan.New(panzoom.WithScaleLimits(1, 8))
//
//	func (ui *UI) layout(gtx layout.Context) layout.Dimensions {
//	    return vp.Layout(gtx, contentSize, func(gtx layout.Context) layout.Dimensions {
//	        return drawContent(gtx)
//	    })
//	}
//
// # Thread Safety
//
// Viewport is NOT safe for concurrent use. Call it only from the window
// event loop, which is also what the engine's callback ordering assumes.
package giopan
