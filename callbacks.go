package panzoom

// Callbacks are lifecycle hooks invoked by the engine at well-defined
// transition points. Each hook receives the transform snapshot current at
// the moment it fires. Nil hooks are skipped.
//
// Ordering guarantees, per gesture kind: the start hook fires exactly once
// before any move hook, move hooks fire once per committed move, and the
// stop hook fires exactly once afterwards.
//
// Hooks run synchronously on the caller's event loop; they must not call
// back into the engine.
type Callbacks struct {
	// OnTransform fires after every committed transform mutation,
	// whatever its source. Bindings use it to request a re-render.
	OnTransform func(Transform)

	OnPanStart func(Transform)
	OnPan      func(Transform)
	OnPanStop  func(Transform)

	OnPinchStart func(Transform)
	OnPinch      func(Transform)
	OnPinchStop  func(Transform)

	// Zoom hooks cover wheel, double-click, and imperative zooms.
	// For wheel zooming OnZoomStop fires after the stop debounce elapses.
	OnZoomStart func(Transform)
	OnZoom      func(Transform)
	OnZoomStop  func(Transform)
}

// fire invokes a hook if it is set.
func fire(hook func(Transform), t Transform) {
	if hook != nil {
		hook(t)
	}
}
