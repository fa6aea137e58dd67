package panzoom

// DoubleClick triggers an animated step zoom centered on the click point,
// or an animated reset, depending on the configured mode. The scale step
// is clamped to the limits before anchoring.
func (e *Engine) DoubleClick(ev PointerEvent) {
	if !doubleClickAllowed(&e.cfg, e.session, e.attached) {
		return
	}
	e.cancelAnimation()
	e.endWheelSession()

	dc := e.cfg.doubleClick
	var target Transform
	switch dc.Mode {
	case DoubleClickReset:
		target = e.resetTransform()
	case DoubleClickZoomOut:
		newScale := e.cfg.clampScale(e.transform.Scale / (1 + dc.Step))
		target = e.transform.zoomedAt(newScale, ev.Position)
	default: // DoubleClickZoomIn
		newScale := e.cfg.clampScale(e.transform.Scale * (1 + dc.Step))
		target = e.transform.zoomedAt(newScale, ev.Position)
	}
	e.animateZoom(target, dc.AnimationTime, easingByName(dc.AnimationType), ev.Time)
}
