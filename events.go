package panzoom

import "time"

// Buttons is a bitmask of pressed pointer buttons, in the gio convention.
type Buttons uint8

const (
	// ButtonPrimary is the left mouse button or a single touch.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonTertiary is the middle mouse button.
	ButtonTertiary
)

// PointerEvent is a pointer press, move, or click delivered to the engine.
// Position is in wrapper-local screen pixels.
type PointerEvent struct {
	Position Point
	Buttons  Buttons
	// Target identifies the element under the pointer, when the host
	// distinguishes them. Pan gestures can be refused on configured
	// targets (PanConfig.ExcludedTargets).
	Target string
	Time   time.Time
}

// WheelEvent is a discrete wheel tick delivered to the engine.
// Position is the cursor location the zoom anchors to.
type WheelEvent struct {
	Position Point
	// DeltaY follows the browser convention: negative values zoom in.
	DeltaY float64
	// Ctrl is set when the host reports a ctrl-modified wheel, which is
	// how trackpad pinches surface on most platforms.
	Ctrl bool
	Time time.Time
}

// PinchEvent carries the two active touch points of a pinch.
// Constructing one implies exactly two touches are down; the binding is
// responsible for detecting the 1-to-2 touch transition and promoting an
// in-flight pan (see Engine.StartPinch).
type PinchEvent struct {
	A, B Point
	Time time.Time
}

// Distance returns the distance between the two touches.
func (ev PinchEvent) Distance() float64 {
	return ev.A.Distance(ev.B)
}

// Midpoint returns the midpoint of the two touches, the pinch zoom anchor.
func (ev PinchEvent) Midpoint() Point {
	return ev.A.Mid(ev.B)
}
