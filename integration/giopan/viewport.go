// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package giopan

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/gogpu/panzoom"
)

// Double clicks are detected here because Gio reports raw presses; two
// presses this close in time and space count as one double click.
const (
	doubleClickWindow = 300 * time.Millisecond
	doubleClickSlop   = 8.0
)

// Viewport is a Gio widget that pans and zooms its content. It owns a
// panzoom.Engine, routes the pointer events Gio delivers to its area
// into the engine, and lays the content widget out under the resulting
// transform.
//
// Viewport is NOT safe for concurrent use.
type Viewport struct {
	engine *panzoom.Engine

	wrapper  image.Point
	content  image.Point
	attached bool

	// Live touch points, in press order. Two concurrent touches form a
	// pinch; the first alone pans.
	touches    map[pointer.ID]panzoom.Point
	touchOrder []pointer.ID
	pinching   bool

	lastClickAt  time.Time
	lastClickPos panzoom.Point
	mods         key.Modifiers
}

// New creates a Viewport with its own engine, configured by opts.
func New(opts ...panzoom.Option) *Viewport {
	return &Viewport{
		engine:  panzoom.New(opts...),
		touches: make(map[pointer.ID]panzoom.Point),
	}
}

// Engine returns the underlying engine for imperative control
// (ZoomTo, Reset, CenterView) and state queries.
func (v *Viewport) Engine() *panzoom.Engine { return v.engine }

// Transform returns the current view transform.
func (v *Viewport) Transform() panzoom.Transform { return v.engine.State() }

// Layout measures the viewport, drains this frame's pointer events into
// the engine, advances animations, and lays out w under the transform.
// content is the unscaled content size in pixels.
func (v *Viewport) Layout(gtx layout.Context, content image.Point, w layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	v.measure(size, content)

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()

	// Register for events in this area, then drain what arrived since
	// the previous frame.
	area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.handlePointer(pe, gtx.Now)
		}
	}

	changed := v.engine.Update(gtx.Now)
	if changed || v.engine.IsAnimating() || v.engine.IsZooming() {
		gtx.Execute(op.InvalidateCmd{})
	}

	defer op.Affine(affine(v.engine.State())).Push(gtx.Ops).Pop()
	w(gtx)
	return layout.Dimensions{Size: size}
}

// measure attaches the engine on the first valid layout and pushes size
// changes through on later ones. A zero-sized first frame is skipped and
// retried on the next layout.
func (v *Viewport) measure(wrapper, content image.Point) {
	if v.attached && wrapper == v.wrapper && content == v.content {
		return
	}
	ws := panzoom.Size{Width: float64(wrapper.X), Height: float64(wrapper.Y)}
	cs := panzoom.Size{Width: float64(content.X), Height: float64(content.Y)}
	if !v.attached {
		if err := v.engine.Attach(ws, cs); err != nil {
			return
		}
		v.attached = true
	} else {
		if wrapper != v.wrapper {
			v.engine.SetWrapperSize(ws)
		}
		if content != v.content {
			v.engine.SetContentSize(cs)
		}
	}
	v.wrapper = wrapper
	v.content = content
}

func (v *Viewport) handlePointer(ev pointer.Event, now time.Time) {
	v.syncModifiers(ev.Modifiers)
	pos := panzoom.Pt(float64(ev.Position.X), float64(ev.Position.Y))

	switch ev.Kind {
	case pointer.Press:
		if ev.Source == pointer.Touch {
			v.touchDown(ev.PointerID, pos, now)
			return
		}
		if v.isDoubleClick(pos, now) {
			v.engine.DoubleClick(panzoom.PointerEvent{
				Position: pos, Buttons: buttons(ev.Buttons), Time: now,
			})
			return
		}
		v.engine.StartPan(panzoom.PointerEvent{
			Position: pos, Buttons: buttons(ev.Buttons), Time: now,
		})

	case pointer.Drag:
		if ev.Source == pointer.Touch {
			v.touchMove(ev.PointerID, pos, now)
			return
		}
		v.engine.Pan(panzoom.PointerEvent{Position: pos, Time: now})

	case pointer.Release, pointer.Cancel:
		if ev.Source == pointer.Touch {
			v.touchUp(ev.PointerID, now)
			return
		}
		v.engine.StopPan(now)

	case pointer.Scroll:
		v.engine.ApplyWheel(panzoom.WheelEvent{
			Position: pos,
			DeltaY:   float64(ev.Scroll.Y),
			Ctrl:     ev.Modifiers.Contain(key.ModCtrl),
			Time:     now,
		})
	}
}

func (v *Viewport) touchDown(id pointer.ID, pos panzoom.Point, now time.Time) {
	if _, ok := v.touches[id]; !ok {
		v.touchOrder = append(v.touchOrder, id)
	}
	v.touches[id] = pos
	switch len(v.touchOrder) {
	case 1:
		v.engine.StartPan(panzoom.PointerEvent{
			Position: pos, Buttons: panzoom.ButtonPrimary, Time: now,
		})
	case 2:
		a, b := v.firstTwo()
		v.pinching = true
		v.engine.StartPinch(panzoom.PinchEvent{A: a, B: b, Time: now})
	}
}

func (v *Viewport) touchMove(id pointer.ID, pos panzoom.Point, now time.Time) {
	if _, ok := v.touches[id]; !ok {
		return
	}
	v.touches[id] = pos
	if v.pinching {
		a, b := v.firstTwo()
		v.engine.Pinch(panzoom.PinchEvent{A: a, B: b, Time: now})
		return
	}
	v.engine.Pan(panzoom.PointerEvent{Position: pos, Time: now})
}

func (v *Viewport) touchUp(id pointer.ID, now time.Time) {
	if _, ok := v.touches[id]; !ok {
		return
	}
	delete(v.touches, id)
	for i, t := range v.touchOrder {
		if t == id {
			v.touchOrder = append(v.touchOrder[:i], v.touchOrder[i+1:]...)
			break
		}
	}
	if v.pinching && len(v.touchOrder) < 2 {
		v.pinching = false
		v.engine.StopPinch(now)
		// The surviving finger keeps panning without a re-press.
		if len(v.touchOrder) == 1 {
			v.engine.StartPan(panzoom.PointerEvent{
				Position: v.touches[v.touchOrder[0]],
				Buttons:  panzoom.ButtonPrimary,
				Time:     now,
			})
		}
		return
	}
	if len(v.touchOrder) == 0 && v.engine.IsPanning() {
		v.engine.StopPan(now)
	}
}

// isDoubleClick reports whether this press completes a double click, and
// otherwise records it as a potential first click.
func (v *Viewport) isDoubleClick(pos panzoom.Point, now time.Time) bool {
	if !v.lastClickAt.IsZero() &&
		now.Sub(v.lastClickAt) <= doubleClickWindow &&
		pos.Distance(v.lastClickPos) <= doubleClickSlop {
		v.lastClickAt = time.Time{}
		return true
	}
	v.lastClickAt = now
	v.lastClickPos = pos
	return false
}

// syncModifiers mirrors keyboard modifiers into the engine key state, so
// activation-key gates see them without a separate key event stream.
func (v *Viewport) syncModifiers(mods key.Modifiers) {
	if mods == v.mods {
		return
	}
	sync := func(m key.Modifiers, name string) {
		switch {
		case mods.Contain(m) && !v.mods.Contain(m):
			v.engine.KeyDown(name)
		case !mods.Contain(m) && v.mods.Contain(m):
			v.engine.KeyUp(name)
		}
	}
	sync(key.ModCtrl, "Control")
	sync(key.ModShift, "Shift")
	sync(key.ModAlt, "Alt")
	v.mods = mods
}

// buttons maps Gio pointer buttons onto the engine's button set.
func buttons(b pointer.Buttons) panzoom.Buttons {
	var out panzoom.Buttons
	if b.Contain(pointer.ButtonPrimary) {
		out |= panzoom.ButtonPrimary
	}
	if b.Contain(pointer.ButtonSecondary) {
		out |= panzoom.ButtonSecondary
	}
	if b.Contain(pointer.ButtonTertiary) {
		out |= panzoom.ButtonTertiary
	}
	return out
}

// affine converts the engine transform into the Gio op transform:
// scale about the origin, then translate.
func affine(t panzoom.Transform) f32.Affine2D {
	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(float32(t.Scale), float32(t.Scale))).
		Offset(f32.Pt(float32(t.PositionX), float32(t.PositionY)))
}

func (v *Viewport) firstTwo() (a, b panzoom.Point) {
	return v.touches[v.touchOrder[0]], v.touches[v.touchOrder[1]]
}
