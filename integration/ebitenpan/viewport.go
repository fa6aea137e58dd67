// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenpan

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/panzoom"
)

// Double clicks are derived from polled presses; two presses this close
// in time and space count as one double click.
const (
	doubleClickWindow = 300 * time.Millisecond
	doubleClickSlop   = 8.0
)

// inputReader is the slice of Ebitengine input state the viewport polls.
// The indirection exists so tests can drive the viewport without a
// running game loop.
type inputReader interface {
	CursorPosition() (int, int)
	MouseButtonPressed(ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
	TouchIDs() []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
	KeyPressed(ebiten.Key) bool
}

// ebitenInput reads from the live Ebitengine input state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int)                  { return ebiten.CursorPosition() }
func (ebitenInput) MouseButtonPressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (ebitenInput) Wheel() (float64, float64)                   { return ebiten.Wheel() }
func (ebitenInput) TouchIDs() []ebiten.TouchID                  { return ebiten.AppendTouchIDs(nil) }
func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int)  { return ebiten.TouchPosition(id) }
func (ebitenInput) KeyPressed(k ebiten.Key) bool                { return ebiten.IsKeyPressed(k) }

// Viewport pans and zooms an image inside an Ebitengine game. It owns a
// panzoom.Engine and turns polled input into engine gestures.
//
// Viewport is NOT safe for concurrent use.
type Viewport struct {
	engine *panzoom.Engine
	input  inputReader
	now    func() time.Time

	// Previous-tick input state, for transition detection.
	mouseDown    bool
	pinching     bool
	touchPanning bool

	lastClickAt  time.Time
	lastClickPos panzoom.Point
}

// New creates a Viewport with its own engine, configured by opts. The
// engine ignores gestures until Attach provides the measurements.
func New(opts ...panzoom.Option) *Viewport {
	return &Viewport{
		engine: panzoom.New(opts...),
		input:  ebitenInput{},
		now:    time.Now,
	}
}

// Engine returns the underlying engine for imperative control
// (ZoomTo, Reset, CenterView) and state queries.
func (v *Viewport) Engine() *panzoom.Engine { return v.engine }

// Transform returns the current view transform.
func (v *Viewport) Transform() panzoom.Transform { return v.engine.State() }

// Attach registers the screen area and content size, both in pixels.
func (v *Viewport) Attach(screen, content image.Point) error {
	return v.engine.Attach(
		panzoom.Size{Width: float64(screen.X), Height: float64(screen.Y)},
		panzoom.Size{Width: float64(content.X), Height: float64(content.Y)},
	)
}

// SetScreenSize updates the screen measurement after a window resize.
func (v *Viewport) SetScreenSize(screen image.Point) {
	v.engine.SetWrapperSize(panzoom.Size{Width: float64(screen.X), Height: float64(screen.Y)})
}

// Update polls the input state once, feeds gesture transitions to the
// engine, and advances animations. Call it from the game's Update.
// Reports whether the transform changed since the previous tick.
func (v *Viewport) Update() bool {
	now := v.now()
	v.syncKeys()
	v.pollWheel(now)

	touches := v.input.TouchIDs()
	if len(touches) > 0 {
		v.pollTouches(touches, now)
	} else {
		v.endTouches(now)
		v.pollMouse(now)
	}
	return v.engine.Update(now)
}

// GeoM returns the transform as an Ebitengine geometry matrix: scale
// about the origin, then translate.
func (v *Viewport) GeoM() ebiten.GeoM {
	t := v.engine.State()
	var g ebiten.GeoM
	g.Scale(t.Scale, t.Scale)
	g.Translate(t.PositionX, t.PositionY)
	return g
}

// Draw renders img to screen under the current transform.
func (v *Viewport) Draw(screen, img *ebiten.Image) {
	op := &ebiten.DrawImageOptions{GeoM: v.GeoM()}
	screen.DrawImage(img, op)
}

// syncKeys mirrors the modifier keys into the engine key state for the
// activation-key gates.
func (v *Viewport) syncKeys() {
	keys := []struct {
		key  ebiten.Key
		name string
	}{
		{ebiten.KeyControl, "Control"},
		{ebiten.KeyShift, "Shift"},
		{ebiten.KeyAlt, "Alt"},
	}
	for _, k := range keys {
		if v.input.KeyPressed(k.key) {
			v.engine.KeyDown(k.name)
		} else {
			v.engine.KeyUp(k.name)
		}
	}
}

func (v *Viewport) pollWheel(now time.Time) {
	_, yoff := v.input.Wheel()
	if yoff == 0 {
		return
	}
	mx, my := v.input.CursorPosition()
	// Ebitengine reports scroll-up as positive; the engine treats negative
	// delta as zoom in.
	v.engine.ApplyWheel(panzoom.WheelEvent{
		Position: panzoom.Pt(float64(mx), float64(my)),
		DeltaY:   -yoff,
		Ctrl:     v.input.KeyPressed(ebiten.KeyControl),
		Time:     now,
	})
}

func (v *Viewport) pollMouse(now time.Time) {
	down := v.input.MouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := v.input.CursorPosition()
	pos := panzoom.Pt(float64(mx), float64(my))

	switch {
	case down && !v.mouseDown:
		if v.isDoubleClick(pos, now) {
			v.engine.DoubleClick(panzoom.PointerEvent{
				Position: pos, Buttons: panzoom.ButtonPrimary, Time: now,
			})
		} else {
			v.engine.StartPan(panzoom.PointerEvent{
				Position: pos, Buttons: panzoom.ButtonPrimary, Time: now,
			})
		}
	case down && v.mouseDown:
		v.engine.Pan(panzoom.PointerEvent{Position: pos, Time: now})
	case !down && v.mouseDown:
		v.engine.StopPan(now)
	}
	v.mouseDown = down
}

func (v *Viewport) pollTouches(ids []ebiten.TouchID, now time.Time) {
	if len(ids) >= 2 {
		a := v.touchPoint(ids[0])
		b := v.touchPoint(ids[1])
		if !v.pinching {
			v.pinching = true
			v.touchPanning = false
			v.engine.StartPinch(panzoom.PinchEvent{A: a, B: b, Time: now})
			return
		}
		v.engine.Pinch(panzoom.PinchEvent{A: a, B: b, Time: now})
		return
	}

	// One finger left.
	if v.pinching {
		v.pinching = false
		v.engine.StopPinch(now)
	}
	pos := v.touchPoint(ids[0])
	if !v.touchPanning {
		v.touchPanning = true
		v.engine.StartPan(panzoom.PointerEvent{
			Position: pos, Buttons: panzoom.ButtonPrimary, Time: now,
		})
		return
	}
	v.engine.Pan(panzoom.PointerEvent{Position: pos, Time: now})
}

func (v *Viewport) endTouches(now time.Time) {
	if v.pinching {
		v.pinching = false
		v.engine.StopPinch(now)
	}
	if v.touchPanning {
		v.touchPanning = false
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

func (v *Viewport) touchPoint(id ebiten.TouchID) panzoom.Point {
	x, y := v.input.TouchPosition(id)
	return panzoom.Pt(float64(x), float64(y))
}
