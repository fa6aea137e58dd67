// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenpan connects a panzoom.Engine to an Ebitengine game.
//
// Ebitengine exposes input by polling rather than by event delivery, so
// Viewport samples the mouse, wheel, touch, and modifier-key state once
// per Update tick, derives gesture transitions from the differences
// against the previous tick, and feeds them to the engine. The per-frame
// flow is:
//
//	poll input -> Engine (gestures) -> Transform -> GeoM -> DrawImage
//
// # Usage
//
//	type Game struct {
//	    vp  *ebitenpan.Viewport
//	    img *ebiten.Image
//	}
//
//	func (g *Game) Update() error {
//	    g.vp.Update()
//	    return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    g.vp.Draw(screen, g.img)
//	}
//
// # Thread Safety
//
// Viewport is NOT safe for concurrent use. Call Update and Draw only
// from the game loop.
package ebitenpan
