package panzoom

// Transform describes the current 2D view: a uniform scale followed by a
// translation in screen pixels. A content point c appears on screen at
// c*Scale + (PositionX, PositionY).
//
// Transform values are immutable snapshots. Only the Engine mutates the
// live transform; hosts read it via [Engine.State] or the callbacks.
type Transform struct {
	Scale     float64
	PositionX float64
	PositionY float64
}

// Matrix returns the affine matrix equivalent of the transform,
// suitable for composing with a host's own transform stack.
func (t Transform) Matrix() Matrix {
	return Translation(t.PositionX, t.PositionY).Multiply(Scaling(t.Scale))
}

// Apply maps a content-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.PositionX,
		Y: p.Y*t.Scale + t.PositionY,
	}
}

// Position returns the translation component as a Point.
func (t Transform) Position() Point {
	return Point{X: t.PositionX, Y: t.PositionY}
}

// withPosition returns a copy of t with the given translation.
func (t Transform) withPosition(p Point) Transform {
	t.PositionX = p.X
	t.PositionY = p.Y
	return t
}

// zoomedAt returns t rescaled to newScale with the screen point anchor
// kept visually stationary:
//
//	newPos = anchor - (anchor - oldPos) * newScale/oldScale
//
// The caller must pass the already-clamped scale; anchoring with an
// unclamped scale and clamping afterwards makes the view jump.
func (t Transform) zoomedAt(newScale float64, anchor Point) Transform {
	if t.Scale == 0 {
		return Transform{Scale: newScale, PositionX: t.PositionX, PositionY: t.PositionY}
	}
	ratio := newScale / t.Scale
	return Transform{
		Scale:     newScale,
		PositionX: anchor.X - (anchor.X-t.PositionX)*ratio,
		PositionY: anchor.Y - (anchor.Y-t.PositionY)*ratio,
	}
}

// lerpTransform interpolates every field between a and b.
// t=0 returns a, t=1 returns b.
func lerpTransform(a, b Transform, t float64) Transform {
	pos := a.Position().Lerp(b.Position(), t)
	return Transform{
		Scale:     lerp(a.Scale, b.Scale, t),
		PositionX: pos.X,
		PositionY: pos.Y,
	}
}
