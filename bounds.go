package panzoom

// Size holds the measured dimensions of a wrapper or content element
// in unscaled pixels.
type Size struct {
	Width, Height float64
}

// valid reports whether both dimensions are positive.
func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Bounds is the allowed range of transform positions for a given scale.
// The range is always normalized: MinX <= MaxX and MinY <= MaxY, even for
// degenerate geometry such as content smaller than the wrapper.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp limits a position to the bounds.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.MinX, b.MaxX),
		Y: clamp(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether the position lies within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// computeBounds derives the pan range from the wrapper size, the content
// size, and the current scale.
//
// When the scaled content is larger than the wrapper along an axis, the
// range keeps the wrapper fully covered: position in [wrapper-scaled, 0].
//
// When the scaled content is smaller than the wrapper, the behavior
// depends on limitToWrapper:
//   - false: the content is pinned centered, a zero-width range at the
//     centering offset;
//   - true: the content may move anywhere inside the wrapper,
//     position in [0, wrapper-scaled].
//
// Bounds must be recomputed before clamping whenever scale or either size
// changes; clamping against bounds computed for a previous scale produces
// visible jumps.
func computeBounds(wrapper, content Size, scale float64, limitToWrapper bool) Bounds {
	minX, maxX := boundsAxis(wrapper.Width, content.Width*scale, limitToWrapper)
	minY, maxY := boundsAxis(wrapper.Height, content.Height*scale, limitToWrapper)
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// boundsAxis computes the position range for one axis.
func boundsAxis(wrapper, scaled float64, limitToWrapper bool) (min, max float64) {
	diff := wrapper - scaled
	if diff < 0 {
		// Content overflows the wrapper: slide between flush-right and
		// flush-left, wrapper always covered.
		return diff, 0
	}
	if limitToWrapper {
		// Content fits: anywhere inside the wrapper.
		return 0, diff
	}
	// Content fits but must stay put: centered.
	return diff / 2, diff / 2
}
