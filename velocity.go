package panzoom

import "time"

// velocityWindow is how far back samples contribute to the release
// velocity. Older samples describe motion the user has already revised.
const velocityWindow = 100 * time.Millisecond

// maxVelocitySamples bounds the ring buffer. At typical pointer event
// rates (~125 Hz) this comfortably covers the window.
const maxVelocitySamples = 16

type velocitySample struct {
	pos Point
	at  time.Time
}

// velocityTracker records recent timestamped pointer positions and turns
// them into a release velocity in pixels per millisecond. It is a plain
// value owned by the Engine; Reset reuses the backing array.
type velocityTracker struct {
	samples [maxVelocitySamples]velocitySample
	head    int // next write index
	count   int
}

// Reset discards all samples.
func (vt *velocityTracker) Reset() {
	vt.head = 0
	vt.count = 0
}

// Add records a position sample.
func (vt *velocityTracker) Add(p Point, at time.Time) {
	vt.samples[vt.head] = velocitySample{pos: p, at: at}
	vt.head = (vt.head + 1) % maxVelocitySamples
	if vt.count < maxVelocitySamples {
		vt.count++
	}
}

// Velocity returns the average velocity in px/ms over the samples inside
// the window ending at the newest sample. With fewer than two usable
// samples the velocity is zero.
func (vt *velocityTracker) Velocity() Point {
	if vt.count < 2 {
		return Point{}
	}
	newest := vt.samples[(vt.head-1+maxVelocitySamples)%maxVelocitySamples]

	// Walk backwards to the oldest sample still inside the window.
	oldest := newest
	for i := 2; i <= vt.count; i++ {
		s := vt.samples[(vt.head-i+maxVelocitySamples)%maxVelocitySamples]
		if newest.at.Sub(s.at) > velocityWindow {
			break
		}
		oldest = s
	}

	dt := newest.at.Sub(oldest.at)
	if dt <= 0 {
		return Point{}
	}
	ms := float64(dt) / float64(time.Millisecond)
	return Point{
		X: (newest.pos.X - oldest.pos.X) / ms,
		Y: (newest.pos.Y - oldest.pos.Y) / ms,
	}
}
