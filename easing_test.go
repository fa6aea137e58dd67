package panzoom

import "testing"

func TestEasingEndpoints(t *testing.T) {
	easings := []struct {
		name string
		fn   EasingFunc
	}{
		{EasingLinear, Linear},
		{EasingEaseOut, EaseOutQuad},
		{EasingEaseInOut, EaseInOutQuad},
		{EasingEaseOutCubic, EaseOutCubic},
		{EasingEaseInOutCubic, EaseInOutCubic},
	}
	for _, e := range easings {
		t.Run(e.name, func(t *testing.T) {
			if got := e.fn(0); !near(got, 0) {
				t.Errorf("f(0) = %g, want 0", got)
			}
			if got := e.fn(1); !near(got, 1) {
				t.Errorf("f(1) = %g, want 1", got)
			}
		})
	}
}

func TestEasingMonotonic(t *testing.T) {
	easings := []struct {
		name string
		fn   EasingFunc
	}{
		{EasingLinear, Linear},
		{EasingEaseOut, EaseOutQuad},
		{EasingEaseInOut, EaseInOutQuad},
		{EasingEaseOutCubic, EaseOutCubic},
		{EasingEaseInOutCubic, EaseInOutCubic},
	}
	for _, e := range easings {
		t.Run(e.name, func(t *testing.T) {
			prev := e.fn(0)
			for i := 1; i <= 100; i++ {
				cur := e.fn(float64(i) / 100)
				if cur < prev-eps {
					t.Fatalf("not monotonic at t=%g: %g < %g", float64(i)/100, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name string
		at   float64
		want float64
	}{
		{EasingLinear, 0.25, 0.25},
		{EasingEaseOut, 0.5, 0.75},
		{"unknown falls back to easeOut", 0.5, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := easingByName(tt.name)
			if got := fn(tt.at); !near(got, tt.want) {
				t.Errorf("%s(%g) = %g, want %g", tt.name, tt.at, got, tt.want)
			}
		})
	}
}
