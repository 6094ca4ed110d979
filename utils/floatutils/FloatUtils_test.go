package floatutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
		{0.0, 0.0, 1.0, 0.0},
		{1.0, 0.0, 1.0, 1.0},
		{-3.0, -2.0, 2.0, -2.0},
	}

	for _, test := range tests {
		got := Clip(test.value, test.min, test.max)
		if got != test.want {
			t.Errorf("Clip(%v, %v, %v): expected %v, got %v", test.value,
				test.min, test.max, test.want, got)
		}
	}
}

func TestClipInterval(t *testing.T) {
	interval := r1.Interval{Min: -1.0, Max: 1.0}

	if got := ClipInterval(2.0, interval); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
	if got := ClipInterval(-2.0, interval); got != -1.0 {
		t.Errorf("expected -1.0, got %v", got)
	}
	if got := ClipInterval(0.25, interval); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{90.0, 0.0, 360.0, 90.0},
		{360.0, 0.0, 360.0, 0.0},
		{365.0, 0.0, 360.0, 5.0},
		{-10.0, 0.0, 360.0, 350.0},
		{-370.0, 0.0, 360.0, 350.0},
		{725.0, 0.0, 360.0, 5.0},
		{0.0, 0.0, 360.0, 0.0},
		{-math.Pi, -math.Pi, math.Pi, -math.Pi},
		{math.Pi, -math.Pi, math.Pi, -math.Pi},
	}

	for _, test := range tests {
		got := Wrap(test.value, test.min, test.max)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("Wrap(%v, %v, %v): expected %v, got %v", test.value,
				test.min, test.max, test.want, got)
		}
	}
}

// TestWrapHalfOpen checks that Wrap never returns max, even for values
// a rounding error below the interval, where adding the width rounds
// to exactly the width
func TestWrapHalfOpen(t *testing.T) {
	values := []float64{
		-1e-16,
		math.Nextafter(0.0, math.Inf(-1)),
		math.Nextafter(360.0, math.Inf(-1)),
		math.Nextafter(-360.0, math.Inf(-1)),
		360.0,
	}

	for _, value := range values {
		got := Wrap(value, 0.0, 360.0)
		if got < 0.0 || got >= 360.0 {
			t.Errorf("Wrap(%v, 0, 360) = %v outside [0, 360)", value, got)
		}
	}
}

func TestMinMax(t *testing.T) {
	floats := []float64{3.0, -1.5, 2.0, -1.5, 7.25}

	if got := Min(floats...); got != -1.5 {
		t.Errorf("Min: expected -1.5, got %v", got)
	}
	if got := Max(floats...); got != 7.25 {
		t.Errorf("Max: expected 7.25, got %v", got)
	}

	if got := Min(4.0); got != 4.0 {
		t.Errorf("Min of one element: expected 4.0, got %v", got)
	}
	if got := Max(4.0); got != 4.0 {
		t.Errorf("Max of one element: expected 4.0, got %v", got)
	}
}
