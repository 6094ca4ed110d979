package planenav

import (
	"math"
	"testing"
)

const tolerance float64 = 1e-12

// TestObserveLayout checks the fixed layout and normalization of the
// observation vector
func TestObserveLayout(t *testing.T) {
	pose := Pose{X: -2.5, Z: 1.0, Heading: 90.0}
	goal := Point{X: 3.0, Z: -4.0}

	obs := Observe(pose, goal)

	if obs.Len() != ObservationDims {
		t.Fatalf("expected %v observation features, got %v",
			ObservationDims, obs.Len())
	}

	expected := []float64{
		3.0 / PositionScale,
		-4.0 / PositionScale,
		-2.5 / PositionScale,
		1.0 / PositionScale,
		90.0/360.0*2.0 - 1.0,
	}
	for i, want := range expected {
		if math.Abs(obs.AtVec(i)-want) > tolerance {
			t.Errorf("feature %v: expected %v, got %v", i, want,
				obs.AtVec(i))
		}
	}
}

// TestObserveHeadingBounds checks that the encoded heading stays in
// [-1, 1) for all headings, including unwrapped ones
func TestObserveHeadingBounds(t *testing.T) {
	for heading := -720.0; heading <= 720.0; heading += 0.5 {
		obs := Observe(Pose{Heading: heading}, Point{})
		encoded := obs.AtVec(4)

		if encoded < -1.0 || encoded >= 1.0 {
			t.Errorf("heading %v: encoded value %v outside [-1, 1)",
				heading, encoded)
		}
	}

	// Headings a rounding error below a wrap boundary can wrap to
	// exactly 360° and encode as 1
	edges := []float64{
		-1e-16,
		math.Nextafter(0.0, math.Inf(-1)),
		math.Nextafter(-360.0, math.Inf(-1)),
		math.Nextafter(360.0, math.Inf(-1)),
	}
	for _, heading := range edges {
		encoded := Observe(Pose{Heading: heading}, Point{}).AtVec(4)
		if encoded < -1.0 || encoded >= 1.0 {
			t.Errorf("heading %v: encoded value %v outside [-1, 1)",
				heading, encoded)
		}
	}
}

// TestObserveHeadingWrap checks that 0° and 360° encode identically
func TestObserveHeadingWrap(t *testing.T) {
	zero := Observe(Pose{Heading: 0.0}, Point{}).AtVec(4)
	full := Observe(Pose{Heading: 360.0}, Point{}).AtVec(4)

	if zero != full {
		t.Errorf("0° encoded as %v but 360° encoded as %v", zero, full)
	}
	if zero != -1.0 {
		t.Errorf("0° should encode to -1, got %v", zero)
	}
}
