// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max.
// If min exceeds the floating point, then the function returns the min.
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// Wrap wraps value into the half-open interval [min, max) so that
// Wrap(max, min, max) == min. Values already within the interval are
// returned unchanged.
func Wrap(value, min, max float64) float64 {
	width := max - min
	wrapped := math.Mod(value-min, width)
	if wrapped < 0 {
		wrapped += width
	}
	// For tiny negative values the fixup above can round to exactly
	// width, which lies outside the half-open interval
	if wrapped >= width {
		wrapped -= width
	}
	return wrapped + min
}

// Min calculates and returns the minimum float64 in a list
func Min(floats ...float64) float64 {
	min := floats[0]
	for _, val := range floats {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}
