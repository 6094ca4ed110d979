package planenav

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RadialStarter samples episode start states. The agent is always
// reset to a fixed origin with zero heading, and the goal is placed at
// a distance drawn uniformly from [minDistance, maxDistance) along a
// direction drawn uniformly from the full circle.
//
// RadialStarter implements the environment.Starter interface. Start
// states use the raw state layout of stateVec.
type RadialStarter struct {
	origin   Point
	distance distuv.Uniform
	angle    distuv.Uniform
}

// NewRadialStarter returns a new RadialStarter placing goals within
// [minDistance, maxDistance) of origin
func NewRadialStarter(origin Point, minDistance, maxDistance float64,
	seed uint64) (*RadialStarter, error) {
	if minDistance <= 0 {
		return nil, fmt.Errorf("newRadialStarter: minDistance must be "+
			"positive, got %v", minDistance)
	}
	if maxDistance < minDistance {
		return nil, fmt.Errorf("newRadialStarter: maxDistance (%v) < "+
			"minDistance (%v)", maxDistance, minDistance)
	}

	src := rand.NewSource(seed)
	return &RadialStarter{
		origin:   origin,
		distance: distuv.Uniform{Min: minDistance, Max: maxDistance, Src: src},
		angle:    distuv.Uniform{Min: 0.0, Max: 360.0, Src: src},
	}, nil
}

// Start samples and returns a new start state
func (r *RadialStarter) Start() *mat.VecDense {
	d := r.distance.Rand()
	radians := r.angle.Rand() * math.Pi / 180.0

	goal := Point{
		X: r.origin.X + d*math.Sin(radians),
		Z: r.origin.Z + d*math.Cos(radians),
	}
	pose := Pose{X: r.origin.X, Z: r.origin.Z, Heading: 0.0}

	return stateVec(pose, goal)
}
