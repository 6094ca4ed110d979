package planenav

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gonav/utils/floatutils"
)

// Pose is the planar pose of the agent: a position on the (x, z) plane
// and a heading in degrees in [0, 360). A heading of 0° faces the
// positive z axis, and headings increase clockwise towards the
// positive x axis.
type Pose struct {
	X, Z    float64
	Heading float64
}

// Point is a position on the (x, z) plane
type Point struct {
	X, Z float64
}

// wrapHeading wraps an angle in degrees into [0, 360), so that 0° and
// 360° denote the same heading
func wrapHeading(degrees float64) float64 {
	return floatutils.Wrap(degrees, 0.0, 360.0)
}

// stateVec packs the full environment state into the fixed layout
// [goal x, goal z, agent x, agent z, agent heading]. The heading is
// stored in degrees, unnormalized.
func stateVec(p Pose, g Point) *mat.VecDense {
	return mat.NewVecDense(ObservationDims, []float64{
		g.X,
		g.Z,
		p.X,
		p.Z,
		p.Heading,
	})
}

// splitState unpacks a raw state vector produced by stateVec or by a
// Starter into an agent pose and a goal position
func splitState(state mat.Vector) (Pose, Point) {
	goal := Point{X: state.AtVec(0), Z: state.AtVec(1)}
	pose := Pose{
		X:       state.AtVec(2),
		Z:       state.AtVec(3),
		Heading: wrapHeading(state.AtVec(4)),
	}
	return pose, goal
}
