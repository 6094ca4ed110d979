package planenav

import "gonum.org/v1/gonum/mat"

// Observe encodes an agent pose and a goal position as the fixed
// 5-element observation vector consumed by policies:
//
//	[goal x, goal z, agent x, agent z, heading]
//
// Positions are divided by PositionScale, normalizing the arena to
// roughly [-1, 1]. The heading is wrapped into [0°, 360°) and mapped
// linearly onto [-1, 1), so that 0° and 360° encode identically.
//
// The length and order of this vector are part of the external
// contract with the policy; changing either is a breaking change.
func Observe(p Pose, g Point) *mat.VecDense {
	heading := wrapHeading(p.Heading)

	return mat.NewVecDense(ObservationDims, []float64{
		g.X / PositionScale,
		g.Z / PositionScale,
		p.X / PositionScale,
		p.Z / PositionScale,
		heading/360.0*2.0 - 1.0,
	})
}
