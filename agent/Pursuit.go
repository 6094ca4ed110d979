package agent

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gonav/environment/planenav"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// Pursuit is a hand-coded policy for the planenav environment that
// rotates towards the goal and drives forward once roughly facing it.
// It decodes the fixed planenav observation layout and serves as a
// deterministic baseline and test driver.
type Pursuit struct {
	// tolerance is the heading error, in degrees, below which the
	// policy drives forward instead of turning
	tolerance float64
}

// NewPursuit returns a new Pursuit policy. Non-positive tolerances are
// replaced with a default of 10°.
func NewPursuit(tolerance float64) *Pursuit {
	if tolerance <= 0 {
		tolerance = 10.0
	}
	return &Pursuit{tolerance: tolerance}
}

// SelectAction chooses the action that most reduces the agent's
// heading error towards the goal
func (p *Pursuit) SelectAction(t ts.TimeStep) *mat.VecDense {
	obs := t.Observation

	goalX := obs.AtVec(0) * planenav.PositionScale
	goalZ := obs.AtVec(1) * planenav.PositionScale
	agentX := obs.AtVec(2) * planenav.PositionScale
	agentZ := obs.AtVec(3) * planenav.PositionScale
	heading := (obs.AtVec(4) + 1.0) / 2.0 * 360.0

	// Heading 0° faces +z and increases clockwise towards +x
	desired := math.Atan2(goalX-agentX, goalZ-agentZ) * 180.0 / math.Pi

	// Signed heading error in (-180, 180]
	err := math.Mod(desired-heading, 360.0)
	if err > 180.0 {
		err -= 360.0
	} else if err <= -180.0 {
		err += 360.0
	}

	action := planenav.Forward
	if err < -p.tolerance {
		action = planenav.TurnLeft
	} else if err > p.tolerance {
		action = planenav.TurnRight
	}

	return mat.NewVecDense(1, []float64{float64(action)})
}
