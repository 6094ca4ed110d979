package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/gonav/timestep"
)

// Random selects discrete actions uniformly at random
type Random struct {
	rng        *rand.Rand
	numActions int
}

// NewRandom returns a new Random policy over numActions discrete
// actions
func NewRandom(numActions int, seed uint64) (*Random, error) {
	if numActions <= 0 {
		return nil, fmt.Errorf("newRandom: numActions must be positive, "+
			"got %v", numActions)
	}

	return &Random{
		rng:        rand.New(rand.NewSource(seed)),
		numActions: numActions,
	}, nil
}

// SelectAction returns a uniformly random action
func (r *Random) SelectAction(_ ts.TimeStep) *mat.VecDense {
	action := float64(r.rng.Intn(r.numActions))
	return mat.NewVecDense(1, []float64{action})
}
