package agent

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gonav/environment/planenav"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// Manual selects actions from directional key state, for driving the
// planenav environment by hand. Key state may be updated from a
// separate input goroutine while the stepping loop calls SelectAction.
type Manual struct {
	mu              sync.Mutex
	up, left, right bool
}

// NewManual returns a new Manual policy with no keys held
func NewManual() *Manual {
	return &Manual{}
}

// SetKeys replaces the current key state
func (m *Manual) SetKeys(up, left, right bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.up, m.left, m.right = up, left, right
}

// SelectAction maps the current key state to an action. When several
// keys are held, up takes priority over left, and left over right;
// with no keys held, the action is a no-op.
func (m *Manual) SelectAction(_ ts.TimeStep) *mat.VecDense {
	m.mu.Lock()
	defer m.mu.Unlock()

	action := planenav.ManualAction(m.up, m.left, m.right)
	return mat.NewVecDense(1, []float64{float64(action)})
}
