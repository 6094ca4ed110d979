// Package agent provides action-selection policies for driving
// environments
package agent

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/gonav/timestep"
)

// Policy represents a policy that an agent can follow.
//
// Policies determine how agents select actions. This package provides
// non-learning policies only: random exploration, a hand-coded
// heuristic, and manual keyboard-style control. Learning policies plug
// into the same interface from the outside.
type Policy interface {
	SelectAction(t ts.TimeStep) *mat.VecDense
}
