// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/gonav/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes end. An Ender inspects each new
// timestep and, if the episode has ended, modifies the timestep so
// that its StepType is timestep.Last and its EndType records why.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme and start-state distribution for
// acting in some environment
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for taking an action in some state,
	// resulting in some next state
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state mat.Matrix) bool

	// Min and Max return the minimum and maximum attainable rewards
	// over all timesteps
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task

	// Reset resets the environment between episodes, returning the
	// first timestep of the new episode
	Reset() (ts.TimeStep, error)

	// Step takes one environmental step given an action, returning
	// the next timestep and whether it is the last in the episode
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)

	// CurrentTimeStep returns the last timestep of the environment
	CurrentTimeStep() ts.TimeStep

	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
