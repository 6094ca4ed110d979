// Package experiment implements functionality for running an
// experiment: a policy acting on an environment for some number of
// timesteps while trackers record the data generated.
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gonav/agent"
	env "github.com/samuelfneumann/gonav/environment"
	"github.com/samuelfneumann/gonav/experiment/trackers"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// Online runs a policy on an environment online, with no offline
// evaluation. Every timestep the environment produces is sent to each
// registered tracker.
type Online struct {
	environment  env.Environment
	policy       agent.Policy
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
}

// NewOnline creates and returns a new online experiment running policy
// p on environment e. The steps parameter determines the total number
// of timesteps across all episodes, and t determines which data is
// tracked.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		environment: e,
		policy:      p,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning
// whether the experiment's total step limit has been reached
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset "+
			"environment: %v", err)
	}
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		action := o.policy.SelectAction(step)
		step, _, err = o.environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: could not step "+
				"environment: %v", err)
		}

		o.track(step)
	}

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for {
		ended, err := o.RunEpisode()
		if err != nil {
			return err
		}
		if ended {
			return nil
		}
	}
}

// Save saves all the data cached by the trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track sends the current timestep to each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
