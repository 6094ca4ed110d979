package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/gonav/timestep"
)

// Return tracks and saves the episodic return in an experiment. Each
// timestep's reward is accumulated, and when the last timestep of an
// episode is tracked, the episode's total is cached for saving.
//
// An episode must finish for its return to be saved: if the last
// episode of an experiment is cut off, its partial return is dropped.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new Return tracker which saves its
// data at filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track accumulates the reward seen on a timestep, caching the
// episodic return whenever an episode ends
func (r *Return) Track(step ts.TimeStep) {
	r.currentReturn += step.Reward

	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Returns returns the episodic returns cached so far
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return tracker to disk
func (r *Return) Save() error {
	file, err := os.Create(r.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(r.episodeReturns); err != nil {
		return fmt.Errorf("save: could not encode return data: %v", err)
	}
	return nil
}
