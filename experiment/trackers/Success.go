package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/gonav/timestep"
)

// Success tracks and saves whether each episode in an experiment ended
// by reaching a terminal state, rather than by timing out at the step
// limit
type Success struct {
	successes []bool
	filename  string
}

// NewSuccess returns a new Success tracker which saves its data at
// filename
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track caches the episode outcome whenever the tracked timestep is
// the last in its episode
func (s *Success) Track(t ts.TimeStep) {
	if t.Last() {
		s.successes = append(s.successes, t.EndType == ts.TerminalStateReached)
	}
}

// Successes returns the episode outcomes cached so far
func (s *Success) Successes() []bool {
	return s.successes
}

// Rate returns the fraction of cached episodes that succeeded
func (s *Success) Rate() float64 {
	if len(s.successes) == 0 {
		return 0.0
	}

	succeeded := 0
	for _, success := range s.successes {
		if success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(s.successes))
}

// Save saves the data tracked by the Success tracker to disk
func (s *Success) Save() error {
	file, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(s.successes); err != nil {
		return fmt.Errorf("save: could not encode success data: %v", err)
	}
	return nil
}
