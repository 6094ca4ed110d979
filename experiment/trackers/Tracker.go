// Package trackers provides trackers, which track and save data
// generated when an experiment is run.
//
// Trackers receive every timestep an environment produces through
// their Track method, cache whatever data they are interested in, and
// write it to disk when Save is called, usually after the experiment
// has finished.
package trackers

import ts "github.com/samuelfneumann/gonav/timestep"

// Tracker tracks data generated during an experiment and saves it to
// disk
type Tracker interface {
	// Track caches the data of interest in a timestep
	Track(t ts.TimeStep)

	// Save writes all cached data to disk
	Save() error
}
