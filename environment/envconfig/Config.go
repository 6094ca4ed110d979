// Package envconfig provides configuration structs for configuring
// environments with default physical parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/gonav/environment"
	"github.com/samuelfneumann/gonav/environment/planenav"
	"github.com/samuelfneumann/gonav/environment/planenav/collider"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// TaskName stores the tasks that can be configured with this package
type TaskName string

// Tasks available for configuration
const (
	Reach TaskName = "Reach"
)

// Config implements a specific configuration of the planar navigation
// environment. All fields have working defaults, provided by
// DefaultConfig, and can be overridden individually.
type Config struct {
	Task          TaskName
	EpisodeCutoff uint // maximum steps per episode
	Discount      float64

	MoveSpeed     float64 // units per second
	RotationSpeed float64 // degrees per second
	TickDuration  float64 // seconds of simulated time per step

	MinGoalDistance float64
	MaxGoalDistance float64
	GoalRadius      float64

	// Physics attaches the Box2D contact detector. Without it, goal
	// contact is synthesized geometrically and no obstacle contact is
	// ever reported.
	Physics bool
}

// DefaultConfig returns the default environment configuration
func DefaultConfig() Config {
	return Config{
		Task:            Reach,
		EpisodeCutoff:   500,
		Discount:        0.99,
		MoveSpeed:       planenav.MoveSpeed,
		RotationSpeed:   planenav.RotationSpeed,
		TickDuration:    planenav.TickDuration,
		MinGoalDistance: planenav.MinGoalDistance,
		MaxGoalDistance: planenav.MaxGoalDistance,
		GoalRadius:      planenav.GoalRadius,
		Physics:         true,
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create(seed uint64) (*planenav.PlaneNav, ts.TimeStep, error) {
	if c.Task != Reach {
		return nil, ts.TimeStep{}, fmt.Errorf("create: no such task %v",
			c.Task)
	}

	starter, err := planenav.NewRadialStarter(planenav.Point{},
		c.MinGoalDistance, c.MaxGoalDistance, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	var task env.Task
	task, err = planenav.NewReach(starter, int(c.EpisodeCutoff), c.GoalRadius)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	params := planenav.Params{
		MoveSpeed:     c.MoveSpeed,
		RotationSpeed: c.RotationSpeed,
		TickDuration:  c.TickDuration,
	}

	environment, step, err := planenav.New(task, params, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	if c.Physics {
		detector := collider.New(environment, planenav.ArenaExtent,
			planenav.AgentRadius, c.GoalRadius)
		environment.AttachDetector(detector)
	}

	return environment, step, nil
}
