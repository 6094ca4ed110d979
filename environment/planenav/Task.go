package planenav

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gonav/environment"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// planeNavTask is implemented by tasks that score contact events and
// therefore need access to the environment's per-tick contact state
type planeNavTask interface {
	environment.Task
	registerEnv(*PlaneNav)
}

// Reach implements the task of navigating to the goal region. Rewards
// come from independent additive sources:
//
//   - every step costs EpisodeTimePenalty divided by the step limit,
//     so a full unsuccessful episode always accumulates exactly
//     -EpisodeTimePenalty of time penalty
//   - contacting the goal earns GoalReward and ends the episode in
//     success
//   - the tick obstacle contact begins costs CollisionPenalty
//   - every tick obstacle contact persists costs CollisionRate times
//     the tick duration
//
// Episodes end in failure when the step limit is reached before the
// goal.
type Reach struct {
	environment.Starter
	stepLimit environment.Ender

	cutoff     int
	goalRadius float64

	env *PlaneNav
}

// NewReach creates and returns a new Reach task given a Starter, which
// determines the starting states; the maximum number of episode steps;
// and the radius of the goal region.
func NewReach(s environment.Starter, cutoff int,
	goalRadius float64) (environment.Task, error) {
	if s == nil {
		return nil, fmt.Errorf("newReach: starter cannot be nil")
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("newReach: cutoff must be positive, got %v",
			cutoff)
	}
	if goalRadius <= 0 {
		return nil, fmt.Errorf("newReach: goalRadius must be positive, "+
			"got %v", goalRadius)
	}

	return &Reach{
		Starter:    s,
		stepLimit:  environment.NewStepLimit(cutoff),
		cutoff:     cutoff,
		goalRadius: goalRadius,
	}, nil
}

func (r *Reach) registerEnv(e *PlaneNav) {
	r.env = e
}

// GetReward returns the reward for the current tick. The reward
// sources never interact and are summed without clamping.
func (r *Reach) GetReward(_, _, _ mat.Vector) float64 {
	reward := -EpisodeTimePenalty / float64(r.cutoff)

	if r.env != nil {
		contacts := r.env.tickContacts()
		if contacts.obstacleOnset {
			reward -= CollisionPenalty
		}
		reward -= CollisionRate * contacts.obstacleTime
		if contacts.goal {
			reward += GoalReward
		}
	}

	return reward
}

// AtGoal returns whether the agent described by the argument
// observation contacts the goal region: the agent circle and the goal
// circle overlap when their centers are within goalRadius+AgentRadius,
// the same condition the physics detector reports. The argument uses
// the normalized observation layout of Observe.
func (r *Reach) AtGoal(state mat.Matrix) bool {
	obs, ok := state.(mat.Vector)
	if !ok || obs.Len() != ObservationDims {
		return false
	}

	dx := (obs.AtVec(0) - obs.AtVec(2)) * PositionScale
	dz := (obs.AtVec(1) - obs.AtVec(3)) * PositionScale

	return math.Hypot(dx, dz) <= r.goalRadius+AgentRadius
}

// End determines whether the timestep is the last in the episode,
// adjusting its StepType and EndType accordingly. Goal contact ends
// the episode in success regardless of the remaining steps; obstacle
// contact never ends it.
func (r *Reach) End(t *ts.TimeStep) bool {
	if r.env != nil && r.env.tickContacts().goal {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}

	return r.stepLimit.End(t)
}

// Min returns the minimum attainable reward over all timesteps,
// assuming the default tick duration
func (r *Reach) Min() float64 {
	return -EpisodeTimePenalty/float64(r.cutoff) - CollisionPenalty -
		CollisionRate*TickDuration
}

// Max returns the maximum attainable reward over all timesteps
func (r *Reach) Max() float64 {
	return GoalReward - EpisodeTimePenalty/float64(r.cutoff)
}

// RewardSpec returns the reward specification of the task
func (r *Reach) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{r.Min()})
	upperBound := mat.NewVecDense(1, []float64{r.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}
