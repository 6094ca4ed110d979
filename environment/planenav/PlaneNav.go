// Package planenav implements a planar goal-reaching navigation
// environment.
//
// An agent moves on a bounded square arena of half-width ArenaExtent.
// Each episode, the agent is reset to a fixed origin and a goal is
// placed at a random distance and direction from it. The agent selects
// one of four discrete actions per tick: do nothing, drive forward
// along its heading, or rotate its heading left or right. The episode
// ends in success when the agent contacts the goal region, or in
// failure when the step limit is reached first. Contact with the
// obstacle bounding the arena is penalized but never ends the episode.
//
// Rewards are shaped from independent additive sources: a per-step
// time penalty whose episode total is constant regardless of the step
// limit, a one-time penalty when obstacle contact begins, a rate
// penalty for every tick that obstacle contact persists, and a bonus
// for reaching the goal.
//
// The environment is a synchronous, tick-driven step function. Contact
// detection is delegated to a physics collaborator: any Detector
// attached with AttachDetector is updated once per step and reports
// back through the ContactSink methods OnGoalContact and
// OnObstacleContact. When no detector is attached, goal contact is
// synthesized geometrically from the task's AtGoal predicate so that
// the environment remains usable standalone.
package planenav

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gonav/environment"
	ts "github.com/samuelfneumann/gonav/timestep"
)

// Default physical constants
const (
	MoveSpeed     float64 = 1.5   // units per second
	RotationSpeed float64 = 180.0 // degrees per second
	TickDuration  float64 = 0.02  // seconds of simulated time per step

	ArenaExtent float64 = 5.0 // half-width of the square arena
	AgentRadius float64 = 0.3
	GoalRadius  float64 = 0.5

	MinGoalDistance float64 = 1.0
	MaxGoalDistance float64 = 2.5

	ObservationDims int     = 5
	PositionScale   float64 = 5.0 // divisor normalizing positions

	MinDiscreteAction int = 0
	MaxDiscreteAction int = 3
)

// Reward constants
const (
	// GoalReward is added once when the agent contacts the goal
	GoalReward float64 = 1.0

	// EpisodeTimePenalty is the total time penalty accumulated over a
	// full episode that never reaches the goal. Each step is penalized
	// EpisodeTimePenalty divided by the step limit, so the episode
	// total is independent of the step limit.
	EpisodeTimePenalty float64 = 0.2

	// CollisionPenalty is subtracted once when obstacle contact begins
	CollisionPenalty float64 = 0.05

	// CollisionRate is subtracted per second of persisting obstacle
	// contact, scaled by each tick's duration
	CollisionRate float64 = 0.01
)

// Outcome labels how the previous episode ended. It conditions only
// cosmetic feedback, never the reward computation.
type Outcome int

const (
	None Outcome = iota
	Success
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "None"
	}
}

// Listener receives episode lifecycle signals from the environment.
// Listeners must treat the environment as read-only.
type Listener interface {
	EpisodeBegan()
	EpisodeEnded(outcome Outcome, cumulativeReward float64)
}

// ContactPhase describes the phase of an obstacle contact event
type ContactPhase int

const (
	// ContactEnter is reported on the tick contact begins
	ContactEnter ContactPhase = iota

	// ContactStay is reported on every subsequent tick that contact
	// persists
	ContactStay

	// ContactExit is reported on the tick contact ends
	ContactExit
)

func (c ContactPhase) String() string {
	switch c {
	case ContactEnter:
		return "Enter"
	case ContactStay:
		return "Stay"
	case ContactExit:
		return "Exit"
	default:
		return fmt.Sprintf("ContactPhase(%d)", int(c))
	}
}

// ContactSink consumes contact events produced by a physics
// collaborator. The environment is agnostic to how contacts are
// detected; it needs only the phase and the tick duration.
type ContactSink interface {
	// OnGoalContact reports that the agent contacted the goal region
	OnGoalContact()

	// OnObstacleContact reports the phase of an obstacle contact and
	// the duration of the simulation tick it occurred on
	OnObstacleContact(phase ContactPhase, dt float64)
}

// Detector is a physics collaborator that detects contacts between the
// agent, the goal region, and the obstacle. A Detector reports events
// to the ContactSink it was constructed with.
type Detector interface {
	// Reset informs the detector of the new agent pose and goal
	// position at the start of an episode
	Reset(agent Pose, goal Point)

	// Update advances the detector by one tick with the agent at the
	// given pose, dispatching any contact events it detects
	Update(agent Pose, dt float64)
}

// Params holds the physical parameters of the environment
type Params struct {
	MoveSpeed     float64 // units per second
	RotationSpeed float64 // degrees per second
	TickDuration  float64 // seconds of simulated time per step
}

// DefaultParams returns the default physical parameters
func DefaultParams() Params {
	return Params{
		MoveSpeed:     MoveSpeed,
		RotationSpeed: RotationSpeed,
		TickDuration:  TickDuration,
	}
}

// status tracks the episode state machine
type status int

const (
	idle status = iota
	running
	terminated
)

// tickContact aggregates the contact events reported since the last
// step was scored. It is consumed and cleared by Step.
type tickContact struct {
	goal          bool
	obstacleOnset bool
	obstacleTime  float64 // seconds of persisting contact this tick
}

// PlaneNav implements the environment.Environment interface for the
// planar navigation task
type PlaneNav struct {
	environment.Task

	params   Params
	discount float64

	pose Pose
	goal Point

	status           status
	lastOutcome      Outcome
	cumulativeReward float64
	currentStep      ts.TimeStep

	contacts  tickContact
	detector  Detector
	listeners []Listener
}

// New creates and returns a new PlaneNav environment with the given
// task, ready to use. The first episode is started before returning.
func New(t environment.Task, params Params, discount float64) (*PlaneNav,
	ts.TimeStep, error) {
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task cannot be nil")
	}
	if params.MoveSpeed <= 0 || params.RotationSpeed <= 0 ||
		params.TickDuration <= 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: params must be "+
			"positive, got %+v", params)
	}

	env := &PlaneNav{
		Task:     t,
		params:   params,
		discount: discount,
		status:   idle,
	}

	// Tasks that score contact events need access to the per-tick
	// contact state
	if task, ok := t.(planeNavTask); ok {
		task.registerEnv(env)
	}

	step, err := env.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	return env, step, nil
}

// Reset begins a new episode, placing the agent and the goal according
// to the task's Starter and notifying listeners
func (e *PlaneNav) Reset() (ts.TimeStep, error) {
	start := e.Start()
	if start == nil || start.Len() != ObservationDims {
		return ts.TimeStep{}, fmt.Errorf("reset: starter returned an "+
			"invalid state, expected %v features", ObservationDims)
	}

	e.pose, e.goal = splitState(start)
	e.contacts = tickContact{}
	e.cumulativeReward = 0.0
	e.status = running

	if e.detector != nil {
		e.detector.Reset(e.pose, e.goal)
	}

	step := ts.New(ts.First, 0.0, e.discount, Observe(e.pose, e.goal), 0)
	e.currentStep = step

	for _, l := range e.listeners {
		l.EpisodeBegan()
	}

	return step, nil
}

// Step takes one tick in the environment given a 1-dimensional action
// vector holding a discrete action code. Unrecognized codes are
// treated as NoOp. Actions received while no episode is running are
// ignored and the current timestep is returned unchanged.
func (e *PlaneNav) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if e.status != running {
		log.Printf("step: action received outside a running episode; " +
			"ignoring")
		return e.currentStep, e.currentStep.Last(), nil
	}
	if action == nil || action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be " +
			"1-dimensional")
	}

	dt := e.params.TickDuration
	e.pose = Move(int(action.AtVec(0)), e.pose, e.params.MoveSpeed,
		e.params.RotationSpeed, dt)

	if e.detector != nil {
		e.detector.Update(e.pose, dt)
	} else if e.AtGoal(Observe(e.pose, e.goal)) {
		// No physics collaborator attached: synthesize goal contact
		// from geometry
		e.OnGoalContact()
	}

	obs := Observe(e.pose, e.goal)
	reward := e.GetReward(e.currentStep.Observation, action, obs)
	nextStep := ts.New(ts.Mid, reward, e.discount, obs,
		e.currentStep.Number+1)
	last := e.End(&nextStep)

	e.cumulativeReward += reward
	e.currentStep = nextStep
	e.contacts = tickContact{}

	if last {
		e.status = terminated
		if nextStep.EndType == ts.TerminalStateReached {
			e.lastOutcome = Success
		} else {
			e.lastOutcome = Failure
		}
		for _, l := range e.listeners {
			l.EpisodeEnded(e.lastOutcome, e.cumulativeReward)
		}
	}

	return nextStep, last, nil
}

// OnGoalContact implements the ContactSink interface. Goal contact
// reported while no episode is running is discarded.
func (e *PlaneNav) OnGoalContact() {
	if e.status != running {
		return
	}
	e.contacts.goal = true
}

// OnObstacleContact implements the ContactSink interface. Contact
// onset and persistence feed the reward computation of the next step;
// contact exit carries no cost.
func (e *PlaneNav) OnObstacleContact(phase ContactPhase, dt float64) {
	if e.status != running {
		return
	}

	switch phase {
	case ContactEnter:
		e.contacts.obstacleOnset = true
	case ContactStay:
		e.contacts.obstacleTime += dt
	}
}

// tickContacts returns the contact events accumulated since the last
// scored step
func (e *PlaneNav) tickContacts() tickContact {
	return e.contacts
}

// AttachDetector registers a physics collaborator with the
// environment. If an episode is already running, the detector is reset
// to the current agent pose and goal position.
func (e *PlaneNav) AttachDetector(d Detector) {
	e.detector = d
	if e.status == running && d != nil {
		d.Reset(e.pose, e.goal)
	}
}

// Watch registers a Listener to be notified of episode lifecycle
// signals
func (e *PlaneNav) Watch(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Pose returns the current agent pose
func (e *PlaneNav) Pose() Pose {
	return e.pose
}

// Goal returns the current goal position
func (e *PlaneNav) Goal() Point {
	return e.goal
}

// LastOutcome returns how the previous episode ended. It persists
// across the episode boundary for cosmetic feedback only.
func (e *PlaneNav) LastOutcome() Outcome {
	return e.lastOutcome
}

// CumulativeReward returns the total reward accumulated so far in the
// current episode
func (e *PlaneNav) CumulativeReward() float64 {
	return e.cumulativeReward
}

// CurrentTimeStep returns the last timestep of the environment
func (e *PlaneNav) CurrentTimeStep() ts.TimeStep {
	return e.currentStep
}

// DiscountSpec returns the discount specification of the environment
func (e *PlaneNav) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{e.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment
func (e *PlaneNav) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)

	bounds := make([]float64, ObservationDims)
	for i := range bounds {
		bounds[i] = 1.0
	}
	upperBound := mat.NewVecDense(ObservationDims, bounds)
	lowerBound := mat.NewVecDense(ObservationDims, nil)
	lowerBound.ScaleVec(-1.0, upperBound)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Continuous)
}

// ActionSpec returns the action specification of the environment
func (e *PlaneNav) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// String converts the environment to a string representation
func (e *PlaneNav) String() string {
	return fmt.Sprintf("PlaneNav  |  agent: (%.3f, %.3f) @ %.1f°  |  "+
		"goal: (%.3f, %.3f)", e.pose.X, e.pose.Z, e.pose.Heading,
		e.goal.X, e.goal.Z)
}
