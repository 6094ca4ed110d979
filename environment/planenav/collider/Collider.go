// Package collider implements Box2D-backed contact detection for the
// planenav environment.
//
// The collider maintains a zero-gravity Box2D world holding three
// bodies: a static perimeter wall around the arena (the obstacle), a
// static sensor circle at the goal, and a dynamic circle for the
// agent. The agent body is repositioned from the environment's pose
// every tick; the Box2D contact listener records which fixtures the
// agent is touching, and Update translates those recordings into the
// goal and obstacle contact events of the planenav.ContactSink
// contract. The collider never moves the agent: it detects contacts
// and nothing else.
package collider

import (
	"github.com/ByteArena/box2d"

	"github.com/samuelfneumann/gonav/environment/planenav"
)

const (
	velocityIterations int = 8
	positionIterations int = 3

	agentDensity float64 = 1.0
)

// Collider implements the planenav.Detector interface using Box2D
type Collider struct {
	world box2d.B2World

	agent *box2d.B2Body
	goal  *box2d.B2Body
	wall  *box2d.B2Body

	sink planenav.ContactSink

	// contact state maintained by the contact listener
	goalTouching bool
	wallTouching bool

	// wall contact state at the previous Update, for phase detection
	wallWasTouching bool
}

// New creates and returns a new Collider reporting contact events to
// sink. The perimeter wall is placed at distance extent from the arena
// origin on all four sides.
func New(sink planenav.ContactSink, extent, agentRadius,
	goalRadius float64) *Collider {
	c := &Collider{sink: sink}
	c.world = box2d.MakeB2World(box2d.MakeB2Vec2(0.0, 0.0))

	// Perimeter wall: a static body with four edge fixtures
	wallDef := box2d.NewB2BodyDef()
	c.wall = c.world.CreateBody(wallDef)

	corners := [4]box2d.B2Vec2{
		box2d.MakeB2Vec2(-extent, -extent),
		box2d.MakeB2Vec2(-extent, extent),
		box2d.MakeB2Vec2(extent, extent),
		box2d.MakeB2Vec2(extent, -extent),
	}
	for i := range corners {
		edge := box2d.NewB2EdgeShape()
		edge.Set(corners[i], corners[(i+1)%len(corners)])

		fixture := box2d.MakeB2FixtureDef()
		fixture.Shape = edge
		c.wall.CreateFixtureFromDef(&fixture)
	}

	// Goal region: a static sensor circle, repositioned each episode
	goalDef := box2d.NewB2BodyDef()
	c.goal = c.world.CreateBody(goalDef)

	goalShape := box2d.NewB2CircleShape()
	goalShape.M_radius = goalRadius
	goalFixture := box2d.MakeB2FixtureDef()
	goalFixture.Shape = goalShape
	goalFixture.IsSensor = true
	c.goal.CreateFixtureFromDef(&goalFixture)

	// Agent: a dynamic circle so Box2D generates contacts against the
	// static wall and goal fixtures. It is repositioned explicitly
	// every tick and never moves under the solver.
	agentDef := box2d.NewB2BodyDef()
	agentDef.Type = 2 // Dynamic body
	agent := c.world.CreateBody(agentDef)

	agentShape := box2d.NewB2CircleShape()
	agentShape.M_radius = agentRadius
	agentFixture := box2d.MakeB2FixtureDef()
	agentFixture.Shape = agentShape
	agentFixture.Density = agentDensity
	c.agent = agent
	c.agent.CreateFixtureFromDef(&agentFixture)

	c.world.SetContactListener(&contactDetector{c})

	return c
}

// Reset implements the planenav.Detector interface, repositioning the
// goal sensor and the agent body for a new episode and clearing any
// recorded contact state
func (c *Collider) Reset(agent planenav.Pose, goal planenav.Point) {
	c.goalTouching = false
	c.wallTouching = false
	c.wallWasTouching = false

	c.goal.SetTransform(box2d.MakeB2Vec2(goal.X, goal.Z), 0.0)
	c.place(agent)
}

// Update implements the planenav.Detector interface. It repositions
// the agent body, advances the Box2D world by dt, and dispatches the
// contact events observed during the tick.
func (c *Collider) Update(agent planenav.Pose, dt float64) {
	c.place(agent)
	c.world.Step(dt, velocityIterations, positionIterations)

	touching := c.wallTouching
	switch {
	case touching && !c.wallWasTouching:
		c.sink.OnObstacleContact(planenav.ContactEnter, dt)
	case touching && c.wallWasTouching:
		c.sink.OnObstacleContact(planenav.ContactStay, dt)
	case !touching && c.wallWasTouching:
		c.sink.OnObstacleContact(planenav.ContactExit, dt)
	}
	c.wallWasTouching = touching

	if c.goalTouching {
		c.sink.OnGoalContact()
	}
}

// place pins the agent body to the given pose with zero velocity, so
// that any motion the solver applied during collision resolution never
// accumulates
func (c *Collider) place(agent planenav.Pose) {
	c.agent.SetTransform(box2d.MakeB2Vec2(agent.X, agent.Z), 0.0)
	c.agent.SetLinearVelocity(box2d.MakeB2Vec2(0.0, 0.0))
	c.agent.SetAngularVelocity(0.0)
}

// contactDetector records fixture contacts between the agent and the
// goal or wall bodies
type contactDetector struct {
	c *Collider
}

func (d *contactDetector) BeginContact(contact box2d.B2ContactInterface) {
	bodyA := contact.GetFixtureA().GetBody()
	bodyB := contact.GetFixtureB().GetBody()

	if involves(d.c.agent, d.c.goal, bodyA, bodyB) {
		d.c.goalTouching = true
	}
	if involves(d.c.agent, d.c.wall, bodyA, bodyB) {
		d.c.wallTouching = true
	}
}

func (d *contactDetector) EndContact(contact box2d.B2ContactInterface) {
	bodyA := contact.GetFixtureA().GetBody()
	bodyB := contact.GetFixtureB().GetBody()

	if involves(d.c.agent, d.c.goal, bodyA, bodyB) {
		d.c.goalTouching = false
	}
	if involves(d.c.agent, d.c.wall, bodyA, bodyB) {
		d.c.wallTouching = false
	}
}

func (d *contactDetector) PreSolve(contact box2d.B2ContactInterface,
	oldManifold box2d.B2Manifold) {
}

func (d *contactDetector) PostSolve(contact box2d.B2ContactInterface,
	impulse *box2d.B2ContactImpulse) {
}

// involves returns whether the contact between bodyA and bodyB is
// between the two wanted bodies
func involves(want1, want2, bodyA, bodyB *box2d.B2Body) bool {
	return (bodyA == want1 && bodyB == want2) ||
		(bodyA == want2 && bodyB == want1)
}
