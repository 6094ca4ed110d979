package planenav

import "math"

// Discrete actions available in the environment
const (
	NoOp int = iota
	Forward
	TurnLeft
	TurnRight
)

// Move applies a discrete action to a pose over dt seconds of
// simulated time, returning the resulting pose. Forward translates
// the pose along its current heading by moveSpeed*dt. TurnLeft and
// TurnRight rotate the heading by rotationSpeed*dt counterclockwise
// and clockwise respectively, leaving the position unchanged.
// Unrecognized action codes leave the pose unchanged.
func Move(action int, p Pose, moveSpeed, rotationSpeed, dt float64) Pose {
	switch action {
	case Forward:
		radians := p.Heading * math.Pi / 180.0
		p.X += moveSpeed * dt * math.Sin(radians)
		p.Z += moveSpeed * dt * math.Cos(radians)

	case TurnLeft:
		p.Heading = wrapHeading(p.Heading - rotationSpeed*dt)

	case TurnRight:
		p.Heading = wrapHeading(p.Heading + rotationSpeed*dt)
	}
	return p
}

// ManualAction maps directional key state to an action code, for
// driving the environment by hand. When several keys are held at once,
// up takes priority over left, and left over right. With no keys held,
// the action is NoOp.
func ManualAction(up, left, right bool) int {
	switch {
	case up:
		return Forward
	case left:
		return TurnLeft
	case right:
		return TurnRight
	}
	return NoOp
}
