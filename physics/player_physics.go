package physics

import (
	"math"

	"github.com/fcsim/matchcore/entity"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerComputer integrates one physics step for a player body: steering
// the velocity toward Intentions.TargetPosition, rotating Facing toward
// Intentions.FaceTarget, and applying drag when no target is set.
type PlayerComputer struct {
	MaxSpeed     float64 // m/s, reached when sprinting
	Acceleration float64 // m/s^2 applied toward the steering direction
	Drag         float64 // fraction of velocity lost per second absent a target
	TurnRate     float64 // radians/s the facing vector can rotate
}

// DefaultPlayerComputer returns calibration constants for an outfield
// player.
func DefaultPlayerComputer() PlayerComputer {
	return PlayerComputer{
		MaxSpeed:     8.0,
		Acceleration: 6.0,
		Drag:         0.5,
		TurnRate:     6.0,
	}
}

// TickMovement advances body by dt seconds in place, steering it according
// to intent.
func (c PlayerComputer) TickMovement(body *entity.Body, intent entity.Intentions, dt float64) {
	maxSpeed := c.MaxSpeed
	if !intent.Action.Has(entity.ActionSprint) {
		maxSpeed *= 0.7
	}

	if intent.TargetPosition != nil {
		toTarget := intent.TargetPosition.Sub(body.Position)
		dist := toTarget.Len()
		if dist > epsilon {
			dir := toTarget.Mul(1 / dist)
			body.Velocity = body.Velocity.Add(dir.Mul(c.Acceleration * dt))
			if speed := body.Velocity.Len(); speed > maxSpeed {
				body.Velocity = body.Velocity.Mul(maxSpeed / speed)
			}
			// Avoid overshoot: never move further this tick than the
			// remaining distance to the target.
			if step := body.Velocity.Len() * dt; step > dist {
				body.Velocity = body.Velocity.Mul(dist / step)
			}
		} else {
			body.Velocity = mgl64.Vec2{}
		}
	} else {
		drag := 1 - c.Drag*dt
		if drag < 0 {
			drag = 0
		}
		body.Velocity = body.Velocity.Mul(drag)
	}

	body.Position = body.Position.Add(body.Velocity.Mul(dt))

	faceTarget := intent.FaceTarget
	if faceTarget == nil && intent.TargetPosition != nil {
		faceTarget = intent.TargetPosition
	}
	if faceTarget != nil {
		c.rotateFacing(body, *faceTarget, dt)
	}
}

// rotateFacing turns body.Facing toward target by at most TurnRate*dt
// radians.
func (c PlayerComputer) rotateFacing(body *entity.Body, target mgl64.Vec2, dt float64) {
	toTarget := target.Sub(body.Position)
	if toTarget.Len() < epsilon {
		return
	}
	toTarget = toTarget.Normalize()

	if body.Facing.Len() < epsilon {
		body.Facing = toTarget
		return
	}
	current := body.Facing.Normalize()

	currentAngle := math.Atan2(current[1], current[0])
	targetAngle := math.Atan2(toTarget[1], toTarget[0])

	delta := angleDiff(currentAngle, targetAngle)
	maxStep := c.TurnRate * dt
	if delta > maxStep {
		delta = maxStep
	} else if delta < -maxStep {
		delta = -maxStep
	}
	newAngle := currentAngle + delta
	body.Facing = mgl64.Vec2{math.Cos(newAngle), math.Sin(newAngle)}
}

// angleDiff returns the signed difference to rotate from 'from' to 'to',
// normalized to [-pi, pi).
func angleDiff(from, to float64) float64 {
	d := math.Mod(to-from+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

// epsilon is the threshold below which a distance or vector length is
// treated as zero.
const epsilon = 0.001

// NextPlayerInterval chooses the player physics chain's re-scheduling offset
// in ticks from current body speed: 10ms sprinting, 50ms stationary, linearly
// interpolated between the two.
func NextPlayerInterval(speed, maxSpeed float64) int64 {
	const (
		minInterval = 10
		maxInterval = 50
	)
	if maxSpeed <= 0 {
		return maxInterval
	}
	t := speed / maxSpeed
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	interval := maxInterval - t*(maxInterval-minInterval)
	return int64(math.Round(interval))
}
