// Package physics implements the ball and player position/velocity
// integrators. Each integrator is a small stateless-per-call struct whose
// single tick method updates, in place, only the entity the caller hands
// it, so the match engine stays the only place that decides which entity
// state gets written.
package physics

import (
	"math"

	"github.com/fcsim/matchcore/entity"
	"github.com/go-gl/mathgl/mgl64"
)

// BallComputer integrates one physics step for the ball: gravity on the
// vertical axis, ground/air friction on the horizontal plane, and a bounce
// when the ball returns to ground level. Aerodynamic detail (Magnus effect,
// drag coefficients) is out of scope; only enough state is modelled to
// support a believable arc and roll.
type BallComputer struct {
	Gravity        float64 // m/s^2, applied to VerticalVelocity while airborne
	GroundFriction float64 // fraction of horizontal speed lost per second while rolling
	AirFriction    float64 // fraction of horizontal speed lost per second while airborne
	Restitution    float64 // fraction of VerticalVelocity retained after a ground bounce
}

// DefaultBallComputer returns calibration constants for a regulation ball on
// a grass pitch.
func DefaultBallComputer() BallComputer {
	return BallComputer{
		Gravity:        9.81,
		GroundFriction: 0.65,
		AirFriction:    0.1,
		Restitution:    0.45,
	}
}

// TickMovement advances b by dt seconds in place.
func (c BallComputer) TickMovement(b *entity.Ball, dt float64) {
	if b.Airborne() {
		b.VerticalVelocity -= c.Gravity * dt
		b.Height += b.VerticalVelocity * dt
		if b.Height <= 0 {
			b.Height = 0
			if b.VerticalVelocity < 0 {
				b.VerticalVelocity = -b.VerticalVelocity * c.Restitution
			}
		}
		friction := 1 - c.AirFriction*dt
		b.Velocity = b.Velocity.Mul(clampFriction(friction))
	} else {
		friction := 1 - c.GroundFriction*dt
		b.Velocity = b.Velocity.Mul(clampFriction(friction))
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Speed() < entity.SpeedSuspendThreshold {
		b.Velocity = mgl64.Vec2{}
	}
}

// NextInterval chooses the ball physics chain's re-scheduling offset, in
// ticks (milliseconds), from current ball speed. Speed below
// entity.SpeedSuspendThreshold means the chain should suspend instead
// (ok == false); otherwise the result is in [5, 20], inversely related to
// speed. The exact curve only needs to be monotonic; this implementation
// uses a simple inverse-speed interpolation capped to those bounds.
func NextInterval(speed float64) (ticks int64, ok bool) {
	const (
		minInterval = 5
		maxInterval = 20
		// fastReference is the speed, in m/s, at or above which the minimum
		// interval applies. A well-struck shot exceeds this.
		fastReference = 20.0
	)
	if speed < entity.SpeedSuspendThreshold {
		return 0, false
	}
	t := speed / fastReference
	if t > 1 {
		t = 1
	}
	interval := maxInterval - t*(maxInterval-minInterval)
	return int64(math.Round(interval)), true
}

func clampFriction(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
