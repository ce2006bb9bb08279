package entity

import "github.com/go-gl/mathgl/mgl64"

// SpeedSuspendThreshold is the ball speed, in metres per second, below which
// the ball physics chain suspends itself rather than rescheduling (see
// match/engine.go).
const SpeedSuspendThreshold = 0.001

// Ball is the single match ball. Position is 2-D (the pitch plane); Height
// is tracked separately so a lofted pass or shot can be distinguished from a
// ground pass without promoting the whole entity model to 3-D vectors.
type Ball struct {
	Position mgl64.Vec2
	Height   float64
	Velocity mgl64.Vec2
	// VerticalVelocity is the rate of change of Height. Aerodynamic detail
	// (Magnus effect, drag coefficients) is explicitly out of scope; only
	// enough state to support a simple parabolic arc is modelled.
	VerticalVelocity float64
	Spin             float64
}

// Speed returns the magnitude of the ball's horizontal velocity.
func (b *Ball) Speed() float64 {
	return b.Velocity.Len()
}

// Airborne reports whether the ball is above ground level.
func (b *Ball) Airborne() bool {
	return b.Height > 0
}

// Kick applies an instantaneous velocity change to the ball, as by a pass,
// shot, or clearance. It is the caller's responsibility to re-arm the ball
// physics chain afterwards (see match.Match.KickBall) — Ball itself never
// schedules anything.
func (b *Ball) Kick(velocity mgl64.Vec2, verticalVelocity float64) {
	b.Velocity = velocity
	b.VerticalVelocity = verticalVelocity
}
