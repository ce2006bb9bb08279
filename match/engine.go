package match

import (
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/physics"
	"github.com/fcsim/matchcore/sched"
	"github.com/go-gl/mathgl/mgl64"
)

// Start registers the match's long-lived event chains: one PLAYER_PHYSICS
// and (if the player has a registered AI) one PLAYER_AI chain per player,
// and the REFEREE chain. The ball physics chain is left suspended — no
// BALL_PHYSICS event fires for a stationary ball until an external force is
// applied via KickBall.
func (m *Match) Start() {
	m.phase = FirstHalf
	m.halfEndTick = HalfDuration

	for _, p := range m.allPlayers() {
		id := p.ID
		m.playerPhysicsLast[id] = m.sched.CurrentTick()
		m.schedulePlayerPhysics(id, 1)
		if _, ok := m.ai[id]; ok {
			m.schedulePlayerAI(id, 1)
		}
	}
	m.scheduleReferee(RefereeInterval)
}

// KickBall applies an instantaneous velocity change to the ball and re-arms
// the ball physics chain: whoever performed the acceleration is responsible
// for scheduling a BALL_PHYSICS event at currentTick + 1. If the chain is
// already armed (a pending event has not fired yet), the pending event is
// rescheduled rather than duplicated.
func (m *Match) KickBall(velocity mgl64.Vec2, verticalVelocity float64) {
	m.ball.Kick(velocity, verticalVelocity)
	if m.ballArmed {
		m.ballHandle = m.sched.Reschedule(m.ballHandle, 1)
		return
	}
	m.lastBallTick = m.sched.CurrentTick()
	m.ballHandle = m.sched.ScheduleOnOffset(1, sched.BallPhysics, m.ballPhysicsCallback)
	m.ballArmed = true
}

func (m *Match) ballPhysicsCallback(tick sched.Tick) {
	dt := float64(tick-m.lastBallTick) / 1000
	m.ballComputer.TickMovement(m.ball, dt)
	m.lastBallTick = tick
	m.countEvent(sched.BallPhysics)
	m.updatePossession()

	offset, ok := physics.NextInterval(m.ball.Speed())
	if !ok {
		// Ball has slowed below the suspend threshold: the chain goes
		// quiet until the next KickBall re-arms it.
		m.ballArmed = false
		return
	}
	m.ballHandle = m.sched.ScheduleOnOffset(offset, sched.BallPhysics, m.ballPhysicsCallback)
}

// ballContactRadius is how close a player's body must be to the ball for
// updatePossession to record them as the player last in contact.
const ballContactRadius = 1.0

// updatePossession records the nearest player within ballContactRadius as
// the player in possession. Ownership of this update lives with the ball
// physics integrator, per spec.md's possession-tracking supplement, rather
// than with the player physics or AI chains.
func (m *Match) updatePossession() {
	var closest *entity.Player
	var closestDist float64
	for _, p := range m.allPlayers() {
		d := p.Body.Position.Sub(m.ball.Position).Len()
		if d <= ballContactRadius && (closest == nil || d < closestDist) {
			closest, closestDist = p, d
		}
	}
	if closest != nil {
		id := closest.ID
		m.possession = &id
	}
}

func (m *Match) schedulePlayerPhysics(id entity.PlayerID, offset int64) {
	m.sched.ScheduleOnOffset(offset, sched.PlayerPhysics, func(tick sched.Tick) {
		m.playerPhysicsCallback(id, tick)
	})
}

func (m *Match) playerPhysicsCallback(id entity.PlayerID, tick sched.Tick) {
	p, _ := m.player(id)
	if p == nil {
		return
	}
	last := m.playerPhysicsLast[id]
	dt := float64(tick-last) / 1000
	m.playerComputer.TickMovement(&p.Body, p.Intent, dt)
	m.playerPhysicsLast[id] = tick
	m.countEvent(sched.PlayerPhysics)
	m.tryKick(p)

	offset := physics.NextPlayerInterval(p.Body.Speed(), m.playerComputer.MaxSpeed)
	m.schedulePlayerPhysics(id, offset)
}

// ballKickRange is how close a player's body must be to the ball for a
// pending ActionKick intention to take effect.
const ballKickRange = 1.5

// kickEpsilon is the vector-length threshold below which a direction is
// treated as undefined.
const kickEpsilon = 1e-6

// tryKick executes p's pending ActionKick intention, if any, via KickBall —
// the match engine, not the player, performs the acceleration and re-arms
// the ball physics chain, per the KickBall contract. The flag is cleared on
// every attempt, in range or not, so one PLAYER_AI deliberation's kick
// intention fires at most once rather than re-triggering on every
// subsequent PLAYER_PHYSICS tick until the next deliberation overwrites it.
func (m *Match) tryKick(p *entity.Player) {
	if !p.Intent.Action.Has(entity.ActionKick) {
		return
	}
	p.Intent.Action &^= entity.ActionKick
	if p.Body.Position.Sub(m.ball.Position).Len() > ballKickRange {
		return
	}
	direction := p.Body.Facing
	if direction.Len() < kickEpsilon {
		direction = m.ball.Position.Sub(p.Body.Position)
	}
	if direction.Len() < kickEpsilon {
		return
	}
	direction = direction.Normalize()
	power := 8 + p.Skills.Shooting*14
	m.KickBall(direction.Mul(power), 0)
}

func (m *Match) schedulePlayerAI(id entity.PlayerID, offset int64) {
	m.sched.ScheduleOnOffset(offset, sched.PlayerAI, func(tick sched.Tick) {
		m.playerAICallback(id)
	})
}

func (m *Match) playerAICallback(id entity.PlayerID) {
	p, _ := m.player(id)
	impl, ok := m.ai[id]
	if p == nil || !ok {
		return
	}
	intent := impl.Decide(m, id)
	p.Intent = intent
	m.countEvent(sched.PlayerAI)

	distance := p.Body.Position.Sub(m.ball.Position).Len()
	offset := aiInterval(distance, p.Context.Awareness)
	m.schedulePlayerAI(id, offset)
}

// aiInterval chooses the player AI chain's re-scheduling offset, in ticks,
// from distance to the ball and the player's awareness: roughly 30ms when
// near the ball and attentive, up to 200ms when far from the action. As
// with the physics intervals, the exact curve is an unconstrained
// implementation choice.
func aiInterval(distanceToBall, awareness float64) int64 {
	const (
		minInterval  = 30
		maxInterval  = 200
		nearDistance = 5.0
		farDistance  = 40.0
	)
	d := distanceToBall
	if d < nearDistance {
		d = nearDistance
	}
	if d > farDistance {
		d = farDistance
	}
	distanceFactor := (d - nearDistance) / (farDistance - nearDistance)

	a := awareness
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	obliviousFactor := 1 - a

	combined := (distanceFactor + obliviousFactor) / 2
	return int64(minInterval + combined*(maxInterval-minInterval))
}

func (m *Match) countEvent(typ sched.Type) {
	if m.metrics == nil {
		return
	}
	m.metrics.EventsFired.WithLabelValues(typ.String()).Inc()
	m.metrics.HeapDepth.Set(float64(m.sched.Len()))
	m.metrics.CurrentTick.Set(float64(m.sched.CurrentTick()))
}
