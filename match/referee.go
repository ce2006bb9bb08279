package match

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/sched"
)

// HalfTimeBreak is how long the match pauses live play between halves.
const HalfTimeBreak sched.Tick = 15 * 60 * 1000

// ExtraHalfDuration is the length of one extra-time half, in ticks.
const ExtraHalfDuration sched.Tick = 15 * 60 * 1000

// ExtraBreakDuration is how long play pauses before and between extra-time
// halves.
const ExtraBreakDuration sched.Tick = 1 * 60 * 1000

// ShootoutDuration is how long a penalty shootout is modelled as taking
// before its winner is decided (see scheduleShootout).
const ShootoutDuration sched.Tick = 5 * 60 * 1000

func (m *Match) scheduleReferee(offset int64) {
	m.sched.ScheduleOnOffset(offset, sched.Referee, m.refereeCallback)
}

// refereeCallback checks for goals, the ball leaving the field of play, and
// half/match clock transitions. It re-arms itself every 500ms for the life
// of the match — including through HalfTime and the extra-time breaks, since
// something has to keep counting down those intervals — and stops only once
// FullTime is reached with no further play scheduled.
func (m *Match) refereeCallback(tick sched.Tick) {
	m.countEvent(sched.Referee)

	switch m.phase {
	case FirstHalf, SecondHalf, ExtraTimeFirstHalf, ExtraTimeSecondHalf:
		m.checkGoal()
		m.checkOutOfBounds()
		if tick >= m.halfEndTick {
			m.advancePastHalf()
		}
	}

	if m.phase == FullTime {
		// Terminal: no further referee events.
		return
	}
	m.scheduleReferee(RefereeInterval)
}

func (m *Match) checkGoal() {
	if !m.field.Contains(m.ball.Position) && m.ball.Height < 2.5 {
		if m.field.CrossedGoalLine(m.ball.Position, entity.GoalAway) {
			m.score.Home++
			m.resetForKickoff()
			if m.log != nil {
				m.log.Info("goal", "side", "home", "score_home", m.score.Home, "score_away", m.score.Away)
			}
		} else if m.field.CrossedGoalLine(m.ball.Position, entity.GoalHome) {
			m.score.Away++
			m.resetForKickoff()
			if m.log != nil {
				m.log.Info("goal", "side", "away", "score_home", m.score.Home, "score_away", m.score.Away)
			}
		}
	}
}

// checkOutOfBounds handles the ball leaving the field of play anywhere other
// than inside a goal mouth. This is simplified to a dead-ball respot at the
// boundary rather than a full throw-in/corner/goal-kick procedure — see
// DESIGN.md's Open Questions resolution.
func (m *Match) checkOutOfBounds() {
	if m.field.Contains(m.ball.Position) {
		return
	}
	if m.field.CrossedGoalLine(m.ball.Position, entity.GoalHome) || m.field.CrossedGoalLine(m.ball.Position, entity.GoalAway) {
		return // handled by checkGoal
	}
	halfLength, halfWidth := m.field.Length/2, m.field.Width/2
	pos := m.ball.Position
	if pos[0] > halfLength {
		pos[0] = halfLength
	}
	if pos[0] < -halfLength {
		pos[0] = -halfLength
	}
	if pos[1] > halfWidth {
		pos[1] = halfWidth
	}
	if pos[1] < -halfWidth {
		pos[1] = -halfWidth
	}
	m.ball.Position = pos
	m.ball.Velocity = mgl64.Vec2{}
	m.ball.Height = 0
	m.ball.VerticalVelocity = 0
	m.disarmBall()
}

func (m *Match) resetForKickoff() {
	m.ball.Position = mgl64.Vec2{}
	m.ball.Velocity = mgl64.Vec2{}
	m.ball.Height = 0
	m.ball.VerticalVelocity = 0
	m.possession = nil
	m.disarmBall()
}

// disarmBall cancels the pending BALL_PHYSICS event, if one is armed, before
// clearing ballArmed. Clearing the flag alone without cancelling leaves the
// stale event in the heap; a subsequent KickBall would then see ballArmed
// false and schedule a second, independent BALL_PHYSICS chain alongside it.
func (m *Match) disarmBall() {
	if !m.ballArmed {
		return
	}
	m.sched.Cancel(m.ballHandle)
	m.ballArmed = false
}

func (m *Match) advancePastHalf() {
	switch m.phase {
	case FirstHalf:
		m.phase = HalfTime
		m.resetForKickoff()
		m.armBreak(HalfTimeBreak, SecondHalf, HalfDuration)
	case SecondHalf:
		if m.extraTimeEnabled && m.score.Home == m.score.Away {
			m.phase = ExtraTimeBreak
			m.resetForKickoff()
			m.armBreak(ExtraBreakDuration, ExtraTimeFirstHalf, ExtraHalfDuration)
		} else {
			m.phase = FullTime
		}
	case ExtraTimeFirstHalf:
		m.phase = ExtraTimeBreak
		m.resetForKickoff()
		m.armBreak(ExtraBreakDuration, ExtraTimeSecondHalf, ExtraHalfDuration)
	case ExtraTimeSecondHalf:
		if m.score.Home == m.score.Away {
			m.phase = PenaltyShootout
			m.scheduleShootout()
		} else {
			m.phase = FullTime
		}
	}
}

// armBreak schedules a one-off timer that ends the current break after
// breakDuration and transitions into nextPhase, arming its halfEndTick
// nextDuration ticks beyond that. A break phase has nothing for the
// recurring 500ms referee chain to check, so — as with the original
// HalfTime→SecondHalf transition — a single timer scoped to exactly the
// interval it is waiting out is simpler than teaching the recurring chain a
// second kind of deadline.
func (m *Match) armBreak(breakDuration sched.Tick, nextPhase Phase, nextDuration sched.Tick) {
	m.sched.ScheduleOnOffset(int64(breakDuration), sched.Referee, func(sched.Tick) {
		m.phase = nextPhase
		m.halfEndTick = m.sched.CurrentTick() + nextDuration
	})
}

// scheduleShootout models a penalty shootout as a fixed-duration interlude
// resolved by a coin flip rather than a kick-by-kick simulation — full
// shootout mechanics belong to an AI plug-in's set-piece logic, not this
// core, the same simplification checkOutOfBounds makes for restart types.
func (m *Match) scheduleShootout() {
	m.sched.ScheduleOnOffset(int64(ShootoutDuration), sched.Referee, func(sched.Tick) {
		winner := Home
		if !m.rand.Bool(0.5) {
			winner = Away
		}
		m.shootoutWinner = &winner
		m.phase = FullTime
		if m.log != nil {
			m.log.Info("shootout_complete", "winner", winner)
		}
	})
}
