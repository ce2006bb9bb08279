// Package match implements the integration layer: it owns the Match
// aggregate (field, teams, ball, RNG, scheduler) and the re-scheduling
// discipline that keeps the ball physics, player physics, player AI, and
// referee chains alive without any of them ever scheduling themselves.
package match

import (
	"github.com/fcsim/matchcore/ai"
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/internal/eventlog"
	"github.com/fcsim/matchcore/internal/obs"
	"github.com/fcsim/matchcore/matchrand"
	"github.com/fcsim/matchcore/physics"
	"github.com/fcsim/matchcore/sched"
)

// Phase is the match's high-level state, advanced by the referee chain.
type Phase uint8

const (
	PreKickoff Phase = iota
	FirstHalf
	HalfTime
	SecondHalf
	FullTime
	ExtraTimeFirstHalf
	ExtraTimeBreak
	ExtraTimeSecondHalf
	PenaltyShootout
)

func (p Phase) Live() bool {
	switch p {
	case FirstHalf, SecondHalf, ExtraTimeFirstHalf, ExtraTimeSecondHalf:
		return true
	default:
		return false
	}
}

// Score holds goals scored by each side.
type Score struct {
	Home, Away int
}

// Side identifies a team within a Match.
type Side uint8

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	if s == Away {
		return "away"
	}
	return "home"
}

// RefereeInterval is how often the referee chain re-arms itself, through
// live play and breaks alike, until FullTime.
const RefereeInterval int64 = 500

// HalfDuration is the length of a regulation half, in ticks.
const HalfDuration sched.Tick = 45 * 60 * 1000

// Config configures a new Match.
type Config struct {
	Field     entity.Field
	HomeTeam  *entity.Team
	AwayTeam  *entity.Team
	FixtureID string

	// AI maps each player to the AI plug-in that deliberates for them. A
	// player with no entry never fires a PLAYER_AI event.
	AI map[entity.PlayerID]ai.AI

	Log     *eventlog.Log
	Metrics *obs.Metrics

	BallComputer   physics.BallComputer
	PlayerComputer physics.PlayerComputer

	// ExtraTimeEnabled governs what happens when SecondHalf ends level: a
	// knockout fixture sets this to play ExtraTimeFirstHalf/
	// ExtraTimeSecondHalf and, if still level, a PenaltyShootout; a league
	// fixture leaves it false and goes straight to FullTime regardless of
	// score, per spec.md's Phase enumeration.
	ExtraTimeEnabled bool
}

// Match is the aggregate that owns the field, both teams, the ball, the
// RNG, and the scheduler for the duration of one fixture. Every entity
// reachable from a Match lives and dies with it.
type Match struct {
	field entity.Field
	teams [2]*entity.Team
	ball  *entity.Ball
	rand  *matchrand.Source
	sched *sched.Scheduler

	score Score
	phase Phase

	possession *entity.PlayerID

	ai      map[entity.PlayerID]ai.AI
	log     *eventlog.Log
	metrics *obs.Metrics

	ballComputer   physics.BallComputer
	playerComputer physics.PlayerComputer

	ballHandle        sched.EventHandle
	ballArmed         bool
	lastBallTick      sched.Tick
	playerPhysicsLast map[entity.PlayerID]sched.Tick

	halfEndTick      sched.Tick
	extraTimeEnabled bool
	shootoutWinner   *Side
}

// New builds a Match from cfg, ready for Match.Start to schedule its
// initial events. It does not itself touch the scheduler.
func New(cfg Config) *Match {
	m := &Match{
		field:             cfg.Field,
		teams:             [2]*entity.Team{cfg.HomeTeam, cfg.AwayTeam},
		ball:              &entity.Ball{},
		rand:              matchrand.NewSourceFromFixtureID(cfg.FixtureID),
		sched:             sched.New(),
		ai:                cfg.AI,
		log:               cfg.Log,
		metrics:           cfg.Metrics,
		ballComputer:      cfg.BallComputer,
		playerComputer:    cfg.PlayerComputer,
		playerPhysicsLast: make(map[entity.PlayerID]sched.Tick),
		extraTimeEnabled:  cfg.ExtraTimeEnabled,
	}
	if m.ai == nil {
		m.ai = make(map[entity.PlayerID]ai.AI)
	}
	return m
}

// Scheduler returns the Match's scheduler, for wrapping with the real-time
// or headless driver. The returned scheduler belongs solely to this Match;
// it must never be shared across Matches.
func (m *Match) Scheduler() *sched.Scheduler { return m.sched }

// Team returns the roster for the given side.
func (m *Match) Team(side Side) *entity.Team { return m.teams[side] }

// BallEntity returns the live ball entity. Callers outside the match engine
// should treat this as read-only; only physics and KickBall mutate it. Named
// distinctly from the ai.View-satisfying Ball() in view.go, which returns a
// read-only ai.BallView copy instead of this live pointer.
func (m *Match) BallEntity() *entity.Ball { return m.ball }

// Score returns the current score.
func (m *Match) Score() Score { return m.score }

// Phase returns the current match phase.
func (m *Match) Phase() Phase { return m.phase }

// Possession returns the player the ball physics integrator last recorded
// contact with, or false if no player has touched the ball since the last
// kickoff. An out-of-bounds respot does not clear it.
func (m *Match) Possession() (entity.PlayerID, bool) {
	if m.possession == nil {
		return entity.PlayerID{}, false
	}
	return *m.possession, true
}

// ShootoutWinner returns the side that won a PenaltyShootout, once one has
// concluded. It is always false outside PenaltyShootout/FullTime reached via
// extra time.
func (m *Match) ShootoutWinner() (Side, bool) {
	if m.shootoutWinner == nil {
		return 0, false
	}
	return *m.shootoutWinner, true
}

// Field returns the pitch geometry.
func (m *Match) Field() entity.Field { return m.field }

// player looks up a player by ID across both rosters.
func (m *Match) player(id entity.PlayerID) (*entity.Player, entity.TeamID) {
	for _, team := range m.teams {
		if team == nil {
			continue
		}
		if p := team.PlayerByID(id); p != nil {
			return p, team.ID
		}
	}
	return nil, entity.TeamID{}
}

// allPlayers returns every player across both rosters.
func (m *Match) allPlayers() []*entity.Player {
	var out []*entity.Player
	for _, team := range m.teams {
		if team == nil {
			continue
		}
		out = append(out, team.Roster...)
	}
	return out
}
