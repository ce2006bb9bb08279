// Package ai defines the boundary between the match engine and AI
// plug-ins: a read-only view of match state in, a single Intentions record
// out. AI plug-ins are invoked only from inside a PLAYER_AI event callback
// (see match/engine.go); nothing in this package schedules anything.
package ai

import (
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/matchrand"
	"github.com/fcsim/matchcore/sched"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerView is the read-only information about one player exposed to AI.
type PlayerView struct {
	ID      entity.PlayerID
	TeamID  entity.TeamID
	Body    entity.Body
	Skills  entity.Skills
	Context entity.Context
}

// BallView is the read-only information about the ball exposed to AI.
type BallView struct {
	Position mgl64.Vec2
	Height   float64
	Velocity mgl64.Vec2
}

// View is the read-only window into match state an AI plug-in receives. It
// is always a snapshot — AI plug-ins never call back into the scheduler,
// the same one-way contract viewers get.
type View interface {
	CurrentTick() sched.Tick
	Ball() BallView
	Players() []PlayerView
	Player(id entity.PlayerID) (PlayerView, bool)
	Field() entity.Field
	Tactics(team entity.TeamID) entity.Tactics
	Rand() *matchrand.Source
	// Possession returns the player the ball physics integrator last
	// recorded contact with, or false if nobody has touched the ball since
	// the last kickoff.
	Possession() (entity.PlayerID, bool)
}

// AI deliberates for exactly one player per Decide call, producing the
// Intentions the player physics chain will steer toward. Implementations
// must not retain view or mutate anything through it; View is read-only by
// contract, not by the type system.
type AI interface {
	Decide(view View, actingPlayer entity.PlayerID) entity.Intentions
}

// Func adapts a plain function to the AI interface.
type Func func(view View, actingPlayer entity.PlayerID) entity.Intentions

func (f Func) Decide(view View, actingPlayer entity.PlayerID) entity.Intentions {
	return f(view, actingPlayer)
}
