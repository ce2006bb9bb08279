package match

import (
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/sched"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerSnapshot is a value-type view of one player's state at the moment
// Snapshot was called. It holds no reference into live entity state, so a
// viewer that reads it after the next tick has fired sees the old values,
// never a torn mix within the snapshot itself — though across repeated
// Snapshot calls reads may still be torn relative to one another, which
// viewers are expected to tolerate.
type PlayerSnapshot struct {
	ID       entity.PlayerID
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Facing   mgl64.Vec2
	Number   int
}

// BallSnapshot is a value-type view of ball state.
type BallSnapshot struct {
	Position mgl64.Vec2
	Height   float64
	Velocity mgl64.Vec2
}

// Snapshot is the viewer-facing boundary: a snapshot reader returning
// current positions, velocities, facing directions, and score. Viewers
// interpolate between reads; they never call back into the scheduler.
type Snapshot struct {
	Tick       sched.Tick
	Phase      Phase
	Score      Score
	Ball       BallSnapshot
	Players    []PlayerSnapshot
	Possession *entity.PlayerID
}

// Snapshot takes a read-only snapshot of the match's current state.
func (m *Match) Snapshot() Snapshot {
	players := m.allPlayers()
	out := make([]PlayerSnapshot, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerSnapshot{
			ID:       p.ID,
			Position: p.Body.Position,
			Velocity: p.Body.Velocity,
			Facing:   p.Body.Facing,
			Number:   p.Number,
		})
	}
	var possession *entity.PlayerID
	if id, ok := m.Possession(); ok {
		possession = &id
	}
	return Snapshot{
		Tick:  m.sched.CurrentTick(),
		Phase: m.phase,
		Score: m.score,
		Ball: BallSnapshot{
			Position: m.ball.Position,
			Height:   m.ball.Height,
			Velocity: m.ball.Velocity,
		},
		Players:    out,
		Possession: possession,
	}
}
