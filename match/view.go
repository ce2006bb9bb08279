package match

import (
	"github.com/fcsim/matchcore/ai"
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/matchrand"
	"github.com/fcsim/matchcore/sched"
)

// Match satisfies ai.View so it can be handed directly to an AI plug-in's
// Decide call from inside a PLAYER_AI callback (see engine.go). Every method
// here except Rand returns a copy, never a pointer into live entity state,
// preserving the read-only contract the AI boundary depends on. Rand returns
// the match's own generator, so an AI's draws advance the shared stream.

func (m *Match) CurrentTick() sched.Tick {
	return m.sched.CurrentTick()
}

func (m *Match) Ball() ai.BallView {
	return ai.BallView{
		Position: m.ball.Position,
		Height:   m.ball.Height,
		Velocity: m.ball.Velocity,
	}
}

func (m *Match) Players() []ai.PlayerView {
	players := m.allPlayers()
	out := make([]ai.PlayerView, 0, len(players))
	for _, p := range players {
		_, teamID := m.player(p.ID)
		out = append(out, ai.PlayerView{
			ID:      p.ID,
			TeamID:  teamID,
			Body:    p.Body,
			Skills:  p.Skills,
			Context: p.Context,
		})
	}
	return out
}

func (m *Match) Player(id entity.PlayerID) (ai.PlayerView, bool) {
	p, teamID := m.player(id)
	if p == nil {
		return ai.PlayerView{}, false
	}
	return ai.PlayerView{
		ID:      p.ID,
		TeamID:  teamID,
		Body:    p.Body,
		Skills:  p.Skills,
		Context: p.Context,
	}, true
}

func (m *Match) Tactics(team entity.TeamID) entity.Tactics {
	for _, t := range m.teams {
		if t != nil && t.ID == team {
			return t.Tactics
		}
	}
	return entity.Tactics{}
}

func (m *Match) Rand() *matchrand.Source {
	return m.rand
}
