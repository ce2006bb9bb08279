package reference

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/fcsim/matchcore/ai"
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/matchrand"
	"github.com/fcsim/matchcore/sched"
)

// stubView is a minimal ai.View for exercising AI.Decide in isolation.
type stubView struct {
	ball    ai.BallView
	players map[entity.PlayerID]ai.PlayerView
	field   entity.Field
	rand    *matchrand.Source
}

func (v stubView) CurrentTick() sched.Tick { return 0 }
func (v stubView) Ball() ai.BallView        { return v.ball }
func (v stubView) Players() []ai.PlayerView {
	out := make([]ai.PlayerView, 0, len(v.players))
	for _, p := range v.players {
		out = append(out, p)
	}
	return out
}
func (v stubView) Player(id entity.PlayerID) (ai.PlayerView, bool) {
	p, ok := v.players[id]
	return p, ok
}
func (v stubView) Field() entity.Field                 { return v.field }
func (v stubView) Tactics(entity.TeamID) entity.Tactics { return entity.Tactics{} }
func (v stubView) Rand() *matchrand.Source             { return v.rand }
func (v stubView) Possession() (entity.PlayerID, bool) { return entity.PlayerID{}, false }

func newStubView(self ai.PlayerView, ball ai.BallView) stubView {
	return stubView{
		ball:    ball,
		players: map[entity.PlayerID]ai.PlayerView{self.ID: self},
		field:   entity.StandardField(),
		rand:    matchrand.NewSource(1),
	}
}

func TestDecideHoldsFormationSlotWhenBallIsFar(t *testing.T) {
	id := entity.NewPlayerID()
	slot := mgl64.Vec2{-10, 5}
	self := ai.PlayerView{
		ID:      id,
		Body:    entity.Body{Position: mgl64.Vec2{-10, 5}},
		Context: entity.Context{FormationSlot: slot},
	}
	view := newStubView(self, ai.BallView{Position: mgl64.Vec2{40, -20}})

	intent := AI{}.Decide(view, id)

	if intent.TargetPosition == nil || *intent.TargetPosition != slot {
		t.Fatalf("target = %v, want formation slot %v", intent.TargetPosition, slot)
	}
	if intent.Action.Has(entity.ActionSprint) {
		t.Fatal("expected no sprint while far from the ball")
	}
}

func TestDecideChasesBallWithinChaseRadius(t *testing.T) {
	id := entity.NewPlayerID()
	self := ai.PlayerView{
		ID:      id,
		Body:    entity.Body{Position: mgl64.Vec2{0, 0}},
		Context: entity.Context{FormationSlot: mgl64.Vec2{-10, 0}},
	}
	ballPos := mgl64.Vec2{3, 0}
	view := newStubView(self, ai.BallView{Position: ballPos})

	intent := AI{}.Decide(view, id)

	if intent.TargetPosition == nil || *intent.TargetPosition != ballPos {
		t.Fatalf("target = %v, want ball position %v", intent.TargetPosition, ballPos)
	}
	if !intent.Action.Has(entity.ActionSprint) {
		t.Fatal("expected sprint while chasing the ball")
	}
}

func TestDecideReturnsZeroIntentionsForUnknownPlayer(t *testing.T) {
	view := newStubView(ai.PlayerView{ID: entity.NewPlayerID()}, ai.BallView{})
	intent := AI{}.Decide(view, entity.NewPlayerID())
	if intent != (entity.Intentions{}) {
		t.Fatalf("expected zero-value Intentions for unknown player, got %+v", intent)
	}
}
