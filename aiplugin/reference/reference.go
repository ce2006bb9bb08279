package reference

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/fcsim/matchcore/ai"
	"github.com/fcsim/matchcore/entity"
)

// ChaseRadius is how close a player must be to the ball, in metres, before
// the reference AI abandons its formation slot and pressures the ball
// directly instead.
const ChaseRadius = 8.0

// KickChance is the probability, per Decide call within kicking range, that
// the reference AI commits to a kick this tick rather than continuing to
// close down the ball.
const KickChance = 0.35

// KickRange is how close the ball must be, in metres, before the reference
// AI will attempt a kick at all.
const KickRange = 1.2

// AI is a minimal AI plug-in: it holds position at Context.FormationSlot
// until the ball comes within ChaseRadius, at which point it closes down
// and, within KickRange, occasionally attempts a kick. It implements
// ai.AI and is meant as a runnable default, not a competitive tactic.
type AI struct{}

var _ ai.AI = AI{}

// Decide implements ai.AI.
func (AI) Decide(view ai.View, actingPlayer entity.PlayerID) entity.Intentions {
	self, ok := view.Player(actingPlayer)
	if !ok {
		return entity.Intentions{}
	}
	ball := view.Ball()

	toBall := ball.Position.Sub(self.Body.Position)
	distance := toBall.Len()

	target := self.Context.FormationSlot
	action := entity.ActionNone

	if distance <= ChaseRadius {
		target = ball.Position
		action |= entity.ActionSprint

		if distance <= KickRange && view.Rand().Bool(KickChance) {
			action |= entity.ActionKick
		}
	}

	face := target
	if distance <= ChaseRadius {
		face = ball.Position
	}

	return entity.Intentions{
		TargetPosition: vecPtr(target),
		FaceTarget:     vecPtr(face),
		Action:         action,
	}
}

func vecPtr(v mgl64.Vec2) *mgl64.Vec2 {
	return &v
}
