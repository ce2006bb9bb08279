package physics

import (
	"testing"

	"github.com/fcsim/matchcore/entity"
	"github.com/go-gl/mathgl/mgl64"
)

func TestPlayerSteersTowardTarget(t *testing.T) {
	c := DefaultPlayerComputer()
	body := &entity.Body{Position: mgl64.Vec2{0, 0}}
	target := mgl64.Vec2{10, 0}
	intent := entity.Intentions{TargetPosition: &target}

	for i := 0; i < 300; i++ {
		c.TickMovement(body, intent, 0.01)
	}

	if body.Position[0] <= 0 {
		t.Fatalf("expected player to move toward target, position = %v", body.Position)
	}
}

func TestPlayerNeverOvershootsTarget(t *testing.T) {
	c := DefaultPlayerComputer()
	body := &entity.Body{Position: mgl64.Vec2{0, 0}, Velocity: mgl64.Vec2{20, 0}}
	target := mgl64.Vec2{0.05, 0}
	intent := entity.Intentions{TargetPosition: &target}

	c.TickMovement(body, intent, 0.05)

	if body.Position[0] > target[0]+epsilon {
		t.Fatalf("overshot target: position = %v, target = %v", body.Position, target)
	}
}

func TestPlayerDragsToStopWithoutTarget(t *testing.T) {
	c := DefaultPlayerComputer()
	body := &entity.Body{Velocity: mgl64.Vec2{5, 0}}

	for i := 0; i < 500; i++ {
		c.TickMovement(body, entity.Intentions{}, 0.01)
	}

	if body.Velocity.Len() >= 5 {
		t.Fatalf("expected drag to slow the player, velocity = %v", body.Velocity)
	}
}

func TestFacingRotatesTowardTarget(t *testing.T) {
	c := DefaultPlayerComputer()
	body := &entity.Body{Facing: mgl64.Vec2{1, 0}}
	target := mgl64.Vec2{0, 1}
	intent := entity.Intentions{FaceTarget: &target}

	for i := 0; i < 60; i++ {
		c.TickMovement(body, intent, 0.01)
	}

	if body.Facing[1] <= 0 {
		t.Fatalf("expected facing to rotate toward target, facing = %v", body.Facing)
	}
}

func TestNextPlayerIntervalBounds(t *testing.T) {
	if got := NextPlayerInterval(0, 8); got != 50 {
		t.Fatalf("stationary interval = %d, want 50", got)
	}
	if got := NextPlayerInterval(8, 8); got != 10 {
		t.Fatalf("sprinting interval = %d, want 10", got)
	}
	if got := NextPlayerInterval(4, 8); got < 10 || got > 50 {
		t.Fatalf("interpolated interval = %d, want in [10, 50]", got)
	}
}
