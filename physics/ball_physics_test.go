package physics

import (
	"testing"

	"github.com/fcsim/matchcore/entity"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBallSlowsUnderGroundFriction(t *testing.T) {
	c := DefaultBallComputer()
	b := &entity.Ball{Velocity: mgl64.Vec2{10, 0}}

	for i := 0; i < 100; i++ {
		c.TickMovement(b, 0.01)
	}

	if b.Speed() >= 10 {
		t.Fatalf("expected speed to decay, got %f", b.Speed())
	}
}

func TestBallSuspendsBelowThreshold(t *testing.T) {
	c := DefaultBallComputer()
	b := &entity.Ball{Velocity: mgl64.Vec2{0.0005, 0}}
	c.TickMovement(b, 0.01)

	if b.Velocity != (mgl64.Vec2{}) {
		t.Fatalf("expected velocity to zero out below threshold, got %v", b.Velocity)
	}
}

func TestBallBouncesOffGround(t *testing.T) {
	c := DefaultBallComputer()
	b := &entity.Ball{Height: 1, VerticalVelocity: -5}

	for i := 0; i < 200 && b.Height > 0; i++ {
		c.TickMovement(b, 0.01)
	}

	if b.VerticalVelocity <= 0 {
		t.Fatalf("expected an upward bounce, got vertical velocity %f", b.VerticalVelocity)
	}
}

func TestNextIntervalBounds(t *testing.T) {
	tests := []struct {
		speed   float64
		wantOK  bool
		wantMin int64
		wantMax int64
	}{
		{speed: 0, wantOK: false},
		{speed: 0.0001, wantOK: false},
		{speed: 0.5, wantOK: true, wantMin: 5, wantMax: 20},
		{speed: 25, wantOK: true, wantMin: 5, wantMax: 5},
	}
	for _, tt := range tests {
		ticks, ok := NextInterval(tt.speed)
		if ok != tt.wantOK {
			t.Fatalf("NextInterval(%f) ok = %v, want %v", tt.speed, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if ticks < tt.wantMin || ticks > tt.wantMax {
			t.Fatalf("NextInterval(%f) = %d, want in [%d, %d]", tt.speed, ticks, tt.wantMin, tt.wantMax)
		}
	}
}
