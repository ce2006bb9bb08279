package entity

import "github.com/go-gl/mathgl/mgl64"

// Field describes pitch geometry. Units are metres, origin at the pitch
// centre, X along the length (goal to goal), Z... — the model is 2-D, so Y
// is used for the "across the pitch" axis to keep the Vec2 consistent with
// the rest of the entity model.
type Field struct {
	Length, Width      float64
	GoalWidth          float64
	PenaltyAreaLength  float64
	PenaltyAreaWidth   float64
	CentreCircleRadius float64
}

// StandardField returns a regulation-sized pitch (105m x 68m).
func StandardField() Field {
	return Field{
		Length:             105,
		Width:              68,
		GoalWidth:          7.32,
		PenaltyAreaLength:  16.5,
		PenaltyAreaWidth:   40.32,
		CentreCircleRadius: 9.15,
	}
}

// Contains reports whether pos lies within the playing area.
func (f Field) Contains(pos mgl64.Vec2) bool {
	halfLength, halfWidth := f.Length/2, f.Width/2
	return pos[0] >= -halfLength && pos[0] <= halfLength &&
		pos[1] >= -halfWidth && pos[1] <= halfWidth
}

// GoalSide identifies which end of the pitch a goal mouth belongs to.
type GoalSide uint8

const (
	GoalHome GoalSide = iota
	GoalAway
)

// CrossedGoalLine reports whether pos has crossed the goal line for the
// given side within the goal mouth extents (i.e. a goal, not a corner or a
// ball that has simply gone out wide of the post).
func (f Field) CrossedGoalLine(pos mgl64.Vec2, side GoalSide) bool {
	halfLength := f.Length / 2
	halfGoal := f.GoalWidth / 2
	if pos[1] < -halfGoal || pos[1] > halfGoal {
		return false
	}
	switch side {
	case GoalHome:
		return pos[0] <= -halfLength
	case GoalAway:
		return pos[0] >= halfLength
	default:
		return false
	}
}
