package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// PlayerID identifies a player within a Match for the lifetime of the match.
// Using a stable ID rather than a pointer lets the AI boundary (§6 of the
// spec) hand out references that remain valid even if the backing storage is
// later reshuffled into an arena, per the arena + stable indices design
// note.
type PlayerID uuid.UUID

// NewPlayerID generates a fresh, random PlayerID.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New())
}

func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

// Body is the physical state of a player: position, facing direction (a unit
// vector, or the zero vector if facing is undefined), and velocity.
type Body struct {
	Position mgl64.Vec2
	Facing   mgl64.Vec2
	Velocity mgl64.Vec2
}

// Speed returns the magnitude of the player's velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// Sprinting reports whether the player is moving at or above
// SprintSpeedThreshold. The player physics chain's re-scheduling interval
// does not use it: match/engine.go derives that interval from speed
// relative to PlayerComputer.MaxSpeed (physics.NextPlayerInterval).
func (b *Body) Sprinting() bool {
	return b.Speed() >= SprintSpeedThreshold
}

// SprintSpeedThreshold is the velocity magnitude, in metres per second, at or
// above which a player is considered to be sprinting.
const SprintSpeedThreshold = 5.5

// Skills is opaque to the scheduler and the physics integrators: it is read
// by AI callbacks, and by the match engine only to scale kick power by
// Shooting (tryKick in match/engine.go).
type Skills struct {
	Pace       float64
	Stamina    float64
	Passing    float64
	Shooting   float64
	Tackling   float64
	Dribbling  float64
	Positional float64
}

// Context holds the AI-relevant situational state the core still needs to
// compute re-scheduling intervals from (distance to ball, attentiveness),
// without interpreting their gameplay meaning.
type Context struct {
	Role          Role
	Awareness     float64 // 0 (oblivious) .. 1 (fully attentive)
	FormationSlot mgl64.Vec2
}

// Role is the nominal playing position, read by AI and left uninterpreted by
// the core.
type Role uint8

const (
	RoleGoalkeeper Role = iota
	RoleDefender
	RoleMidfielder
	RoleForward
)

// Intentions is the player's desired next action, written by the AI
// callback and read by the player physics integrator; the match engine's
// tryKick also reads and clears ActionKick. Both pointer fields are
// optional: a nil TargetPosition or FaceTarget means "hold position" /
// "keep current facing".
type Intentions struct {
	TargetPosition *mgl64.Vec2
	FaceTarget     *mgl64.Vec2
	Action         ActionFlags
}

// ActionFlags are discrete action requests layered on top of steering, e.g.
// "attempt a tackle this tick". The core does not interpret individual bits
// beyond passing them through to whichever collaborator (referee chain,
// physics) owns that action.
type ActionFlags uint16

const (
	ActionNone ActionFlags = 0
	ActionKick ActionFlags = 1 << (iota - 1)
	ActionTackle
	ActionSlide
	ActionSprint
)

// Has reports whether all bits in want are set.
func (a ActionFlags) Has(want ActionFlags) bool {
	return a&want == want
}

// Player aggregates everything owned by one roster slot: its stable ID, its
// physical body, its opaque skills/context, and the intentions most recently
// written by its AI chain.
type Player struct {
	ID      PlayerID
	Body    Body
	Skills  Skills
	Context Context
	Intent  Intentions

	// Number is the shirt number, purely descriptive.
	Number int
}
