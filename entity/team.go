package entity

import "github.com/google/uuid"

// TeamID identifies a team within a Match for the lifetime of the match.
type TeamID uuid.UUID

// NewTeamID generates a fresh, random TeamID.
func NewTeamID() TeamID {
	return TeamID(uuid.New())
}

func (id TeamID) String() string {
	return uuid.UUID(id).String()
}

// Tactics bundles the formation and instructions read by the AI layer.
// Its content is opaque configuration: the core never interprets Formation
// or Instructions, only ships them through to whichever AI callback is
// registered for each player.
type Tactics struct {
	Formation    string
	Instructions map[string]string
}

// Team owns an ordered roster and its tactics. A Team does not own a
// Scheduler or a Field; only the Match aggregate does.
type Team struct {
	ID      TeamID
	Name    string
	Roster  []*Player
	Tactics Tactics
}

// PlayerByID returns the roster player with the given ID, or nil if none
// matches.
func (t *Team) PlayerByID(id PlayerID) *Player {
	for _, p := range t.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}
