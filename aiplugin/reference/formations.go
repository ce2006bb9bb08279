// Package reference is a sample implementation of the ai.AI boundary,
// outside the match engine's core package set, in the same way the
// teacher's own Whitelist loads its persisted state from a TOML file with
// pelletier/go-toml rather than any bespoke format. It exists to give the
// PLAYER_AI chain a concrete tenant for end-to-end matches and tests; hosts
// are free to ignore it and supply their own ai.AI implementation instead.
package reference

import (
	"github.com/fcsim/matchcore/internal/config"
)

// Slot is one formation position, expressed as a fraction of the pitch: X
// and Y each run from -0.5 to 0.5, so the same formation file works on any
// pitch size. The caller scales a slot against entity.Field when building a
// roster (cmd/matchsim-console does so); AI.Decide reads only the scaled
// Context.FormationSlot.
type Slot struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// formationFile is the on-disk shape of a formation preset file.
type formationFile struct {
	Formations map[string][]Slot `toml:"formations"`
}

// Formations maps a formation name (matched against entity.Tactics.Formation)
// to its ordered list of slots, one per roster position.
type Formations map[string][]Slot

// Slot returns the formation slot for the given formation name and roster
// index, or false if either is unknown.
func (f Formations) Slot(formation string, index int) (Slot, bool) {
	slots, ok := f[formation]
	if !ok || index < 0 || index >= len(slots) {
		return Slot{}, false
	}
	return slots[index], true
}

// LoadFormations reads formation presets from a TOML file at path.
func LoadFormations(path string) (Formations, error) {
	var f formationFile
	if err := config.Load(path, &f); err != nil {
		return nil, err
	}
	return Formations(f.Formations), nil
}

// DefaultFormations returns a small built-in set so callers that have no
// formation file on hand still get sensible positioning.
func DefaultFormations() Formations {
	return Formations{
		"4-4-2": {
			{X: -0.45, Y: 0.0},
			{X: -0.30, Y: -0.30}, {X: -0.30, Y: -0.10}, {X: -0.30, Y: 0.10}, {X: -0.30, Y: 0.30},
			{X: -0.05, Y: -0.30}, {X: -0.05, Y: -0.10}, {X: -0.05, Y: 0.10}, {X: -0.05, Y: 0.30},
			{X: 0.25, Y: -0.12}, {X: 0.25, Y: 0.12},
		},
		"4-3-3": {
			{X: -0.45, Y: 0.0},
			{X: -0.30, Y: -0.30}, {X: -0.30, Y: -0.10}, {X: -0.30, Y: 0.10}, {X: -0.30, Y: 0.30},
			{X: -0.05, Y: -0.20}, {X: -0.05, Y: 0.0}, {X: -0.05, Y: 0.20},
			{X: 0.30, Y: -0.25}, {X: 0.30, Y: 0.0}, {X: 0.30, Y: 0.25},
		},
	}
}
