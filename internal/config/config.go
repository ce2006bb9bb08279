// Package config loads tactics and physics calibration data from TOML
// files, the same format and library (pelletier/go-toml) the reference AI
// plug-in already used for its own formation presets. It lives under
// internal/ because the file layout it reads is this repo's own convention,
// not part of the public API a host is required to depend on.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/fcsim/matchcore/physics"
)

// Load reads the TOML file at path and unmarshals it into v, which must be
// a pointer. Callers get a path- and stage-qualified error on failure
// rather than a bare os/toml error.
func Load(path string, v interface{}) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(contents, v); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// BallCalibration overrides a subset of physics.BallComputer's fields. A
// nil field leaves the corresponding DefaultBallComputer value in place, so
// a calibration file only needs to name the constants it wants to change.
type BallCalibration struct {
	Gravity        *float64 `toml:"gravity"`
	GroundFriction *float64 `toml:"ground_friction"`
	AirFriction    *float64 `toml:"air_friction"`
	Restitution    *float64 `toml:"restitution"`
}

// PlayerCalibration overrides a subset of physics.PlayerComputer's fields.
type PlayerCalibration struct {
	MaxSpeed     *float64 `toml:"max_speed"`
	Acceleration *float64 `toml:"acceleration"`
	Drag         *float64 `toml:"drag"`
	TurnRate     *float64 `toml:"turn_rate"`
}

// Calibration is the on-disk shape of a physics calibration file: separate
// ball and player sections, either of which may be omitted entirely.
type Calibration struct {
	Ball   BallCalibration   `toml:"ball"`
	Player PlayerCalibration `toml:"player"`
}

// LoadCalibration reads a calibration file at path and applies its
// overrides on top of base, returning the merged computers. base is
// untouched; callers typically pass physics.DefaultBallComputer() and
// physics.DefaultPlayerComputer().
func LoadCalibration(path string, base physics.BallComputer, basePlayer physics.PlayerComputer) (physics.BallComputer, physics.PlayerComputer, error) {
	var cal Calibration
	if err := Load(path, &cal); err != nil {
		return base, basePlayer, err
	}
	applyBall(&base, cal.Ball)
	applyPlayer(&basePlayer, cal.Player)
	return base, basePlayer, nil
}

func applyBall(c *physics.BallComputer, o BallCalibration) {
	if o.Gravity != nil {
		c.Gravity = *o.Gravity
	}
	if o.GroundFriction != nil {
		c.GroundFriction = *o.GroundFriction
	}
	if o.AirFriction != nil {
		c.AirFriction = *o.AirFriction
	}
	if o.Restitution != nil {
		c.Restitution = *o.Restitution
	}
}

func applyPlayer(c *physics.PlayerComputer, o PlayerCalibration) {
	if o.MaxSpeed != nil {
		c.MaxSpeed = *o.MaxSpeed
	}
	if o.Acceleration != nil {
		c.Acceleration = *o.Acceleration
	}
	if o.Drag != nil {
		c.Drag = *o.Drag
	}
	if o.TurnRate != nil {
		c.TurnRate = *o.TurnRate
	}
}
