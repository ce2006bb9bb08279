// Command matchsim-console is a debug driver for the matchcore engine: a
// small interactive REPL, built on github.com/c-bata/go-prompt, that lets a
// developer start a fixture, nudge the ball, and watch the scoreboard
// advance. It sits outside matchcore's own contract; hosts embedding the
// engine are not expected to use it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/fcsim/matchcore/ai"
	"github.com/fcsim/matchcore/aiplugin/reference"
	"github.com/fcsim/matchcore/entity"
	"github.com/fcsim/matchcore/internal/config"
	"github.com/fcsim/matchcore/internal/eventlog"
	"github.com/fcsim/matchcore/match"
	"github.com/fcsim/matchcore/physics"
	"github.com/fcsim/matchcore/sched/realtime"
)

const promptPrefix = "matchsim> "

func main() {
	fixtureID := flag.String("fixture", "demo-fixture", "fixture ID used to seed the match RNG")
	speed := flag.Float64("speed", 1.0, "initial simulated-ticks-per-wall-millisecond multiplier")
	calibrationPath := flag.String("calibration", "", "path to a TOML physics calibration file (optional, overrides defaults)")
	flag.Parse()

	log := eventlog.New(eventlog.Config{Logger: slog.Default()})
	m := newDemoMatch(*fixtureID, *calibrationPath, log)
	log.BindTicks(m.Scheduler())
	runner := realtime.New(m.Scheduler(), realtime.Config{Speed: *speed})

	c := &console{m: m, runner: runner}

	for {
		line := prompt.Input(promptPrefix, c.complete,
			prompt.OptionTitle("matchsim console"),
			prompt.OptionPrefix(promptPrefix),
			prompt.OptionCompletionOnDown(),
			prompt.OptionMaxSuggestion(12),
		)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !c.execute(line) {
			return
		}
	}
}

// newDemoMatch builds an eleven-a-side 4-4-2 fixture so the console has
// something to drive without needing a roster file. If calibrationPath is
// non-empty, its overrides are merged on top of the default ball and
// player physics constants.
func newDemoMatch(fixtureID, calibrationPath string, log *eventlog.Log) *match.Match {
	home := demoTeam("Home")
	away := demoTeam("Away")

	ballComputer, playerComputer := physics.DefaultBallComputer(), physics.DefaultPlayerComputer()
	if calibrationPath != "" {
		var err error
		ballComputer, playerComputer, err = config.LoadCalibration(calibrationPath, ballComputer, playerComputer)
		if err != nil {
			fmt.Println("calibration:", err)
		}
	}

	cfg := match.Config{
		Field:          entity.StandardField(),
		HomeTeam:       home,
		AwayTeam:       away,
		FixtureID:      fixtureID,
		AI:             demoAI(home, away),
		Log:            log,
		BallComputer:   ballComputer,
		PlayerComputer: playerComputer,
	}
	return match.New(cfg)
}

func demoTeam(name string) *entity.Team {
	t := &entity.Team{ID: entity.NewTeamID(), Name: name, Tactics: entity.Tactics{Formation: "4-4-2"}}
	formation := reference.DefaultFormations()
	sign := 1.0
	if name == "Away" {
		sign = -1.0
	}
	field := entity.StandardField()
	for i := 0; i < 11; i++ {
		slot, _ := formation.Slot("4-4-2", i)
		pos := mgl64.Vec2{sign * slot.X * field.Length, slot.Y * field.Width}
		t.Roster = append(t.Roster, &entity.Player{
			ID:     entity.NewPlayerID(),
			Number: i + 1,
			Body:   entity.Body{Position: pos},
			Skills: entity.Skills{Pace: 0.6, Stamina: 0.6, Passing: 0.6, Shooting: 0.6, Tackling: 0.6, Dribbling: 0.6, Positional: 0.6},
			Context: entity.Context{
				Role:          roleForSlot(i),
				Awareness:     0.7,
				FormationSlot: pos,
			},
		})
	}
	return t
}

func roleForSlot(i int) entity.Role {
	switch {
	case i == 0:
		return entity.RoleGoalkeeper
	case i >= 1 && i <= 4:
		return entity.RoleDefender
	case i >= 5 && i <= 8:
		return entity.RoleMidfielder
	default:
		return entity.RoleForward
	}
}

func demoAI(teams ...*entity.Team) map[entity.PlayerID]ai.AI {
	out := make(map[entity.PlayerID]ai.AI)
	for _, t := range teams {
		for _, p := range t.Roster {
			out[p.ID] = reference.AI{}
		}
	}
	return out
}

type console struct {
	m      *match.Match
	runner *realtime.Runner
}

func (c *console) execute(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "start":
		c.m.Start()
		c.runner.Start()
		fmt.Println("match started")
	case "pause":
		<-c.runner.Pause()
		fmt.Println("paused")
	case "resume":
		c.runner.Resume()
		fmt.Println("resumed")
	case "speed":
		if len(fields) != 2 {
			fmt.Println("usage: speed <multiplier>")
			break
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fmt.Println("invalid speed:", err)
			break
		}
		c.runner.SetSpeed(v)
	case "kick":
		if len(fields) != 4 {
			fmt.Println("usage: kick <vx> <vy> <vz>")
			break
		}
		vx, _ := strconv.ParseFloat(fields[1], 64)
		vy, _ := strconv.ParseFloat(fields[2], 64)
		vz, _ := strconv.ParseFloat(fields[3], 64)
		c.m.KickBall(mgl64.Vec2{vx, vy}, vz)
	case "status":
		snap := c.m.Snapshot()
		fmt.Printf("tick=%d phase=%d score=%d-%d ball=%v\n",
			snap.Tick, snap.Phase, snap.Score.Home, snap.Score.Away, snap.Ball.Position)
	case "quit", "exit":
		<-c.runner.Stop()
		return false
	default:
		fmt.Println("unknown command:", fields[0])
	}
	return true
}

func (c *console) complete(doc prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "start", Description: "begin the match"},
		{Text: "pause", Description: "pause real-time pacing"},
		{Text: "resume", Description: "resume real-time pacing"},
		{Text: "speed", Description: "set simulation speed multiplier"},
		{Text: "kick", Description: "kick <vx> <vy> <vz>"},
		{Text: "status", Description: "print the current snapshot"},
		{Text: "quit", Description: "stop and exit"},
	}
	return prompt.FilterHasPrefix(suggestions, doc.GetWordBeforeCursor(), true)
}
