package sim

import (
	"fmt"
	"strings"

	"github.com/Flavius4914/RTS-Engine/internal/config"
)

// Outcome classifies the state of a session.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// TeamTally counts one side's forces.
type TeamTally struct {
	Units         int
	Buildings     int
	UnitsLost     int
	BuildingsLost int
	Health        float64 // summed unit health
}

// Summary is a point-in-time report of a session.
type Summary struct {
	Outcome   Outcome
	Tick      int
	WonTick   int
	Player    TeamTally
	Enemy     TeamTally
	Resources map[string]int
	Produced  map[string]int
}

// Summarize reports the current state of w.
func Summarize(w *World) Summary {
	s := Summary{
		Tick:      w.tick,
		WonTick:   w.wonTick,
		Resources: w.stock.Amounts(),
		Produced:  make(map[string]int, len(config.ResourceKinds)),
	}
	if w.won {
		s.Outcome = OutcomeVictory
	}
	for _, k := range config.ResourceKinds {
		s.Produced[k] = w.stock.Produced(k)
	}
	for _, e := range w.roster {
		t := &s.Player
		if e.Team() == TeamEnemy {
			t = &s.Enemy
		}
		if e.Kind() == KindUnit {
			t.Units++
			t.Health += e.Health()
		} else {
			t.Buildings++
		}
	}
	s.Player.UnitsLost = w.lostUnits[TeamPlayer]
	s.Player.BuildingsLost = w.lostBuildings[TeamPlayer]
	s.Enemy.UnitsLost = w.lostUnits[TeamEnemy]
	s.Enemy.BuildingsLost = w.lostBuildings[TeamEnemy]
	return s
}

// String renders the summary as a short multi-line report.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", s.Tick)
	fmt.Fprintf(&sb, "Outcome: %s", s.Outcome)
	if s.Outcome == OutcomeVictory {
		fmt.Fprintf(&sb, " (T=%03d)", s.WonTick)
	}
	sb.WriteByte('\n')
	for _, side := range []struct {
		name string
		t    TeamTally
	}{{"Player", s.Player}, {"Enemy", s.Enemy}} {
		fmt.Fprintf(&sb, "%-6s units=%d (lost %d, hp %.0f)  buildings=%d (lost %d)\n",
			side.name, side.t.Units, side.t.UnitsLost, side.t.Health, side.t.Buildings, side.t.BuildingsLost)
	}
	sb.WriteString("Resources:")
	for _, k := range config.ResourceKinds {
		fmt.Fprintf(&sb, " %s=%d(+%d)", k, s.Resources[k], s.Produced[k])
	}
	sb.WriteByte('\n')
	return sb.String()
}
