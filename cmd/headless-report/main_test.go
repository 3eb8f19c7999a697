package main

import (
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

func TestCollectStats_CountsByCategory(t *testing.T) {
	entries := []sim.Event{
		{Tick: 3, Entity: "P1", Team: "player", Category: "combat", Key: "engage"},
		{Tick: 4, Entity: "E2", Team: "enemy", Category: "combat", Key: "engage"},
		{Tick: 5, Entity: "P3", Team: "player", Category: "move", Key: "blocked"},
		{Tick: 9, Entity: "E2", Team: "enemy", Category: "death", Key: "unit"},
		{Tick: 12, Entity: "P1", Team: "player", Category: "death", Key: "unit"},
		{Tick: 12, Entity: "--", Team: "--", Category: "outcome", Key: "victory"},
	}
	rs := collectStats(entries, sim.Summary{})
	if rs.firstEngageTick != 3 || rs.firstDeathTick != 9 || rs.victoryTick != 12 {
		t.Fatalf("markers = %d/%d/%d, want 3/9/12", rs.firstEngageTick, rs.firstDeathTick, rs.victoryTick)
	}
	if rs.engageEvents != 2 || rs.blockedEvents != 1 {
		t.Fatalf("engage=%d blocked=%d, want 2/1", rs.engageEvents, rs.blockedEvents)
	}
	if rs.playerDeaths != 1 || rs.enemyDeaths != 1 {
		t.Fatalf("deaths player=%d enemy=%d, want 1/1", rs.playerDeaths, rs.enemyDeaths)
	}
}

func TestFirstTick_MissingIsNegative(t *testing.T) {
	if got := firstTick(nil, "combat", "engage", ""); got != -1 {
		t.Fatalf("firstTick = %d, want -1", got)
	}
}

func TestDuelScenario_EndsInMutualKill(t *testing.T) {
	s, err := duelScenario(config.Default(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	s.RunUntil(func(w *sim.World) bool { return w.Won() }, 200)
	rs := collectStats(s.Log.Entries(), s.Summary())
	if rs.victoryTick != 67 {
		t.Fatalf("victory at %d, want 67", rs.victoryTick)
	}
	if rs.playerDeaths != 1 || rs.enemyDeaths != 1 {
		t.Fatalf("deaths player=%d enemy=%d, want 1/1", rs.playerDeaths, rs.enemyDeaths)
	}
}

func TestSkirmishScenario_Builds(t *testing.T) {
	s, err := skirmishScenario(config.Default(), 42, 6)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.World.Units(sim.TeamPlayer)); n != 6 {
		t.Fatalf("player units = %d, want 6", n)
	}
	if n := len(s.World.Units(sim.TeamEnemy)); n != 5 {
		t.Fatalf("enemy units = %d, want 5", n)
	}
	for _, u := range s.World.Units(sim.TeamPlayer) {
		if _, ok := u.Destination(); !ok {
			t.Fatalf("%s has no order", u.Label())
		}
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("got %q", got)
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("got %q", got)
	}
}
