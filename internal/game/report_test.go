package game

import (
	"strings"
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

func TestDebugReport(t *testing.T) {
	s, err := sim.NewScenario(
		sim.WithMapSize(10, 10),
		sim.WithPlayerUnit(2, 2),
		sim.WithEnemyUnit(7, 7),
	)
	if err != nil {
		t.Fatal(err)
	}
	w := s.World
	p := w.Units(sim.TeamPlayer)[0]
	p.SetSelected(true)
	p.MoveTo(0, 200)
	s.RunTicks(3)

	r := debugReport(w, 42, 5)
	for _, want := range []string{
		"seed=42 tick=3",
		"--- Summary at T=003 ---",
		"Selected:",
		p.Label(),
		"dest=(0,200)",
	} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}
