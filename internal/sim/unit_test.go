package sim

import (
	"math"
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/config"
)

func swordsman(id EntityID, team Team, x, y float64) *Unit {
	return NewUnit(id, "Swordsman", config.Default().Units["Swordsman"], team, x, y)
}

func tickWith(roster ...Entity) *TickContext {
	return NewTickContext(1, config.Default().Rules, roster, NewEventLog(false, 0))
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// --- Movement ---

func TestUnit_StepLengthEqualsSpeed(t *testing.T) {
	u := swordsman(1, TeamPlayer, 0, 0)
	u.MoveTo(100, 75)
	u.Update(tickWith(u))

	moved := math.Hypot(u.x, u.y)
	if !near(moved, u.speed) {
		t.Fatalf("moved %.6f, want %.1f", moved, u.speed)
	}
	if _, ok := u.Destination(); !ok {
		t.Fatal("destination should remain set mid-route")
	}
}

func TestUnit_ArrivesExactlyWithinOneStep(t *testing.T) {
	u := swordsman(1, TeamPlayer, 10, 10)
	u.MoveTo(11.5, 10.5)
	u.Update(tickWith(u))

	if u.x != 11.5 || u.y != 10.5 {
		t.Fatalf("position = (%g,%g), want (11.5,10.5)", u.x, u.y)
	}
	if _, ok := u.Destination(); ok {
		t.Fatal("destination should be cleared on arrival")
	}
}

func TestUnit_ReachesDistantDestination(t *testing.T) {
	u := swordsman(1, TeamPlayer, 0, 0)
	u.MoveTo(0, 41)
	for i := 0; i < 21; i++ {
		u.Update(tickWith(u))
	}
	if u.y != 41 {
		t.Fatalf("y = %g after 21 steps, want 41", u.y)
	}
	if _, ok := u.Destination(); ok {
		t.Fatal("destination should be cleared")
	}
}

func TestUnit_BlockedByNeighbourAbandonsDestination(t *testing.T) {
	u := swordsman(1, TeamPlayer, 0, 0)
	other := swordsman(2, TeamPlayer, 20, 0)
	u.MoveTo(100, 0)
	u.Update(tickWith(u, other))

	if u.x != 0 || u.y != 0 {
		t.Fatalf("blocked unit moved to (%g,%g)", u.x, u.y)
	}
	if _, ok := u.Destination(); ok {
		t.Fatal("blocked unit should drop its destination")
	}
}

func TestUnit_SeparationIsStrict(t *testing.T) {
	u := swordsman(1, TeamPlayer, 0, 0)
	other := swordsman(2, TeamPlayer, 30, 0)
	// Candidate (2,0) is exactly 28 from the neighbour: allowed.
	u.MoveTo(100, 0)
	u.Update(tickWith(u, other))
	if u.x != 2 {
		t.Fatalf("x = %g, want 2", u.x)
	}
}

func TestUnit_BlockedByBuilding(t *testing.T) {
	def := config.Default().Buildings["Farm"]
	// Farm at tile (0,0): world box [-32,32]x[0,32].
	b := NewBuilding(2, "Farm", def, 0, 0, nil)
	u := swordsman(1, TeamPlayer, 0, -17)
	u.MoveTo(0, -5)
	u.Update(tickWith(u, b))

	if u.y != -17 {
		t.Fatalf("unit moved into building contact: y = %g", u.y)
	}
	if _, ok := u.Destination(); ok {
		t.Fatal("destination should be abandoned")
	}
}

// --- Combat ---

func TestUnit_MeleeExchange(t *testing.T) {
	a := swordsman(1, TeamPlayer, 0, 0)
	b := swordsman(2, TeamEnemy, 20, 0)
	ctx := tickWith(a, b)
	a.Update(ctx)
	b.Update(ctx)

	// Each side: own update costs 10×0.05, the opponent's costs 10×0.1.
	for _, u := range []*Unit{a, b} {
		if !near(u.health, 98.5) {
			t.Fatalf("%s health = %.4f, want 98.5", u.Label(), u.health)
		}
		if !u.Engaged() {
			t.Fatalf("%s should be engaged", u.Label())
		}
	}
}

func TestUnit_MeleeRadiusIsStrict(t *testing.T) {
	a := swordsman(1, TeamPlayer, 0, 0)
	b := swordsman(2, TeamEnemy, 30, 0)
	ctx := tickWith(a, b)
	a.Update(ctx)
	b.Update(ctx)
	if a.health != 100 || b.health != 100 {
		t.Fatalf("no exchange expected at exactly 30: %g / %g", a.health, b.health)
	}
}

func TestUnit_SameTeamDoesNotFight(t *testing.T) {
	a := swordsman(1, TeamPlayer, 0, 0)
	b := swordsman(2, TeamPlayer, 5, 0)
	ctx := tickWith(a, b)
	a.Update(ctx)
	b.Update(ctx)
	if a.health != 100 || b.health != 100 {
		t.Fatal("allies must not damage each other")
	}
}

func TestUnit_EngagementClearsDestination(t *testing.T) {
	a := swordsman(1, TeamPlayer, 0, 0)
	b := swordsman(2, TeamEnemy, 20, 0)
	a.MoveTo(500, 500)
	a.Update(tickWith(a, b))
	if _, ok := a.Destination(); ok {
		t.Fatal("engaged unit should drop its destination")
	}
	if a.x != 0 || a.y != 0 {
		t.Fatal("engaged unit must not move")
	}
}

func TestUnit_HealthNeverNegative(t *testing.T) {
	def := config.Default().Units["Swordsman"]
	def.MaxHealth = 5
	weak := NewUnit(1, "Swordsman", def, TeamPlayer, 0, 0)

	brute := config.Default().Units["Swordsman"]
	brute.AttackDamage = 20000 // 20000 × 0.05 = 1000 in one exchange
	ogre := NewUnit(2, "Swordsman", brute, TeamEnemy, 10, 0)

	weak.Update(tickWith(weak, ogre))
	if weak.health != 0 {
		t.Fatalf("health = %g, want 0", weak.health)
	}
	if weak.Alive() {
		t.Fatal("unit at zero health should not be alive")
	}
}

func TestUnit_AttacksHostileBuildingOnContact(t *testing.T) {
	def := config.Default().Buildings["EnemyStonekeep"]
	// Box [-64,64]x[96,160].
	keep := NewBuilding(2, "EnemyStonekeep", def, 3, 3, nil)
	inside := swordsman(1, TeamPlayer, 0, 90)
	edge := swordsman(3, TeamPlayer, 0, 80)
	ctx := tickWith(inside, edge, keep)
	inside.Update(ctx)
	edge.Update(ctx)

	want := 100 - 2*10*0.08
	if !near(keep.health, want) {
		t.Fatalf("keep health = %.4f, want %.4f", keep.health, want)
	}
}

func TestUnit_IgnoresFriendlyBuilding(t *testing.T) {
	def := config.Default().Buildings["Stonekeep"]
	keep := NewBuilding(2, "Stonekeep", def, 3, 3, nil)
	u := swordsman(1, TeamPlayer, 0, 90)
	u.Update(tickWith(u, keep))
	if keep.health != 100 {
		t.Fatalf("friendly keep damaged: %g", keep.health)
	}
}

func TestBuildingHostileTo(t *testing.T) {
	cases := []struct {
		btype string
		team  Team
		want  bool
	}{
		{"EnemyStonekeep", TeamPlayer, true},
		{"enemy_tower", TeamPlayer, true},
		{"Stonekeep", TeamPlayer, false},
		{"Stonekeep", TeamEnemy, true},
		{"EnemyStonekeep", TeamEnemy, false},
	}
	for _, c := range cases {
		if got := BuildingHostileTo(c.btype, c.team); got != c.want {
			t.Fatalf("BuildingHostileTo(%q, %s) = %v, want %v", c.btype, c.team, got, c.want)
		}
	}
}

func TestUnit_NonFinitePositionIsContained(t *testing.T) {
	u := swordsman(1, TeamPlayer, math.NaN(), 0)
	u.MoveTo(10, 10)
	log := NewEventLog(false, 0)
	ctx := NewTickContext(1, config.Default().Rules, []Entity{u}, log)
	u.Update(ctx)
	if !log.HasEntry("guard", "bad_position", "") {
		t.Fatal("expected a guard event")
	}
	if _, ok := u.Destination(); ok {
		t.Fatal("destination should be dropped")
	}
}

// --- Screen cache ---

func TestUnit_ScreenCacheInvalidatedOnMove(t *testing.T) {
	u := swordsman(1, TeamPlayer, 10, 10)
	if p := u.ScreenPos(2); p.X != 20 || p.Y != 20 {
		t.Fatalf("screen pos = %+v", p)
	}
	u.SetPosition(30, 40)
	if p := u.ScreenPos(2); p.X != 60 || p.Y != 80 {
		t.Fatalf("stale screen pos after move: %+v", p)
	}
	if g := u.Geometry(1); len(g) != 3 {
		t.Fatalf("unit geometry has %d points, want 3", len(g))
	}
}
