package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
	"github.com/Flavius4914/RTS-Engine/internal/mapgen"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// strikeTile is where the player strike force gathers in the skirmish
// scenario, just inside the aggro radius of the enemy guard post.
var strikeTile = [2]int{50, 8}

type runStats struct {
	runIndex int
	seed     int64

	firstEngageTick int
	firstDeathTick  int
	victoryTick     int

	engageEvents  int
	blockedEvents int
	playerDeaths  int
	enemyDeaths   int
	buildingsLost int

	summary sim.Summary
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var cfgPath string
	var squad int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base map seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "skirmish", "scenario name (skirmish, duel)")
	flag.StringVar(&cfgPath, "config", "", "YAML rules file (defaults when empty)")
	flag.IntVar(&squad, "squad", 6, "player strike force size in the skirmish scenario")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	build, ok := scenarios[scenario]
	if !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, scenarioNames())
		return
	}

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		s, err := build(cfg, seed, squad)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		s.RunUntil(func(w *sim.World) bool { return w.Won() }, ticks)
		rs := collectStats(s.Log.Entries(), s.Summary())
		rs.runIndex = i + 1
		rs.seed = seed
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

type scenarioFunc func(cfg *config.Config, seed int64, squad int) (*sim.Scenario, error)

var scenarios = map[string]scenarioFunc{
	"skirmish": skirmishScenario,
	"duel":     duelScenario,
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// skirmishScenario generates a map from seed, lays out the stock opening
// and sends a player strike force at the enemy keep.
func skirmishScenario(cfg *config.Config, seed int64, squad int) (*sim.Scenario, error) {
	opts := []sim.ScenarioOption{
		sim.WithConfig(cfg),
		sim.WithTerrainFunc(func(tm *sim.TileMap) {
			mapgen.Generate(tm, mapgen.New(seed), mapgen.DefaultOptions())
		}),
		sim.WithSkirmish(),
	}
	cx, cy := iso.TileToWorld(strikeTile[0], strikeTile[1])
	for _, p := range sim.FormationGrid(iso.Point{X: cx, Y: cy}, squad, cfg.Rules.FormationSpacing) {
		opts = append(opts, sim.WithUnitAt("", sim.TeamPlayer, p.X, p.Y))
	}
	s, err := sim.NewScenario(opts...)
	if err != nil {
		return nil, err
	}
	kx, ky := iso.TileToWorld(sim.EnemyKeep[0], sim.EnemyKeep[1])
	players := s.World.Units(sim.TeamPlayer)
	slots := sim.FormationGrid(iso.Point{X: kx, Y: ky}, len(players), cfg.Rules.FormationSpacing)
	for i, u := range players {
		u.MoveTo(slots[i].X, slots[i].Y)
	}
	return s, nil
}

// duelScenario pits one principal unit of each side against each other on
// a small open map.
func duelScenario(cfg *config.Config, _ int64, _ int) (*sim.Scenario, error) {
	px, py := iso.TileToWorld(2, 2)
	return sim.NewScenario(
		sim.WithConfig(cfg),
		sim.WithMapSize(10, 10),
		sim.WithUnitAt("", sim.TeamPlayer, px, py),
		sim.WithUnitAt("", sim.TeamEnemy, px+cfg.Rules.MeleeRadius*2/3, py),
	)
}

func collectStats(entries []sim.Event, sum sim.Summary) runStats {
	rs := runStats{
		firstEngageTick: firstTick(entries, "combat", "engage", ""),
		firstDeathTick:  firstTick(entries, "death", "unit", ""),
		victoryTick:     firstTick(entries, "outcome", "victory", ""),
		summary:         sum,
	}
	for _, e := range entries {
		switch {
		case e.Category == "combat" && e.Key == "engage":
			rs.engageEvents++
		case e.Category == "move" && e.Key == "blocked":
			rs.blockedEvents++
		case e.Category == "death" && e.Key == "unit":
			if e.Team == sim.TeamPlayer.String() {
				rs.playerDeaths++
			} else {
				rs.enemyDeaths++
			}
		case e.Category == "death" && e.Key == "building":
			rs.buildingsLost++
		}
	}
	return rs
}

func firstTick(entries []sim.Event, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_engage=%d first_death=%d victory=%d\n",
		rs.firstEngageTick, rs.firstDeathTick, rs.victoryTick)
	fmt.Printf("event_totals: engage=%d blocked=%d player_deaths=%d enemy_deaths=%d buildings_lost=%d\n",
		rs.engageEvents, rs.blockedEvents, rs.playerDeaths, rs.enemyDeaths, rs.buildingsLost)
	fmt.Print(rs.summary.String())
	fmt.Println()
}

func printAggregate(all []runStats) {
	var victories, totalEngage, totalBlocked, totalPlayerDeaths, totalEnemyDeaths int
	engageTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))
	victoryTicks := make([]int, 0, len(all))
	for _, rs := range all {
		totalEngage += rs.engageEvents
		totalBlocked += rs.blockedEvents
		totalPlayerDeaths += rs.playerDeaths
		totalEnemyDeaths += rs.enemyDeaths
		if rs.firstEngageTick >= 0 {
			engageTicks = append(engageTicks, rs.firstEngageTick)
		}
		if rs.firstDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.firstDeathTick)
		}
		if rs.victoryTick >= 0 {
			victories++
			victoryTicks = append(victoryTicks, rs.victoryTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victories=%d (%.0f%%)\n", len(all), victories, avg(victories*100, len(all)))
	fmt.Printf("avg_events_per_run: engage=%.1f blocked=%.1f player_deaths=%.1f enemy_deaths=%.1f\n",
		avg(totalEngage, len(all)), avg(totalBlocked, len(all)), avg(totalPlayerDeaths, len(all)), avg(totalEnemyDeaths, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_engage=%s first_death=%s victory=%s\n",
		avgTickString(engageTicks), avgTickString(deathTicks), avgTickString(victoryTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
