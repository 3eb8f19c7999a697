package sim

import (
	"fmt"
	"log/slog"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// Scenario is a headless World builder and runner. It drives the same Step
// as the interactive host, with no rendering, and is used by tests and the
// headless report.
type Scenario struct {
	World *World
	Log   *EventLog

	cfg     *config.Config
	width   int
	height  int
	verbose bool
	logger  *slog.Logger
	terrain []func(*TileMap)
	err     error
}

// scenarioOptionKind controls the pass in which an option is applied.
type scenarioOptionKind int

const (
	scenarioOptInfra    scenarioOptionKind = iota // config, map size, verbose
	scenarioOptTerrain                            // terrain edits, applied to the fresh map
	scenarioOptEntities                           // buildings and units, applied to the World
)

// ScenarioOption is a builder step applied during NewScenario.
type ScenarioOption struct {
	kind scenarioOptionKind
	fn   func(*Scenario)
}

// WithConfig replaces the default rule set. Map size options applied
// afterwards still win.
func WithConfig(cfg *config.Config) ScenarioOption {
	return ScenarioOption{scenarioOptInfra, func(s *Scenario) {
		s.cfg = cfg
		s.width = cfg.Map.Width
		s.height = cfg.Map.Height
	}}
}

// WithMapSize sets the grid dimensions in tiles.
func WithMapSize(w, h int) ScenarioOption {
	return ScenarioOption{scenarioOptInfra, func(s *Scenario) {
		s.width = w
		s.height = h
	}}
}

// WithVerbose enables per-step movement logging.
func WithVerbose(v bool) ScenarioOption {
	return ScenarioOption{scenarioOptInfra, func(s *Scenario) {
		s.verbose = v
	}}
}

// WithScenarioLogger sets the diagnostics logger of the World.
func WithScenarioLogger(l *slog.Logger) ScenarioOption {
	return ScenarioOption{scenarioOptInfra, func(s *Scenario) {
		s.logger = l
	}}
}

// WithTerrain sets the terrain of one tile.
func WithTerrain(x, y int, t Terrain) ScenarioOption {
	return ScenarioOption{scenarioOptTerrain, func(s *Scenario) {
		s.terrain = append(s.terrain, func(tm *TileMap) { tm.SetTerrain(x, y, t) })
	}}
}

// WithTerrainFunc runs fn over the fresh map, e.g. a map generator.
func WithTerrainFunc(fn func(*TileMap)) ScenarioOption {
	return ScenarioOption{scenarioOptTerrain, func(s *Scenario) {
		s.terrain = append(s.terrain, fn)
	}}
}

// WithBuilding places a building anchored at tile (tx, ty). produce binds
// producing types to the stockpile.
func WithBuilding(btype string, tx, ty int, produce bool) ScenarioOption {
	return ScenarioOption{scenarioOptEntities, func(s *Scenario) {
		_, err := s.World.AddBuilding(btype, tx, ty, produce)
		s.fail(err)
	}}
}

// WithPlayerUnit adds a principal-type player unit on tile (tx, ty).
func WithPlayerUnit(tx, ty int) ScenarioOption {
	wx, wy := iso.TileToWorld(tx, ty)
	return WithUnitAt("", TeamPlayer, wx, wy)
}

// WithEnemyUnit adds a principal-type enemy unit on tile (tx, ty).
func WithEnemyUnit(tx, ty int) ScenarioOption {
	wx, wy := iso.TileToWorld(tx, ty)
	return WithUnitAt("", TeamEnemy, wx, wy)
}

// WithUnitAt adds a unit at world position (x, y). An empty utype means the
// principal unit type.
func WithUnitAt(utype string, team Team, x, y float64) ScenarioOption {
	return ScenarioOption{scenarioOptEntities, func(s *Scenario) {
		t := utype
		if t == "" {
			t = s.cfg.Rules.PrincipalUnit
		}
		_, err := s.World.AddUnit(t, team, x, y)
		s.fail(err)
	}}
}

// WithSkirmish applies the stock opening layout.
func WithSkirmish() ScenarioOption {
	return ScenarioOption{scenarioOptEntities, func(s *Scenario) {
		s.fail(SetupSkirmish(s.World))
	}}
}

func (s *Scenario) fail(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// NewScenario builds a World from opts in three ordered passes:
//  1. Infrastructure (config, map size, verbose)
//  2. Terrain edits on a grass map
//  3. Buildings and units, in option order
func NewScenario(opts ...ScenarioOption) (*Scenario, error) {
	cfg := config.Default()
	s := &Scenario{cfg: cfg, width: cfg.Map.Width, height: cfg.Map.Height}
	for _, o := range opts {
		if o.kind == scenarioOptInfra {
			o.fn(s)
		}
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("scenario map %dx%d: %w", s.width, s.height, ErrOutOfBounds)
	}
	for _, o := range opts {
		if o.kind == scenarioOptTerrain {
			o.fn(s)
		}
	}
	tm := NewTileMap(s.width, s.height)
	for _, fn := range s.terrain {
		fn(tm)
	}

	s.Log = NewEventLog(s.verbose, 0)
	wopts := []WorldOption{WithEventLog(s.Log)}
	if s.logger != nil {
		wopts = append(wopts, WithLogger(s.logger))
	}
	s.World = NewWorld(s.cfg, tm, wopts...)
	for _, o := range opts {
		if o.kind == scenarioOptEntities {
			o.fn(s)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// RunTicks advances the World n ticks.
func (s *Scenario) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.World.Step()
	}
}

// RunUntil advances the World up to maxTicks, stopping early once predicate
// holds. It returns the tick at which the predicate was satisfied, or -1.
func (s *Scenario) RunUntil(predicate func(*World) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.World.Step()
		if predicate(s.World) {
			return s.World.Tick()
		}
	}
	return -1
}

// Summary reports the current state.
func (s *Scenario) Summary() Summary {
	return Summarize(s.World)
}
