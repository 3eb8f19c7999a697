// Package config holds the tunable rules of the simulation and the unit and
// building catalogues. Defaults reproduce the stock game; a YAML file may
// override any subset of them.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Resource kind names accepted in costs, production and the stockpile.
const (
	ResourceGold  = "gold"
	ResourceWood  = "wood"
	ResourceStone = "stone"
	ResourceFood  = "food"
)

// ResourceKinds lists every valid resource kind in display order.
var ResourceKinds = []string{ResourceGold, ResourceWood, ResourceStone, ResourceFood}

// Config is the root document.
type Config struct {
	Map       MapConfig                 `yaml:"map"`
	Rules     Rules                     `yaml:"rules"`
	Units     map[string]UnitDef        `yaml:"units"`
	Buildings map[string]BuildingDef    `yaml:"buildings"`
	Costs     map[string]map[string]int `yaml:"costs"`
	Stockpile map[string]int            `yaml:"stockpile"`
	Window    WindowConfig              `yaml:"window"`
	Camera    CameraConfig              `yaml:"camera"`
}

// MapConfig sizes the tile grid.
type MapConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// Rules are the fixed per-tick constants of the unit resolver and driver.
type Rules struct {
	MeleeRadius           float64 `yaml:"melee_radius"`            // unit-vs-unit exchange, strict <
	MeleeDealRate         float64 `yaml:"melee_deal_rate"`         // K1: opponent loses own damage × K1
	MeleeTakeRate         float64 `yaml:"melee_take_rate"`         // K2: self loses opponent damage × K2
	BuildingContactRadius float64 `yaml:"building_contact_radius"` // attack at <=, movement blocked at <
	BuildingDamageRate    float64 `yaml:"building_damage_rate"`
	MinSeparation         float64 `yaml:"min_separation"`
	AggroRadius           float64 `yaml:"aggro_radius"`
	ProductionInterval    float64 `yaml:"production_interval"`
	ProductionAmount      int     `yaml:"production_amount"`
	TickDelta             float64 `yaml:"tick_delta"`
	FormationSpacing      float64 `yaml:"formation_spacing"`
	PrincipalUnit         string  `yaml:"principal_unit"` // enemy type whose elimination wins
}

// UnitDef describes one unit type.
type UnitDef struct {
	MaxHealth    float64 `yaml:"max_health"`
	Speed        float64 `yaml:"speed"`
	AttackDamage float64 `yaml:"attack_damage"`
	AttackRange  float64 `yaml:"attack_range"`
	Size         float64 `yaml:"size"`
}

// BuildingDef describes one building type.
type BuildingDef struct {
	MaxHealth float64 `yaml:"max_health"`
	TilesW    int     `yaml:"tiles_w"`
	TilesH    int     `yaml:"tiles_h"`
	PixelW    float64 `yaml:"pixel_w"`
	PixelH    float64 `yaml:"pixel_h"`
	Produces  string  `yaml:"produces"` // resource kind, empty for inert buildings
	Placeable bool    `yaml:"placeable"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// CameraConfig bounds zoom and pan.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	Speed    float64 `yaml:"speed"`
	Padding  float64 `yaml:"padding"`
}

// Default returns the stock rule set.
func Default() *Config {
	return &Config{
		Map: MapConfig{Width: 71, Height: 71, Seed: 1},
		Rules: Rules{
			MeleeRadius:           30,
			MeleeDealRate:         0.1,
			MeleeTakeRate:         0.05,
			BuildingContactRadius: 16,
			BuildingDamageRate:    0.08,
			MinSeparation:         28,
			AggroRadius:           400,
			ProductionInterval:    30,
			ProductionAmount:      10,
			TickDelta:             1,
			FormationSpacing:      40,
			PrincipalUnit:         "Swordsman",
		},
		Units: map[string]UnitDef{
			"Swordsman": {MaxHealth: 100, Speed: 2, AttackDamage: 10, AttackRange: 50, Size: 32},
		},
		Buildings: map[string]BuildingDef{
			"Stonekeep":      {MaxHealth: 100, TilesW: 2, TilesH: 2, PixelW: 128, PixelH: 128},
			"EnemyStonekeep": {MaxHealth: 100, TilesW: 2, TilesH: 2, PixelW: 128, PixelH: 128},
			"Stockpile":      {MaxHealth: 100, TilesW: 4, TilesH: 1, PixelW: 256, PixelH: 32},
			"Woodcutter":     {MaxHealth: 100, TilesW: 1, TilesH: 1, PixelW: 64, PixelH: 64, Produces: ResourceWood, Placeable: true},
			"Quarry":         {MaxHealth: 100, TilesW: 1, TilesH: 1, PixelW: 64, PixelH: 64, Produces: ResourceStone, Placeable: true},
			"Farm":           {MaxHealth: 100, TilesW: 1, TilesH: 1, PixelW: 64, PixelH: 64, Produces: ResourceFood, Placeable: true},
			"Barracks":       {MaxHealth: 100, TilesW: 1, TilesH: 1, PixelW: 64, PixelH: 64, Placeable: true},
			"Archery":        {MaxHealth: 100, TilesW: 1, TilesH: 1, PixelW: 64, PixelH: 64, Placeable: true},
		},
		// Placeholder amounts, tunable from the YAML file.
		Costs: map[string]map[string]int{
			"Woodcutter": {ResourceWood: 50},
			"Quarry":     {ResourceWood: 50},
			"Farm":       {ResourceWood: 40},
			"Barracks":   {ResourceWood: 100, ResourceStone: 50},
			"Archery":    {ResourceWood: 80, ResourceStone: 20},
			"Swordsman":  {ResourceGold: 50, ResourceFood: 20},
		},
		Stockpile: map[string]int{
			ResourceGold:  1000,
			ResourceWood:  500,
			ResourceStone: 500,
			ResourceFood:  1000,
		},
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Medieval Kingdom", FPS: 60},
		Camera: CameraConfig{MinZoom: 0.5, MaxZoom: 2.0, ZoomStep: 0.1, Speed: 10, Padding: 100},
	}
}

// Load reads a YAML file over the defaults. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first inconsistency found.
func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	}
	if c.Rules.TickDelta <= 0 {
		return fmt.Errorf("tick_delta must be positive, got %g", c.Rules.TickDelta)
	}
	if c.Rules.ProductionInterval <= 0 {
		return fmt.Errorf("production_interval must be positive, got %g", c.Rules.ProductionInterval)
	}
	if _, ok := c.Units[c.Rules.PrincipalUnit]; !ok {
		return fmt.Errorf("principal_unit %q is not a defined unit", c.Rules.PrincipalUnit)
	}
	for _, name := range sortedKeys(c.Units) {
		u := c.Units[name]
		if u.MaxHealth <= 0 {
			return fmt.Errorf("unit %s: max_health must be positive", name)
		}
		if u.Speed < 0 {
			return fmt.Errorf("unit %s: speed must not be negative", name)
		}
	}
	for _, name := range sortedKeys(c.Buildings) {
		b := c.Buildings[name]
		if b.TilesW < 1 || b.TilesH < 1 {
			return fmt.Errorf("building %s: footprint %dx%d must be at least 1x1", name, b.TilesW, b.TilesH)
		}
		if b.MaxHealth <= 0 {
			return fmt.Errorf("building %s: max_health must be positive", name)
		}
		if b.Produces != "" && !IsResourceKind(b.Produces) {
			return fmt.Errorf("building %s: unknown resource %q", name, b.Produces)
		}
	}
	for _, name := range sortedKeys(c.Costs) {
		for kind, n := range c.Costs[name] {
			if !IsResourceKind(kind) {
				return fmt.Errorf("cost of %s: unknown resource %q", name, kind)
			}
			if n < 0 {
				return fmt.Errorf("cost of %s: negative %s", name, kind)
			}
		}
	}
	for kind := range c.Stockpile {
		if !IsResourceKind(kind) {
			return fmt.Errorf("stockpile: unknown resource %q", kind)
		}
	}
	return nil
}

// IsResourceKind reports whether kind names a known resource.
func IsResourceKind(kind string) bool {
	for _, k := range ResourceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// PlaceableBuildings returns the building types offered for placement, sorted.
func (c *Config) PlaceableBuildings() []string {
	var out []string
	for _, name := range sortedKeys(c.Buildings) {
		if c.Buildings[name].Placeable {
			out = append(out, name)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
