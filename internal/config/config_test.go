package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefault_Footprints(t *testing.T) {
	cfg := Default()
	cases := map[string][2]int{
		"Stonekeep":      {2, 2},
		"EnemyStonekeep": {2, 2},
		"Stockpile":      {4, 1},
		"Woodcutter":     {1, 1},
		"Barracks":       {1, 1},
	}
	for name, want := range cases {
		b := cfg.Buildings[name]
		if b.TilesW != want[0] || b.TilesH != want[1] {
			t.Fatalf("%s footprint = %dx%d, want %dx%d", name, b.TilesW, b.TilesH, want[0], want[1])
		}
	}
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Rules.AggroRadius != 400 {
		t.Fatalf("aggro radius = %g, want 400", cfg.Rules.AggroRadius)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
map:
  width: 10
  height: 12
rules:
  aggro_radius: 250
buildings:
  Tower:
    max_health: 300
    tiles_w: 1
    tiles_h: 1
    placeable: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 10 || cfg.Map.Height != 12 {
		t.Fatalf("map = %dx%d, want 10x12", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Rules.AggroRadius != 250 {
		t.Fatalf("aggro radius = %g, want 250", cfg.Rules.AggroRadius)
	}
	// Untouched rules keep their defaults.
	if cfg.Rules.MeleeRadius != 30 {
		t.Fatalf("melee radius = %g, want default 30", cfg.Rules.MeleeRadius)
	}
	if _, ok := cfg.Buildings["Tower"]; !ok {
		t.Fatal("Tower should be added to the catalogue")
	}
	if _, ok := cfg.Buildings["Stonekeep"]; !ok {
		t.Fatal("default buildings should survive an overlay")
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad map", "map:\n  width: 0\n", "map size"},
		{"bad footprint", "buildings:\n  Wall:\n    max_health: 10\n    tiles_w: 0\n    tiles_h: 1\n", "footprint"},
		{"bad resource", "costs:\n  Farm:\n    silver: 3\n", "unknown resource"},
		{"bad principal", "rules:\n  principal_unit: Knight\n", "principal_unit"},
		{"not yaml", "map: [unterminated\n", "parse config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, c.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q should mention %q", err, c.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPlaceableBuildings_Sorted(t *testing.T) {
	got := Default().PlaceableBuildings()
	want := []string{"Archery", "Barracks", "Farm", "Quarry", "Woodcutter"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
