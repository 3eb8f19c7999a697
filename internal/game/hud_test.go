package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

func TestButtonAt(t *testing.T) {
	cases := []struct {
		x, y  float64
		label string
		ok    bool
	}{
		{10, 10, "Woodcutter", true},
		{109, 39, "Woodcutter", true},
		{110, 10, "", false}, // gap between buttons
		{150, 25, "Quarry", true},
		{240, 60, "Swordsman", true},
		{50, 45, "", false},
		{500, 300, "", false},
	}
	for _, c := range cases {
		b, ok := buttonAt(c.x, c.y)
		if ok != c.ok || b.label != c.label {
			t.Errorf("buttonAt(%g,%g) = %q,%v want %q,%v", c.x, c.y, b.label, ok, c.label, c.ok)
		}
	}
}

func TestToolbarArmsWorld(t *testing.T) {
	w := sim.NewWorld(config.Default(), sim.NewTileMap(10, 10))
	for _, b := range toolbar {
		if err := b.arm(w); err != nil {
			t.Fatalf("%s: %v", b.label, err)
		}
		if b.spawn != "" {
			if got, ok := w.Spawning(); !ok || got != b.spawn {
				t.Fatalf("%s should arm a spawn", b.label)
			}
			continue
		}
		if got, ok := w.Placement(); !ok || got != b.build {
			t.Fatalf("%s should arm a placement", b.label)
		}
	}
}

func TestCostLabel(t *testing.T) {
	got := costLabel(map[string]int{config.ResourceStone: 20, config.ResourceWood: 80})
	if got != "wood 80 stone 20" {
		t.Fatalf("costLabel = %q", got)
	}
	if costLabel(nil) != "" {
		t.Fatal("empty cost should render empty")
	}
}

func TestResourceLinesOrder(t *testing.T) {
	lines := resourceLines(map[string]int{config.ResourceFood: 3, config.ResourceGold: 1})
	want := []string{"gold: 1", "wood: 0", "stone: 0", "food: 3"}
	if fmt.Sprint(lines) != fmt.Sprint(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
}

func TestCommandMessage(t *testing.T) {
	wrapped := fmt.Errorf("place Farm: %w", sim.ErrInsufficientResources)
	if got := commandMessage(wrapped); got != "not enough resources" {
		t.Fatalf("got %q", got)
	}
	if got := commandMessage(fmt.Errorf("x: %w", sim.ErrCannotPlace)); got != "cannot build there" {
		t.Fatalf("got %q", got)
	}
	if got := commandMessage(errors.New("boom")); got != "boom" {
		t.Fatalf("got %q", got)
	}
}

func TestLighten(t *testing.T) {
	c := lighten(toolbar[1].fill, 30)
	if c.R != 199 || c.G != 199 || c.B != 199 {
		t.Fatalf("lighten = %+v", c)
	}
	if lighten(toolbar[3].fill, 200).R != 255 {
		t.Fatal("lighten should saturate")
	}
}
