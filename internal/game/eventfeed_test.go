package game

import (
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

func TestFeedLines_NewestLastWithoutSteps(t *testing.T) {
	events := []sim.Event{
		{Tick: 1, Entity: "P1", Team: "player", Category: "command", Key: "move", Value: "1 units"},
		{Tick: 2, Entity: "P1", Team: "player", Category: "move", Key: "step"},
		{Tick: 3, Entity: "E2", Team: "enemy", Category: "combat", Key: "engage", Value: "hp=100.0"},
		{Tick: 4, Entity: "P1", Team: "player", Category: "move", Key: "step"},
		{Tick: 5, Entity: "E2", Team: "enemy", Category: "death", Key: "unit", Value: "Swordsman"},
	}
	lines := feedLines(events, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].text != "   3 [E2] combat/engage hp=100.0" {
		t.Fatalf("first line = %q", lines[0].text)
	}
	if lines[1].text != "   5 [E2] death/unit Swordsman" || lines[1].team != "enemy" {
		t.Fatalf("last line = %+v", lines[1])
	}
}

func TestClip(t *testing.T) {
	if got := clip("abcdef", 4); got != "abc~" {
		t.Fatalf("clip = %q", got)
	}
	if got := clip("abc", 4); got != "abc" {
		t.Fatalf("clip = %q", got)
	}
}
