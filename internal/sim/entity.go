// Package sim is the deterministic core of the skirmish: the spatial map,
// units and buildings, the per-tick combat and movement resolver, and the
// World driver that sequences them. It has no rendering or input
// dependencies; hosts read it through View and drive it through commands.
package sim

import (
	"math"

	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// EntityID identifies one roster member for the lifetime of a World.
type EntityID uint32

// NoEntity marks an empty tile slot or a missing reference.
const NoEntity EntityID = 0

// Team is the allegiance of an entity.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// Kind tags the closed set of entity variants.
type Kind int

const (
	KindUnit Kind = iota
	KindBuilding
)

func (k Kind) String() string {
	if k == KindBuilding {
		return "building"
	}
	return "unit"
}

// Entity is the polymorphic roster member. The World calls Update once per
// unpaused tick; hosts call ScreenPos and Geometry at draw time.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Type() string
	Team() Team
	Label() string
	Health() float64
	MaxHealth() float64
	Alive() bool
	Selected() bool
	SetSelected(bool)
	Position() iso.Point
	ScreenPos(zoom float64) iso.Point
	Geometry(zoom float64) []iso.Point
	Update(ctx *TickContext)

	takeDamage(amount float64)
}

// vitals is the health component shared by every entity.
type vitals struct {
	health    float64
	maxHealth float64
}

func newVitals(maxHealth float64) vitals {
	return vitals{health: maxHealth, maxHealth: maxHealth}
}

func (v *vitals) Health() float64    { return v.health }
func (v *vitals) MaxHealth() float64 { return v.maxHealth }
func (v *vitals) Alive() bool        { return v.health > 0 }

// takeDamage subtracts amount and clamps at zero. Negative and non-finite
// amounts are ignored.
func (v *vitals) takeDamage(amount float64) {
	if amount <= 0 || math.IsNaN(amount) {
		return
	}
	v.health -= amount
	if v.health < 0 || math.IsInf(v.health, -1) {
		v.health = 0
	}
}

// HealthFraction returns health/maxHealth in [0, 1].
func HealthFraction(e Entity) float64 {
	if e.MaxHealth() <= 0 {
		return 0
	}
	f := e.Health() / e.MaxHealth()
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// closestInRect returns the point of [minX,maxX]×[minY,maxY] closest to (x, y).
func closestInRect(x, y, minX, minY, maxX, maxY float64) (float64, float64) {
	return math.Max(minX, math.Min(x, maxX)), math.Max(minY, math.Min(y, maxY))
}
