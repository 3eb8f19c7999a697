package sim

import (
	"fmt"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// Unit is a mobile combatant. Its position is in world coordinates and only
// changes inside its own Update or through SetPosition.
type Unit struct {
	id    EntityID
	utype string
	team  Team
	vitals

	x, y         float64
	speed        float64
	attackDamage float64
	attackRange  float64
	size         float64

	dest     iso.Point
	hasDest  bool
	selected bool
	engaged  bool // took part in an exchange during its last update

	screen iso.ScreenCache
}

// NewUnit creates a unit of type utype at world position (x, y).
func NewUnit(id EntityID, utype string, def config.UnitDef, team Team, x, y float64) *Unit {
	return &Unit{
		id:           id,
		utype:        utype,
		team:         team,
		vitals:       newVitals(def.MaxHealth),
		x:            x,
		y:            y,
		speed:        def.Speed,
		attackDamage: def.AttackDamage,
		attackRange:  def.AttackRange,
		size:         def.Size,
	}
}

func (u *Unit) ID() EntityID          { return u.id }
func (u *Unit) Kind() Kind            { return KindUnit }
func (u *Unit) Type() string          { return u.utype }
func (u *Unit) Team() Team            { return u.team }
func (u *Unit) Selected() bool        { return u.selected }
func (u *Unit) SetSelected(s bool)    { u.selected = s }
func (u *Unit) Position() iso.Point   { return iso.Point{X: u.x, Y: u.y} }
func (u *Unit) Speed() float64        { return u.speed }
func (u *Unit) AttackDamage() float64 { return u.attackDamage }
func (u *Unit) AttackRange() float64  { return u.attackRange }
func (u *Unit) Engaged() bool         { return u.engaged }

// Label is a short identifier for logs, e.g. "P3" or "E12".
func (u *Unit) Label() string {
	if u.team == TeamEnemy {
		return fmt.Sprintf("E%d", u.id)
	}
	return fmt.Sprintf("P%d", u.id)
}

// Tile returns the tile containing the unit.
func (u *Unit) Tile() (int, int) {
	return iso.WorldToTile(u.x, u.y)
}

// MoveTo sets the destination. Any previous destination is replaced.
func (u *Unit) MoveTo(x, y float64) {
	u.dest = iso.Point{X: x, Y: y}
	u.hasDest = true
}

// Stop clears the destination.
func (u *Unit) Stop() {
	u.hasDest = false
}

// Destination returns the current destination, if any.
func (u *Unit) Destination() (iso.Point, bool) {
	return u.dest, u.hasDest
}

// SetPosition moves the unit and drops its cached screen position.
func (u *Unit) SetPosition(x, y float64) {
	u.x, u.y = x, y
	u.screen.Invalidate()
}

// ScreenPos returns the zoomed screen position, memoised per zoom.
func (u *Unit) ScreenPos(zoom float64) iso.Point {
	return u.screen.Get(u.x, u.y, zoom)
}

// Geometry returns an upward triangle around the screen position.
func (u *Unit) Geometry(zoom float64) []iso.Point {
	p := u.ScreenPos(zoom)
	h := u.size / 2 * zoom
	return []iso.Point{
		{X: p.X, Y: p.Y - h},
		{X: p.X + h, Y: p.Y + h},
		{X: p.X - h, Y: p.Y + h},
	}
}

// Update runs the per-tick resolver: melee against enemy units, attacks on
// hostile buildings in contact, then one movement step if not engaged.
func (u *Unit) Update(ctx *TickContext) {
	if !finite(u.x) || !finite(u.y) {
		ctx.logf(u, "guard", "bad_position", fmt.Sprintf("(%g,%g)", u.x, u.y), 0)
		u.hasDest = false
		return
	}
	r := ctx.Rules
	engaged := false

	for _, o := range ctx.Units {
		if o.ID == u.id || o.Team == u.team {
			continue
		}
		if distance(u.x, u.y, o.X, o.Y) < r.MeleeRadius {
			ctx.Damage(o.ID, u.attackDamage*r.MeleeDealRate)
			u.takeDamage(o.AttackDamage * r.MeleeTakeRate)
			engaged = true
		}
	}

	for _, b := range ctx.Buildings {
		if !BuildingHostileTo(b.Type, u.team) {
			continue
		}
		cx, cy := closestInRect(u.x, u.y, b.MinX, b.MinY, b.MaxX, b.MaxY)
		if distance(u.x, u.y, cx, cy) <= r.BuildingContactRadius {
			ctx.Damage(b.ID, u.attackDamage*r.BuildingDamageRate)
			engaged = true
		}
	}

	if engaged {
		if !u.engaged {
			ctx.logf(u, "combat", "engage", fmt.Sprintf("hp=%.1f", u.health), u.health)
		}
		u.hasDest = false
		u.engaged = true
		return
	}
	u.engaged = false

	if u.hasDest {
		u.step(ctx)
	}
}

// step advances toward the destination by at most speed, abandoning the
// destination if the candidate position is blocked.
func (u *Unit) step(ctx *TickContext) {
	dx, dy := u.dest.X-u.x, u.dest.Y-u.y
	d := distance(0, 0, dx, dy)
	nx, ny := u.dest.X, u.dest.Y
	arriving := d <= u.speed
	if !arriving {
		nx = u.x + dx/d*u.speed
		ny = u.y + dy/d*u.speed
	}
	if u.blocked(ctx, nx, ny) {
		u.hasDest = false
		ctx.logf(u, "move", "blocked", fmt.Sprintf("at (%.0f,%.0f)", u.x, u.y), d)
		return
	}
	u.SetPosition(nx, ny)
	if arriving {
		u.hasDest = false
		ctx.logf(u, "move", "arrived", fmt.Sprintf("(%.0f,%.0f)", nx, ny), 0)
		return
	}
	ctx.logVerbose(u, "move", "step", fmt.Sprintf("(%.1f,%.1f)", nx, ny), d)
}

// blocked reports whether (x, y) is too close to another unit or to any
// building footprint.
func (u *Unit) blocked(ctx *TickContext, x, y float64) bool {
	r := ctx.Rules
	for _, o := range ctx.Units {
		if o.ID == u.id {
			continue
		}
		if distance(x, y, o.X, o.Y) < r.MinSeparation {
			return true
		}
	}
	for _, b := range ctx.Buildings {
		cx, cy := closestInRect(x, y, b.MinX, b.MinY, b.MaxX, b.MaxY)
		if distance(x, y, cx, cy) < r.BuildingContactRadius {
			return true
		}
	}
	return false
}
