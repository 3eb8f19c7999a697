package sim

import (
	"fmt"
	"strings"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// Building is a static structure occupying a rectangular tile footprint.
// Placed production buildings hold the stockpile they feed.
type Building struct {
	id    EntityID
	btype string
	vitals

	tileX, tileY int
	tilesW       int
	tilesH       int
	produces     string
	timer        float64
	stockpile    *Stockpile // nil for buildings that do not produce
	selected     bool

	screen iso.ScreenCache
}

// NewBuilding creates a building of type btype anchored at tile (tx, ty).
// stock may be nil, in which case the building never produces.
func NewBuilding(id EntityID, btype string, def config.BuildingDef, tx, ty int, stock *Stockpile) *Building {
	return &Building{
		id:        id,
		btype:     btype,
		vitals:    newVitals(def.MaxHealth),
		tileX:     tx,
		tileY:     ty,
		tilesW:    def.TilesW,
		tilesH:    def.TilesH,
		produces:  def.Produces,
		stockpile: stock,
	}
}

// BuildingHostileTo reports whether a building of type btype is a target
// for units of team. Enemy structures are recognised by name.
func BuildingHostileTo(btype string, team Team) bool {
	enemyOwned := strings.Contains(strings.ToLower(btype), "enemy")
	if team == TeamPlayer {
		return enemyOwned
	}
	return !enemyOwned
}

func (b *Building) ID() EntityID       { return b.id }
func (b *Building) Kind() Kind         { return KindBuilding }
func (b *Building) Type() string       { return b.btype }
func (b *Building) Selected() bool     { return b.selected }
func (b *Building) SetSelected(s bool) { b.selected = s }
func (b *Building) Produces() string   { return b.produces }
func (b *Building) Timer() float64     { return b.timer }

// Team is derived from the type name so that it always agrees with
// BuildingHostileTo.
func (b *Building) Team() Team {
	if BuildingHostileTo(b.btype, TeamPlayer) {
		return TeamEnemy
	}
	return TeamPlayer
}

// Label is the type name plus id, e.g. "Farm#7".
func (b *Building) Label() string {
	return fmt.Sprintf("%s#%d", b.btype, b.id)
}

// Footprint returns the anchor tile and size in tiles.
func (b *Building) Footprint() (tx, ty, w, h int) {
	return b.tileX, b.tileY, b.tilesW, b.tilesH
}

// Bounds returns the world-space box used for contact and blocking.
func (b *Building) Bounds() (minX, minY, maxX, maxY float64) {
	return iso.FootprintBounds(b.tileX, b.tileY, b.tilesW, b.tilesH)
}

// Position returns the top vertex of the footprint in world space, centred
// horizontally on its bounding box.
func (b *Building) Position() iso.Point {
	minX, minY, maxX, _ := b.Bounds()
	return iso.Point{X: (minX + maxX) / 2, Y: minY}
}

// ScreenPos returns the zoomed screen position, memoised per zoom.
func (b *Building) ScreenPos(zoom float64) iso.Point {
	p := b.Position()
	return b.screen.Get(p.X, p.Y, zoom)
}

// Geometry returns a hexagon outlining the building as an upright block
// whose base sits on the footprint.
func (b *Building) Geometry(zoom float64) []iso.Point {
	minX, minY, maxX, maxY := b.Bounds()
	p := b.ScreenPos(zoom)
	hx := (maxX - minX) / 2 * zoom
	hy := (maxY - minY) / 2 * zoom
	return []iso.Point{
		{X: p.X, Y: p.Y - 2*hy},
		{X: p.X + hx, Y: p.Y - hy},
		{X: p.X + hx, Y: p.Y + hy},
		{X: p.X, Y: p.Y + 2*hy},
		{X: p.X - hx, Y: p.Y + hy},
		{X: p.X - hx, Y: p.Y - hy},
	}
}

// Update advances the production timer and credits the stockpile once per
// interval.
func (b *Building) Update(ctx *TickContext) {
	if b.produces == "" || b.stockpile == nil {
		return
	}
	b.timer += ctx.Rules.TickDelta
	if b.timer < ctx.Rules.ProductionInterval {
		return
	}
	b.timer = 0
	b.stockpile.Add(b.produces, ctx.Rules.ProductionAmount)
	ctx.logf(b, "production", b.produces,
		fmt.Sprintf("+%d -> %d", ctx.Rules.ProductionAmount, b.stockpile.Amount(b.produces)),
		float64(ctx.Rules.ProductionAmount))
}
