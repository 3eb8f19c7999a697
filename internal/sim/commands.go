package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// Command errors. Hosts compare with errors.Is.
var (
	ErrOutOfBounds           = errors.New("target outside the map")
	ErrCannotPlace           = errors.New("footprint blocked")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrNoPlacement           = errors.New("no placement in progress")
	ErrUnknownType           = errors.New("unknown type")
)

// clickRadius is the screen distance, before zoom, within which a click
// picks a unit.
const clickRadius = 20.0

// Viewport is the camera state a screen-space command was issued under.
type Viewport struct {
	Zoom float64
	Cam  iso.Point
}

func (v Viewport) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// screenOf returns the on-screen position of e under v.
func (v Viewport) screenOf(e Entity) iso.Point {
	p := e.ScreenPos(v.zoom())
	return iso.Point{X: p.X + v.Cam.X, Y: p.Y + v.Cam.Y}
}

// Selected returns the currently selected entities in roster order.
func (w *World) Selected() []Entity {
	var out []Entity
	for _, e := range w.roster {
		if e.Selected() {
			out = append(out, e)
		}
	}
	return out
}

// ClearSelection deselects everything.
func (w *World) ClearSelection() {
	for _, e := range w.roster {
		e.SetSelected(false)
	}
}

// SelectInRect replaces the selection with the player units whose screen
// position lies inside the rectangle spanned by two screen corners.
// It returns the number selected.
func (w *World) SelectInRect(x1, y1, x2, y2 float64, v Viewport) int {
	left, right := math.Min(x1, x2), math.Max(x1, x2)
	top, bottom := math.Min(y1, y2), math.Max(y1, y2)
	n := 0
	for _, e := range w.roster {
		sel := false
		if e.Kind() == KindUnit && e.Team() == TeamPlayer {
			p := v.screenOf(e)
			sel = p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom
		}
		e.SetSelected(sel)
		if sel {
			n++
		}
	}
	w.log.Add(w.tick, "--", TeamPlayer.String(), "command", "select", fmt.Sprintf("%d units", n), float64(n))
	return n
}

// SelectAt selects the nearest player unit within the click radius of a
// screen point, replacing the selection. A miss clears the selection.
func (w *World) SelectAt(sx, sy float64, v Viewport) (Entity, bool) {
	limit := clickRadius * v.zoom()
	var hit Entity
	best := math.Inf(1)
	for _, e := range w.roster {
		if e.Kind() != KindUnit || e.Team() != TeamPlayer {
			continue
		}
		p := v.screenOf(e)
		if d := distance(sx, sy, p.X, p.Y); d < limit && d < best {
			best = d
			hit = e
		}
	}
	w.ClearSelection()
	if hit == nil {
		return nil, false
	}
	hit.SetSelected(true)
	return hit, true
}

// MoveSelected sends the selected units to grid slots around the world point
// under a screen position. It returns the number of units ordered.
func (w *World) MoveSelected(sx, sy float64, v Viewport) int {
	units := w.selectedUnits()
	if len(units) == 0 {
		return 0
	}
	wx, wy := iso.ScreenToWorld(sx, sy, v.zoom(), v.Cam)
	slots := FormationGrid(iso.Point{X: wx, Y: wy}, len(units), w.cfg.Rules.FormationSpacing)
	for i, u := range units {
		u.MoveTo(slots[i].X, slots[i].Y)
	}
	w.log.Add(w.tick, "--", TeamPlayer.String(), "command", "move",
		fmt.Sprintf("%d units to (%.0f,%.0f)", len(units), wx, wy), float64(len(units)))
	return len(units)
}

// NudgeSelected orders each selected unit one step of its own speed in
// direction (dx, dy). A zero direction does nothing.
func (w *World) NudgeSelected(dx, dy float64) int {
	n := math.Hypot(dx, dy)
	if n == 0 || !finite(n) {
		return 0
	}
	units := w.selectedUnits()
	for _, u := range units {
		u.MoveTo(u.x+dx/n*u.speed, u.y+dy/n*u.speed)
	}
	return len(units)
}

func (w *World) selectedUnits() []*Unit {
	var units []*Unit
	for _, e := range w.roster {
		if u, ok := e.(*Unit); ok && u.selected {
			units = append(units, u)
		}
	}
	return units
}

// BeginPlacement arms a placement of btype, replacing any pending spawn.
func (w *World) BeginPlacement(btype string) error {
	def, ok := w.cfg.Buildings[btype]
	if !ok || !def.Placeable {
		return fmt.Errorf("building %q: %w", btype, ErrUnknownType)
	}
	w.placing = btype
	w.spawning = ""
	return nil
}

// BeginSpawn arms a spawn of utype, replacing any pending placement.
func (w *World) BeginSpawn(utype string) error {
	if _, ok := w.cfg.Units[utype]; !ok {
		return fmt.Errorf("unit %q: %w", utype, ErrUnknownType)
	}
	w.spawning = utype
	w.placing = ""
	return nil
}

// CancelPlacement drops any pending placement or spawn.
func (w *World) CancelPlacement() {
	w.placing = ""
	w.spawning = ""
}

// Placement returns the building type awaiting placement, if any.
func (w *World) Placement() (string, bool) { return w.placing, w.placing != "" }

// Spawning returns the unit type awaiting a spawn, if any.
func (w *World) Spawning() (string, bool) { return w.spawning, w.spawning != "" }

// PlacementAnchor returns the footprint anchor for a placement centred on
// tile (tx, ty).
func (w *World) PlacementAnchor(btype string, tx, ty int) (int, int) {
	def := w.cfg.Buildings[btype]
	return tx - def.TilesW/2, ty - def.TilesH/2
}

// CanPlaceAt reports whether the pending placement would fit when centred on
// tile (tx, ty). It does not consider cost.
func (w *World) CanPlaceAt(tx, ty int) bool {
	if w.placing == "" {
		return false
	}
	def := w.cfg.Buildings[w.placing]
	ax, ay := w.PlacementAnchor(w.placing, tx, ty)
	return w.tiles.CanPlace(ax, ay, def.TilesW, def.TilesH)
}

// PlaceAt completes the pending placement centred on tile (tx, ty). On
// failure the placement stays armed and nothing is charged.
func (w *World) PlaceAt(tx, ty int) (*Building, error) {
	if w.placing == "" {
		return nil, ErrNoPlacement
	}
	btype := w.placing
	def := w.cfg.Buildings[btype]
	ax, ay := w.PlacementAnchor(btype, tx, ty)
	if !w.tiles.CanPlace(ax, ay, def.TilesW, def.TilesH) {
		return nil, fmt.Errorf("place %s at (%d,%d): %w", btype, ax, ay, ErrCannotPlace)
	}
	if !w.stock.TrySpend(w.cfg.Costs[btype]) {
		return nil, fmt.Errorf("place %s: %w", btype, ErrInsufficientResources)
	}
	b, err := w.AddBuilding(btype, ax, ay, true)
	if err != nil {
		return nil, err
	}
	w.placing = ""
	w.log.Add(w.tick, b.Label(), TeamPlayer.String(), "command", "place",
		fmt.Sprintf("%s at (%d,%d)", btype, ax, ay), 0)
	return b, nil
}

// SpawnAt completes the pending spawn on tile (tx, ty). The spawn is
// disarmed whether or not it succeeds.
func (w *World) SpawnAt(tx, ty int) (*Unit, error) {
	if w.spawning == "" {
		return nil, ErrNoPlacement
	}
	utype := w.spawning
	w.spawning = ""
	return w.SpawnUnit(utype, tx, ty)
}

// SpawnUnit charges the stockpile for utype and puts a player unit on
// tile (tx, ty). The tile must be walkable and free of buildings.
func (w *World) SpawnUnit(utype string, tx, ty int) (*Unit, error) {
	if _, ok := w.cfg.Units[utype]; !ok {
		return nil, fmt.Errorf("unit %q: %w", utype, ErrUnknownType)
	}
	if !w.tiles.InBounds(tx, ty) {
		return nil, fmt.Errorf("spawn %s at (%d,%d): %w", utype, tx, ty, ErrOutOfBounds)
	}
	if t := w.tiles.At(tx, ty); !t.Terrain.Walkable() || t.Building != NoEntity {
		return nil, fmt.Errorf("spawn %s at (%d,%d): %w", utype, tx, ty, ErrCannotPlace)
	}
	if !w.stock.TrySpend(w.cfg.Costs[utype]) {
		return nil, fmt.Errorf("spawn %s: %w", utype, ErrInsufficientResources)
	}
	wx, wy := iso.TileToWorld(tx, ty)
	u, err := w.AddUnit(utype, TeamPlayer, wx, wy)
	if err != nil {
		return nil, err
	}
	w.log.Add(w.tick, u.Label(), TeamPlayer.String(), "command", "spawn",
		fmt.Sprintf("%s at (%d,%d)", utype, tx, ty), 0)
	return u, nil
}
