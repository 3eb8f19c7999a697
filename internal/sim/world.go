package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Flavius4914/RTS-Engine/internal/config"
)

// World owns the map, the roster, the stockpile and the session flags, and
// advances them one tick at a time. It is not safe for concurrent use; the
// host calls Step and the command methods from a single goroutine.
type World struct {
	cfg   *config.Config
	tiles *TileMap
	stock *Stockpile

	roster []Entity
	byID   map[EntityID]Entity
	nextID EntityID

	tick    int
	paused  bool
	won     bool
	wonTick int

	placing   string // building type awaiting a PlaceAt, "" when idle
	spawning  string // unit type awaiting a SpawnAt, "" when idle
	unitTiles map[EntityID][2]int

	lostUnits     map[Team]int
	lostBuildings map[Team]int

	log    *EventLog
	logger *slog.Logger
}

// WorldOption configures a World at construction.
type WorldOption func(*World)

// WithEventLog routes structured events into l.
func WithEventLog(l *EventLog) WorldOption {
	return func(w *World) { w.log = l }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) WorldOption {
	return func(w *World) { w.logger = l }
}

// NewWorld creates an empty session over tiles. cfg must already be valid.
func NewWorld(cfg *config.Config, tiles *TileMap, opts ...WorldOption) *World {
	w := &World{
		cfg:           cfg,
		tiles:         tiles,
		stock:         NewStockpile(cfg.Stockpile),
		byID:          make(map[EntityID]Entity),
		nextID:        1,
		unitTiles:     make(map[EntityID][2]int),
		lostUnits:     make(map[Team]int),
		lostBuildings: make(map[Team]int),
	}
	for _, o := range opts {
		o(w)
	}
	if w.log == nil {
		w.log = NewEventLog(false, 0)
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w
}

func (w *World) Config() *config.Config { return w.cfg }
func (w *World) Map() *TileMap          { return w.tiles }
func (w *World) Stockpile() *Stockpile  { return w.stock }
func (w *World) Log() *EventLog         { return w.log }
func (w *World) Tick() int              { return w.tick }
func (w *World) Paused() bool           { return w.paused }

// Won reports whether the win latch has been set.
func (w *World) Won() bool { return w.won }

// WonTick returns the tick at which the win latch was set, or 0.
func (w *World) WonTick() int { return w.wonTick }

// SetPaused sets the pause flag. A paused World only evaluates the win check.
func (w *World) SetPaused(p bool) {
	if w.paused == p {
		return
	}
	w.paused = p
	w.logger.Debug("pause", "paused", p, "tick", w.tick)
}

// TogglePause flips the pause flag.
func (w *World) TogglePause() { w.SetPaused(!w.paused) }

// Entity looks up a roster member by id.
func (w *World) Entity(id EntityID) (Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// Entities returns the roster in insertion order, which is also update
// order. Callers must not retain it across Step.
func (w *World) Entities() []Entity { return w.roster }

// Units returns the living units of team.
func (w *World) Units(team Team) []*Unit {
	var out []*Unit
	for _, e := range w.roster {
		if u, ok := e.(*Unit); ok && u.team == team {
			out = append(out, u)
		}
	}
	return out
}

// Buildings returns every building on the roster.
func (w *World) Buildings() []*Building {
	var out []*Building
	for _, e := range w.roster {
		if b, ok := e.(*Building); ok {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) add(e Entity) {
	w.roster = append(w.roster, e)
	w.byID[e.ID()] = e
}

// AddUnit puts a unit of type utype on the roster at world position (x, y)
// without charging the stockpile.
func (w *World) AddUnit(utype string, team Team, x, y float64) (*Unit, error) {
	def, ok := w.cfg.Units[utype]
	if !ok {
		return nil, fmt.Errorf("unit %q: %w", utype, ErrUnknownType)
	}
	if !finite(x) || !finite(y) {
		return nil, fmt.Errorf("unit %q at (%g,%g): %w", utype, x, y, ErrOutOfBounds)
	}
	u := NewUnit(w.allocID(), utype, def, team, x, y)
	w.add(u)
	tx, ty := u.Tile()
	if w.tiles.claimUnit(tx, ty, u.id) {
		w.unitTiles[u.id] = [2]int{tx, ty}
	}
	return u, nil
}

// AddBuilding puts a building of type btype on the roster anchored at tile
// (tx, ty) without charging the stockpile. The footprint must satisfy
// CanPlace. Producing buildings are bound to the stockpile only when produce
// is true.
func (w *World) AddBuilding(btype string, tx, ty int, produce bool) (*Building, error) {
	def, ok := w.cfg.Buildings[btype]
	if !ok {
		return nil, fmt.Errorf("building %q: %w", btype, ErrUnknownType)
	}
	if !w.tiles.CanPlace(tx, ty, def.TilesW, def.TilesH) {
		return nil, fmt.Errorf("building %q at (%d,%d): %w", btype, tx, ty, ErrCannotPlace)
	}
	var stock *Stockpile
	if produce && def.Produces != "" {
		stock = w.stock
	}
	b := NewBuilding(w.allocID(), btype, def, tx, ty, stock)
	w.add(b)
	w.tiles.setBuilding(tx, ty, def.TilesW, def.TilesH, b.id)
	return b, nil
}

// Step advances the session by one tick. When paused only the win check runs
// and the tick counter does not move.
func (w *World) Step() {
	if !w.paused {
		w.tick++
		w.seekTargets()
		ctx := NewTickContext(w.tick, w.cfg.Rules, w.roster, w.log)
		for _, e := range w.roster {
			if e.Kind() == KindBuilding {
				e.Update(ctx)
			}
		}
		for _, e := range w.roster {
			if e.Kind() == KindUnit {
				e.Update(ctx)
			}
		}
		w.syncUnitTiles()
		w.removeDead()
	}
	w.checkWin()
}

// seekTargets points idle enemy units at the nearest player unit within the
// aggro radius. Units that fought last tick keep their ground.
func (w *World) seekTargets() {
	players := w.Units(TeamPlayer)
	if len(players) == 0 {
		return
	}
	radius := w.cfg.Rules.AggroRadius
	for _, e := range w.roster {
		u, ok := e.(*Unit)
		if !ok || u.team != TeamEnemy || u.engaged {
			continue
		}
		var target *Unit
		best := math.Inf(1)
		for _, p := range players {
			d := distance(u.x, u.y, p.x, p.y)
			if d < radius && d < best {
				best = d
				target = p
			}
		}
		if target != nil {
			u.MoveTo(target.x, target.y)
		}
	}
}

// syncUnitTiles moves each unit's back-reference to the tile it now stands
// on. A tile holds at most one unit; the unit already recorded there keeps
// it and later arrivals stay unindexed until they move on.
func (w *World) syncUnitTiles() {
	for _, e := range w.roster {
		u, ok := e.(*Unit)
		if !ok {
			continue
		}
		tx, ty := u.Tile()
		prev, indexed := w.unitTiles[u.id]
		if indexed && prev == [2]int{tx, ty} {
			continue
		}
		if indexed {
			w.tiles.releaseUnit(prev[0], prev[1], u.id)
			delete(w.unitTiles, u.id)
		}
		if w.tiles.claimUnit(tx, ty, u.id) {
			w.unitTiles[u.id] = [2]int{tx, ty}
		}
	}
}

// removeDead drops every entity whose health reached zero, clearing its
// tile back-references.
func (w *World) removeDead() {
	kept := w.roster[:0]
	var dead []Entity
	for _, e := range w.roster {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		dead = append(dead, e)
	}
	for i := len(kept); i < len(w.roster); i++ {
		w.roster[i] = nil
	}
	w.roster = kept

	for _, e := range dead {
		delete(w.byID, e.ID())
		switch v := e.(type) {
		case *Unit:
			if t, ok := w.unitTiles[v.id]; ok {
				w.tiles.releaseUnit(t[0], t[1], v.id)
				delete(w.unitTiles, v.id)
			}
			w.lostUnits[v.team]++
		case *Building:
			w.tiles.clearBuilding(v.tileX, v.tileY, v.tilesW, v.tilesH, v.id)
			w.lostBuildings[v.Team()]++
		}
		w.log.Add(w.tick, e.Label(), e.Team().String(), "death", e.Kind().String(), e.Type(), 0)
		w.logger.Debug("entity removed", "entity", e.Label(), "tick", w.tick)
	}
}

// checkWin sets the one-way win latch once no living enemy unit of the
// principal type remains.
func (w *World) checkWin() {
	if w.won {
		return
	}
	for _, e := range w.roster {
		if u, ok := e.(*Unit); ok && u.team == TeamEnemy && u.utype == w.cfg.Rules.PrincipalUnit && u.Alive() {
			return
		}
	}
	w.won = true
	w.wonTick = w.tick
	w.log.Add(w.tick, "--", "--", "outcome", "victory",
		fmt.Sprintf("no enemy %s remain", w.cfg.Rules.PrincipalUnit), 0)
	w.logger.Info("victory", "tick", w.tick)
}
