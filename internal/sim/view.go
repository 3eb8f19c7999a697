package sim

import "github.com/Flavius4914/RTS-Engine/internal/iso"

// EntityView is a value copy of what a host needs to draw one entity.
type EntityView struct {
	ID        EntityID
	Kind      Kind
	Type      string
	Team      Team
	Label     string
	Screen    iso.Point   // zoomed, without camera offset
	Geometry  []iso.Point // zoomed, without camera offset
	Health    float64
	MaxHealth float64
	Selected  bool
}

// View is a read-only frame of the World for rendering.
type View struct {
	Tick      int
	Paused    bool
	Won       bool
	Entities  []EntityView
	Resources map[string]int
	Placing   string
	Spawning  string
}

// View copies the drawable state at zoom. Buildings come first so units
// draw over them.
func (w *World) View(zoom float64) View {
	v := View{
		Tick:      w.tick,
		Paused:    w.paused,
		Won:       w.won,
		Entities:  make([]EntityView, 0, len(w.roster)),
		Resources: w.stock.Amounts(),
		Placing:   w.placing,
		Spawning:  w.spawning,
	}
	for _, kind := range [2]Kind{KindBuilding, KindUnit} {
		for _, e := range w.roster {
			if e.Kind() != kind {
				continue
			}
			v.Entities = append(v.Entities, EntityView{
				ID:        e.ID(),
				Kind:      kind,
				Type:      e.Type(),
				Team:      e.Team(),
				Label:     e.Label(),
				Screen:    e.ScreenPos(zoom),
				Geometry:  e.Geometry(zoom),
				Health:    e.Health(),
				MaxHealth: e.MaxHealth(),
				Selected:  e.Selected(),
			})
		}
	}
	return v
}

// EachTile calls fn with a copy of every tile in row-major order.
func (w *World) EachTile(fn func(Tile)) {
	for _, t := range w.tiles.Tiles {
		fn(t)
	}
}
