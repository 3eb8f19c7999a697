package sim

import "github.com/Flavius4914/RTS-Engine/internal/config"

// UnitState is the start-of-tick record of one unit that every resolver
// decision reads, so results do not depend on roster order.
type UnitState struct {
	ID           EntityID
	Team         Team
	X, Y         float64
	AttackDamage float64
}

// BuildingState is the start-of-tick record of one building.
type BuildingState struct {
	ID                     EntityID
	Type                   string
	MinX, MinY, MaxX, MaxY float64 // world-space footprint box
}

// TickContext carries one tick's read-only snapshot and the sinks that
// updates write into. Damage is applied to live entities through Damage;
// positions and attack values are only ever read from the snapshot.
type TickContext struct {
	Tick      int
	Rules     config.Rules
	Units     []UnitState
	Buildings []BuildingState
	Log       *EventLog

	entities map[EntityID]Entity
}

// NewTickContext snapshots the given entities for one tick. log may be nil.
func NewTickContext(tick int, rules config.Rules, roster []Entity, log *EventLog) *TickContext {
	ctx := &TickContext{
		Tick:     tick,
		Rules:    rules,
		Log:      log,
		entities: make(map[EntityID]Entity, len(roster)),
	}
	for _, e := range roster {
		ctx.entities[e.ID()] = e
		switch v := e.(type) {
		case *Unit:
			ctx.Units = append(ctx.Units, UnitState{
				ID:           v.id,
				Team:         v.team,
				X:            v.x,
				Y:            v.y,
				AttackDamage: v.attackDamage,
			})
		case *Building:
			minX, minY, maxX, maxY := v.Bounds()
			ctx.Buildings = append(ctx.Buildings, BuildingState{
				ID:   v.id,
				Type: v.btype,
				MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
			})
		}
	}
	return ctx
}

// Damage subtracts amount from the live entity with the given id.
func (ctx *TickContext) Damage(id EntityID, amount float64) {
	if e, ok := ctx.entities[id]; ok {
		e.takeDamage(amount)
	}
}

func (ctx *TickContext) logf(e Entity, category, key, value string, num float64) {
	if ctx.Log == nil {
		return
	}
	ctx.Log.Add(ctx.Tick, e.Label(), e.Team().String(), category, key, value, num)
}

func (ctx *TickContext) logVerbose(e Entity, category, key, value string, num float64) {
	if ctx.Log == nil {
		return
	}
	ctx.Log.AddVerbose(ctx.Tick, e.Label(), e.Team().String(), category, key, value, num)
}
