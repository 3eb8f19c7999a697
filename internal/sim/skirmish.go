package sim

import (
	"fmt"

	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// Skirmish layout anchors, in tiles.
var (
	PlayerKeep = [2]int{9, 13}
	EnemyKeep  = [2]int{65, 5}
)

// enemyGuardOffsets ring a 2×2 keep; the guard post sits 8 tiles west of it.
var enemyGuardOffsets = [][2]int{
	{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {2, 2}, {-1, 2}, {2, -1}, {-1, -1},
}

const (
	enemyGuardShift = -8
	enemyGuardCount = 5
)

// SetupSkirmish places the stock opening: both keeps with their stockpiles,
// a pair of mountains near each keep, and an enemy guard of the principal
// unit type. Terrain under the opening buildings is cleared to grass.
func SetupSkirmish(w *World) error {
	type placement struct {
		btype  string
		tx, ty int
	}
	opening := []placement{
		{"Stonekeep", PlayerKeep[0], PlayerKeep[1]},
		{"Stockpile", PlayerKeep[0] + 2, PlayerKeep[1]},
		{"EnemyStonekeep", EnemyKeep[0], EnemyKeep[1]},
		{"Stockpile", EnemyKeep[0] - 4, EnemyKeep[1]},
	}
	for _, p := range opening {
		def, ok := w.cfg.Buildings[p.btype]
		if !ok {
			return fmt.Errorf("skirmish: building %q: %w", p.btype, ErrUnknownType)
		}
		for dy := 0; dy < def.TilesH; dy++ {
			for dx := 0; dx < def.TilesW; dx++ {
				w.tiles.SetTerrain(p.tx+dx, p.ty+dy, TerrainGrass)
			}
		}
		if _, err := w.AddBuilding(p.btype, p.tx, p.ty, false); err != nil {
			return fmt.Errorf("skirmish: %w", err)
		}
	}

	for _, keep := range [][2]int{PlayerKeep, EnemyKeep} {
		for _, d := range [][2]int{{6, 0}, {0, 6}} {
			x, y := keep[0]+d[0], keep[1]+d[1]
			if t := w.tiles.At(x, y); t != nil && t.Building == NoEntity {
				t.Terrain = TerrainMountain
			}
		}
	}

	var posts [][2]int
	for _, d := range enemyGuardOffsets {
		x, y := EnemyKeep[0]+d[0]+enemyGuardShift, EnemyKeep[1]+d[1]
		if w.tiles.InBounds(x, y) {
			posts = append(posts, [2]int{x, y})
		}
	}
	if len(posts) == 0 {
		return fmt.Errorf("skirmish: no guard post on a %dx%d map: %w", w.tiles.Width, w.tiles.Height, ErrOutOfBounds)
	}
	for i := 0; i < enemyGuardCount; i++ {
		p := posts[i%len(posts)]
		wx, wy := iso.TileToWorld(p[0], p[1])
		if _, err := w.AddUnit(w.cfg.Rules.PrincipalUnit, TeamEnemy, wx, wy); err != nil {
			return fmt.Errorf("skirmish: %w", err)
		}
	}
	w.logger.Info("skirmish ready", "entities", len(w.roster))
	return nil
}
