// Package mapgen fills a fresh grass map with water, mountain and dirt
// patches, scattered forest, and forest wood stocks.
package mapgen

import (
	"math"
	"math/rand"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// Patch describes one family of contiguous terrain patches.
type Patch struct {
	Terrain  sim.Terrain
	Fraction float64 // share of all tiles to convert
	MinSize  int
	MaxSize  int
}

// Options tune Generate.
type Options struct {
	Patches     []Patch
	Avoid       [][2]int // tiles whose surroundings stay grass
	AvoidRadius float64  // tiles closer than this to an Avoid centre are skipped
	MaxAttempts int      // patch seeds tried per family
	Forest      float64  // per-tile chance a remaining grass tile becomes forest
	WoodMin     int
	WoodMax     int
}

// DefaultOptions returns the stock generator settings, keeping the
// surroundings of both skirmish keeps clear.
func DefaultOptions() Options {
	return Options{
		Patches: []Patch{
			{Terrain: sim.TerrainWater, Fraction: 0.025, MinSize: 4, MaxSize: 12},
			{Terrain: sim.TerrainMountain, Fraction: 0.02, MinSize: 4, MaxSize: 10},
			{Terrain: sim.TerrainDirt, Fraction: 0.01, MinSize: 2, MaxSize: 5},
		},
		Avoid:       [][2]int{{13, 13}, {69, 5}},
		AvoidRadius: 8,
		MaxAttempts: 1000,
		Forest:      0.075,
		WoodMin:     100,
		WoodMax:     500,
	}
}

// Generate paints terrain onto tm using rng. Only grass tiles are
// converted, so tiles set beforehand are preserved.
func Generate(tm *sim.TileMap, rng *rand.Rand, opts Options) {
	total := tm.Width * tm.Height
	for _, p := range opts.Patches {
		placePatches(tm, rng, p, int(float64(total)*p.Fraction), opts)
	}
	for i := range tm.Tiles {
		t := &tm.Tiles[i]
		if t.Terrain == sim.TerrainGrass && rng.Float64() < opts.Forest {
			t.Terrain = sim.TerrainForest
		}
	}
	for i := range tm.Tiles {
		t := &tm.Tiles[i]
		if t.Terrain == sim.TerrainForest {
			t.Resource = randRange(rng, opts.WoodMin, opts.WoodMax)
		}
	}
}

// placePatches grows breadth-first patches from random seeds until count
// tiles have been converted or the attempt budget runs out.
func placePatches(tm *sim.TileMap, rng *rand.Rand, p Patch, count int, opts Options) {
	if tm.Width == 0 || tm.Height == 0 {
		return
	}
	placed := 0
	for attempt := 0; placed < count && attempt < opts.MaxAttempts; attempt++ {
		size := randRange(rng, p.MinSize, p.MaxSize)
		seed := [2]int{rng.Intn(tm.Width), rng.Intn(tm.Height)}
		if tooClose(seed, opts) {
			continue
		}
		queue := [][2]int{seed}
		visited := map[[2]int]bool{}
		grown := 0
		for len(queue) > 0 && grown < size && placed < count {
			c := queue[0]
			queue = queue[1:]
			if visited[c] {
				continue
			}
			visited[c] = true
			t := tm.At(c[0], c[1])
			if t == nil || tooClose(c, opts) || t.Terrain != sim.TerrainGrass {
				continue
			}
			t.Terrain = p.Terrain
			grown++
			placed++
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				n := [2]int{c[0] + d[0], c[1] + d[1]}
				if tm.InBounds(n[0], n[1]) && !visited[n] {
					queue = append(queue, n)
				}
			}
		}
	}
}

func tooClose(c [2]int, opts Options) bool {
	for _, a := range opts.Avoid {
		if math.Hypot(float64(c[0]-a[0]), float64(c[1]-a[1])) < opts.AvoidRadius {
			return true
		}
	}
	return false
}

// randRange returns an int in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// New returns a seeded generator source. Map layout is gameplay, not
// security, so math/rand is sufficient.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic map layout
}
