package sim

// Terrain identifies the ground kind of a tile.
type Terrain uint8

const (
	TerrainGrass    Terrain = iota // buildable, walkable
	TerrainWater                   // impassable
	TerrainForest                  // walkable, carries wood
	TerrainMountain                // impassable
	TerrainDirt                    // walkable, not buildable
	terrainCount                   // sentinel
)

func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainForest:
		return "forest"
	case TerrainMountain:
		return "mountain"
	case TerrainDirt:
		return "dirt"
	default:
		return "unknown"
	}
}

// Walkable reports whether units may cross this terrain.
func (t Terrain) Walkable() bool {
	return t != TerrainWater && t != TerrainMountain
}

// Tile is one cell of the spatial map. Building and Unit are non-owning
// back-references into the World roster; NoEntity means unoccupied.
type Tile struct {
	X, Y     int
	Terrain  Terrain
	Resource int // remaining wood, only meaningful on forest
	Building EntityID
	Unit     EntityID
}

// TileMap is the fixed-size grid of the session.
type TileMap struct {
	Width  int
	Height int
	Tiles  []Tile // row-major: index = y*Width + x
}

// NewTileMap creates a map filled with grass.
func NewTileMap(width, height int) *TileMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]Tile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles[y*width+x] = Tile{X: x, Y: y, Terrain: TerrainGrass}
		}
	}
	return &TileMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the map.
func (tm *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < tm.Width && y >= 0 && y < tm.Height
}

// At returns the tile at (x, y), or nil if out of bounds.
func (tm *TileMap) At(x, y int) *Tile {
	if !tm.InBounds(x, y) {
		return nil
	}
	return &tm.Tiles[y*tm.Width+x]
}

// TerrainAt returns the terrain at (x, y); out of bounds reads as water.
func (tm *TileMap) TerrainAt(x, y int) Terrain {
	if t := tm.At(x, y); t != nil {
		return t.Terrain
	}
	return TerrainWater
}

// SetTerrain changes the terrain of a tile. Out of bounds is a no-op.
func (tm *TileMap) SetTerrain(x, y int, terrain Terrain) {
	if t := tm.At(x, y); t != nil {
		t.Terrain = terrain
	}
}

// SetResource sets the resource quantity of a tile, floored at zero.
func (tm *TileMap) SetResource(x, y, amount int) {
	t := tm.At(x, y)
	if t == nil {
		return
	}
	if amount < 0 {
		amount = 0
	}
	t.Resource = amount
}

// CanPlace reports whether a w×h footprint anchored at (x, y) is entirely
// on the map, on grass, and free of buildings.
func (tm *TileMap) CanPlace(x, y, w, h int) bool {
	if w < 1 || h < 1 {
		return false
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			t := tm.At(x+dx, y+dy)
			if t == nil || t.Terrain != TerrainGrass || t.Building != NoEntity {
				return false
			}
		}
	}
	return true
}

// neighbourOffsets are the four axis-aligned neighbours.
var neighbourOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// WalkableNeighbors returns the in-bounds axis-aligned neighbours of (x, y)
// whose terrain is walkable. Movement is straight-line and does not consume
// this; it is exposed for placement helpers and future pathing.
func (tm *TileMap) WalkableNeighbors(x, y int) [][2]int {
	out := make([][2]int, 0, 4)
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if t := tm.At(nx, ny); t != nil && t.Terrain.Walkable() {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

// setBuilding points every tile of the footprint at id.
func (tm *TileMap) setBuilding(x, y, w, h int, id EntityID) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if t := tm.At(x+dx, y+dy); t != nil {
				t.Building = id
			}
		}
	}
}

// clearBuilding removes back-references to id from the footprint.
func (tm *TileMap) clearBuilding(x, y, w, h int, id EntityID) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if t := tm.At(x+dx, y+dy); t != nil && t.Building == id {
				t.Building = NoEntity
			}
		}
	}
}

// claimUnit records id on (x, y) if the tile exists and has no unit.
func (tm *TileMap) claimUnit(x, y int, id EntityID) bool {
	t := tm.At(x, y)
	if t == nil || t.Unit != NoEntity {
		return false
	}
	t.Unit = id
	return true
}

// releaseUnit clears (x, y) if it still points at id.
func (tm *TileMap) releaseUnit(x, y int, id EntityID) {
	if t := tm.At(x, y); t != nil && t.Unit == id {
		t.Unit = NoEntity
	}
}

// CountTerrain returns how many tiles carry the given terrain.
func (tm *TileMap) CountTerrain(terrain Terrain) int {
	n := 0
	for i := range tm.Tiles {
		if tm.Tiles[i].Terrain == terrain {
			n++
		}
	}
	return n
}
