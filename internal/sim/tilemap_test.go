package sim

import "testing"

func TestTileMap_AtOutOfBounds(t *testing.T) {
	tm := NewTileMap(4, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if tm.At(p[0], p[1]) != nil {
			t.Fatalf("At(%d,%d) should be nil", p[0], p[1])
		}
	}
	if tile := tm.At(3, 2); tile == nil || tile.X != 3 || tile.Y != 2 {
		t.Fatalf("At(3,2) = %+v", tile)
	}
	if tm.TerrainAt(-5, -5) != TerrainWater {
		t.Fatal("off-map terrain should read as water")
	}
}

func TestTileMap_CanPlace(t *testing.T) {
	tm := NewTileMap(10, 10)
	if !tm.CanPlace(5, 5, 2, 2) {
		t.Fatal("all-grass 2x2 should be placeable")
	}

	tm.SetTerrain(6, 6, TerrainMountain)
	if tm.CanPlace(5, 5, 2, 2) {
		t.Fatal("2x2 straddling a mountain should be rejected")
	}
	if !tm.CanPlace(5, 5, 1, 1) {
		t.Fatal("1x1 beside the mountain should fit")
	}

	if tm.CanPlace(9, 9, 2, 1) {
		t.Fatal("footprint running off the map should be rejected")
	}
	if tm.CanPlace(1, 1, 0, 1) {
		t.Fatal("empty footprint should be rejected")
	}

	tm.setBuilding(0, 0, 2, 1, 7)
	if tm.CanPlace(1, 0, 1, 1) {
		t.Fatal("occupied tile should be rejected")
	}
	tm.clearBuilding(0, 0, 2, 1, 7)
	if !tm.CanPlace(0, 0, 2, 1) {
		t.Fatal("cleared footprint should be placeable again")
	}

	for _, terr := range []Terrain{TerrainWater, TerrainForest, TerrainDirt} {
		tm.SetTerrain(2, 2, terr)
		if tm.CanPlace(2, 2, 1, 1) {
			t.Fatalf("%s should not be buildable", terr)
		}
	}
}

func TestTileMap_WalkableNeighbors(t *testing.T) {
	tm := NewTileMap(3, 3)
	tm.SetTerrain(1, 0, TerrainWater)
	tm.SetTerrain(0, 1, TerrainForest)
	got := tm.WalkableNeighbors(0, 0)
	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Fatalf("neighbours of corner = %v, want [[0 1]]", got)
	}
	if n := len(tm.WalkableNeighbors(1, 1)); n != 3 {
		t.Fatalf("centre has %d walkable neighbours, want 3", n)
	}
}

func TestTileMap_UnitClaims(t *testing.T) {
	tm := NewTileMap(3, 3)
	if !tm.claimUnit(1, 1, 4) {
		t.Fatal("first claim should succeed")
	}
	if tm.claimUnit(1, 1, 5) {
		t.Fatal("second claim on the same tile should fail")
	}
	tm.releaseUnit(1, 1, 5)
	if tm.At(1, 1).Unit != 4 {
		t.Fatal("release by a non-owner must not clear the tile")
	}
	tm.releaseUnit(1, 1, 4)
	if tm.At(1, 1).Unit != NoEntity {
		t.Fatal("owner release should clear the tile")
	}
	if tm.claimUnit(-1, 0, 4) {
		t.Fatal("claim off the map should fail")
	}
}

func TestTileMap_SetResourceFloorsAtZero(t *testing.T) {
	tm := NewTileMap(2, 2)
	tm.SetResource(0, 0, -10)
	if tm.At(0, 0).Resource != 0 {
		t.Fatal("negative resource should floor at zero")
	}
	tm.SetResource(1, 1, 250)
	if tm.At(1, 1).Resource != 250 {
		t.Fatal("resource not stored")
	}
}
