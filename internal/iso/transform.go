// Package iso maps between integer tile coordinates, floating world
// coordinates and zoomed screen coordinates of the isometric map.
//
// A tile is 64 px wide and 32 px tall. The world anchor of tile (tx, ty) is
// the top vertex of its diamond; the diamond extends halfW to either side
// and tileH downwards from that point.
package iso

import "math"

const (
	// StepX is the horizontal world offset per unit of tile coordinate.
	StepX = 32.0
	// StepY is the vertical world offset per unit of tile coordinate.
	StepY = 16.0

	halfW = StepX
	tileH = 2 * StepY
)

// Point is a 2-D coordinate in world or screen space.
type Point struct {
	X, Y float64
}

// TileToWorld returns the world anchor of tile (tx, ty).
func TileToWorld(tx, ty int) (float64, float64) {
	return float64(tx-ty) * StepX, float64(tx+ty) * StepY
}

// WorldToScreen scales a world point by zoom. The camera offset is applied
// by the caller at draw time.
func WorldToScreen(wx, wy, zoom float64) (float64, float64) {
	return wx * zoom, wy * zoom
}

// ScreenToWorld removes the camera offset and the zoom from a screen point.
func ScreenToWorld(sx, sy, zoom float64, cam Point) (float64, float64) {
	if zoom == 0 {
		zoom = 1
	}
	return (sx - cam.X) / zoom, (sy - cam.Y) / zoom
}

// WorldToTile returns the tile whose diamond contains the world point.
// Coordinates outside the map are returned as-is; callers bounds-check.
func WorldToTile(wx, wy float64) (int, int) {
	u := wx / StepX
	v := wy / StepY
	return int(math.Floor((u + v) / 2)), int(math.Floor((v - u) / 2))
}

// ScreenToTile inverts the full transform for a screen point.
func ScreenToTile(sx, sy, zoom float64, cam Point) (int, int) {
	wx, wy := ScreenToWorld(sx, sy, zoom, cam)
	return WorldToTile(wx, wy)
}

// TileDiamond returns the four screen-space corners (top, right, bottom,
// left) of tile (tx, ty) at the given zoom.
func TileDiamond(tx, ty int, zoom float64) []Point {
	wx, wy := TileToWorld(tx, ty)
	sx, sy := WorldToScreen(wx, wy, zoom)
	return []Point{
		{sx, sy},
		{sx + halfW*zoom, sy + StepY*zoom},
		{sx, sy + tileH*zoom},
		{sx - halfW*zoom, sy + StepY*zoom},
	}
}

// FootprintBounds returns the world-space axis-aligned bounding box of a
// w×h tile footprint anchored at tile (tx, ty).
func FootprintBounds(tx, ty, w, h int) (minX, minY, maxX, maxY float64) {
	minX = float64(tx-ty-h) * StepX
	maxX = float64(tx+w-ty) * StepX
	minY = float64(tx+ty) * StepY
	maxY = float64(tx+ty+w+h) * StepY
	return minX, minY, maxX, maxY
}
