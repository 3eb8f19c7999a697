package game

import (
	"math"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// Camera is the screen offset and zoom applied to world coordinates:
// screen = world × Zoom + (X, Y).
type Camera struct {
	X, Y float64
	Zoom float64

	cfg config.CameraConfig
}

// NewCamera returns a camera at zoom 1 with the given limits.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{Zoom: 1, cfg: cfg}
}

// Viewport returns the camera state in the form commands expect.
func (c *Camera) Viewport() sim.Viewport {
	return sim.Viewport{Zoom: c.Zoom, Cam: iso.Point{X: c.X, Y: c.Y}}
}

// Pan shifts the view by (dx, dy) steps of the configured speed, scaled so
// panning feels the same at every zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx * c.cfg.Speed / c.Zoom
	c.Y += dy * c.cfg.Speed / c.Zoom
}

// ZoomAt changes the zoom by steps increments while keeping the world point
// under the cursor fixed on screen.
func (c *Camera) ZoomAt(cx, cy float64, steps int) {
	if steps == 0 {
		return
	}
	old := c.Zoom
	next := old + float64(steps)*c.cfg.ZoomStep
	next = math.Max(c.cfg.MinZoom, math.Min(c.cfg.MaxZoom, next))
	// Snap to the step grid so repeated zooming does not accumulate error.
	next = math.Round(next/c.cfg.ZoomStep) * c.cfg.ZoomStep
	if next == old {
		return
	}
	wx, wy := iso.ScreenToWorld(cx, cy, old, iso.Point{X: c.X, Y: c.Y})
	c.Zoom = next
	c.X = cx - wx*next
	c.Y = cy - wy*next
}

// mapExtent returns the world-space box covered by a width×height map.
func mapExtent(width, height int) (minX, minY, maxX, maxY float64) {
	return iso.FootprintBounds(0, 0, width, height)
}

// Clamp keeps the map on screen with the configured padding. On an axis
// where the map is smaller than the view it is centred instead.
func (c *Camera) Clamp(mapW, mapH, viewW, viewH int) {
	minX, minY, maxX, maxY := mapExtent(mapW, mapH)
	c.X = clampAxis(c.X, minX*c.Zoom, maxX*c.Zoom, float64(viewW), c.cfg.Padding)
	c.Y = clampAxis(c.Y, minY*c.Zoom, maxY*c.Zoom, float64(viewH), c.cfg.Padding)
}

// clampAxis bounds an offset so that [lo, hi] (already zoomed) overlaps a
// view of size view with pad to spare at each edge.
func clampAxis(off, lo, hi, view, pad float64) float64 {
	lower := view - hi - pad // right/bottom edge no further in than pad
	upper := pad - lo        // left/top edge no further out than pad
	if lower > upper {
		return (lower + upper) / 2
	}
	return math.Max(lower, math.Min(upper, off))
}

// CenterOn places tile (tx, ty) at the middle of the view.
func (c *Camera) CenterOn(tx, ty, viewW, viewH int) {
	wx, wy := iso.TileToWorld(tx, ty)
	c.X = float64(viewW)/2 - wx*c.Zoom
	c.Y = float64(viewH)/2 - wy*c.Zoom
}

// ScreenToTile returns the tile under a screen point.
func (c *Camera) ScreenToTile(sx, sy float64) (int, int) {
	return iso.ScreenToTile(sx, sy, c.Zoom, iso.Point{X: c.X, Y: c.Y})
}
