package game

import (
	"math"
	"testing"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

func testCamera() Camera {
	return NewCamera(config.Default().Camera)
}

func TestCamera_ZoomAtKeepsCursorAnchored(t *testing.T) {
	c := testCamera()
	c.X, c.Y = 300, -50
	cx, cy := 640.0, 360.0
	wx, wy := iso.ScreenToWorld(cx, cy, c.Zoom, iso.Point{X: c.X, Y: c.Y})

	c.ZoomAt(cx, cy, 3)
	if math.Abs(c.Zoom-1.3) > 1e-9 {
		t.Fatalf("zoom = %g, want 1.3", c.Zoom)
	}
	gx, gy := iso.ScreenToWorld(cx, cy, c.Zoom, iso.Point{X: c.X, Y: c.Y})
	if math.Abs(gx-wx) > 1e-6 || math.Abs(gy-wy) > 1e-6 {
		t.Fatalf("world under cursor moved from (%g,%g) to (%g,%g)", wx, wy, gx, gy)
	}
}

func TestCamera_ZoomIsBounded(t *testing.T) {
	c := testCamera()
	c.ZoomAt(0, 0, 100)
	if c.Zoom != 2 {
		t.Fatalf("zoom = %g, want max 2", c.Zoom)
	}
	c.ZoomAt(0, 0, -100)
	if c.Zoom != 0.5 {
		t.Fatalf("zoom = %g, want min 0.5", c.Zoom)
	}
}

func TestCamera_PanScalesWithZoom(t *testing.T) {
	c := testCamera()
	c.Zoom = 2
	c.Pan(1, -1)
	if c.X != 5 || c.Y != -5 {
		t.Fatalf("pan at zoom 2 = (%g,%g), want (5,-5)", c.X, c.Y)
	}
}

func TestCamera_ClampKeepsMapOnScreen(t *testing.T) {
	c := testCamera()
	c.X, c.Y = 1e6, 1e6
	c.Clamp(71, 71, 1280, 720)
	minX, minY, _, _ := mapExtent(71, 71)
	// Left/top edge of the map may come at most padding into the view.
	if left := minX*c.Zoom + c.X; left > 100+1e-9 {
		t.Fatalf("map left edge at %g, want <= 100", left)
	}
	if top := minY*c.Zoom + c.Y; top > 100+1e-9 {
		t.Fatalf("map top edge at %g, want <= 100", top)
	}

	c.X, c.Y = -1e6, -1e6
	c.Clamp(71, 71, 1280, 720)
	_, _, maxX, maxY := mapExtent(71, 71)
	if right := maxX*c.Zoom + c.X; right < 1280-100-1e-9 {
		t.Fatalf("map right edge at %g, want >= 1180", right)
	}
	if bottom := maxY*c.Zoom + c.Y; bottom < 720-100-1e-9 {
		t.Fatalf("map bottom edge at %g, want >= 620", bottom)
	}
}

func TestCamera_ClampCentresSmallMap(t *testing.T) {
	c := testCamera()
	c.Clamp(2, 2, 1280, 720)
	minX, _, maxX, _ := mapExtent(2, 2)
	mid := (minX+maxX)/2*c.Zoom + c.X
	if math.Abs(mid-640) > 1e-9 {
		t.Fatalf("small map centred at %g, want 640", mid)
	}
}

func TestCamera_CenterOnRoundTrips(t *testing.T) {
	c := testCamera()
	c.Zoom = 1.5
	c.CenterOn(35, 35, 1280, 720)
	if tx, ty := c.ScreenToTile(640, 361); tx != 35 || ty != 35 {
		t.Fatalf("centre of view maps to (%d,%d), want (35,35)", tx, ty)
	}
}
