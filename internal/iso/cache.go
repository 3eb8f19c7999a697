package iso

// ScreenCache memoises the screen position of one entity for the most
// recently requested zoom. Owners call Invalidate whenever the entity's
// world position changes; a different zoom recomputes and replaces the entry.
type ScreenCache struct {
	valid bool
	zoom  float64
	pos   Point
}

// Get returns the screen position of (wx, wy) at zoom, reusing the cached
// value when the zoom matches the last request.
func (c *ScreenCache) Get(wx, wy, zoom float64) Point {
	if c.valid && c.zoom == zoom {
		return c.pos
	}
	sx, sy := WorldToScreen(wx, wy, zoom)
	c.pos = Point{sx, sy}
	c.zoom = zoom
	c.valid = true
	return c.pos
}

// Invalidate drops the cached entry.
func (c *ScreenCache) Invalidate() {
	c.valid = false
}

// Valid reports whether an entry is cached for zoom.
func (c *ScreenCache) Valid(zoom float64) bool {
	return c.valid && c.zoom == zoom
}
