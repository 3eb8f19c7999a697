package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Flavius4914/RTS-Engine/internal/iso"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

var terrainColors = [...]color.RGBA{
	sim.TerrainGrass:    {R: 34, G: 139, B: 34, A: 255},
	sim.TerrainWater:    {B: 139, A: 255},
	sim.TerrainForest:   {G: 100, A: 255},
	sim.TerrainMountain: {R: 139, G: 137, B: 137, A: 255},
	sim.TerrainDirt:     {R: 139, G: 69, B: 19, A: 255},
}

var (
	playerColor    = color.RGBA{B: 255, A: 255}
	enemyColor     = color.RGBA{R: 255, A: 255}
	buildingColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	enemyBldColor  = color.RGBA{R: 110, G: 40, B: 40, A: 255}
	selectColor    = color.RGBA{R: 255, G: 255, A: 255}
	healthBgColor  = color.RGBA{R: 60, A: 200}
	healthColor    = color.RGBA{R: 255, A: 255}
	dragColor      = color.RGBA{G: 255, A: 255}
	previewOK      = color.RGBA{G: 200, A: 110}
	previewBlocked = color.RGBA{R: 220, A: 110}
)

// fill paints path in c.
func fill(dst *ebiten.Image, path *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

// stroke outlines path in c.
func stroke(dst *ebiten.Image, path *vector.Path, width float32, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, path, &vector.StrokeOptions{Width: width}, op)
}

// polygon appends a closed polygon, offset by the camera, to path.
func polygon(path *vector.Path, pts []iso.Point, cx, cy float64) {
	for i, p := range pts {
		x, y := float32(p.X+cx), float32(p.Y+cy)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
}

// onScreen reports whether a screen-space box overlaps the view.
func (g *Game) onScreen(minX, minY, maxX, maxY float64) bool {
	return maxX >= 0 && maxY >= 0 && minX <= float64(g.width) && minY <= float64(g.height)
}

// drawTiles fills every visible diamond. Diamonds are batched into one path
// per terrain so the map costs a handful of draw calls.
func (g *Game) drawTiles(screen *ebiten.Image) {
	var paths [len(terrainColors)]vector.Path
	var grid vector.Path
	z := g.cam.Zoom
	g.world.EachTile(func(t sim.Tile) {
		d := iso.TileDiamond(t.X, t.Y, z)
		if !g.onScreen(d[3].X+g.cam.X, d[0].Y+g.cam.Y, d[1].X+g.cam.X, d[2].Y+g.cam.Y) {
			return
		}
		if int(t.Terrain) < len(paths) {
			polygon(&paths[t.Terrain], d, g.cam.X, g.cam.Y)
		}
		polygon(&grid, d, g.cam.X, g.cam.Y)
	})
	for i := range paths {
		fill(screen, &paths[i], terrainColors[i])
	}
	stroke(screen, &grid, 1, color.Black)
}

func (g *Game) drawEntities(screen *ebiten.Image, v sim.View) {
	cx, cy := g.cam.X, g.cam.Y
	z := g.cam.Zoom
	for _, e := range v.Entities {
		minX, minY, maxX, maxY := extent(e.Geometry)
		if !g.onScreen(minX+cx, minY+cy, maxX+cx, maxY+cy) {
			continue
		}
		var body vector.Path
		polygon(&body, e.Geometry, cx, cy)
		fill(screen, &body, entityColor(e))
		stroke(screen, &body, 1, color.Black)

		// Health bar above the entity.
		barW, barH, lift := 24.0, 3.0, 20.0
		if e.Kind == sim.KindBuilding {
			barW, barH, lift = 64, 5, 40
		}
		sx, sy := e.Screen.X+cx, e.Screen.Y+cy
		hx := float32(sx - barW/2*z)
		hy := float32(sy - lift*z)
		vector.FillRect(screen, hx, hy, float32(barW*z), float32(barH*z), healthBgColor, false)
		if e.MaxHealth > 0 {
			frac := math.Max(0, e.Health/e.MaxHealth)
			vector.FillRect(screen, hx, hy, float32(barW*z*frac), float32(barH*z), healthColor, false)
		}

		if e.Selected {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(20*z), 2, selectColor, true)
		}
	}
}

func entityColor(e sim.EntityView) color.RGBA {
	switch {
	case e.Kind == sim.KindUnit && e.Team == sim.TeamPlayer:
		return playerColor
	case e.Kind == sim.KindUnit:
		return enemyColor
	case e.Team == sim.TeamEnemy:
		return enemyBldColor
	default:
		return buildingColor
	}
}

func extent(pts []iso.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// drawPlacementPreview shades the footprint the armed building would take
// under the cursor, green when it fits and red when it does not.
func (g *Game) drawPlacementPreview(screen *ebiten.Image, btype string, mx, my float64) {
	def, ok := g.cfg.Buildings[btype]
	if !ok {
		return
	}
	tx, ty := g.cam.ScreenToTile(mx, my)
	ax, ay := g.world.PlacementAnchor(btype, tx, ty)
	c := previewBlocked
	if g.world.CanPlaceAt(tx, ty) {
		c = previewOK
	}
	var path vector.Path
	for dy := 0; dy < def.TilesH; dy++ {
		for dx := 0; dx < def.TilesW; dx++ {
			polygon(&path, iso.TileDiamond(ax+dx, ay+dy, g.cam.Zoom), g.cam.X, g.cam.Y)
		}
	}
	fill(screen, &path, c)
}

func (g *Game) drawDragRect(screen *ebiten.Image, mx, my float64) {
	x := math.Min(g.dragX, mx)
	y := math.Min(g.dragY, my)
	w := math.Abs(mx - g.dragX)
	h := math.Abs(my - g.dragY)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, dragColor, false)
}
