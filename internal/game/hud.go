package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// hudScale is the integer upscale applied to the help panel.
const hudScale = 2

// button is one command in the top-left toolbar. Exactly one of build and
// spawn is set.
type button struct {
	label      string
	x, y, w, h float64
	fill       color.RGBA
	build      string
	spawn      string
}

var toolbar = []button{
	{label: "Woodcutter", x: 10, y: 10, w: 100, h: 30, fill: color.RGBA{R: 139, G: 69, B: 19, A: 255}, build: "Woodcutter"},
	{label: "Quarry", x: 120, y: 10, w: 100, h: 30, fill: color.RGBA{R: 169, G: 169, B: 169, A: 255}, build: "Quarry"},
	{label: "Farm", x: 230, y: 10, w: 100, h: 30, fill: color.RGBA{R: 34, G: 139, B: 34, A: 255}, build: "Farm"},
	{label: "Barracks", x: 10, y: 50, w: 100, h: 30, fill: color.RGBA{R: 139, A: 255}, build: "Barracks"},
	{label: "Archery", x: 120, y: 50, w: 100, h: 30, fill: color.RGBA{R: 160, G: 82, B: 45, A: 255}, build: "Archery"},
	{label: "Swordsman", x: 230, y: 50, w: 100, h: 30, fill: color.RGBA{R: 70, G: 130, B: 180, A: 255}, spawn: "Swordsman"},
}

func (b button) contains(x, y float64) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// buttonAt returns the toolbar button under a screen point.
func buttonAt(x, y float64) (button, bool) {
	for _, b := range toolbar {
		if b.contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}

// arm starts the placement or spawn a button stands for.
func (b button) arm(w *sim.World) error {
	if b.spawn != "" {
		return w.BeginSpawn(b.spawn)
	}
	return w.BeginPlacement(b.build)
}

// costLabel renders a cost table as "wood 50 stone 20".
func costLabel(cost map[string]int) string {
	s := ""
	for _, k := range config.ResourceKinds {
		if n := cost[k]; n > 0 {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%s %d", k, n)
		}
	}
	return s
}

// resourceLines lists the stockpile in display order.
func resourceLines(res map[string]int) []string {
	lines := make([]string, 0, len(config.ResourceKinds))
	for _, k := range config.ResourceKinds {
		lines = append(lines, fmt.Sprintf("%s: %d", k, res[k]))
	}
	return lines
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}

// drawTextCentered draws s centred on (cx, cy).
func drawTextCentered(dst *ebiten.Image, s string, cx, cy float64, c color.Color) {
	w, h := text.Measure(s, hudFace, 0)
	drawText(dst, s, cx-w/2, cy-h/2, c)
}

func (g *Game) drawToolbar(screen *ebiten.Image, mx, my float64, v sim.View) {
	for _, b := range toolbar {
		fill := b.fill
		if b.contains(mx, my) {
			fill = lighten(fill, 30)
		}
		armed := (b.build != "" && b.build == v.Placing) || (b.spawn != "" && b.spawn == v.Spawning)
		vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
		edge := color.RGBA{A: 255}
		if armed {
			edge = color.RGBA{R: 255, G: 255, A: 255}
		}
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, edge, false)
		drawTextCentered(screen, b.label, b.x+b.w/2, b.y+b.h/2, color.White)
	}
	if b, ok := buttonAt(mx, my); ok {
		key := b.build
		if key == "" {
			key = b.spawn
		}
		if c := costLabel(g.cfg.Costs[key]); c != "" {
			drawText(screen, c, b.x, b.y+b.h+4, color.RGBA{R: 230, G: 230, B: 200, A: 255})
		}
	}
}

func (g *Game) drawResources(screen *ebiten.Image, res map[string]int) {
	x := float64(g.width - 150)
	for i, line := range resourceLines(res) {
		drawText(screen, line, x, 10+float64(i)*25, color.White)
	}
}

// drawHelp renders the key legend in the bottom-left corner. Text is drawn
// into hudBuf at 1x then composited at hudScale.
func (g *Game) drawHelp(screen *ebiten.Image, v sim.View) {
	state := "running"
	if v.Paused {
		state = "PAUSED"
	}
	lines := []string{
		fmt.Sprintf("T=%d  %s  zoom %.1fx", v.Tick, state, g.cam.Zoom),
		"arrows=pan  wheel=zoom  WASD=nudge",
		"LMB=select/place  RMB=move/cancel",
		"Esc=pause  C=copy report  Home=centre  L=events",
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}

	const lineH = 12
	const charW = 6
	const padX = 5
	const padY = 4
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(4)
	by := float32(g.height/hudScale) - boxH - 4

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, op)
}

func (g *Game) drawVictory(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 180}, false)
	const scale = 4
	w, h := text.Measure("You won!", hudFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.width)/2-w*scale/2, float64(g.height)/2-h*scale/2)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 215, A: 255})
	text.Draw(screen, "You won!", hudFace, op)
}

func lighten(c color.RGBA, d uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if v > 255-d {
			return 255
		}
		return v + d
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
