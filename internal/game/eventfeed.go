package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

const (
	feedPanelWidth = 300
	feedMaxLines   = 14
	feedLineHeight = 13
	feedTop        = 120 // below the resource counters
)

// feedLine is one row of the on-screen event feed.
type feedLine struct {
	text string
	team string
}

// feedLines picks the newest n events worth showing to a player, oldest
// first. Per-step movement noise is left out.
func feedLines(events []sim.Event, n int) []feedLine {
	var out []feedLine
	for i := len(events) - 1; i >= 0 && len(out) < n; i-- {
		e := events[i]
		if e.Category == "move" && e.Key == "step" {
			continue
		}
		line := fmt.Sprintf("%4d [%s] %s/%s", e.Tick, e.Entity, e.Category, e.Key)
		if e.Value != "" {
			line += " " + e.Value
		}
		out = append(out, feedLine{text: line, team: e.Team})
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// drawEventFeed renders the recent event panel on the right side of the
// screen, newest entry at the bottom.
func (g *Game) drawEventFeed(screen *ebiten.Image) {
	lines := feedLines(g.world.Log().Tail(feedMaxLines*4), feedMaxLines)
	panelX := float32(g.width - feedPanelWidth - 8)
	panelH := float32(16 + feedMaxLines*feedLineHeight + 4)

	vector.FillRect(screen, panelX, feedTop, feedPanelWidth, panelH, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, panelX, feedTop, feedPanelWidth, panelH, 1, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [L] hide", int(panelX)+8, feedTop+2)

	recent := 3
	y := feedTop + 18
	for i, l := range lines {
		if i >= len(lines)-recent {
			vector.FillRect(screen, panelX+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		dot := color.RGBA{R: 150, G: 150, B: 150, A: 255}
		switch l.team {
		case sim.TeamPlayer.String():
			dot = color.RGBA{R: 70, G: 110, B: 210, A: 255}
		case sim.TeamEnemy.String():
			dot = color.RGBA{R: 210, G: 70, B: 70, A: 255}
		}
		vector.FillRect(screen, panelX+5, float32(y+4), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, clip(l.text, (feedPanelWidth-16)/6), int(panelX)+12, y)
		y += feedLineHeight
	}
}

// clip shortens s to at most n bytes.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "~"
}
