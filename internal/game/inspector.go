package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// Inspector panel, rendered into an offscreen buffer at 1x then blitted at
// inspScale.
const (
	inspScale = 2
	inspBufW  = 200
	inspBufH  = 96
	inspPad   = 4
	inspLineH = 13
)

// inspectorLines describes the current selection: full detail for a single
// unit, a roll-up for a group, nothing when the selection is empty.
func inspectorLines(sel []sim.Entity) []string {
	switch len(sel) {
	case 0:
		return nil
	case 1:
		e := sel[0]
		p := e.Position()
		lines := []string{
			fmt.Sprintf("[ %s %s ]", e.Label(), e.Type()),
			fmt.Sprintf("hp    %.1f / %.0f", e.Health(), e.MaxHealth()),
			fmt.Sprintf("pos   (%.0f, %.0f)", p.X, p.Y),
		}
		if u, ok := e.(*sim.Unit); ok {
			tx, ty := u.Tile()
			lines = append(lines, fmt.Sprintf("tile  (%d, %d)", tx, ty))
			lines = append(lines, fmt.Sprintf("atk   %.0f  spd %.0f", u.AttackDamage(), u.Speed()))
			switch d, moving := u.Destination(); {
			case u.Engaged():
				lines = append(lines, "state fighting")
			case moving:
				lines = append(lines, fmt.Sprintf("state moving to (%.0f, %.0f)", d.X, d.Y))
			default:
				lines = append(lines, "state idle")
			}
		}
		return lines
	default:
		var hp, maxHP float64
		engaged := 0
		for _, e := range sel {
			hp += e.Health()
			maxHP += e.MaxHealth()
			if u, ok := e.(*sim.Unit); ok && u.Engaged() {
				engaged++
			}
		}
		return []string{
			fmt.Sprintf("[ %d units selected ]", len(sel)),
			fmt.Sprintf("hp    %.0f / %.0f", hp, maxHP),
			fmt.Sprintf("fighting %d", engaged),
		}
	}
}

// drawInspector renders the selection panel in the bottom-right corner.
func (g *Game) drawInspector(screen *ebiten.Image) {
	lines := inspectorLines(g.world.Selected())
	if len(lines) == 0 {
		return
	}
	buf := g.inspBuf
	buf.Clear()
	bw := float32(inspBufW)
	bh := float32(inspPad*2 + len(lines)*inspLineH)
	border := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1, border, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(buf, clip(l, (inspBufW-2*inspPad)/6), inspPad, inspPad+i*inspLineH)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(inspScale, inspScale)
	op.GeoM.Translate(float64(g.width)-inspBufW*inspScale-8, float64(g.height)-float64(bh)*inspScale-8)
	screen.DrawImage(buf, op)
}
