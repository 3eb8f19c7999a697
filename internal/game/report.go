package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// reportEvents is how many trailing log events a copied report carries.
const reportEvents = 40

// debugReport renders the session summary, the current selection and the
// tail of the event log as plain text.
func debugReport(w *sim.World, seed int64, lastEvents int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- RTS debug report ---\n")
	fmt.Fprintf(&b, "seed=%d tick=%d paused=%v\n\n", seed, w.Tick(), w.Paused())
	b.WriteString(sim.Summarize(w).String())

	if sel := w.Selected(); len(sel) > 0 {
		b.WriteString("\nSelected:\n")
		for _, e := range sel {
			p := e.Position()
			fmt.Fprintf(&b, "  %-8s %-10s pos=(%.0f,%.0f) hp=%.1f/%.0f", e.Label(), e.Type(), p.X, p.Y, e.Health(), e.MaxHealth())
			if u, ok := e.(*sim.Unit); ok {
				if d, moving := u.Destination(); moving {
					fmt.Fprintf(&b, " dest=(%.0f,%.0f)", d.X, d.Y)
				}
				if u.Engaged() {
					b.WriteString(" engaged")
				}
			}
			b.WriteByte('\n')
		}
	}

	log := w.Log()
	tail := log.Tail(lastEvents)
	fmt.Fprintf(&b, "\nLast %d events", len(tail))
	if d := log.Dropped(); d > 0 {
		fmt.Fprintf(&b, " (%d older dropped)", d)
	}
	b.WriteString(":\n")
	for _, e := range tail {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// copyReport puts the debug report on the system clipboard.
func (g *Game) copyReport() {
	report := debugReport(g.world, g.seed, reportEvents)
	if err := clipboard.WriteAll(report); err != nil {
		g.logger.Warn("copy report", "err", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.logger.Info("report copied", "tick", g.world.Tick(), "bytes", len(report))
	g.setStatus("report copied")
}
