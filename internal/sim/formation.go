package sim

import (
	"math"

	"github.com/Flavius4914/RTS-Engine/internal/iso"
)

// FormationGrid returns count slots arranged row-major in a near-square
// grid centred on center. cols = ceil(sqrt(count)).
func FormationGrid(center iso.Point, count int, spacing float64) []iso.Point {
	if count <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols
	startX := center.X - float64(cols-1)*spacing/2
	startY := center.Y - float64(rows-1)*spacing/2

	out := make([]iso.Point, 0, count)
	for r := 0; r < rows && len(out) < count; r++ {
		for c := 0; c < cols && len(out) < count; c++ {
			out = append(out, iso.Point{
				X: startX + float64(c)*spacing,
				Y: startY + float64(r)*spacing,
			})
		}
	}
	return out
}
