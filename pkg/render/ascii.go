package render

import (
	"strings"

	"github.com/lance6716/mazegen/pkg/maze"
)

const (
	solidRune = '█'
	openRune  = ' '
)

// ASCII draws Blocks(w), one text line per block row.
func ASCII(w *maze.Walls) string {
	grid := Blocks(w)
	var b strings.Builder
	b.Grow(len(grid) * (len(grid)*3 + 1))
	for _, row := range grid {
		for _, solid := range row {
			if solid {
				b.WriteRune(solidRune)
			} else {
				b.WriteRune(openRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
