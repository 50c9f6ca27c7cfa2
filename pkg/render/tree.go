package render

import (
	"fmt"
	"strings"

	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/pingcap/tidb/pkg/util/texttree"
)

type treeFrame struct {
	cell, parent int
	indent       string
	isLast       bool
}

// Tree prints the open passages as a tree rooted at cell (0,0), in the same
// style as EXPLAIN output. Children are ordered up, down, left, right. The
// walk uses an explicit stack so long corridors don't grow the goroutine stack.
//
// Tree assumes w is a spanning tree; cells on a cycle would be printed more
// than once, so it stops after Cells() lines.
func Tree(w *maze.Walls) string {
	var b strings.Builder
	stack := []treeFrame{{cell: 0, parent: -1, isLast: true}}
	children := make([]int, 0, 4)
	for printed := 0; len(stack) > 0 && printed < w.Cells(); printed++ {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.WriteString(texttree.PrettyIdentifier(cellLabel(w, f.cell), f.indent, f.isLast))
		b.WriteByte('\n')

		children = children[:0]
		for _, next := range w.Neighbors(f.cell, nil) {
			if next != f.parent {
				children = append(children, next)
			}
		}
		childIndent := texttree.Indent4Child(f.indent, f.isLast)
		// push in reverse so the first child is printed first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, treeFrame{
				cell:   children[i],
				parent: f.cell,
				indent: childIndent,
				isLast: i == len(children)-1,
			})
		}
	}
	return b.String()
}

func cellLabel(w *maze.Walls, cell int) string {
	r, c := w.Coord(cell)
	return fmt.Sprintf("(%d,%d)", r, c)
}
