package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/pingcap/errors"
)

const dotGraphName = "maze"

// DOT exports the open passages as an undirected Graphviz graph. Every cell is
// a node pinned at its grid position, so `neato -n` draws the maze.
func DOT(w *maze.Walls) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", errors.Trace(err)
	}
	if err := g.SetDir(false); err != nil {
		return "", errors.Trace(err)
	}

	for cell := 0; cell < w.Cells(); cell++ {
		r, c := w.Coord(cell)
		attrs := map[string]string{
			"shape": "point",
			// y grows upwards in graphviz
			"pos": strconv.Quote(fmt.Sprintf("%d,%d!", c, w.Size-1-r)),
		}
		if err := g.AddNode(dotGraphName, NodeName(w, cell), attrs); err != nil {
			return "", errors.Annotatef(err, "add node for cell %d", cell)
		}
	}

	neighbors := make([]int, 0, 4)
	for cell := 0; cell < w.Cells(); cell++ {
		neighbors = w.Neighbors(cell, neighbors[:0])
		for _, next := range neighbors {
			// every passage once
			if next < cell {
				continue
			}
			if err := g.AddEdge(NodeName(w, cell), NodeName(w, next), false, nil); err != nil {
				return "", errors.Annotatef(err, "add edge %d-%d", cell, next)
			}
		}
	}
	return g.String(), nil
}

// NodeName is the DOT node ID of a cell.
func NodeName(w *maze.Walls, cell int) string {
	r, c := w.Coord(cell)
	return fmt.Sprintf("c%d_%d", r, c)
}
