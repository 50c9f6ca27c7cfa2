package maze

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pingcap/errors"
)

// ErrNotSpanningTree is the cause of errors returned by Verify.
var ErrNotSpanningTree = errors.New("walls do not form a spanning tree")

// Verify checks that the open walls connect every cell without any cycle.
func (w *Walls) Verify() error {
	if err := w.checkShape(); err != nil {
		return errors.Trace(err)
	}
	cells := w.Cells()
	if open := w.OpenCount(); open != cells-1 {
		return errors.Annotatef(ErrNotSpanningTree, "%d walls are open, expected %d", open, cells-1)
	}
	if cell, ok := w.findCycle(); ok {
		return errors.Annotatef(ErrNotSpanningTree, "found a cycle through cell %d", cell)
	}
	if n := w.reachable(0); n != cells {
		return errors.Annotatef(ErrNotSpanningTree, "%d of %d cells are reachable from cell 0", n, cells)
	}
	return nil
}

func (w *Walls) checkShape() error {
	if w.Size < 1 {
		return errors.Annotatef(ErrNotSpanningTree, "invalid size %d", w.Size)
	}
	if len(w.Horizontal) != w.Size-1 {
		return errors.Annotatef(ErrNotSpanningTree,
			"horizontal walls have %d rows, expected %d", len(w.Horizontal), w.Size-1)
	}
	for r, row := range w.Horizontal {
		if len(row) != w.Size {
			return errors.Annotatef(ErrNotSpanningTree,
				"horizontal wall row %d has %d entries, expected %d", r, len(row), w.Size)
		}
	}
	if len(w.Vertical) != w.Size {
		return errors.Annotatef(ErrNotSpanningTree,
			"vertical walls have %d rows, expected %d", len(w.Vertical), w.Size)
	}
	for r, row := range w.Vertical {
		if len(row) != w.Size-1 {
			return errors.Annotatef(ErrNotSpanningTree,
				"vertical wall row %d has %d entries, expected %d", r, len(row), w.Size-1)
		}
	}
	return nil
}

type dfsFrame struct {
	cell, parent int
}

// findCycle walks every component with an explicit stack. Reaching an already
// discovered cell other than the one we came from means a cycle.
func (w *Walls) findCycle() (int, bool) {
	discovered := make([]bool, w.Cells())
	stack := arraystack.New()
	neighbors := make([]int, 0, 4)

	for start := range discovered {
		if discovered[start] {
			continue
		}
		discovered[start] = true
		stack.Push(dfsFrame{cell: start, parent: -1})

		for !stack.Empty() {
			v, _ := stack.Pop()
			f := v.(dfsFrame)
			neighbors = w.Neighbors(f.cell, neighbors[:0])
			for _, next := range neighbors {
				if next == f.parent {
					continue
				}
				if discovered[next] {
					return next, true
				}
				discovered[next] = true
				stack.Push(dfsFrame{cell: next, parent: f.cell})
			}
		}
	}
	return 0, false
}

// reachable returns how many cells can be reached from cell.
func (w *Walls) reachable(cell int) int {
	dist, _ := w.bfs(cell)
	n := 0
	for _, d := range dist {
		if d >= 0 {
			n++
		}
	}
	return n
}

// bfs returns the distance of every cell from start, -1 for unreachable ones,
// and the reachable cell farthest from start.
func (w *Walls) bfs(start int) (dist []int, farthest int) {
	dist = make([]int, w.Cells())
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	farthest = start

	queue := arrayqueue.New()
	queue.Enqueue(start)
	neighbors := make([]int, 0, 4)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		cur := v.(int)
		if dist[cur] > dist[farthest] {
			farthest = cur
		}
		neighbors = w.Neighbors(cur, neighbors[:0])
		for _, next := range neighbors {
			if dist[next] < 0 {
				dist[next] = dist[cur] + 1
				queue.Enqueue(next)
			}
		}
	}
	return dist, farthest
}
