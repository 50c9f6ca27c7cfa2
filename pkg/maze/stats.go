package maze

// Stats describes the shape of a generated maze.
type Stats struct {
	Cells      int `json:"cells"`
	Candidates int `json:"candidates"`
	Openings   int `json:"openings"`
	// DeadEnds counts cells with exactly one open wall.
	DeadEnds int `json:"dead_ends"`
	// Junctions counts cells with three or more open walls.
	Junctions int `json:"junctions"`
	// LongestPath is the number of cells on the longest simple path, which
	// runs from PathStart to PathEnd.
	LongestPath int `json:"longest_path"`
	PathStart   int `json:"path_start"`
	PathEnd     int `json:"path_end"`
}

// Stats computes Stats. The longest path is only meaningful when the walls
// pass Verify.
func (w *Walls) Stats() Stats {
	s := Stats{
		Cells:      w.Cells(),
		Candidates: w.Candidates(),
		Openings:   w.OpenCount(),
	}

	neighbors := make([]int, 0, 4)
	for cell := 0; cell < s.Cells; cell++ {
		neighbors = w.Neighbors(cell, neighbors[:0])
		switch degree := len(neighbors); {
		case degree == 1:
			s.DeadEnds++
		case degree >= 3:
			s.Junctions++
		}
	}

	// in a tree, the farthest cell from any cell is one end of a longest path
	_, a := w.bfs(0)
	dist, b := w.bfs(a)
	s.PathStart, s.PathEnd = a, b
	s.LongestPath = dist[b] + 1
	return s
}
