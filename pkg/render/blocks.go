package render

import "github.com/lance6716/mazegen/pkg/maze"

// Blocks lays the maze out on a (2N+1) x (2N+1) grid where true is a solid
// block. Cell (r, c) sits at (2r+1, 2c+1), the wall between two cells sits
// between them, and the border and every lattice corner are always solid.
func Blocks(w *maze.Walls) [][]bool {
	n := 2*w.Size + 1
	grid := make([][]bool, n)
	for i := range grid {
		grid[i] = make([]bool, n)
		for j := range grid[i] {
			grid[i][j] = true
		}
	}

	for r := 0; r < w.Size; r++ {
		for c := 0; c < w.Size; c++ {
			grid[2*r+1][2*c+1] = false
		}
	}
	for r, row := range w.Vertical {
		for c, wall := range row {
			if wall == maze.Open {
				grid[2*r+1][2*c+2] = false
			}
		}
	}
	for r, row := range w.Horizontal {
		for c, wall := range row {
			if wall == maze.Open {
				grid[2*r+2][2*c+1] = false
			}
		}
	}
	return grid
}

// SolidBlocks returns the number of solid blocks of Blocks(w) without
// building the grid.
func SolidBlocks(w *maze.Walls) int {
	n := 2*w.Size + 1
	return n*n - w.Cells() - w.OpenCount()
}
