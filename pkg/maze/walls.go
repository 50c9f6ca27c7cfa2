package maze

const (
	// Wall marks a wall entry that is present.
	Wall = true
	// Open marks a wall entry that has been removed.
	Open = false
)

// Walls is the result of a generation. Cells are addressed by r*Size+c.
//
// Horizontal[r][c] is the wall between cell (r, c) and (r+1, c), so it has
// Size-1 rows of Size entries. Vertical[r][c] is the wall between cell (r, c)
// and (r, c+1), so it has Size rows of Size-1 entries.
type Walls struct {
	Size       int      `json:"size"`
	Horizontal [][]bool `json:"horizontal"`
	Vertical   [][]bool `json:"vertical"`
}

func newWalls(size int) *Walls {
	w := &Walls{
		Size:       size,
		Horizontal: make([][]bool, size-1),
		Vertical:   make([][]bool, size),
	}
	for r := range w.Horizontal {
		w.Horizontal[r] = make([]bool, size)
		for c := range w.Horizontal[r] {
			w.Horizontal[r][c] = Wall
		}
	}
	for r := range w.Vertical {
		w.Vertical[r] = make([]bool, size-1)
		for c := range w.Vertical[r] {
			w.Vertical[r][c] = Wall
		}
	}
	return w
}

// Cells returns the number of cells.
func (w *Walls) Cells() int {
	return w.Size * w.Size
}

// Candidates returns the number of internal walls, open or not.
func (w *Walls) Candidates() int {
	return 2 * w.Size * (w.Size - 1)
}

// Cell returns the index of cell (r, c).
func (w *Walls) Cell(r, c int) int {
	return r*w.Size + c
}

// Coord returns the row and column of a cell index.
func (w *Walls) Coord(cell int) (r, c int) {
	return cell / w.Size, cell % w.Size
}

// IsOpen reports whether there is a passage between cells u and v. Cells that
// are not adjacent are never connected.
func (w *Walls) IsOpen(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	ur, uc := w.Coord(u)
	vr, vc := w.Coord(v)
	switch {
	case ur == vr && vc == uc+1:
		return w.Vertical[ur][uc] == Open
	case uc == vc && vr == ur+1:
		return w.Horizontal[ur][uc] == Open
	}
	return false
}

// Neighbors appends the cells reachable from cell through one open wall to
// dst and returns it.
func (w *Walls) Neighbors(cell int, dst []int) []int {
	r, c := w.Coord(cell)
	if r > 0 && w.Horizontal[r-1][c] == Open {
		dst = append(dst, cell-w.Size)
	}
	if r < w.Size-1 && w.Horizontal[r][c] == Open {
		dst = append(dst, cell+w.Size)
	}
	if c > 0 && w.Vertical[r][c-1] == Open {
		dst = append(dst, cell-1)
	}
	if c < w.Size-1 && w.Vertical[r][c] == Open {
		dst = append(dst, cell+1)
	}
	return dst
}

// OpenCount returns the number of removed walls.
func (w *Walls) OpenCount() int {
	n := 0
	for _, row := range w.Horizontal {
		for _, wall := range row {
			if wall == Open {
				n++
			}
		}
	}
	for _, row := range w.Vertical {
		for _, wall := range row {
			if wall == Open {
				n++
			}
		}
	}
	return n
}
