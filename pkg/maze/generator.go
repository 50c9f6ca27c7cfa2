package maze

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/lance6716/mazegen/pkg/unionfind"
	"github.com/pingcap/errors"
)

// ErrInvalidArgument is the cause of errors returned for bad input, such as a
// maze size smaller than 1.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument checks if err is caused by ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidArgument
}

// RandSource draws the edge weights. *rand.Rand of both math/rand and
// math/rand/v2 satisfy it.
type RandSource interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewSource returns a RandSource fully determined by seed.
func NewSource(seed int64) RandSource {
	return rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
}

// edge is a wall that may be opened between cells u and v. horizontal means u
// and v are in the same row, and the wall is Vertical[r][c]; otherwise it's
// Horizontal[r][c].
type edge struct {
	u, v       int
	weight     float64
	horizontal bool
	r, c       int
}

// Generate builds a perfect maze of size x size cells by randomized Kruskal:
// every wall gets a random weight from src, walls are visited by ascending
// weight and a wall is opened only if it joins two cells that are not yet
// connected. The open walls always form a spanning tree of the cells.
//
// Generate keeps no state between calls, so it's safe to call concurrently
// with different sources.
func Generate(size int, src RandSource) (*Walls, error) {
	if size < 1 {
		return nil, errors.Annotatef(ErrInvalidArgument, "maze size must be at least 1, got %d", size)
	}
	if src == nil {
		return nil, errors.Annotate(ErrInvalidArgument, "nil random source")
	}

	uf, err := unionfind.New(size * size)
	if err != nil {
		return nil, errors.Trace(err)
	}
	w := newWalls(size)

	edges := enumerateEdges(size, src)
	// ties keep creation order
	slices.SortStableFunc(edges, func(a, b edge) int {
		return cmp.Compare(a.weight, b.weight)
	})

	for _, e := range edges {
		if !uf.Union(e.u, e.v) {
			// would close a cycle
			continue
		}
		if e.horizontal {
			w.Vertical[e.r][e.c] = Open
		} else {
			w.Horizontal[e.r][e.c] = Open
		}
	}
	return w, nil
}

// enumerateEdges creates all horizontal neighbor pairs row by row, then all
// vertical neighbor pairs, drawing one weight per edge in that order.
func enumerateEdges(size int, src RandSource) []edge {
	edges := make([]edge, 0, 2*size*(size-1))
	for r := 0; r < size; r++ {
		for c := 0; c < size-1; c++ {
			edges = append(edges, edge{
				u:          r*size + c,
				v:          r*size + c + 1,
				weight:     src.Float64(),
				horizontal: true,
				r:          r,
				c:          c,
			})
		}
	}
	for r := 0; r < size-1; r++ {
		for c := 0; c < size; c++ {
			edges = append(edges, edge{
				u:      r*size + c,
				v:      (r+1)*size + c,
				weight: src.Float64(),
				r:      r,
				c:      c,
			})
		}
	}
	return edges
}
