package unionfind

import "github.com/pingcap/errors"

// ErrInvalidSize is returned by New when the requested size is negative.
var ErrInvalidSize = errors.New("invalid argument: union find size must not be negative")

// UnionFind is a partition of [0, size) with union by rank and path
// compression. Elements are plain indexes into flat arrays. It's not safe for
// concurrent use.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int
}

// New creates size singleton sets.
func New(size int) (*UnionFind, error) {
	if size < 0 {
		return nil, errors.Annotatef(ErrInvalidSize, "size %d", size)
	}
	u := &UnionFind{
		parent: make([]int, size),
		rank:   make([]int, size),
		sets:   size,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u, nil
}

// Find returns the representative of x. x must be in [0, Len()), otherwise it
// panics like any out-of-range index.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// path compression when finding the root
	for x != root {
		x, u.parent[x] = u.parent[x], root
	}
	return root
}

// Union merges the sets of x and y. It returns false when they are already in
// the same set, in which case nothing changes.
func (u *UnionFind) Union(x, y int) bool {
	rootX := u.Find(x)
	rootY := u.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
	default:
		u.parent[rootY] = rootX
		u.rank[rootX]++
	}
	u.sets--
	return true
}

// Connected reports whether x and y are in the same set.
func (u *UnionFind) Connected(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// Len returns the number of elements.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Sets returns the number of disjoint sets.
func (u *UnionFind) Sets() int {
	return u.sets
}
