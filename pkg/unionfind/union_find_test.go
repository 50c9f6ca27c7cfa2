package unionfind

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	u, err := New(6)
	require.NoError(t, err)
	require.Equal(t, 6, u.Len())
	require.Equal(t, 6, u.Sets())

	require.True(t, u.Union(0, 1))
	require.True(t, u.Union(1, 2))
	require.True(t, u.Union(3, 4))
	require.True(t, u.Connected(0, 1))
	require.True(t, u.Connected(0, 2))
	require.False(t, u.Connected(0, 3))
	require.False(t, u.Connected(5, 4))
	require.Equal(t, 3, u.Sets())

	require.True(t, u.Union(2, 4))
	require.True(t, u.Connected(0, 3))
	require.Equal(t, 2, u.Sets())
}

func TestNew(t *testing.T) {
	u, err := New(0)
	require.NoError(t, err)
	require.Equal(t, 0, u.Len())
	require.Equal(t, 0, u.Sets())

	u, err = New(-1)
	require.Nil(t, u)
	require.Error(t, err)
	require.Equal(t, ErrInvalidSize, errors.Cause(err))
}

func TestUnionTieBreak(t *testing.T) {
	u, err := New(4)
	require.NoError(t, err)

	// equal ranks: y's root goes under x's root
	require.True(t, u.Union(1, 0))
	require.Equal(t, 1, u.Find(0))
	require.Equal(t, 1, u.rank[1])
	require.Equal(t, 0, u.rank[0])

	// lower rank root goes under the higher one, regardless of argument order
	require.True(t, u.Union(2, 0))
	require.Equal(t, 1, u.Find(2))
	require.Equal(t, 1, u.rank[1])

	require.True(t, u.Union(1, 3))
	require.Equal(t, 1, u.Find(3))
}

func TestUnionConnectedIsNoop(t *testing.T) {
	u, err := New(5)
	require.NoError(t, err)
	require.True(t, u.Union(0, 1))
	require.True(t, u.Union(1, 2))

	// compress every path first so the Finds inside Union change nothing
	for i := 0; i < u.Len(); i++ {
		u.Find(i)
	}
	parent := slices.Clone(u.parent)
	rank := slices.Clone(u.rank)

	require.False(t, u.Union(2, 0))
	require.False(t, u.Union(1, 1))
	require.Equal(t, parent, u.parent)
	require.Equal(t, rank, u.rank)
	require.Equal(t, 3, u.Sets())
}

func TestFindCompressesPath(t *testing.T) {
	u, err := New(5)
	require.NoError(t, err)
	// build a chain 4 -> 3 -> 2 -> 1 -> 0 by hand
	for i := 1; i < 5; i++ {
		u.parent[i] = i - 1
	}
	require.Equal(t, 0, u.Find(4))
	for i := 0; i < 5; i++ {
		require.Equal(t, 0, u.parent[i], "node %d", i)
	}
}

func TestFindIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	u, err := New(100)
	require.NoError(t, err)
	for i := 0; i < 60; i++ {
		u.Union(rng.IntN(100), rng.IntN(100))
	}
	for i := 0; i < u.Len(); i++ {
		r := u.Find(i)
		require.Equal(t, r, u.Find(r))
		require.Equal(t, r, u.parent[r])
	}
}

// TestUnionMatchesReachability checks that two elements share a set iff they
// are linked by a chain of successful unions.
func TestUnionMatchesReachability(t *testing.T) {
	const n = 40
	rng := rand.New(rand.NewPCG(42, 7))
	for round := 0; round < 20; round++ {
		u, err := New(n)
		require.NoError(t, err)
		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			x, y := rng.IntN(n), rng.IntN(n)
			if u.Union(x, y) {
				adj[x] = append(adj[x], y)
				adj[y] = append(adj[y], x)
			}
		}

		for x := 0; x < n; x++ {
			reach := make([]bool, n)
			reach[x] = true
			queue := []int{x}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, next := range adj[cur] {
					if !reach[next] {
						reach[next] = true
						queue = append(queue, next)
					}
				}
			}
			for y := 0; y < n; y++ {
				require.Equal(t, reach[y], u.Connected(x, y), "round %d, %d-%d", round, x, y)
			}
		}
	}
}

func TestRankBoundsHeight(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	u, err := New(256)
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		u.Union(rng.IntN(256), rng.IntN(256))
	}
	for i := 0; i < u.Len(); i++ {
		height := 0
		for x := i; u.parent[x] != x; x = u.parent[x] {
			height++
		}
		root := i
		for u.parent[root] != root {
			root = u.parent[root]
		}
		require.LessOrEqual(t, height, u.rank[root])
	}
}

func TestFindOutOfRangePanics(t *testing.T) {
	u, err := New(3)
	require.NoError(t, err)
	require.Panics(t, func() { u.Find(3) })
	require.Panics(t, func() { u.Find(-1) })
}
