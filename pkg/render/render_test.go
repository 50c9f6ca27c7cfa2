package render

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/stretchr/testify/require"
)

const (
	o = maze.Open
	x = maze.Wall
)

// serpentine is
//
//	0 - 1 - 2
//	        |
//	3 - 4 - 5
//	|
//	6 - 7 - 8
func serpentine() *maze.Walls {
	return &maze.Walls{
		Size:       3,
		Horizontal: [][]bool{{x, x, o}, {o, x, x}},
		Vertical:   [][]bool{{o, o}, {o, o}, {o, o}},
	}
}

// cross is
//
//	0 - 1 - 2
//	    |
//	3 - 4 - 5
//	    |
//	6 - 7 - 8
func cross() *maze.Walls {
	return &maze.Walls{
		Size:       3,
		Horizontal: [][]bool{{x, o, x}, {x, o, x}},
		Vertical:   [][]bool{{o, o}, {o, o}, {o, o}},
	}
}

func TestBlocks(t *testing.T) {
	w := serpentine()
	grid := Blocks(w)
	require.Len(t, grid, 7)
	for _, row := range grid {
		require.Len(t, row, 7)
	}
	solid := 0
	for _, row := range grid {
		for _, b := range row {
			if b {
				solid++
			}
		}
	}
	require.Equal(t, SolidBlocks(w), solid)
	require.Equal(t, 49-9-8, solid)

	one, err := maze.Generate(1, maze.NewSource(1))
	require.NoError(t, err)
	require.Equal(t, [][]bool{{true, true, true}, {true, false, true}, {true, true, true}}, Blocks(one))
}

func TestASCII(t *testing.T) {
	expected := strings.Join([]string{
		"███████",
		"█     █",
		"█████ █",
		"█     █",
		"█ █████",
		"█     █",
		"███████",
	}, "\n") + "\n"
	require.Equal(t, expected, ASCII(serpentine()))
}

func TestTree(t *testing.T) {
	expected := strings.Join([]string{
		"(0,0)",
		"└─(0,1)",
		"  └─(0,2)",
		"    └─(1,2)",
		"      └─(1,1)",
		"        └─(1,0)",
		"          └─(2,0)",
		"            └─(2,1)",
		"              └─(2,2)",
	}, "\n") + "\n"
	require.Equal(t, expected, Tree(serpentine()))

	expected = strings.Join([]string{
		"(0,0)",
		"└─(0,1)",
		"  ├─(1,1)",
		"  │ ├─(2,1)",
		"  │ │ ├─(2,0)",
		"  │ │ └─(2,2)",
		"  │ ├─(1,0)",
		"  │ └─(1,2)",
		"  └─(0,2)",
	}, "\n") + "\n"
	require.Equal(t, expected, Tree(cross()))
}

func TestTreeGenerated(t *testing.T) {
	w, err := maze.Generate(40, maze.NewSource(11))
	require.NoError(t, err)
	out := Tree(w)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1600)

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		label := line[strings.LastIndex(line, "("):]
		seen[label] = struct{}{}
	}
	require.Len(t, seen, 1600)
}

func TestDOT(t *testing.T) {
	for _, size := range []int{1, 2, 7} {
		w, err := maze.Generate(size, maze.NewSource(int64(size)))
		require.NoError(t, err)
		out, err := DOT(w)
		require.NoError(t, err)

		graphAst, err := gographviz.ParseString(out)
		require.NoError(t, err)
		g := gographviz.NewGraph()
		require.NoError(t, gographviz.Analyse(graphAst, g))
		require.False(t, g.Directed)
		require.Len(t, g.Nodes.Nodes, size*size)
		require.Len(t, g.Edges.Edges, size*size-1)
		for _, e := range g.Edges.Edges {
			u, v := -1, -1
			for cell := 0; cell < w.Cells(); cell++ {
				switch NodeName(w, cell) {
				case e.Src:
					u = cell
				case e.Dst:
					v = cell
				}
			}
			require.GreaterOrEqual(t, u, 0)
			require.GreaterOrEqual(t, v, 0)
			require.True(t, w.IsOpen(u, v), "edge %s-%s", e.Src, e.Dst)
		}
	}
}
