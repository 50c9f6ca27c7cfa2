package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/stretchr/testify/require"
)

func TestStatsRow(t *testing.T) {
	row := StatsRow(40, -2, maze.Stats{Cells: 1600, Openings: 1599, DeadEnds: 310, Junctions: 90, LongestPath: 1234})
	require.Len(t, row, len(StatsHeader))
	require.Equal(t, []string{"40", "-2", "1,600", "1,599", "310", "90", "1,234"}, row)
}

func TestRender(t *testing.T) {
	r := &Report{
		TaskInfoItems: [][2]string{
			{"Task Name", "nightly"},
		},
		ExecutionInfoItems: [][2]string{
			{"Duration", "1s"},
			{"Concurrency", "4"},
		},
		Summary: Summary{Total: 2, Generated: 2, Verified: 1, Failed: 1},
		Mazes: Table{
			Header: StatsHeader,
			Data: [][]string{
				StatsRow(2, 1, maze.Stats{Cells: 4, Openings: 3, DeadEnds: 2, LongestPath: 4}),
			},
		},
		Details: []Details{
			{
				Header: "size 2, seed 1",
				Labels: [][2]string{{"Verify", "ok"}},
				Text:   "█████\n█   █\n█ ███\n█   █\n█████\n",
			},
			{
				Header: "size 2, seed 2",
				Labels: [][2]string{{"Error", "<not a spanning tree>"}},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render(r, &buf))
	out := buf.String()
	require.Contains(t, out, "<b>Task Name : </b>nightly<br>")
	require.Contains(t, out, "<th>Longest Path</th>")
	require.Contains(t, out, "<pre>█████\n█   █")
	require.Contains(t, out, "&lt;not a spanning tree&gt;")
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("<h3>")))
	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<pre>")))

	outFile := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, Render(r, outFile))
	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, out, string(content))
}

func TestRenderReplacesFile(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "report.html")
	require.NoError(t, os.WriteFile(outFile, []byte("stale"), 0666))

	r := &Report{TaskInfoItems: [][2]string{{"Task Name", "rerun"}}}
	require.NoError(t, Render(r, outFile))
	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "<b>Task Name : </b>rerun<br>")
	require.NotContains(t, string(content), "stale")

	// no temporary file is left next to the report
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "report.html", entries[0].Name())

	// a missing directory fails without creating anything
	missing := filepath.Join(dir, "missing", "report.html")
	require.Error(t, Render(r, missing))
	require.NoDirExists(t, filepath.Dir(missing))
}
