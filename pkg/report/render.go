package report

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/lance6716/mazegen/pkg/util"
	"github.com/pingcap/errors"
)

var t = template.Must(template.New("report").Parse(tpl))

type Report struct {
	TaskInfoItems      [][2]string // [key, value]
	ExecutionInfoItems [][2]string
	Summary            Summary
	Mazes              Table
	Details            []Details
}

type Summary struct {
	Total     int
	Generated int
	Verified  int
	Failed    int
}

type Table struct {
	Header []string
	Data   [][]string
}

type Details struct {
	Header string
	Labels [][2]string
	Text   string
}

// StatsHeader is the header of the table built by StatsRow.
var StatsHeader = []string{
	"Size", "Seed", "Cells", "Openings", "Dead Ends", "Junctions", "Longest Path",
}

// StatsRow formats the statistics of one maze as a table row.
func StatsRow(size int, seed int64, s maze.Stats) []string {
	return []string{
		strconv.Itoa(size),
		strconv.FormatInt(seed, 10),
		humanize.Comma(int64(s.Cells)),
		humanize.Comma(int64(s.Openings)),
		humanize.Comma(int64(s.DeadEnds)),
		humanize.Comma(int64(s.Junctions)),
		humanize.Comma(int64(s.LongestPath)),
	}
}

// Render writes the HTML report to outFilename. The file is replaced
// atomically, a failed rendering leaves no file behind.
func Render(r *Report, outFilename string) error {
	var buf bytes.Buffer
	if err := render(r, &buf); err != nil {
		return err
	}
	return errors.Trace(util.AtomicWrite(outFilename, buf.Bytes()))
}

func render(r *Report, out io.Writer) error {
	return errors.Trace(t.Execute(out, r))
}
