package mazegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lance6716/mazegen/pkg/render"
	"github.com/lance6716/mazegen/pkg/report"
	"github.com/pingcap/errors"
)

// mazes larger than this are not drawn in the report
const maxDrawnSize = 40

func buildReport(cfg *Config, s *Summary) *report.Report {
	sizes := make([]string, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		sizes = append(sizes, strconv.Itoa(size))
	}
	seeds := make([]string, 0, len(cfg.Seeds))
	for _, seed := range cfg.Seeds {
		seeds = append(seeds, strconv.FormatInt(seed, 10))
	}

	r := &report.Report{
		TaskInfoItems: [][2]string{
			{"Task Name", cfg.TaskName},
			{"Description", cfg.Description},
			{"Sizes", strings.Join(sizes, ", ")},
			{"Seeds", strings.Join(seeds, ", ")},
			{"Work Directory", cfg.WorkDir},
		},
		Mazes: report.Table{Header: report.StatsHeader},
	}

	totalCells := 0
	for _, res := range s.Results {
		r.Summary.Total++
		labels := [][2]string{{"Took", res.Took.String()}}
		if res.Walls != nil {
			r.Summary.Generated++
			totalCells += res.Walls.Cells()
			r.Mazes.Data = append(r.Mazes.Data, report.StatsRow(res.Size, res.Seed, res.Stats))
		}
		if res.Verified {
			r.Summary.Verified++
		}
		labels = append(labels, [2]string{"Verified", strconv.FormatBool(res.Verified)})
		if res.Err != nil {
			r.Summary.Failed++
			labels = append(labels, [2]string{"Error", res.Err.Error()})
		}

		d := report.Details{
			Header: fmt.Sprintf("size %d, seed %d", res.Size, res.Seed),
			Labels: labels,
		}
		if res.Walls != nil && res.Size <= maxDrawnSize {
			d.Text = render.ASCII(res.Walls)
		}
		r.Details = append(r.Details, d)
	}

	r.ExecutionInfoItems = [][2]string{
		{"Start Time", s.Start.Format(time.RFC3339)},
		{"Duration", s.Duration.String()},
		{"Concurrency", strconv.Itoa(cfg.Concurrency)},
		{"Total Cells", humanize.Comma(int64(totalCells))},
	}
	return r
}

func writeReport(cfg *Config, s *Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0776); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(report.Render(buildReport(cfg, s), path))
}
