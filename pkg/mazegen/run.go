package mazegen

import (
	"context"
	"time"

	"github.com/lance6716/mazegen/pkg/filemgr"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/lance6716/mazegen/pkg/render"
	"github.com/lance6716/mazegen/pkg/store"
	"github.com/lance6716/mazegen/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of generating one maze.
type Result struct {
	Size int
	Seed int64

	// Walls is nil if the generation failed.
	Walls    *maze.Walls
	Stats    maze.Stats
	Verified bool
	Files    []string
	Took     time.Duration
	Err      error
}

// Summary is the outcome of a Run.
type Summary struct {
	TaskName string
	Start    time.Time
	Duration time.Duration
	// Results are ordered by size, then by seed, as they appear in the Config.
	Results []*Result
}

// Failed returns the number of results with an error.
func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Run is the main entry function of the mazegen logic. Every (size, seed) pair
// is an independent job; a failed job doesn't stop the others and all job
// errors are combined in the returned error. Canceling ctx stops new jobs from
// starting.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {
	cfg.ensureDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Trace(err)
	}

	mgr := filemgr.NewManager(cfg.WorkDir)

	var st *store.Store
	if cfg.DB.Host != "" {
		db, err := util.ConnectDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer db.Close()
		st = store.New(db)
	}

	summary := &Summary{
		TaskName: cfg.TaskName,
		Start:    time.Now(),
		Results:  make([]*Result, 0, len(cfg.Sizes)*len(cfg.Seeds)),
	}
	for _, size := range cfg.Sizes {
		for _, seed := range cfg.Seeds {
			summary.Results = append(summary.Results, &Result{Size: size, Seed: seed})
		}
	}
	util.Logger.Info("start generating mazes",
		zap.String("task", cfg.TaskName),
		zap.Ints("sizes", cfg.Sizes),
		zap.Int64s("seeds", cfg.Seeds),
		zap.Int("concurrency", cfg.Concurrency))

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for _, r := range summary.Results {
		g.Go(func() error {
			runOne(ctx, cfg, mgr, st, r)
			return nil
		})
	}
	_ = g.Wait()
	summary.Duration = time.Since(summary.Start)

	if err := ctx.Err(); err != nil {
		return summary, errors.Trace(err)
	}

	var errs error
	for _, r := range summary.Results {
		if r.Err != nil {
			errs = multierr.Append(errs, errors.Annotatef(r.Err, "size %d seed %d", r.Size, r.Seed))
		}
	}

	if cfg.Report {
		p := mgr.ReportPath(cfg.TaskName)
		if err := writeReport(cfg, summary, p); err != nil {
			errs = multierr.Append(errs, errors.Annotatef(err, "write report %s", p))
		} else {
			util.Logger.Info("report written", zap.String("path", p))
		}
	}

	util.Logger.Info("finish generating mazes",
		zap.String("task", cfg.TaskName),
		zap.Int("total", len(summary.Results)),
		zap.Int("failed", summary.Failed()),
		zap.Duration("take", summary.Duration))
	return summary, errs
}

func runOne(
	ctx context.Context,
	cfg *Config,
	mgr *filemgr.Manager,
	st *store.Store,
	r *Result,
) {
	if err := ctx.Err(); err != nil {
		r.Err = err
		return
	}
	start := time.Now()
	defer func() {
		r.Took = time.Since(start)
		if r.Err != nil {
			util.Logger.Warn("generate maze failed",
				zap.Int("size", r.Size),
				zap.Int64("seed", r.Seed),
				zap.Error(r.Err))
		}
	}()

	w, err := maze.Generate(r.Size, maze.NewSource(r.Seed))
	if err != nil {
		r.Err = errors.Trace(err)
		return
	}
	r.Walls = w
	if !cfg.SkipVerify {
		if err = w.Verify(); err != nil {
			r.Err = errors.Trace(err)
			return
		}
		r.Verified = true
	}
	r.Stats = w.Stats()

	for _, f := range cfg.Formats {
		p, err := writeFormat(mgr, cfg.TaskName, r.Seed, w, f)
		if err != nil {
			r.Err = errors.Annotatef(err, "write %s", f)
			return
		}
		r.Files = append(r.Files, p)
	}

	if st != nil {
		if err = st.Save(ctx, r.Seed, w); err != nil {
			r.Err = errors.Trace(err)
			return
		}
	}

	util.Logger.Debug("maze generated",
		zap.Int("size", r.Size),
		zap.Int64("seed", r.Seed),
		zap.Int("openings", r.Stats.Openings),
		zap.Int("dead-ends", r.Stats.DeadEnds),
		zap.Int("longest-path", r.Stats.LongestPath),
		zap.Duration("take", time.Since(start)))
}

func writeFormat(mgr *filemgr.Manager, task string, seed int64, w *maze.Walls, format string) (string, error) {
	ext := formatExt[format]
	switch format {
	case FormatJSON:
		return mgr.WriteWalls(task, seed, w)
	case FormatASCII:
		return mgr.WriteText(task, w.Size, seed, ext, render.ASCII(w))
	case FormatTree:
		return mgr.WriteText(task, w.Size, seed, ext, render.Tree(w))
	case FormatDOT:
		dot, err := render.DOT(w)
		if err != nil {
			return "", errors.Trace(err)
		}
		return mgr.WriteText(task, w.Size, seed, ext, dot)
	}
	return "", errors.Annotatef(maze.ErrInvalidArgument, "unknown format %q", format)
}
