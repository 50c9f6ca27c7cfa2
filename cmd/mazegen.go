package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/lance6716/mazegen/pkg/filemgr"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/lance6716/mazegen/pkg/mazegen"
	"github.com/lance6716/mazegen/pkg/render"
	"github.com/lance6716/mazegen/pkg/store"
	"github.com/lance6716/mazegen/pkg/util"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configFile  string
	sizes       []int
	seeds       []int64
	workDir     string
	formats     []string
	concurrency int
	report      bool
	noVerify    bool
	print       bool
	logLevel    string
	logFile     string
	db          mazegen.DB
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "mazegen",
		Short:         "A tool used to generate perfect mazes by randomized Kruskal's algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.buildConfig(cmd)
			if err != nil {
				return err
			}
			if err = initLogger(cfg.Log.Level, cfg.Log.Filename); err != nil {
				return err
			}
			summary, err := mazegen.Run(cmd.Context(), cfg)
			if summary != nil && opts.print {
				out := cmd.OutOrStdout()
				for _, r := range summary.Results {
					if r.Walls == nil {
						continue
					}
					fmt.Fprintf(out, "size %d, seed %d, longest path %s cells\n",
						r.Size, r.Seed, humanize.Comma(int64(r.Stats.LongestPath)))
					fmt.Fprint(out, render.ASCII(r.Walls))
				}
			}
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "TOML config file, flags override its values")
	flags.IntSliceVarP(&opts.sizes, "size", "s", nil, "maze size, can be repeated")
	flags.Int64SliceVar(&opts.seeds, "seed", nil, "random seed, can be repeated")
	flags.StringVarP(&opts.workDir, "work-dir", "w", "", "work directory")
	flags.StringSliceVarP(&opts.formats, "format", "f", nil, "output formats: json, ascii, tree, dot")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "number of mazes generated at the same time")
	flags.BoolVar(&opts.report, "report", false, "write an HTML report")
	flags.BoolVar(&opts.noVerify, "no-verify", false, "skip verifying the generated mazes")
	flags.BoolVar(&opts.print, "print", false, "print the generated mazes to stdout")
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&opts.db.Host, "db-host", "", "host of the database keeping generated mazes, disabled if empty")
	pflags.IntVar(&opts.db.Port, "db-port", 4000, "database port")
	pflags.StringVar(&opts.db.User, "db-user", "root", "database user")
	pflags.StringVar(&opts.db.Password, "db-password", "", "database password")
	pflags.StringVar(&opts.db.Name, "db-name", "test", "database name")

	pflags.StringVar(&opts.logLevel, "log-level", "", "log level")
	pflags.StringVar(&opts.logFile, "log-file", "", "log file, logs go to stdout if empty")

	rootCmd.AddCommand(newVerifyCmd(opts))
	return rootCmd
}

// buildConfig loads the config file if given and overrides it with the flags
// set by user.
func (o *options) buildConfig(cmd *cobra.Command) (*mazegen.Config, error) {
	cfg := &mazegen.Config{}
	if o.configFile != "" {
		var err error
		cfg, err = mazegen.LoadConfigFile(o.configFile)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Sizes = o.sizes
	}
	if flags.Changed("seed") {
		cfg.Seeds = o.seeds
	}
	if flags.Changed("work-dir") {
		cfg.WorkDir = o.workDir
	}
	if flags.Changed("format") {
		cfg.Formats = o.formats
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("report") {
		cfg.Report = o.report
	}
	if flags.Changed("no-verify") {
		cfg.SkipVerify = o.noVerify
	}
	if flags.Changed("db-host") {
		cfg.DB.Host = o.db.Host
	}
	if flags.Changed("db-port") || cfg.DB.Port == 0 {
		cfg.DB.Port = o.db.Port
	}
	if flags.Changed("db-user") || cfg.DB.User == "" {
		cfg.DB.User = o.db.User
	}
	if flags.Changed("db-password") {
		cfg.DB.Password = o.db.Password
	}
	if flags.Changed("db-name") || cfg.DB.Name == "" {
		cfg.DB.Name = o.db.Name
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.Filename = o.logFile
	}
	return cfg, nil
}

// initLogger replaces the default stdout logger when a level or a log file is
// configured.
func initLogger(level, filename string) error {
	if level == "" && filename == "" {
		return nil
	}
	if level == "" {
		level = "info"
	}
	return util.InitLogger(level, filename)
}

func newVerifyCmd(opts *options) *cobra.Command {
	var fromDB bool
	verifyCmd := &cobra.Command{
		Use:   "verify <maze.json>... | --from-db <size>:<seed>...",
		Short: "Verify that mazes written by mazegen are perfect mazes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(opts.logLevel, opts.logFile); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !fromDB {
				return verifyFiles(out, args)
			}
			if opts.db.Host == "" {
				return errors.Annotatef(maze.ErrInvalidArgument, "--from-db requires --db-host")
			}
			db, err := util.ConnectDB(opts.db.Host, opts.db.Port, opts.db.User, opts.db.Password, opts.db.Name)
			if err != nil {
				return err
			}
			defer db.Close()
			return verifyStored(cmd.Context(), out, store.New(db), args)
		},
	}
	verifyCmd.Flags().BoolVar(&fromDB, "from-db", false, "load mazes by <size>:<seed> from the database instead of files")
	return verifyCmd
}

func verifyFiles(out io.Writer, paths []string) error {
	for _, path := range paths {
		f, err := filemgr.ReadWallsFile(path)
		if err != nil {
			return err
		}
		if err = f.Walls.Verify(); err != nil {
			return errors.Annotatef(err, "verify %s", path)
		}
		fmt.Fprintf(out, "%s: ok, size %d, seed %d\n", path, f.Walls.Size, f.Seed)
	}
	return nil
}

func verifyStored(ctx context.Context, out io.Writer, st *store.Store, keys []string) error {
	for _, key := range keys {
		size, seed, err := parseMazeKey(key)
		if err != nil {
			return err
		}
		w, err := st.Load(ctx, size, seed)
		if err != nil {
			return err
		}
		if err = w.Verify(); err != nil {
			return errors.Annotatef(err, "verify stored maze %s", key)
		}
		fmt.Fprintf(out, "%s: ok, size %d, seed %d\n", key, size, seed)
	}
	return nil
}

// parseMazeKey parses "<size>:<seed>".
func parseMazeKey(key string) (int, int64, error) {
	sizeStr, seedStr, ok := strings.Cut(key, ":")
	if !ok {
		return 0, 0, errors.Annotatef(maze.ErrInvalidArgument, "expect <size>:<seed>, got %q", key)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return 0, 0, errors.Annotatef(maze.ErrInvalidArgument, "invalid size in %q", key)
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return 0, 0, errors.Annotatef(maze.ErrInvalidArgument, "invalid seed in %q", key)
	}
	return size, seed, nil
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
