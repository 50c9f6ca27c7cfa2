package mazegen

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/pingcap/errors"
)

// Output formats of a generated maze.
const (
	FormatJSON  = "json"
	FormatASCII = "ascii"
	FormatTree  = "tree"
	FormatDOT   = "dot"
)

var formatExt = map[string]string{
	FormatJSON:  ".json",
	FormatASCII: ".txt",
	FormatTree:  ".tree",
	FormatDOT:   ".dot",
}

// Config is a static struct for mazegen's configuration.
type Config struct {
	TaskName    string `toml:"task-name"`
	Description string `toml:"description"`

	// Sizes and Seeds are crossed, every size is generated with every seed.
	Sizes       []int    `toml:"sizes"`
	Seeds       []int64  `toml:"seeds"`
	Concurrency int      `toml:"concurrency"`
	WorkDir     string   `toml:"work-dir"`
	Formats     []string `toml:"formats"`
	Report      bool     `toml:"report"`
	SkipVerify  bool     `toml:"skip-verify"`

	DB  DB  `toml:"db"`
	Log Log `toml:"log"`
}

// DB is the optional database that keeps generated mazes. It's disabled when
// Host is empty.
type DB struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
}

type Log struct {
	Level    string `toml:"level"`
	Filename string `toml:"filename"`
}

const defaultWorkSubDir = "mazegen"

// the sizes offered by the maze size picker of the game
var defaultSizes = []int{5, 7, 9, 10}

// LoadConfigFile decodes a TOML file. Unknown keys are rejected.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Annotatef(err, "decode config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c *Config) ensureDefaults() {
	now := time.Now()
	if c.TaskName == "" {
		c.TaskName = now.Format(time.RFC3339)
	}
	if c.WorkDir == "" {
		c.WorkDir = filepath.Join(os.TempDir(), defaultWorkSubDir)
	}
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), defaultSizes...)
	}
	if len(c.Seeds) == 0 {
		c.Seeds = []int64{now.UnixNano()}
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{FormatJSON, FormatASCII}
	}
	if c.DB.Port == 0 {
		c.DB.Port = 4000
	}
	if c.DB.User == "" {
		c.DB.User = "root"
	}
	if c.DB.Name == "" {
		c.DB.Name = "test"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// validate rejects the config before anything is generated or written.
func (c *Config) validate() error {
	for _, size := range c.Sizes {
		if size < 1 {
			return errors.Annotatef(maze.ErrInvalidArgument, "maze size must be at least 1, got %d", size)
		}
	}
	for _, f := range c.Formats {
		if _, ok := formatExt[f]; !ok {
			return errors.Annotatef(maze.ErrInvalidArgument, "unknown format %q", f)
		}
	}
	return nil
}
