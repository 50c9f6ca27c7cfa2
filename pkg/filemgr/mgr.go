package filemgr

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/lance6716/mazegen/pkg/util"
	"github.com/pingcap/errors"
)

const (
	wallsExt       = ".json"
	reportFilename = "report.html"
)

// MazeFile is the content of the JSON artifact of one generated maze.
type MazeFile struct {
	Seed  int64       `json:"seed"`
	Stats maze.Stats  `json:"stats"`
	Walls *maze.Walls `json:"walls"`
}

// Manager owns a folder and organizes the files written by mazegen. The
// hierarchy is
//
//	{workDir}/{escaped task name}/size-{N}-seed-{S}.{json,txt,tree,dot}
//	{workDir}/{escaped task name}/report.html
type Manager struct {
	workDir string
}

// NewManager creates a new Manager instance on the given work directory.
func NewManager(workDir string) *Manager {
	return &Manager{workDir: workDir}
}

// TaskDir returns the directory holding the files of a task.
func (m *Manager) TaskDir(task string) string {
	return filepath.Join(m.workDir, util.EscapePath(task))
}

// MazePath returns the path of an artifact of the maze generated with given
// size and seed. ext contains the leading dot.
func (m *Manager) MazePath(task string, size int, seed int64, ext string) string {
	return filepath.Join(m.TaskDir(task), fmt.Sprintf("size-%d-seed-%d%s", size, seed, ext))
}

// ReportPath returns the path of the HTML report of a task.
func (m *Manager) ReportPath(task string) string {
	return filepath.Join(m.TaskDir(task), reportFilename)
}

// WriteWalls writes the walls and their statistics as JSON and returns the
// file path.
func (m *Manager) WriteWalls(task string, seed int64, w *maze.Walls) (string, error) {
	content, err := json.Marshal(MazeFile{
		Seed:  seed,
		Stats: w.Stats(),
		Walls: w,
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	p := m.MazePath(task, w.Size, seed, wallsExt)
	return p, errors.Trace(m.write(p, content))
}

// WriteText writes a text rendering of a maze and returns the file path.
func (m *Manager) WriteText(task string, size int, seed int64, ext, content string) (string, error) {
	p := m.MazePath(task, size, seed, ext)
	return p, errors.Trace(m.write(p, []byte(content)))
}

func (m *Manager) write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0776); err != nil {
		return errors.Trace(err)
	}
	return util.AtomicWrite(path, content)
}

// ReadWallsFile reads a JSON artifact written by WriteWalls.
func ReadWallsFile(path string) (*MazeFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "read maze file %s", path)
	}
	f := &MazeFile{}
	if err = json.Unmarshal(content, f); err != nil {
		return nil, errors.Annotatef(err, "decode maze file %s", path)
	}
	if f.Walls == nil {
		return nil, errors.Errorf("maze file %s has no walls", path)
	}
	return f, nil
}
