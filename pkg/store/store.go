package store

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/lance6716/mazegen/pkg/maze"
	"github.com/lance6716/mazegen/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// TableName is the table holding generated mazes.
const TableName = "maze_history"

var (
	createTableSQL = "CREATE TABLE IF NOT EXISTS " + util.EscapeIdentifier(TableName) + ` (
	size INT NOT NULL,
	seed BIGINT NOT NULL,
	walls LONGTEXT NOT NULL,
	openings INT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (size, seed)
)`
	saveSQL = "REPLACE INTO " + util.EscapeIdentifier(TableName) +
		" (size, seed, walls, openings) VALUES (?, ?, ?, ?)"
	loadSQL = "SELECT walls FROM " + util.EscapeIdentifier(TableName) +
		" WHERE size = ? AND seed = ?"
)

// ErrNotFound is the cause of the error returned by Load when no maze is
// stored for the size and seed.
var ErrNotFound = errors.New("maze not found")

// Store saves generated mazes to a MySQL compatible database, keyed by size and
// seed. It's concurrent safe and the table is created at most once.
type Store struct {
	db *sql.DB

	tableOnce sync.Once
	tableErr  error
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ensureTable(ctx context.Context) error {
	s.tableOnce.Do(func() {
		_, err := s.db.ExecContext(ctx, createTableSQL)
		if err != nil {
			util.Logger.Warn("create maze table failed", zap.String("table", TableName), zap.Error(err))
			s.tableErr = errors.Annotatef(util.ClassifySQLError(err), "create table %s", TableName)
		}
	})
	return s.tableErr
}

// Save stores the walls of the maze generated by seed. An existing record of
// the same size and seed is replaced.
func (s *Store) Save(ctx context.Context, seed int64, w *maze.Walls) error {
	if err := s.ensureTable(ctx); err != nil {
		return errors.Trace(err)
	}
	_, err := s.db.ExecContext(ctx, saveSQL, w.Size, seed, EncodeWalls(w), w.OpenCount())
	if err != nil {
		return errors.Annotatef(util.ClassifySQLError(err), "save maze size %d seed %d", w.Size, seed)
	}
	return nil
}

// Load reads the walls stored for size and seed.
func (s *Store) Load(ctx context.Context, size int, seed int64) (*maze.Walls, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx, loadSQL, size, seed).Scan(&encoded)
	if err == sql.ErrNoRows {
		return nil, errors.Annotatef(ErrNotFound, "size %d seed %d", size, seed)
	}
	if err != nil {
		return nil, errors.Annotatef(util.ClassifySQLError(err), "load maze size %d seed %d", size, seed)
	}
	w, err := DecodeWalls(size, encoded)
	return w, errors.Trace(err)
}

// EncodeWalls writes one character per wall, '1' for present and '0' for
// open, horizontal walls first, both row by row.
func EncodeWalls(w *maze.Walls) string {
	var b strings.Builder
	b.Grow(w.Candidates())
	for _, rows := range [][][]bool{w.Horizontal, w.Vertical} {
		for _, row := range rows {
			for _, wall := range row {
				if wall == maze.Wall {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
		}
	}
	return b.String()
}

// DecodeWalls is the reverse of EncodeWalls.
func DecodeWalls(size int, encoded string) (*maze.Walls, error) {
	if size < 1 {
		return nil, errors.Annotatef(maze.ErrInvalidArgument, "maze size must be at least 1, got %d", size)
	}
	if expected := 2 * size * (size - 1); len(encoded) != expected {
		return nil, errors.Errorf("encoded walls of size %d have length %d, expected %d", size, len(encoded), expected)
	}

	w := &maze.Walls{
		Size:       size,
		Horizontal: make([][]bool, size-1),
		Vertical:   make([][]bool, size),
	}
	i := 0
	decodeRows := func(rows [][]bool, cols int) error {
		for r := range rows {
			rows[r] = make([]bool, cols)
			for c := range rows[r] {
				switch encoded[i] {
				case '1':
					rows[r][c] = maze.Wall
				case '0':
					rows[r][c] = maze.Open
				default:
					return errors.Errorf("invalid character %q at offset %d of encoded walls", encoded[i], i)
				}
				i++
			}
		}
		return nil
	}
	if err := decodeRows(w.Horizontal, size); err != nil {
		return nil, err
	}
	if err := decodeRows(w.Vertical, size-1); err != nil {
		return nil, err
	}
	return w, nil
}
