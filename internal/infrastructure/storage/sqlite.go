// Package storage keeps the history of finished and abandoned runs in SQLite.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is used by TopRuns when the caller passes a non-positive limit
const DefaultLimit = 10

// Run is one row of the run history
type Run struct {
	ID           int64
	LevelReached int
	Deaths       int
	Stomps       int
	Frames       int
	Finished     bool
	CreatedAt    time.Time
}

// Store wraps the SQLite database
type Store struct {
	db *sql.DB
}

// DefaultPath returns ~/.platformer/runs.db
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "runs.db"
	}
	return filepath.Join(home, ".platformer", "runs.db")
}

// Open opens (or creates) the database at path and applies the schema
func Open(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		level_reached INTEGER NOT NULL,
		deaths        INTEGER NOT NULL,
		stomps        INTEGER NOT NULL,
		frames        INTEGER NOT NULL,
		finished      INTEGER NOT NULL DEFAULT 0,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_rank
		ON runs(finished DESC, level_reached DESC, deaths ASC, frames ASC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("storage: cannot migrate: %w", err)
	}
	return nil
}

// Close closes the database. It is safe to call on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts a run and returns its id
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (level_reached, deaths, stomps, frames, finished) VALUES (?, ?, ?, ?, ?)`,
		r.LevelReached, r.Deaths, r.Stomps, r.Frames, r.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs: finished first, then furthest level,
// fewest deaths, fewest frames.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(`
		SELECT id, level_reached, deaths, stomps, frames, finished, created_at
		FROM runs
		ORDER BY finished DESC, level_reached DESC, deaths ASC, frames ASC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.LevelReached, &r.Deaths, &r.Stomps, &r.Frames, &r.Finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read runs: %w", err)
	}
	return runs, nil
}

// parseTime accepts both driver representations of created_at
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
