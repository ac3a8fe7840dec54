// Package store keeps a SQLite history of generated levels and named seeds.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"roomgrid/internal/store/migrations"
)

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a bookmark name is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Run is one generation request and its outcome.
type Run struct {
	ID        int64
	Seed      string
	Catalog   string
	Width     int
	Height    int
	MinSize   int
	MaxSize   int
	Density   int
	Attempts  int
	Placed    int
	OK        bool
	CreatedAt time.Time
}

// Store persists runs in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite history store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts run and returns its id. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(run.Seed) == "" {
		return 0, fmt.Errorf("seed is required")
	}
	created := run.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO runs (
		   seed, catalog, width, height, min_size, max_size, density,
		   attempts, placed, ok, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Seed, run.Catalog, run.Width, run.Height, run.MinSize, run.MaxSize, run.Density,
		run.Attempts, run.Placed, run.OK, toMillis(created),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, seed, catalog, width, height, min_size, max_size, density,
		        attempts, placed, ok, created_at
		   FROM runs
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Last returns the most recent run.
func (s *Store) Last(ctx context.Context) (Run, error) {
	runs, err := s.Recent(ctx, 1)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNotFound
	}
	return runs[0], nil
}

// Bookmark saves seed under name.
func (s *Store) Bookmark(ctx context.Context, name, seed string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("bookmark name is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO bookmarks (name, seed, created_at) VALUES (?, ?, ?)`,
		name, seed, toMillis(s.now()),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("bookmark %q: %w", name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}
	return nil
}

// LookupBookmark returns the seed saved under name.
func (s *Store) LookupBookmark(ctx context.Context, name string) (string, error) {
	var seed string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT seed FROM bookmarks WHERE name = ?`, strings.TrimSpace(name)).Scan(&seed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("bookmark %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("lookup bookmark: %w", err)
	}
	return seed, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run     Run
		ok      int
		created int64
	)
	if err := row.Scan(
		&run.ID, &run.Seed, &run.Catalog, &run.Width, &run.Height, &run.MinSize, &run.MaxSize,
		&run.Density, &run.Attempts, &run.Placed, &ok, &created,
	); err != nil {
		return Run{}, err
	}
	run.OK = ok != 0
	run.CreatedAt = fromMillis(created)
	return run, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
