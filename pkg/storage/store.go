package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// CounterID is the row id of the single counter. The counters table only ever
// holds this row.
const CounterID = 1

var ErrCounterMissing = errors.New("counter row is missing")

// Store provides durable storage for the counter value, backed by a SQLite
// database file. Single-statement atomicity is what prevents lost updates
// between concurrent increments.
type Store struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at the given path, applies the
// required pragmas and schema, and seeds the counter row with a value of 0 if
// it does not exist. Reopening an existing database never resets the value.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Value returns the current counter value. A missing row reads as 0 rather
// than an error, matching the behavior of a freshly seeded store.
func (s *Store) Value(ctx context.Context) (int64, error) {
	var value int64

	err := s.db.QueryRowContext(
		ctx,
		"SELECT value FROM counters WHERE id = ?",
		CounterID,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	return value, nil
}

// IncrementAndGet atomically adds 1 to the counter and returns the new value.
// Unlike Value, a missing row is a real error here.
func (s *Store) IncrementAndGet(ctx context.Context) (int64, error) {
	var value int64

	err := s.db.QueryRowContext(
		ctx,
		"UPDATE counters SET value = value + 1 WHERE id = ? RETURNING value",
		CounterID,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrCounterMissing
	}

	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return value, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the counters table if needed and seeds the counter row.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	_, err := db.Exec(
		"INSERT OR IGNORE INTO counters (id, value) VALUES (?, 0)",
		CounterID,
	)

	if err != nil {
		return fmt.Errorf("failed to seed counter row: %w", err)
	}

	return nil
}
