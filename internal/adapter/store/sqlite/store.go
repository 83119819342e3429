// Package sqlite persists the optional injection audit log.
//
// The store is strictly best-effort: the hook records an injection after the
// context block is already written, and any store failure is absorbed by the
// caller. Disabled by default.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/maestro-inspector/ctxhook/internal/domain"
)

// Store implements injection audit persistence using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

// createSchema creates the injections table and index if they don't exist.
func (s *Store) createSchema() error {
	schema := `
	-- One row per context injection emitted by the hook
	CREATE TABLE IF NOT EXISTS injections (
		injection_id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool_name TEXT NOT NULL,
		source TEXT NOT NULL CHECK(source IN ('file', 'default')),
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_injections_created ON injections(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordInjection stores one audit record.
func (s *Store) RecordInjection(ctx context.Context, inj domain.Injection) error {
	query := `INSERT INTO injections (tool_name, source, created_at) VALUES (?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, inj.ToolName, inj.Source, inj.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record injection: %w", err)
	}
	return nil
}

// RecentInjections returns up to limit records, newest first.
func (s *Store) RecentInjections(ctx context.Context, limit int) ([]domain.Injection, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT injection_id, tool_name, source, created_at
		FROM injections
		ORDER BY created_at DESC, injection_id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query injections: %w", err)
	}
	defer rows.Close()

	var injections []domain.Injection
	for rows.Next() {
		var inj domain.Injection
		var createdAt int64
		if err := rows.Scan(&inj.ID, &inj.ToolName, &inj.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan injection: %w", err)
		}
		inj.CreatedAt = time.Unix(createdAt, 0).UTC()
		injections = append(injections, inj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate injections: %w", err)
	}

	return injections, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
