// Package store keeps a SQLite memo of finished conversions so repeated
// input is not re-analyzed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Entry is one row of the conversions table.
type Entry struct {
	ID         string
	Direction  string
	SourceText string
	OutputText string
	UsageCount int
	CreatedAt  time.Time
	LastUsed   time.Time
}

// Stats summarises memo usage.
type Stats struct {
	TotalEntries int
	PoliteCount  int
	PlainCount   int
	TotalUsage   int
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		direction TEXT NOT NULL,
		source_text TEXT NOT NULL,
		output_text TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, direction)
	);

	CREATE INDEX IF NOT EXISTS idx_conversions_lookup ON conversions(source_text, direction);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the memoized output for text in the given direction and bumps
// its usage counter. Text is matched byte for byte.
func (s *Store) Get(ctx context.Context, direction, text string) (string, bool, error) {
	var out string
	err := s.db.QueryRowContext(ctx,
		`SELECT output_text FROM conversions WHERE source_text = ? AND direction = ?`,
		text, direction).Scan(&out)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE conversions SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ? AND direction = ?`,
		time.Now().UTC(), text, direction)
	return out, true, err
}

// Put records a conversion, replacing any earlier output for the same input.
func (s *Store) Put(ctx context.Context, direction, text, output string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, direction, source_text, output_text, usage_count, created_at, last_used)
		 VALUES (?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(source_text, direction) DO UPDATE SET output_text = excluded.output_text, last_used = excluded.last_used`,
		uuid.New().String(), direction, text, output, now, now)
	if err != nil {
		log.Printf("[store] put failed: %v", err)
	}
	return err
}

// List returns all entries ordered by most recently used.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, direction, source_text, output_text, usage_count, created_at, last_used FROM conversions ORDER BY last_used DESC, source_text`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Direction, &e.SourceText, &e.OutputText, &e.UsageCount, &e.CreatedAt, &e.LastUsed); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN direction = 'polite' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN direction = 'plain' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(usage_count), 0)
		FROM conversions`).Scan(
		&stats.TotalEntries,
		&stats.PoliteCount,
		&stats.PlainCount,
		&stats.TotalUsage,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
