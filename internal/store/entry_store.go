package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"spiral/internal/domain"
)

const entrySchema = `
CREATE TABLE IF NOT EXISTS entries (
    id         TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    moods      TEXT NOT NULL,
    text       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_created_at ON entries (created_at);
`

// EntryStore persists journal entries in SQLite.
type EntryStore struct {
	sqlDB *sql.DB
}

// OpenEntryStore opens (creating if needed) the entries database at path
// and ensures the schema.
func OpenEntryStore(path string) (*EntryStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("entries db path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open entries db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping entries db: %w", err)
	}
	if _, err := sqlDB.Exec(entrySchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure entries schema: %w", err)
	}
	return &EntryStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *EntryStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendEntry inserts one entry. Moods are stored as a JSON array so the
// display order survives round-trips.
func (s *EntryStore) AppendEntry(ctx context.Context, e domain.Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	moods, err := json.Marshal(e.Moods)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO entries (id, created_at, moods, text) VALUES (?, ?, ?, ?)`,
		e.ID,
		e.CreatedAt.UTC().UnixMilli(),
		string(moods),
		e.Text,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// ListEntries returns up to limit entries, most recent first. limit <= 0
// means no limit.
func (s *EntryStore) ListEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, created_at, moods, text FROM entries ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var (
			e     domain.Entry
			at    int64
			moods string
		)
		if err := rows.Scan(&e.ID, &at, &moods, &e.Text); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(at).UTC()
		if err := json.Unmarshal([]byte(moods), &e.Moods); err != nil {
			return nil, fmt.Errorf("decode moods for %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ domain.EntryStore = (*EntryStore)(nil)
