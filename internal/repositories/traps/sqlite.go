package traps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS traps (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	channel_id TEXT NOT NULL,
	gm_notes   TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS traps_channel_id ON traps (channel_id);`

// SQLiteStore persists traps in a SQLite file
type SQLiteStore struct {
	sqlDB        *sql.DB
	timeProvider TimeProvider
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens a SQLite trap store and creates its schema
func OpenSQLite(path string, timeProvider TimeProvider) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}

	dsn := "file:" + filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB, timeProvider: timeProvider}, nil
}

// Close closes the SQLite handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts a new trap
func (s *SQLiteStore) Create(ctx context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	now := s.timeProvider.Now()
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO traps (id, name, channel_id, gm_notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.ChannelID, t.GMNotes, toMillis(now), toMillis(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return dnderr.AlreadyExistsf("trap with ID %s already exists", t.ID)
		}
		return fmt.Errorf("insert trap: %w", err)
	}

	t.CreatedAt = fromMillis(toMillis(now))
	t.UpdatedAt = t.CreatedAt
	return nil
}

// Get retrieves a trap by ID
func (s *SQLiteStore) Get(ctx context.Context, id string) (*trap.Trap, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, channel_id, gm_notes, created_at, updated_at FROM traps WHERE id = ?`, id)

	t, err := scanTrap(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dnderr.NotFoundf("trap not found: %s", id).WithMeta("trap_id", id)
		}
		return nil, fmt.Errorf("get trap: %w", err)
	}
	return t, nil
}

// Update rewrites the whole row for t
func (s *SQLiteStore) Update(ctx context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	now := s.timeProvider.Now()
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE traps SET name = ?, channel_id = ?, gm_notes = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.ChannelID, t.GMNotes, toMillis(now), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update trap: %w", err)
	}
	if err := requireRow(res, t.ID); err != nil {
		return err
	}

	t.UpdatedAt = fromMillis(toMillis(now))
	return nil
}

// Delete removes a trap
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM traps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trap: %w", err)
	}
	return requireRow(res, id)
}

// ListByChannel lists the traps placed in a channel, sorted by name
func (s *SQLiteStore) ListByChannel(ctx context.Context, channelID string) ([]*trap.Trap, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, channel_id, gm_notes, created_at, updated_at
		 FROM traps WHERE channel_id = ? ORDER BY name, id`, channelID)
	if err != nil {
		return nil, fmt.Errorf("list traps: %w", err)
	}
	defer rows.Close()

	var out []*trap.Trap
	for rows.Next() {
		t, err := scanTrap(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trap: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traps: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrap(row rowScanner) (*trap.Trap, error) {
	var (
		t         trap.Trap
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&t.ID, &t.Name, &t.ChannelID, &t.GMNotes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return &t, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return dnderr.NotFoundf("trap not found: %s", id).WithMeta("trap_id", id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ Repository = (*SQLiteStore)(nil)
