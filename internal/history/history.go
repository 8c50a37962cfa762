// Package history persists one record per wrapped invocation.
//
// DESIGN: A single-table sqlite database under ~/.config/cx/. Records
// carry raw and compressed sizes (bytes and estimated tokens) so
// `cx history` can show cumulative savings. Recording failures never
// fail the wrapped command; callers log and continue.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one wrapped tool invocation.
type Record struct {
	ID            string
	Tool          string
	Sub           string
	ExitCode      int
	ElapsedMS     int64
	RawBytes      int
	CompactBytes  int
	RawTokens     int
	CompactTokens int
	CreatedAt     time.Time
}

// TokensSaved reports the token reduction for this record, floored at zero.
func (r Record) TokensSaved() int {
	if saved := r.RawTokens - r.CompactTokens; saved > 0 {
		return saved
	}
	return 0
}

// Store manages the invocation history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// DefaultPath returns the history database location under the user
// config directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cx", "history.db"), nil
}

// Open creates or opens the history store at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		sub TEXT NOT NULL,
		exit_code INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		raw_bytes INTEGER NOT NULL,
		compact_bytes INTEGER NOT NULL,
		raw_tokens INTEGER NOT NULL,
		compact_tokens INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_created
		ON invocations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append inserts one record. A zero ID or CreatedAt is filled in.
func (s *Store) Append(r Record) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO invocations
			(id, tool, sub, exit_code, elapsed_ms,
			 raw_bytes, compact_bytes, raw_tokens, compact_tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Tool, r.Sub, r.ExitCode, r.ElapsedMS,
		r.RawBytes, r.CompactBytes, r.RawTokens, r.CompactTokens, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Recent returns the newest n records, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, tool, sub, exit_code, elapsed_ms,
		       raw_bytes, compact_bytes, raw_tokens, compact_tokens, created_at
		FROM invocations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.ID, &r.Tool, &r.Sub, &r.ExitCode, &r.ElapsedMS,
			&r.RawBytes, &r.CompactBytes, &r.RawTokens, &r.CompactTokens, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Totals aggregates savings across all records.
type Totals struct {
	Invocations int
	RawBytes    int64
	CompactBytes int64
	TokensSaved int64
}

// Totals returns aggregate counters over the whole history.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(raw_bytes), 0),
		       COALESCE(SUM(compact_bytes), 0),
		       COALESCE(SUM(MAX(raw_tokens - compact_tokens, 0)), 0)
		FROM invocations`).
		Scan(&t.Invocations, &t.RawBytes, &t.CompactBytes, &t.TokensSaved)
	if err != nil {
		return t, fmt.Errorf("failed to aggregate history: %w", err)
	}
	return t, nil
}
