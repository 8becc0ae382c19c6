package marathonstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"marquee/internal/config"
	"marquee/internal/marathon"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; mismatched databases are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrNotFound indicates the requested marathon does not exist.
var ErrNotFound = errors.New("marathon not found")

// Store manages marathon persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Summary is the listing projection of a stored marathon.
type Summary struct {
	ID         string
	Name       string
	Holiday    string
	StartDate  string
	EndDate    string
	EntryCount int
	CreatedAt  time.Time
}

// Open initializes or connects to the marathon database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.DataDir, "marathons.db"))
}

// OpenPath initializes or connects to a marathon database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Save inserts a marathon, or replaces it when the id already exists.
func (s *Store) Save(ctx context.Context, m *marathon.Marathon) error {
	if m == nil {
		return errors.New("marathon is nil")
	}
	entriesJSON, err := json.Marshal(m.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO marathons (id, name, holiday, start_date, end_date, entries_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             name = excluded.name, holiday = excluded.holiday,
             start_date = excluded.start_date, end_date = excluded.end_date,
             entries_json = excluded.entries_json, updated_at = excluded.updated_at`,
		m.ID,
		m.Name,
		m.Holiday,
		m.StartDate,
		m.EndDate,
		string(entriesJSON),
		m.CreatedAt.UTC().Format(time.RFC3339Nano),
		m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save marathon: %w", err)
	}
	return nil
}

// Get fetches a stored marathon by id.
func (s *Store) Get(ctx context.Context, id string) (*marathon.Marathon, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, holiday, start_date, end_date, entries_json, created_at, updated_at
         FROM marathons WHERE id = ?`, id)

	var (
		m           marathon.Marathon
		entriesJSON string
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(&m.ID, &m.Name, &m.Holiday, &m.StartDate, &m.EndDate, &entriesJSON, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get marathon: %w", err)
	}

	if err := json.Unmarshal([]byte(entriesJSON), &m.Entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	if m.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if m.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &m, nil
}

// List returns summaries of all stored marathons, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, holiday, start_date, end_date, entries_json, created_at
         FROM marathons ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list marathons: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary     Summary
			entriesJSON string
			createdAt   string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Holiday,
			&summary.StartDate, &summary.EndDate, &entriesJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan marathon: %w", err)
		}
		var entries []marathon.ScheduleEntry
		if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
			return nil, fmt.Errorf("unmarshal entries: %w", err)
		}
		summary.EntryCount = len(entries)
		if summary.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Delete removes a stored marathon by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM marathons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete marathon: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
