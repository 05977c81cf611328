package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/randalmurphal/llmconf/settings"
)

// SQLiteStore keeps the snapshot as a JSON document in a SQLite table, one
// row per store identifier.
type SQLiteStore struct {
	db *sql.DB
	id string

	loadStmt *sql.Stmt
	saveStmt *sql.Stmt
}

// SQLiteOption configures a SQLiteStore.
type SQLiteOption func(*sqliteConfig)

type sqliteConfig struct {
	id          string
	busyTimeout time.Duration
}

// WithStoreID stores the snapshot under id instead of StoreID.
func WithStoreID(id string) SQLiteOption {
	return func(c *sqliteConfig) {
		if id != "" {
			c.id = id
		}
	}
}

// WithBusyTimeout sets how long to wait for locks. Default: 5 seconds.
func WithBusyTimeout(d time.Duration) SQLiteOption {
	return func(c *sqliteConfig) {
		if d > 0 {
			c.busyTimeout = d
		}
	}
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("db path cannot be empty")
	}
	cfg := sqliteConfig{id: StoreID, busyTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, cfg.busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db, id: cfg.id}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS settings_state (
		id TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`)
	return err
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.loadStmt, err = s.db.Prepare(`SELECT state FROM settings_state WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare load: %w", err)
	}

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO settings_state (id, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("prepare save: %w", err)
	}
	return nil
}

// Load reads the snapshot row. Fields missing from the stored document keep
// their shipped defaults.
func (s *SQLiteStore) Load(ctx context.Context) (*settings.State, error) {
	var doc string
	err := s.loadStmt.QueryRowContext(ctx, s.id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.id)
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	st := settings.DefaultState()
	if err := json.Unmarshal([]byte(doc), st); err != nil {
		return nil, fmt.Errorf("parse stored settings: %w", err)
	}
	return st, nil
}

// Save upserts the snapshot row.
func (s *SQLiteStore) Save(ctx context.Context, st *settings.State) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if _, err := s.saveStmt.ExecContext(ctx, s.id, string(doc), time.Now().Unix()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Close releases the prepared statements and the database handle.
func (s *SQLiteStore) Close() error {
	var errs []error
	for _, stmt := range []*sql.Stmt{s.loadStmt, s.saveStmt} {
		if stmt != nil {
			errs = append(errs, stmt.Close())
		}
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}

var _ Store = (*SQLiteStore)(nil)
