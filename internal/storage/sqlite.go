package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// StateKey is the fixed key the wallet state blob is stored under. It keeps
// the name the original web build of Zwip used for its local storage entry.
const StateKey = "zwip-storage"

// ErrStateNotFound indicates no wallet state has been persisted yet.
var ErrStateNotFound = service.ErrStateNotFound

// SQLiteStorage persists the wallet state blob in a SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens (creating if needed) the wallet database at dbPath.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// LoadState reads the wallet state blob stored under StateKey.
func (s *SQLiteStorage) LoadState(ctx context.Context) (*model.WalletState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM wallet_state WHERE key = ?`, StateKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet state: %w", err)
	}

	var state model.WalletState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("failed to decode wallet state: %w", err)
	}
	return &state, nil
}

// SaveState writes the full wallet state blob under StateKey, replacing any
// previous version.
func (s *SQLiteStorage) SaveState(ctx context.Context, state *model.WalletState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode wallet state: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO wallet_state (key, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		StateKey, string(blob))
	if err != nil {
		return fmt.Errorf("failed to save wallet state: %w", err)
	}
	return nil
}

// DeleteState removes the persisted wallet state entirely. Used by logout.
func (s *SQLiteStorage) DeleteState(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM wallet_state WHERE key = ?`, StateKey); err != nil {
		return fmt.Errorf("failed to delete wallet state: %w", err)
	}
	return nil
}
