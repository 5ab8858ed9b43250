package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/dusk/app/enum"
)

// Store implements key-value storage using SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	dbType enum.DBType
	mu     RWLocker
}

// New creates a new Store with the given database URL.
// Automatically detects database type from URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - everything else -> SQLite
func New(dbURL string) (*Store, error) {
	dbType := detectDBType(dbURL)

	var db *sqlx.DB
	var err error
	var locker RWLocker

	switch dbType {
	case enum.DBTypePostgres:
		db, err = connectPostgres(dbURL)
		locker = noopLocker{}
	default:
		db, err = connectSQLite(dbURL)
		locker = &sync.RWMutex{}
	}

	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dbType: dbType, mu: locker}

	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s store", s.dbType)
	return s, nil
}

// detectDBType determines database type from URL.
func detectDBType(url string) enum.DBType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return enum.DBTypePostgres
	}
	return enum.DBTypeSQLite
}

// connectSQLite establishes SQLite connection with pragmas.
func connectSQLite(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// single writer
	db.SetMaxOpenConns(1)

	return db, nil
}

// connectPostgres establishes PostgreSQL connection.
func connectPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// createSchema creates the kv table if it doesn't exist.
func (s *Store) createSchema() error {
	var schema string
	switch s.dbType {
	case enum.DBTypePostgres:
		schema = `
			CREATE TABLE IF NOT EXISTS kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT NOW()
			)`
	default:
		schema = `
			CREATE TABLE IF NOT EXISTS kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`
	}
	if _, err := s.db.Exec(schema); err != nil { //nolint:noctx // init-time, no context available
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Get retrieves the value for the given key.
// Returns ErrNotFound if the key does not exist.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.GetContext(ctx, &value, s.adoptQuery("SELECT value FROM kv WHERE key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores the value for the given key, creating or updating it.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key from the store.
// Returns ErrNotFound if the key does not exist.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, s.adoptQuery("DELETE FROM kv WHERE key = ?"), key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns entries with the given key prefix, ordered by key.
// Empty prefix lists everything.
func (s *Store) List(ctx context.Context, prefix string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []Entry
	query := s.adoptQuery("SELECT key, value, updated_at FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key")
	if err := s.db.SelectContext(ctx, &entries, query, utf8.RuneCountInString(prefix), prefix); err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// adoptQuery converts SQLite query syntax to PostgreSQL:
// - placeholders: ? → $1, $2, ...
// - case: excluded. → EXCLUDED.
func (s *Store) adoptQuery(query string) string {
	if s.dbType != enum.DBTypePostgres {
		return query
	}

	query = strings.ReplaceAll(query, "excluded.", "EXCLUDED.")

	result := make([]byte, 0, len(query)+10)
	paramNum := 1
	for i := range len(query) {
		if query[i] != '?' {
			result = append(result, query[i])
			continue
		}
		result = append(result, '$')
		result = append(result, strconv.Itoa(paramNum)...)
		paramNum++
	}
	return string(result)
}
