package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns a UserRepo backed by this store.
func (s *Store) Users() UserRepo {
	return &userRepo{db: s.db}
}

// Scores returns a ScoreRepo backed by this store.
func (s *Store) Scores() ScoreRepo {
	return &scoreRepo{db: s.db}
}

// Progress returns a ProgressRepo backed by this store.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Statements are idempotent so Open can run
// them on every start.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id             TEXT PRIMARY KEY,
			username       TEXT NOT NULL UNIQUE,
			email          TEXT NOT NULL DEFAULT '',
			role           TEXT NOT NULL DEFAULT 'USER',
			status         TEXT NOT NULL DEFAULT 'ACTIVE',
			settings       TEXT NOT NULL DEFAULT '{}',
			unlocked_level INTEGER NOT NULL DEFAULT 0,
			created_at     TEXT NOT NULL,
			last_login     TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			id            TEXT PRIMARY KEY,
			user          TEXT NOT NULL,
			score         INTEGER NOT NULL,
			correct_count INTEGER NOT NULL,
			error_count   INTEGER NOT NULL,
			avg_time      REAL NOT NULL,
			date          TEXT NOT NULL,
			category      TEXT NOT NULL DEFAULT '',
			difficulty    TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS scores_user_idx ON scores (user)`,
		`CREATE INDEX IF NOT EXISTS scores_user_score_idx ON scores (user, score DESC)`,
		`CREATE TABLE IF NOT EXISTS category_progress (
			username           TEXT NOT NULL,
			category           TEXT NOT NULL,
			unlocked_level     INTEGER NOT NULL DEFAULT 0,
			total_games        INTEGER NOT NULL DEFAULT 0,
			total_score        INTEGER NOT NULL DEFAULT 0,
			total_correct      INTEGER NOT NULL DEFAULT 0,
			total_errors       INTEGER NOT NULL DEFAULT 0,
			total_time_seconds INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (username, category)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SUMAS_DB environment variable
// 2. $XDG_DATA_HOME/sumasrestas/sumasrestas.db
// 3. ~/.local/share/sumasrestas/sumasrestas.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SUMAS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "sumasrestas", "sumasrestas.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
