package translation

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a persistent per-noun translation cache backed by SQLite.
// It survives across runs so that a noun is only ever sent to the
// translation service once.
type Store struct {
	db *sql.DB
}

// DefaultStorePath returns the default location of the translation cache
// database under the user's state directory.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "translations.db"
	}
	return filepath.Join(home, ".local", "state", "derdiedas", "translations.db")
}

// OpenStore opens (and if necessary creates) the translation store at
// the given path. Parent directories are created as needed.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation cache: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS translations (
		noun TEXT PRIMARY KEY,
		english TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize translation cache: %w", err)
	}

	return &Store{db: db}, nil
}

// Get looks up the cached translation for a noun
func (s *Store) Get(noun string) (string, bool, error) {
	var english string
	err := s.db.QueryRow(`SELECT english FROM translations WHERE noun = ?`, noun).Scan(&english)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return english, true, nil
}

// Put stores the translation for a noun, replacing any previous value
func (s *Store) Put(noun, english string) error {
	query := `INSERT INTO translations (noun, english) VALUES (?, ?)
		ON CONFLICT(noun) DO UPDATE SET english = excluded.english`
	if _, err := s.db.Exec(query, noun, english); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Count returns the number of cached translations
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
