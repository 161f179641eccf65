// Package store persists the notebook tree and two appearance preferences to
// a local SQLite database laid out as independent key/value slots, mirroring
// the origin system's durable-storage contract: loads fall back to the
// built-in seed on any failure, saves are best effort.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"atlas/internal/model"

	_ "modernc.org/sqlite"
)

const (
	dbFileName = "atlas.sqlite"

	// Fixed slot keys. There is no migration versioning beyond the key name;
	// old payloads with missing topic fields are tolerated by read-time
	// defaulting.
	keyData   = "atlas_data_v2"
	KeyTheme  = "atlas_theme"
	KeyAccent = "atlas_accent"

	DefaultTheme  = "light"
	DefaultAccent = "#111827"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the store directory: $ATLAS_DIR, else ~/.atlas.
func DefaultDir() (string, error) {
	if v := os.Getenv("ATLAS_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".atlas"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// busy_timeout avoids "database is locked" flakiness when a CLI command
	// runs while the TUI is open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) getKV(ctx context.Context, key string) (string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s Store) setKV(ctx context.Context, key, val string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, key, val)
	return err
}

// Load reads the persisted tree. On ANY failure (no database, missing slot,
// malformed payload) it returns the built-in seed without raising: the
// worst-case failure mode is loss of durability, never a crash.
func (s Store) Load(ctx context.Context) []model.Category {
	raw, err := s.getKV(ctx, keyData)
	if err != nil {
		return model.Seed()
	}
	cats, err := DecodeTree([]byte(raw))
	if err != nil {
		return model.Seed()
	}
	return cats
}

// Save re-serializes the whole tree into its slot. Callers must not fail the
// UI action on error; the in-memory tree stays authoritative for the session.
// The error is returned (not swallowed) so the shell can surface a warning.
func (s Store) Save(ctx context.Context, cats []model.Category) error {
	b, err := EncodeTree(cats)
	if err != nil {
		return err
	}
	return s.setKV(ctx, keyData, string(b))
}

// LoadPref reads an appearance preference slot, falling back to def on any
// failure or when the stored value is empty.
func (s Store) LoadPref(ctx context.Context, key, def string) string {
	v, err := s.getKV(ctx, key)
	if err != nil || v == "" {
		return def
	}
	return v
}

// SavePref writes an appearance preference slot, same contract as Save.
func (s Store) SavePref(ctx context.Context, key, val string) error {
	return s.setKV(ctx, key, val)
}

// IsNotFound reports whether err is the missing-slot case (useful in tests).
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
