package fetch

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// GetCacheDir returns the directory holding the remote module cache.
// Priority: $MODDOC_CACHE_DIR -> $XDG_CACHE_HOME/moddoc -> ~/.cache/moddoc
func GetCacheDir() (string, error) {
	if dir := os.Getenv("MODDOC_CACHE_DIR"); dir != "" {
		return dir, nil
	}

	if runtime.GOOS != "windows" {
		if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
			return filepath.Join(xdgCache, "moddoc"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Local", "moddoc"), nil
	}

	return filepath.Join(home, ".cache", "moddoc"), nil
}

// Cache is the durable store for remote module sources, keyed by canonical
// specifier. Local files are never cached; they are read fresh on every run.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS remote_modules (
	specifier  TEXT PRIMARY KEY,
	headers    TEXT NOT NULL,
	source     BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
);`

// OpenCache opens (creating if needed) the sqlite cache at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// OpenDefaultCache opens the cache in the default cache directory.
func OpenDefaultCache() (*Cache, error) {
	dir, err := GetCacheDir()
	if err != nil {
		return nil, err
	}
	return OpenCache(filepath.Join(dir, "remote_modules.db"))
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached source and headers for a specifier.
func (c *Cache) Get(ctx context.Context, specifier string) ([]byte, map[string]string, bool, error) {
	var headersJSON string
	var source []byte
	row := c.db.QueryRowContext(ctx,
		`SELECT headers, source FROM remote_modules WHERE specifier = ?`, specifier)
	if err := row.Scan(&headersJSON, &source); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}
	var headers map[string]string
	if err := json.Unmarshal([]byte(headersJSON), &headers); err != nil {
		return nil, nil, false, fmt.Errorf("corrupt cache entry for %s: %w", specifier, err)
	}
	return source, headers, true, nil
}

// Put stores or replaces the cached source for a specifier.
func (c *Cache) Put(ctx context.Context, specifier string, headers map[string]string, source []byte) error {
	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO remote_modules (specifier, headers, source, fetched_at) VALUES (?, ?, ?, ?)`,
		specifier, string(headersJSON), source, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}
