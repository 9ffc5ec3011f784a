package tabular

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store keeps cached copies of views in a SQLite database inside the viewer
// cache directory.
type Store struct {
	db         *sql.DB
	path       string
	writeMutex sync.Mutex
}

// snapshot is the stored form of a table.
type snapshot struct {
	Columns  []Column `json:"columns"`
	RowNames []string `json:"row_names,omitempty"`
}

// OpenStore opens or creates the store in dir.
func OpenStore(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", dir)
	}

	path := filepath.Join(dir, domain.ViewerCacheDBName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreOpenFailed.Error()), "path", path)
	}

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS views (
			cache_key TEXT PRIMARY KEY,
			saved_at INTEGER,
			payload BLOB
		)`,
		"PRAGMA journal_mode=WAL",
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreOpenFailed.Error()), "path", path)
		}
	}

	return &Store{db: db, path: path}, nil
}

// StoreExists reports whether dir already holds a store.
func StoreExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, domain.ViewerCacheDBName))
	return err == nil
}

// Path returns the database file of the store.
func (s *Store) Path() string {
	return s.path
}

// Put stores t under cacheKey, replacing any earlier copy.
func (s *Store) Put(ctx context.Context, cacheKey string, t *Table) error {
	payload, err := json.Marshal(snapshot{Columns: t.columns, RowNames: t.rowNames})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreWriteFailed.Error()), "cache_key", cacheKey)
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO views (cache_key, saved_at, payload) VALUES (?, ?, ?)",
		cacheKey, time.Now().Unix(), payload,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreWriteFailed.Error()), "cache_key", cacheKey)
	}
	return nil
}

// Get loads the copy stored under cacheKey. The boolean is false when there is none.
func (s *Store) Get(ctx context.Context, cacheKey string) (*Table, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM views WHERE cache_key = ?", cacheKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error()), "cache_key", cacheKey)
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error()), "cache_key", cacheKey)
	}
	t, err := NewTable(snap.Columns, snap.RowNames)
	if err != nil {
		return nil, false, zerr.With(err, "cache_key", cacheKey)
	}
	return t, true, nil
}

// Delete removes the copy stored under cacheKey, if any.
func (s *Store) Delete(ctx context.Context, cacheKey string) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	if _, err := s.db.ExecContext(ctx, "DELETE FROM views WHERE cache_key = ?", cacheKey); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreWriteFailed.Error()), "cache_key", cacheKey)
	}
	return nil
}

// Keys returns every stored cache key.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT cache_key FROM views ORDER BY cache_key")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error())
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error())
	}
	return keys, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
