package tabular

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// binding is a table bound to a name, with the fingerprint of the file it
// was loaded from, if any.
type binding struct {
	table       *Table
	fingerprint uint64
	fromFile    bool
}

// Engine holds named tables in scopes and the cached copies of open views.
// Tables are immutable: rebinding a name issues a new identity.
type Engine struct {
	logger ports.Logger

	mu      sync.RWMutex
	scopes  map[string]map[string]binding
	cached  map[string]*Table
	working map[string]*Table
	nextID  atomic.Uint64

	storesMu sync.Mutex
	stores   map[string]*Store

	// restores collapses concurrent disk reads of the same view.
	restores singleflight.Group
}

var (
	_ ports.DataEngine    = (*Engine)(nil)
	_ ports.DatasetLoader = (*Engine)(nil)
)

// New creates an empty Engine.
func New(logger ports.Logger) *Engine {
	return &Engine{
		logger:  logger,
		scopes:  make(map[string]map[string]binding),
		cached:  make(map[string]*Table),
		working: make(map[string]*Table),
		stores:  make(map[string]*Store),
	}
}

// Init opens the store in cacheDir. On failure the engine keeps working
// from memory and the failure is only logged.
func (e *Engine) Init(ctx context.Context, cacheDir string) {
	if _, err := e.store(ctx, cacheDir, true); err != nil {
		e.logger.Warn(fmt.Sprintf("viewer cache unavailable, continuing in memory: %v", err))
	}
}

// Close closes every open store.
func (e *Engine) Close() error {
	e.storesMu.Lock()
	defer e.storesMu.Unlock()

	var errs []error
	for dir, s := range e.stores {
		if err := s.Close(); err != nil {
			errs = append(errs, zerr.With(err, "dir", dir))
		}
		delete(e.stores, dir)
	}
	return errors.Join(errs...)
}

// store returns the store of dir. Unless create is set, a directory without
// a store yields nil.
func (e *Engine) store(ctx context.Context, dir string, create bool) (*Store, error) {
	if dir == "" {
		return nil, nil
	}

	e.storesMu.Lock()
	defer e.storesMu.Unlock()
	if s, ok := e.stores[dir]; ok {
		return s, nil
	}
	if !create && !StoreExists(dir) {
		return nil, nil
	}
	s, err := OpenStore(ctx, dir)
	if err != nil {
		return nil, err
	}
	e.stores[dir] = s
	return s, nil
}

// Bind assigns t to name in scope under a fresh identity and returns it.
func (e *Engine) Bind(scope, name string, t *Table) domain.Identity {
	return e.bind(scope, name, binding{table: t})
}

func (e *Engine) bind(scope, name string, b binding) domain.Identity {
	id := domain.Identity(e.nextID.Add(1))
	b.table = b.table.withIdentity(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	objects, ok := e.scopes[scope]
	if !ok {
		objects = make(map[string]binding)
		e.scopes[scope] = objects
	}
	objects[name] = b
	return id
}

// LoadFile implements ports.DatasetLoader. A file whose content did not
// change since it was last loaded keeps its identity.
func (e *Engine) LoadFile(_ context.Context, scope, name, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrDatasetLoadFailed, err), "path", path)
	}

	sum := fingerprint(content)
	e.mu.RLock()
	prev, ok := e.scopes[scope][name]
	e.mu.RUnlock()
	if ok && prev.fromFile && prev.fingerprint == sum {
		return false, nil
	}

	t, err := ParseCSV(content)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrDatasetLoadFailed, err), "path", path)
	}
	e.bind(scope, name, binding{table: t, fingerprint: sum, fromFile: true})
	e.logger.Info(fmt.Sprintf("loaded %s (%d rows, %d columns)", name, t.Rows(), len(t.columns)))
	return true, nil
}

// Unload implements ports.DatasetLoader.
func (e *Engine) Unload(_ context.Context, scope, name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.scopes[scope][name]; !ok {
		return false
	}
	delete(e.scopes[scope], name)
	return true
}

// RowCount implements ports.DataEngine.
func (e *Engine) RowCount(_ context.Context, data domain.Dataset) (int, error) {
	t, err := asTable(data)
	if err != nil {
		return 0, err
	}
	return t.rows, nil
}

// ColumnCount implements ports.DataEngine.
func (e *Engine) ColumnCount(_ context.Context, data domain.Dataset) (int, error) {
	t, err := asTable(data)
	if err != nil {
		return 0, err
	}
	return len(t.columns), nil
}

// ColumnNames implements ports.DataEngine.
func (e *Engine) ColumnNames(_ context.Context, data domain.Dataset) ([]string, error) {
	t, err := asTable(data)
	if err != nil {
		return nil, err
	}
	return t.ColumnNames(), nil
}

// ResolveObject implements ports.DataEngine. Objects in the unbound scope
// never resolve.
func (e *Engine) ResolveObject(_ context.Context, scope, name string) (domain.Dataset, bool, error) {
	if !domain.IsBoundScope(scope) {
		return nil, false, nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.scopes[scope][name]
	if !ok {
		return nil, false, nil
	}
	return b.table, true, nil
}

// FindCachedOrOriginal implements ports.DataEngine.
func (e *Engine) FindCachedOrOriginal(
	ctx context.Context, scope, name, cacheKey, cacheDir string,
) (domain.Dataset, bool, error) {
	if live, ok, err := e.ResolveObject(ctx, scope, name); err != nil || ok {
		return live, ok, err
	}

	e.mu.RLock()
	t, ok := e.cached[cacheKey]
	e.mu.RUnlock()
	if ok {
		return t, true, nil
	}

	restored, err, _ := e.restores.Do(cacheDir+"\x00"+cacheKey, func() (any, error) {
		return e.restore(ctx, cacheKey, cacheDir)
	})
	if err != nil {
		return nil, false, err
	}
	t, _ = restored.(*Table)
	if t == nil {
		return nil, false, nil
	}
	return t, true, nil
}

// restore loads a view's cached copy from the store in cacheDir and keeps it
// in memory. It returns nil when the store has no copy.
func (e *Engine) restore(ctx context.Context, cacheKey, cacheDir string) (*Table, error) {
	e.mu.RLock()
	t, ok := e.cached[cacheKey]
	e.mu.RUnlock()
	if ok {
		return t, nil
	}

	s, err := e.store(ctx, cacheDir, false)
	if err != nil || s == nil {
		return nil, err
	}
	t, ok, err = s.Get(ctx, cacheKey)
	if err != nil || !ok {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cached[cacheKey]; ok {
		return cached, nil
	}
	e.cached[cacheKey] = t
	return t, nil
}

// FindWorkingTransform implements ports.DataEngine.
func (e *Engine) FindWorkingTransform(_ context.Context, cacheKey string) (domain.Dataset, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.working[cacheKey]
	if !ok {
		return nil, false
	}
	return t, true
}

// SaveWorkingTransform implements ports.DataEngine. Foreign datasets are ignored.
func (e *Engine) SaveWorkingTransform(_ context.Context, cacheKey string, data domain.Dataset) {
	t, err := asTable(data)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("not saving working data for %s: %v", cacheKey, err))
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.working[cacheKey] = t
}

// DiscardWorkingTransform implements ports.DataEngine.
func (e *Engine) DiscardWorkingTransform(_ context.Context, cacheKey string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.working, cacheKey)
}

// Transform implements ports.DataEngine.
func (e *Engine) Transform(ctx context.Context, data domain.Dataset, spec domain.TransformSpec) (domain.Dataset, error) {
	t, err := asTable(data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return apply(t, spec), nil
}

// CloneWithNewCacheKey implements ports.DataEngine.
func (e *Engine) CloneWithNewCacheKey(_ context.Context, data domain.Dataset) (string, error) {
	t, err := asTable(data)
	if err != nil {
		return "", err
	}
	key := newCacheKey()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cached[key] = t
	return key, nil
}

// RemoveCachedData implements ports.DataEngine.
func (e *Engine) RemoveCachedData(ctx context.Context, cacheKey, cacheDir string) error {
	e.mu.Lock()
	delete(e.cached, cacheKey)
	delete(e.working, cacheKey)
	e.mu.Unlock()

	s, err := e.store(ctx, cacheDir, false)
	if err != nil || s == nil {
		return err
	}
	return s.Delete(ctx, cacheKey)
}

// PersistAll implements ports.DataEngine.
func (e *Engine) PersistAll(ctx context.Context, cacheDir string) error {
	s, err := e.store(ctx, cacheDir, true)
	if err != nil {
		return err
	}

	e.mu.RLock()
	copies := maps.Clone(e.cached)
	e.mu.RUnlock()

	var errs []error
	for key, t := range copies {
		if err := s.Put(ctx, key, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
