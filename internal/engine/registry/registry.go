// Package registry tracks the frames that are active in a data viewer.
package registry

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps cache keys to cached frames.
//
// Every method is one critical section on the map and hands out deep copies,
// so callers never share frame state. The data engine is never called while
// the map is locked.
type Registry struct {
	engine ports.DataEngine

	mu     sync.Mutex
	frames map[string]domain.CachedFrame

	keysMu sync.Mutex
	keys   map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty Registry that reads frame shapes through engine.
func New(engine ports.DataEngine) *Registry {
	return &Registry{
		engine: engine,
		frames: make(map[string]domain.CachedFrame),
		keys:   make(map[string]*keyLock),
	}
}

// GetOrCreate returns the frame for cacheKey, creating it if needed.
// The shape of a new frame is read from live; a nil live object yields an
// empty shape and NoIdentity. Concurrent callers for the same key observe a
// single frame.
func (r *Registry) GetOrCreate(
	ctx context.Context,
	cacheKey, scope, object string,
	live domain.Dataset,
) (domain.CachedFrame, error) {
	if frame, ok := r.Lookup(cacheKey); ok {
		return frame, nil
	}

	var shape domain.Shape
	if live != nil {
		var err error
		shape, err = ShapeOf(ctx, r.engine, live)
		if err != nil {
			return domain.CachedFrame{}, zerr.With(err, "cache_key", cacheKey)
		}
	}
	fresh := domain.NewCachedFrame(cacheKey, scope, object, domain.IdentityOf(live), shape)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.frames[cacheKey]; ok {
		return existing.Clone(), nil
	}
	r.frames[cacheKey] = fresh
	return fresh.Clone(), nil
}

// Lookup returns a copy of the frame for cacheKey.
func (r *Registry) Lookup(cacheKey string) (domain.CachedFrame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame, ok := r.frames[cacheKey]
	if !ok {
		return domain.CachedFrame{}, false
	}
	return frame.Clone(), true
}

// RecordTransform stores spec as the working transform of the frame.
//
// Empty filters past the frame's column count are dropped. A non-empty filter
// past it fails with ErrFilterShapeMismatch and leaves the frame untouched.
// A frame created without a live object has no known shape, so its filters
// are stored as given.
func (r *Registry) RecordTransform(cacheKey string, spec domain.TransformSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame, ok := r.frames[cacheKey]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrFrameNotFound, "failed to record transform"), "cache_key", cacheKey)
	}

	spec = spec.Clone()
	if n := frame.Shape.ColumnCount; frame.ShapeKnown() && len(spec.Filters) > n {
		extra := spec.Filters[n:]
		if slices.ContainsFunc(extra, func(f string) bool { return f != "" }) {
			err := zerr.Wrap(domain.ErrFilterShapeMismatch, "failed to record transform")
			err = zerr.With(err, "cache_key", cacheKey)
			return zerr.With(err, "column_count", n)
		}
		spec.Filters = spec.Filters[:n]
	}
	if spec.OrderDirection == "" {
		spec.OrderDirection = domain.OrderAscending
	}

	frame.Working = spec
	r.frames[cacheKey] = frame
	return nil
}

// Replace swaps in frame if the stored frame still has the observed identity.
// It reports whether the swap happened.
func (r *Registry) Replace(cacheKey string, observed domain.Identity, frame domain.CachedFrame) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.frames[cacheKey]
	if !ok || current.Identity != observed {
		return false
	}
	frame = frame.Clone()
	frame.CacheKey = cacheKey
	r.frames[cacheKey] = frame
	return true
}

// Remove evicts the frame for cacheKey and reports whether it existed.
func (r *Registry) Remove(cacheKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.frames[cacheKey]
	delete(r.frames, cacheKey)
	return ok
}

// Frames returns a snapshot of every frame ordered by cache key.
func (r *Registry) Frames() []domain.CachedFrame {
	r.mu.Lock()
	out := make([]domain.CachedFrame, 0, len(r.frames))
	for _, frame := range r.frames {
		out = append(out, frame.Clone())
	}
	r.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.CachedFrame) int {
		return strings.Compare(a.CacheKey, b.CacheKey)
	})
	return out
}

// Len returns the number of frames.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// LockKey serializes mutations of one cache key and returns the unlock function.
// Different keys do not block each other.
func (r *Registry) LockKey(cacheKey string) func() {
	r.keysMu.Lock()
	l, ok := r.keys[cacheKey]
	if !ok {
		l = &keyLock{}
		r.keys[cacheKey] = l
	}
	l.refs++
	r.keysMu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			r.keysMu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(r.keys, cacheKey)
			}
			r.keysMu.Unlock()
		})
	}
}

// ShapeOf reads the column signature of data.
func ShapeOf(ctx context.Context, engine ports.DataEngine, data domain.Dataset) (domain.Shape, error) {
	n, err := engine.ColumnCount(ctx, data)
	if err != nil {
		return domain.Shape{}, zerr.Wrap(err, "failed to count columns")
	}
	names, err := engine.ColumnNames(ctx, data)
	if err != nil {
		return domain.Shape{}, zerr.Wrap(err, "failed to read column names")
	}
	return domain.Shape{ColumnCount: n, ColumnNames: names}, nil
}
