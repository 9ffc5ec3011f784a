package viewer

import (
	"context"
	"errors"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/zerr"
)

// Columns describes the columns of a view.
func (s *Service) Columns(ctx context.Context, req domain.ColumnsRequest) ([]domain.ColumnDescription, error) {
	ctx, span := s.tracer.Start(ctx, "viewer.columns", ports.WithAttribute("cache_key", req.CacheKey))
	defer span.End()

	data, _, err := s.resolve(ctx, req.CacheKey, req.Scope, req.Object)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	cols, err := s.engine.DescribeColumns(ctx, data)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to describe columns"), "cache_key", req.CacheKey)
		span.RecordError(err)
		return nil, err
	}
	return cols, nil
}

// Open starts a new view on a live object and asks clients to show it.
func (s *Service) Open(ctx context.Context, req domain.OpenRequest) (*domain.DataItem, error) {
	ctx, span := s.tracer.Start(ctx, "viewer.open", ports.WithAttribute("object", req.Object))
	defer span.End()

	item, err := s.open(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.notifier.ShowData(*item)
	return item, nil
}

func (s *Service) open(ctx context.Context, req domain.OpenRequest) (*domain.DataItem, error) {
	if req.Caption == "" {
		return nil, errors.Join(domain.ErrInvalidParams, domain.ErrInvalidCaption)
	}

	scope := domain.NormalizeScope(req.Scope)
	data, ok, err := s.engine.ResolveObject(ctx, scope, req.Object)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve object"), "object", req.Object)
	}
	if !ok || data == nil {
		err := zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "failed to open view"), "object", req.Object)
		return nil, zerr.With(err, "scope", scope)
	}

	cacheKey, err := s.engine.CloneWithNewCacheKey(ctx, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to cache object")
	}

	return s.dataItem(ctx, data, req.Caption, scope, req.Object, cacheKey)
}

// Duplicate creates a second, independently filtered view of an object.
// The live object is copied when it still exists, otherwise the view's cached copy.
func (s *Service) Duplicate(ctx context.Context, req domain.DuplicateRequest) (*domain.DataItem, error) {
	ctx, span := s.tracer.Start(ctx, "viewer.duplicate", ports.WithAttribute("cache_key", req.CacheKey))
	defer span.End()

	item, err := s.duplicate(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("cache_key.new", item.CacheKey)
	return item, nil
}

func (s *Service) duplicate(ctx context.Context, req domain.DuplicateRequest) (*domain.DataItem, error) {
	data, ok, err := s.engine.ResolveObject(ctx, req.Scope, req.Object)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve object"), "object", req.Object)
	}
	if !ok || data == nil {
		data, ok, err = s.engine.FindCachedOrOriginal(ctx, req.Scope, req.Object, req.CacheKey, s.cacheDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to find data"), "cache_key", req.CacheKey)
		}
		if !ok || data == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "failed to duplicate view"), "cache_key", req.CacheKey)
		}
	}

	cacheKey, err := s.engine.CloneWithNewCacheKey(ctx, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to cache copy"), "cache_key", req.CacheKey)
	}

	return s.dataItem(ctx, data, req.Caption, req.Scope, req.Object, cacheKey)
}

func (s *Service) dataItem(
	ctx context.Context,
	data domain.Dataset,
	caption, scope, object, cacheKey string,
) (*domain.DataItem, error) {
	rows, err := s.engine.RowCount(ctx, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to count rows")
	}
	cols, err := s.engine.ColumnCount(ctx, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to count columns")
	}

	return &domain.DataItem{
		Caption:               caption,
		TotalObservations:     rows,
		DisplayedObservations: rows,
		Variables:             cols,
		CacheKey:              cacheKey,
		Object:                object,
		Environment:           scope,
		ContentURL:            domain.ContentURL(scope, object, cacheKey),
	}, nil
}

// Remove forgets a view and releases the engine's copies of it.
// Removing an unknown view is not an error.
func (s *Service) Remove(ctx context.Context, cacheKey string) error {
	ctx, span := s.tracer.Start(ctx, "viewer.remove", ports.WithAttribute("cache_key", cacheKey))
	defer span.End()

	unlock := s.registry.LockKey(cacheKey)
	defer unlock()

	s.registry.Remove(cacheKey)

	if err := s.engine.RemoveCachedData(ctx, cacheKey, s.cacheDir); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to remove cached data"), "cache_key", cacheKey)
		span.RecordError(err)
		return err
	}
	return nil
}

// Persist writes every cached view to the cache directory.
// Failures are logged; persisting is best effort.
func (s *Service) Persist(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "viewer.persist")
	defer span.End()

	if err := s.engine.PersistAll(ctx, s.cacheDir); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to persist cached views"), "cache_dir", s.cacheDir)
		span.RecordError(err)
		s.logger.Error(err)
	}
}
