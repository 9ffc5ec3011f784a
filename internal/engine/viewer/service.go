// Package viewer serves paginated, filtered and sorted windows into datasets.
package viewer

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Service answers view requests against the frame registry and the data engine.
type Service struct {
	engine   ports.DataEngine
	registry *registry.Registry
	notifier ports.Notifier
	tracer   ports.Tracer
	logger   ports.Logger
	cacheDir string
}

// New creates a Service that keeps persisted views under cacheDir.
func New(
	engine ports.DataEngine,
	reg *registry.Registry,
	notifier ports.Notifier,
	tracer ports.Tracer,
	logger ports.Logger,
	cacheDir string,
) *Service {
	return &Service{
		engine:   engine,
		registry: reg,
		notifier: notifier,
		tracer:   tracer,
		logger:   logger,
		cacheDir: cacheDir,
	}
}

// WithCacheDir returns a copy of the Service that keeps persisted views under dir.
func (s *Service) WithCacheDir(dir string) *Service {
	out := *s
	out.cacheDir = dir
	return &out
}

// CacheDir returns the directory persisted views are kept in.
func (s *Service) CacheDir() string {
	return s.cacheDir
}

// Page returns one page of the view identified by the request's cache key.
//
// A working transform recorded with the same parameters is reused as is. One
// recorded with wider parameters is narrowed instead of transforming the raw
// object again.
func (s *Service) Page(ctx context.Context, req domain.PageRequest) (*domain.PageResponse, error) {
	ctx, span := s.tracer.Start(ctx, "viewer.page", ports.WithAttribute("cache_key", req.CacheKey))
	defer span.End()

	resp, err := s.page(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("records.filtered", resp.RecordsFiltered)
	return resp, nil
}

func (s *Service) page(ctx context.Context, req domain.PageRequest) (*domain.PageResponse, error) {
	if req.Window.Start < 0 || req.Window.Length < 0 {
		err := zerr.Wrap(domain.ErrInvalidParams, "page window must not be negative")
		err = zerr.With(err, "start", req.Window.Start)
		return nil, zerr.With(err, "length", req.Window.Length)
	}

	spec := req.Spec.Clone()
	if spec.OrderDirection == "" {
		spec.OrderDirection = domain.OrderAscending
	}

	unlock := s.registry.LockKey(req.CacheKey)
	defer unlock()

	data, hasFrame, err := s.resolve(ctx, req.CacheKey, req.Scope, req.Object)
	if err != nil {
		return nil, err
	}

	total, err := s.engine.RowCount(ctx, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to count rows")
	}
	columns, err := s.engine.ColumnCount(ctx, data)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to count columns")
	}
	// One filter per column; a missing filter is an empty one.
	spec.Filters = alignFilters(spec.Filters, columns)

	needsTransform := spec.NeedsTransform()
	hasTransform := false
	input := data

	if needsTransform && hasFrame {
		frame, _ := s.registry.Lookup(req.CacheKey)
		// Working data without recorded parameters describes nothing.
		if working, ok := s.engine.FindWorkingTransform(ctx, req.CacheKey); ok && working != nil && frame.HasWorkingTransform() {
			switch {
			case frame.Working.Equal(spec):
				input = working
				needsTransform = false
				hasTransform = true
			case frame.IsSupersetOf(spec.Search, spec.Filters):
				input = working
			}
		}
	}

	result := input
	if needsTransform {
		result, err = s.engine.Transform(ctx, input, spec)
		if err != nil {
			return nil, errors.Join(domain.ErrTransformFailed, err)
		}
		if result == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrTransformFailed, "transform returned no data"), "cache_key", req.CacheKey)
		}
		s.saveWorking(ctx, req.CacheKey, spec, result, hasFrame)
	}

	filtered := total
	if needsTransform || hasTransform {
		filtered, err = s.engine.RowCount(ctx, result)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to count filtered rows")
		}
	}

	length := min(req.Window.Length, max(0, filtered-req.Window.Start))
	start := req.Window.Start + 1

	grid, err := s.formatGrid(ctx, result, columns, start, length)
	if err != nil {
		return nil, zerr.With(err, "cache_key", req.CacheKey)
	}

	return &domain.PageResponse{
		Draw:            req.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            grid,
	}, nil
}

// alignFilters returns exactly n filters: missing ones are empty, extra ones
// are ignored.
func alignFilters(filters []string, n int) []string {
	if len(filters) >= n {
		return filters[:n:n]
	}
	return append(filters, make([]string, n-len(filters))...)
}

// resolve finds the data behind a view and reports whether the view is
// tracked in the registry. Views in the unbound scope are never tracked.
func (s *Service) resolve(ctx context.Context, cacheKey, scope, object string) (domain.Dataset, bool, error) {
	tracked := false
	if domain.IsBoundScope(scope) {
		live, _, err := s.engine.ResolveObject(ctx, scope, object)
		if err != nil {
			return nil, false, zerr.With(zerr.Wrap(err, "failed to resolve object"), "object", object)
		}
		if _, err := s.registry.GetOrCreate(ctx, cacheKey, scope, object, live); err != nil {
			return nil, false, err
		}
		tracked = true
	}

	data, ok, err := s.engine.FindCachedOrOriginal(ctx, scope, object, cacheKey, s.cacheDir)
	if err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to find data"), "cache_key", cacheKey))
	}
	if !ok || data == nil {
		nf := zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "failed to find data"), "cache_key", cacheKey)
		return nil, tracked, zerr.With(nf, "object", object)
	}
	return data, tracked, nil
}

// saveWorking keeps result as the view's working transform. A tracked view
// whose transform cannot be recorded keeps its previous working data, so the
// stored data and the recorded parameters never disagree.
func (s *Service) saveWorking(
	ctx context.Context,
	cacheKey string,
	spec domain.TransformSpec,
	result domain.Dataset,
	tracked bool,
) {
	if tracked {
		if err := s.registry.RecordTransform(cacheKey, spec); err != nil {
			s.logger.Warn("working transform not cached: " + err.Error())
			return
		}
	}
	s.engine.SaveWorkingTransform(ctx, cacheKey, result)
}

func (s *Service) formatGrid(
	ctx context.Context,
	data domain.Dataset,
	columns, start, length int,
) ([][]string, error) {
	cells := make([][]string, columns)
	for col := range columns {
		formatted, ok, err := s.engine.FormatColumnSlice(ctx, data, col+1, start, length)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to format column"), "column", col)
		}
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrColumnMissing, "failed to format column"), "column", col)
		}
		cells[col] = formatted
	}

	labels, hasLabels, err := s.engine.FormatRowLabels(ctx, data, start, length)
	if err != nil {
		s.logger.Warn("row labels unavailable: " + err.Error())
		hasLabels = false
	}

	grid := make([][]string, 0, length)
	for row := range length {
		line := make([]string, 0, columns+1)

		label := ""
		if hasLabels && row < len(labels) {
			label = labels[row]
		}
		if label == "" {
			label = strconv.Itoa(start + row)
		}
		line = append(line, label)

		for col := range columns {
			cell := ""
			if row < len(cells[col]) {
				cell = cells[col][row]
			}
			line = append(line, cell)
		}
		grid = append(grid, line)
	}
	return grid, nil
}
