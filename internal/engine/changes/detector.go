// Package changes detects when the objects behind open views change.
package changes

import (
	"context"
	"sync/atomic"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Detector compares every tracked frame against its live object.
type Detector struct {
	engine   ports.DataEngine
	registry *registry.Registry
	notifier ports.Notifier
	tracer   ports.Tracer
	logger   ports.Logger

	scanning atomic.Bool
}

// New creates a Detector over the frames tracked by reg.
func New(
	engine ports.DataEngine,
	reg *registry.Registry,
	notifier ports.Notifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Detector {
	return &Detector{
		engine:   engine,
		registry: reg,
		notifier: notifier,
		tracer:   tracer,
		logger:   logger,
	}
}

// Scan checks every tracked frame once. A frame whose object no longer has the
// observed identity is reset, its working data is dropped, and observers are
// told whether its columns changed.
//
// A Scan triggered while another one runs, including from inside the data
// engine, returns immediately with Skipped set.
func (d *Detector) Scan(ctx context.Context) domain.ScanResult {
	if !d.scanning.CompareAndSwap(false, true) {
		return domain.ScanResult{Skipped: true}
	}
	defer d.scanning.Store(false)

	ctx, span := d.tracer.Start(ctx, "changes.scan")
	defer span.End()

	frames := d.registry.Frames()
	span.SetAttribute("frames", len(frames))

	var result domain.ScanResult
	for _, frame := range frames {
		if !frame.IsBound() {
			continue
		}
		change, changed, err := d.check(ctx, frame)
		if err != nil {
			span.RecordError(err)
			d.logger.Error(err)
			continue
		}
		if changed {
			result.Changes = append(result.Changes, change)
		}
	}

	span.SetAttribute("changes", len(result.Changes))
	return result
}

func (d *Detector) check(ctx context.Context, frame domain.CachedFrame) (domain.ViewChange, bool, error) {
	unlock := d.registry.LockKey(frame.CacheKey)
	defer unlock()

	live, _, err := d.engine.ResolveObject(ctx, frame.Scope, frame.Object)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to resolve object"), "cache_key", frame.CacheKey)
		return domain.ViewChange{}, false, zerr.With(err, "object", frame.Object)
	}

	identity := domain.IdentityOf(live)
	if identity == frame.Identity {
		return domain.ViewChange{}, false, nil
	}

	var shape domain.Shape
	if live != nil {
		shape, err = registry.ShapeOf(ctx, d.engine, live)
		if err != nil {
			return domain.ViewChange{}, false, zerr.With(err, "cache_key", frame.CacheKey)
		}
	}

	next := domain.NewCachedFrame(frame.CacheKey, frame.Scope, frame.Object, identity, shape)
	if !d.registry.Replace(frame.CacheKey, frame.Identity, next) {
		// Removed since the snapshot was taken.
		return domain.ViewChange{}, false, nil
	}

	d.engine.DiscardWorkingTransform(ctx, frame.CacheKey)

	change := domain.ViewChange{
		CacheKey:         frame.CacheKey,
		StructureChanged: !frame.Shape.Equal(shape),
	}
	d.notifier.DataViewChanged(change)
	return change, true, nil
}
