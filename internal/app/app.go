// Package app implements the application layer for gridview.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gridview/internal/adapters/events"
	"go.trai.ch/gridview/internal/adapters/httpapi"
	"go.trai.ch/gridview/internal/adapters/telemetry"
	"go.trai.ch/gridview/internal/adapters/watcher"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/engine/changes"
	"go.trai.ch/gridview/internal/engine/viewer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CacheStore opens and closes the data engine's viewer cache.
type CacheStore interface {
	Init(ctx context.Context, cacheDir string)
	Close() error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        CacheStore
	datasets     ports.DatasetLoader
	views        *viewer.Service
	detector     *changes.Detector
	hub          *events.Hub
	watcher      ports.Watcher
	servers      *httpapi.Factory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store CacheStore,
	datasets ports.DatasetLoader,
	views *viewer.Service,
	detector *changes.Detector,
	hub *events.Hub,
	w ports.Watcher,
	servers *httpapi.Factory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		datasets:     datasets,
		views:        views,
		detector:     detector,
		hub:          hub,
		watcher:      w,
		servers:      servers,
	}
}

// ServeOptions configuration for the Serve method. Set fields override the config file.
type ServeOptions struct {
	ConfigPath string
	Addr       string
	CacheDir   string
	JSON       bool
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	CacheDir   string
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// Serve loads the configured datasets and serves views until ctx is done or
// the server's idle timeout expires. Cached views are persisted on the way out.
//
//nolint:cyclop // orchestration function
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}
	if s, ok := a.logger.(jsonSwitch); ok {
		s.SetJSON(cfg.JSONLogs || opts.JSON)
	}

	// 2. Initialize telemetry
	// Failed spans are reported through the logger.
	tp := telemetry.Setup(telemetry.NewBridge(a.logger))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	// 3. Open the viewer cache and persist into it on exit
	a.store.Init(ctx, cfg.CacheDir)
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close viewer cache: %v", err))
		}
	}()
	views := a.views.WithCacheDir(cfg.CacheDir)
	defer views.Persist(context.WithoutCancel(ctx))

	// 4. Load datasets
	a.preload(ctx, cfg)

	// 5. Serve, watch and scan until the server stops
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	server := a.servers.Build(views, a.detector, a.hub, cfg.Server.IdleTimeout)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return server.Serve(ctx, cfg.Server.Addr)
	})
	g.Go(func() error {
		return a.watch(ctx, cfg.Data, cfg.Scan.Debounce)
	})
	if cfg.Scan.Interval > 0 {
		g.Go(func() error {
			a.tick(ctx, cfg.Scan.Interval)
			return nil
		})
	}
	return g.Wait()
}

// preload loads the declared datasets and every dataset file of the data directory.
func (a *App) preload(ctx context.Context, cfg *domain.Config) {
	for _, ds := range cfg.Datasets {
		a.load(ctx, domain.NormalizeScope(ds.Scope), ds.Name, ds.Path)
	}
	if cfg.Data.Dir == "" {
		return
	}
	scope := domain.NormalizeScope(cfg.Data.Scope)
	err := filepath.WalkDir(cfg.Data.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && watcher.IsDataset(path) {
			a.load(ctx, scope, watcher.DatasetName(path), path)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn(fmt.Sprintf("failed to scan data directory %s: %v", cfg.Data.Dir, err))
	}
}

func (a *App) load(ctx context.Context, scope, name, path string) {
	if _, err := a.datasets.LoadFile(ctx, scope, name, path); err != nil {
		a.logger.Error(zerr.With(zerr.With(err, "name", name), "scope", scope))
	}
}

// watch reloads changed dataset files until ctx is done. A missing data
// directory is not watched.
func (a *App) watch(ctx context.Context, data domain.DataConfig, debounce time.Duration) error {
	if data.Dir == "" {
		return nil
	}
	if info, err := os.Stat(data.Dir); err != nil || !info.IsDir() {
		a.logger.Warn(fmt.Sprintf("data directory %s not found, not watching", data.Dir))
		return nil
	}

	if err := a.watcher.Start(ctx, data.Dir); err != nil {
		return zerr.Wrap(err, "failed to watch data directory")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	scope := domain.NormalizeScope(data.Scope)
	debouncer := watcher.NewDebouncer(debounce, func(paths []string) {
		a.Sync(ctx, scope, paths)
	})
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

// Sync brings the datasets of scope in line with the files at paths and
// runs a change scan so that open views learn about it.
func (a *App) Sync(ctx context.Context, scope string, paths []string) {
	if ctx.Err() != nil {
		return
	}
	for _, path := range paths {
		if !watcher.IsDataset(path) {
			continue
		}
		name := watcher.DatasetName(path)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if a.datasets.Unload(ctx, scope, name) {
				a.logger.Info("unloaded " + name)
			}
			continue
		}
		a.load(ctx, scope, name, path)
	}
	a.detector.Scan(ctx)
}

func (a *App) tick(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.detector.Scan(ctx)
		}
	}
}

// Clean removes the viewer cache directory.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	dir := cfg.CacheDir
	if opts.CacheDir != "" {
		dir = opts.CacheDir
	}

	a.logger.Info("removing viewer cache...")
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove viewer cache"), "dir", dir)
	}
	a.logger.Info("removed viewer cache")
	return nil
}
