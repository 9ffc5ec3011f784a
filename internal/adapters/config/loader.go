// Package config provides the configuration loader for gridview.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no " + path + " found, using defaults")
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// Load reads a configuration file. Relative paths in the file are resolved
// against the directory of the file.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return file.resolve(filepath.Dir(path))
}

func (f *File) resolve(base string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.JSONLogs = f.Log.JSON

	if f.Server.Addr != "" {
		cfg.Server.Addr = f.Server.Addr
	}
	if f.Server.IdleTimeout != nil {
		cfg.Server.IdleTimeout = *f.Server.IdleTimeout
	}
	if f.Cache.Dir != "" {
		cfg.CacheDir = absolute(base, f.Cache.Dir)
	}

	cfg.Data.Dir = absolute(base, cfg.Data.Dir)
	if f.Data.Dir != "" {
		cfg.Data.Dir = absolute(base, f.Data.Dir)
	}
	if f.Data.Scope != nil {
		cfg.Data.Scope = domain.NormalizeScope(*f.Data.Scope)
	}

	if f.Scan.Interval != nil {
		cfg.Scan.Interval = *f.Scan.Interval
	}
	if f.Scan.Debounce != nil {
		cfg.Scan.Debounce = *f.Scan.Debounce
	}

	for i, dto := range f.Datasets {
		if dto.Name == "" || dto.Path == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDataset, "invalid dataset entry"), "index", i)
		}
		cfg.Datasets = append(cfg.Datasets, domain.DatasetConfig{
			Name:  dto.Name,
			Path:  absolute(base, dto.Path),
			Scope: domain.NormalizeScope(dto.Scope),
		})
	}

	return cfg, nil
}

func absolute(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
