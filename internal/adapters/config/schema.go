package config

import "time"

// File represents the structure of the gridview.yaml configuration file.
// Unset fields keep their defaults.
type File struct {
	Server   ServerDTO    `yaml:"server"`
	Cache    CacheDTO     `yaml:"cache"`
	Data     DataDTO      `yaml:"data"`
	Scan     ScanDTO      `yaml:"scan"`
	Log      LogDTO       `yaml:"log"`
	Datasets []DatasetDTO `yaml:"datasets"`
}

// ServerDTO configures the HTTP server.
type ServerDTO struct {
	Addr        string         `yaml:"addr"`
	IdleTimeout *time.Duration `yaml:"idleTimeout"`
}

// CacheDTO configures the viewer cache directory.
type CacheDTO struct {
	Dir string `yaml:"dir"`
}

// DataDTO configures the watched dataset directory.
type DataDTO struct {
	Dir   string  `yaml:"dir"`
	Scope *string `yaml:"scope"`
}

// ScanDTO configures change detection triggers.
type ScanDTO struct {
	Interval *time.Duration `yaml:"interval"`
	Debounce *time.Duration `yaml:"debounce"`
}

// LogDTO configures logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// DatasetDTO declares a dataset file loaded at startup.
type DatasetDTO struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Scope string `yaml:"scope"`
}
