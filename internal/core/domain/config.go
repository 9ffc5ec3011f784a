package domain

import "time"

const (
	// DefaultServerAddr is the address the HTTP server listens on by default.
	DefaultServerAddr = "127.0.0.1:8787"

	// DefaultDataDir is the directory scanned for dataset files by default.
	DefaultDataDir = "data"

	// DefaultDebounceWindow is the default window for coalescing dataset file events.
	DefaultDebounceWindow = 50 * time.Millisecond
)

// Config is the resolved runtime configuration of the server.
type Config struct {
	Server   ServerConfig
	CacheDir string
	Data     DataConfig
	Scan     ScanConfig
	JSONLogs bool
	Datasets []DatasetConfig
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr string
	// IdleTimeout shuts the server down after a period without requests; zero disables it.
	IdleTimeout time.Duration
}

// DataConfig configures the watched dataset directory.
type DataConfig struct {
	Dir   string
	Scope string
}

// ScanConfig configures the external triggers of change detection.
type ScanConfig struct {
	// Interval triggers a scan periodically; zero disables the ticker.
	Interval time.Duration
	// Debounce coalesces dataset file events before a scan.
	Debounce time.Duration
}

// DatasetConfig declares a dataset file to load at startup.
type DatasetConfig struct {
	Name  string
	Path  string
	Scope string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: DefaultServerAddr},
		CacheDir: DefaultCacheDir(),
		Data:     DataConfig{Dir: DefaultDataDir, Scope: GlobalScope},
		Scan:     ScanConfig{Debounce: DefaultDebounceWindow},
	}
}
