package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = "gridview"

	// ViewerCacheDirName is the name of the directory holding persisted views.
	ViewerCacheDirName = "viewer-cache"

	// ViewerCacheDBName is the name of the SQLite file inside the viewer cache directory.
	ViewerCacheDBName = "viewer-cache.db"

	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "gridview.yaml"

	// GridResourcePath is the path prefix of the grid viewer resources.
	GridResourcePath = "grid_resource"

	// UnboundScope marks an object that has no named scope to relocate it from.
	UnboundScope = "_gv_unbound"

	// GlobalScope is the name of the default scope.
	GlobalScope = ""

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// IsBoundScope reports whether objects in scope can be resolved by name.
func IsBoundScope(scope string) bool {
	return scope != UnboundScope
}

// NormalizeScope maps the alias of the global scope to GlobalScope.
func NormalizeScope(scope string) string {
	if scope == "global" {
		return GlobalScope
	}
	return scope
}

// DefaultCacheDir returns the default viewer cache directory.
// It falls back to the temporary directory when no user cache directory exists.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, AppDirName, ViewerCacheDirName)
}
