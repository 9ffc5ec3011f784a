// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/gridview/internal/core/domain"
)

// DataEngine is the tabular data runtime behind the view cache.
//
// The core never looks inside a dataset. Every filter, sort and format
// operation is delegated to the engine, which returns pre-formatted strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=data_engine.go -destination=mocks/mock_data_engine.go -package=mocks
type DataEngine interface {
	// RowCount returns the number of rows in data.
	RowCount(ctx context.Context, data domain.Dataset) (int, error)

	// ColumnCount returns the number of columns in data.
	ColumnCount(ctx context.Context, data domain.Dataset) (int, error)

	// ColumnNames returns the column names of data in order.
	ColumnNames(ctx context.Context, data domain.Dataset) ([]string, error)

	// ResolveObject looks up the live object bound to name in scope.
	// The boolean is false when the object does not exist.
	ResolveObject(ctx context.Context, scope, name string) (domain.Dataset, bool, error)

	// FindCachedOrOriginal returns the data behind a view: the live object if it
	// still resolves, else the cached copy in memory, else the copy on disk.
	// The boolean is false when none of them exist.
	FindCachedOrOriginal(ctx context.Context, scope, name, cacheKey, cacheDir string) (domain.Dataset, bool, error)

	// FindWorkingTransform returns the materialized working transform of a view.
	FindWorkingTransform(ctx context.Context, cacheKey string) (domain.Dataset, bool)

	// SaveWorkingTransform stores data as the working transform of a view.
	SaveWorkingTransform(ctx context.Context, cacheKey string, data domain.Dataset)

	// DiscardWorkingTransform drops the working transform of a view.
	DiscardWorkingTransform(ctx context.Context, cacheKey string)

	// Transform filters, searches and sorts data. A nil result without an
	// error means the engine produced nothing.
	Transform(ctx context.Context, data domain.Dataset, spec domain.TransformSpec) (domain.Dataset, error)

	// FormatColumnSlice formats length cells of a one-based column starting at
	// the one-based row start. The boolean is false when the column has no data.
	FormatColumnSlice(ctx context.Context, data domain.Dataset, column, start, length int) ([]string, bool, error)

	// FormatRowLabels formats length row labels starting at the one-based row start.
	// The boolean is false when data has no row labels.
	FormatRowLabels(ctx context.Context, data domain.Dataset, start, length int) ([]string, bool, error)

	// DescribeColumns describes every column of data for the client's header.
	DescribeColumns(ctx context.Context, data domain.Dataset) ([]domain.ColumnDescription, error)

	// CloneWithNewCacheKey caches a copy of data under a freshly issued key and returns the key.
	CloneWithNewCacheKey(ctx context.Context, data domain.Dataset) (string, error)

	// RemoveCachedData releases every engine-side copy of a view.
	RemoveCachedData(ctx context.Context, cacheKey, cacheDir string) error

	// PersistAll writes every cached copy to cacheDir. Working transforms stay in memory.
	PersistAll(ctx context.Context, cacheDir string) error
}
