package domain

import "go.trai.ch/zerr"

var (
	// ErrObjectNotFound is returned when the object behind a view cannot be found
	// in its scope, in memory, or in the viewer cache directory.
	ErrObjectNotFound = zerr.New("The object no longer exists.")

	// ErrTransformFailed is returned when the data engine fails to filter, search or sort,
	// or returns no data from a transform.
	ErrTransformFailed = zerr.New("Failure to sort or filter data")

	// ErrColumnMissing is returned when a column expected from the frame's shape has no data.
	ErrColumnMissing = zerr.New("no data in column")

	// ErrInvalidParams is returned when request parameters are malformed.
	ErrInvalidParams = zerr.New("invalid parameters")

	// ErrInvalidCaption is returned when a view is opened without a caption.
	ErrInvalidCaption = zerr.New("invalid caption argument")

	// ErrInvalidOrderDirection is returned when a sort direction is neither asc nor desc.
	ErrInvalidOrderDirection = zerr.New("invalid order direction, expected 'asc' or 'desc'")

	// ErrUnknownMethod is returned when an RPC method is not registered.
	ErrUnknownMethod = zerr.New("unknown rpc method")

	// ErrFrameNotFound is returned when a registry operation targets an unknown cache key.
	ErrFrameNotFound = zerr.New("cached frame not found")

	// ErrFilterShapeMismatch is returned when a transform filters columns beyond the frame's known shape.
	ErrFilterShapeMismatch = zerr.New("filters exceed the known column count")

	// ErrForeignDataset is returned when a data engine is handed a dataset it did not create.
	ErrForeignDataset = zerr.New("dataset was not created by this engine")

	// ErrInvalidTable is returned when a table's columns or row names disagree in length.
	ErrInvalidTable = zerr.New("invalid table")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDataset is returned when a configured dataset has no name or path.
	ErrInvalidDataset = zerr.New("dataset needs a name and a path")

	// ErrDatasetLoadFailed is returned when a dataset file cannot be loaded.
	ErrDatasetLoadFailed = zerr.New("failed to load dataset")

	// ErrCacheStoreOpenFailed is returned when the viewer cache database cannot be opened.
	ErrCacheStoreOpenFailed = zerr.New("failed to open viewer cache store")

	// ErrCacheStoreReadFailed is returned when a view cannot be read from the viewer cache.
	ErrCacheStoreReadFailed = zerr.New("failed to read from viewer cache store")

	// ErrCacheStoreWriteFailed is returned when a view cannot be written to the viewer cache.
	ErrCacheStoreWriteFailed = zerr.New("failed to write to viewer cache store")

	// ErrCacheDirCreateFailed is returned when the viewer cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create viewer cache directory")

	// ErrServerListenFailed is returned when the HTTP listener cannot be opened.
	ErrServerListenFailed = zerr.New("failed to listen for HTTP connections")
)
