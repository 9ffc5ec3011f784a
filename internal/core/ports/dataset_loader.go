package ports

import "context"

// DatasetLoader binds dataset files to object names in a scope.
//
//go:generate go run go.uber.org/mock/mockgen -source=dataset_loader.go -destination=mocks/mock_dataset_loader.go -package=mocks
type DatasetLoader interface {
	// LoadFile reads the file at path and binds it to name in scope.
	// It reports whether the bound object changed.
	LoadFile(ctx context.Context, scope, name, path string) (bool, error)

	// Unload removes the binding of name in scope and reports whether it existed.
	Unload(ctx context.Context, scope, name string) bool
}
