package ports

import "go.trai.ch/gridview/internal/core/domain"

// Notifier delivers view events to connected clients.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// ShowData asks clients to open a view.
	ShowData(item domain.DataItem)
	// DataViewChanged tells clients that the object behind a view changed.
	DataViewChanged(change domain.ViewChange)
}
