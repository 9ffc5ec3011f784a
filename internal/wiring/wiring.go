// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gridview/internal/adapters/config"
	_ "go.trai.ch/gridview/internal/adapters/events"
	_ "go.trai.ch/gridview/internal/adapters/httpapi"
	_ "go.trai.ch/gridview/internal/adapters/logger"
	_ "go.trai.ch/gridview/internal/adapters/tabular"
	_ "go.trai.ch/gridview/internal/adapters/telemetry"
	_ "go.trai.ch/gridview/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/gridview/internal/app"
	_ "go.trai.ch/gridview/internal/engine/changes"
	_ "go.trai.ch/gridview/internal/engine/registry"
	_ "go.trai.ch/gridview/internal/engine/viewer"
)
