// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stitch/internal/adapters/bundle"
	_ "go.trai.ch/stitch/internal/adapters/config"
	_ "go.trai.ch/stitch/internal/adapters/fs"
	_ "go.trai.ch/stitch/internal/adapters/logger"
	_ "go.trai.ch/stitch/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/stitch/internal/app"
	_ "go.trai.ch/stitch/internal/engine/render"
)
