// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gravity/internal/adapters/config"
	_ "go.trai.ch/gravity/internal/adapters/datastore"
	_ "go.trai.ch/gravity/internal/adapters/linear"
	_ "go.trai.ch/gravity/internal/adapters/logger"
	_ "go.trai.ch/gravity/internal/adapters/metrics"
	_ "go.trai.ch/gravity/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/gravity/internal/app"
)
