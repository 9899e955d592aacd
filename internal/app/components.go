package app

import (
	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/service"
	"github.com/ktane-web/filter-server/internal/telemetry"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// Store holds the served catalog snapshot
	Store *catalog.Store

	// Watcher reloads the catalog on file changes (nil when watching is disabled)
	Watcher *catalog.Watcher

	// FilterService provides the filter business logic
	FilterService service.FilterService

	// Metrics records filter metrics (nil without a meter provider)
	Metrics *telemetry.FilterMetrics
}
