package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// FilterMetricsMeterName names the meter of the filter service instruments.
const FilterMetricsMeterName = "github.com/ktane-web/filter-server/filters"

// FilterMetrics holds the instruments recorded by the filter service. A nil
// *FilterMetrics records nothing.
type FilterMetrics struct {
	searchDuration  metric.Float64Histogram
	searchResults   metric.Int64Histogram
	excludedBy      metric.Int64Counter
	renders         metric.Int64Counter
	catalogModules  metric.Int64Gauge
	catalogReloaded metric.Int64Counter
}

// NewFilterMetrics creates the filter instruments. A nil provider yields nil metrics.
func NewFilterMetrics(provider metric.MeterProvider) (*FilterMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(FilterMetricsMeterName)
	m := &FilterMetrics{}
	var err error

	if m.searchDuration, err = meter.Float64Histogram(
		"filter_api_search_duration_seconds",
		metric.WithDescription("Duration of module searches in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25),
	); err != nil {
		return nil, err
	}

	if m.searchResults, err = meter.Int64Histogram(
		"filter_api_search_results",
		metric.WithDescription("Number of modules returned by a search"),
		metric.WithUnit("{module}"),
		metric.WithExplicitBucketBoundaries(0, 1, 10, 50, 100, 250, 500, 1000, 2500),
	); err != nil {
		return nil, err
	}

	if m.excludedBy, err = meter.Int64Counter(
		"filter_api_modules_excluded_total",
		metric.WithDescription("Modules excluded from search results, by the first filter that rejected them"),
		metric.WithUnit("{module}"),
	); err != nil {
		return nil, err
	}

	if m.renders, err = meter.Int64Counter(
		"filter_api_renders_total",
		metric.WithDescription("Rendered filter fragments by group and language"),
		metric.WithUnit("{render}"),
	); err != nil {
		return nil, err
	}

	if m.catalogModules, err = meter.Int64Gauge(
		"filter_api_catalog_modules",
		metric.WithDescription("Number of modules in the served catalog"),
		metric.WithUnit("{module}"),
	); err != nil {
		return nil, err
	}

	if m.catalogReloaded, err = meter.Int64Counter(
		"filter_api_catalog_reloads_total",
		metric.WithDescription("Catalog reload attempts by outcome"),
		metric.WithUnit("{reload}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSearch records one search: its duration, result size and, per filter
// id, how many modules that filter excluded.
func (m *FilterMetrics) RecordSearch(ctx context.Context, duration time.Duration, results int, excluded map[string]int) {
	if m == nil {
		return
	}
	m.searchDuration.Record(ctx, duration.Seconds())
	m.searchResults.Record(ctx, int64(results))
	for id, n := range excluded {
		m.excludedBy.Add(ctx, int64(n), metric.WithAttributes(attribute.String("filter", id)))
	}
}

// RecordRender counts a rendered fragment.
func (m *FilterMetrics) RecordRender(ctx context.Context, group, language string) {
	if m == nil {
		return
	}
	m.renders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("group", group),
		attribute.String("language", language),
	))
}

// RecordCatalog records the size of the served catalog.
func (m *FilterMetrics) RecordCatalog(ctx context.Context, version string, modules int) {
	if m == nil {
		return
	}
	m.catalogModules.Record(ctx, int64(modules), metric.WithAttributes(attribute.String("version", version)))
}

// Catalog reload outcomes recorded by RecordReload.
const (
	ReloadOK     = "ok"
	ReloadStale  = "stale"
	ReloadFailed = "error"
)

// RecordReload counts a catalog reload attempt.
func (m *FilterMetrics) RecordReload(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.catalogReloaded.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
