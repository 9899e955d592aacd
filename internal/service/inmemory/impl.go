// Package inmemory provides the FilterService implementation over the catalog
// snapshot held in memory
package inmemory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/filtering"
	"github.com/ktane-web/filter-server/internal/i18n"
	"github.com/ktane-web/filter-server/internal/otel"
	"github.com/ktane-web/filter-server/internal/service"
	"github.com/ktane-web/filter-server/internal/telemetry"
)

// ServiceTracerName is the name of the filter service tracer
const ServiceTracerName = "github.com/ktane-web/filter-server/service/inmemory"

// filterSvc implements the FilterService interface
type filterSvc struct {
	store    *catalog.Store
	registry *filtering.Registry[*catalog.Module]
	bundle   *i18n.Bundle

	tracer  trace.Tracer
	metrics *telemetry.FilterMetrics
}

var _ service.FilterService = (*filterSvc)(nil)

// Option is a functional option for configuring the filter service
type Option func(*filterSvc)

// WithTracer sets the tracer for service spans
func WithTracer(tracer trace.Tracer) Option {
	return func(s *filterSvc) {
		s.tracer = tracer
	}
}

// WithMetrics sets the filter metrics
func WithMetrics(metrics *telemetry.FilterMetrics) Option {
	return func(s *filterSvc) {
		s.metrics = metrics
	}
}

// New creates a filter service. All three collaborators are required; the
// store may still be empty, in which case the service reports not ready
// until a catalog is loaded.
func New(
	store *catalog.Store,
	registry *filtering.Registry[*catalog.Module],
	bundle *i18n.Bundle,
	opts ...Option,
) (service.FilterService, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	if registry == nil {
		return nil, errors.New("filter registry is required")
	}
	if bundle == nil {
		return nil, errors.New("translation bundle is required")
	}

	s := &filterSvc{
		store:    store,
		registry: registry,
		bundle:   bundle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckReadiness implements FilterService.CheckReadiness
func (s *filterSvc) CheckReadiness(_ context.Context) error {
	if s.store.Current() == nil {
		return service.ErrNotReady
	}
	return nil
}

// CatalogInfo implements FilterService.CatalogInfo
func (s *filterSvc) CatalogInfo(_ context.Context) (*service.CatalogInfo, error) {
	c := s.store.Current()
	if c == nil {
		return nil, service.ErrNotReady
	}
	return &service.CatalogInfo{Version: c.Version, Modules: c.Len()}, nil
}

// Descriptors implements FilterService.Descriptors
func (s *filterSvc) Descriptors(ctx context.Context, group string) ([]filtering.Descriptor, error) {
	_, span := otel.StartSpan(ctx, s.tracer, "filterService.Descriptors",
		trace.WithAttributes(otel.AttrFilterGroup.String(group)),
	)
	defer span.End()

	descriptors, err := s.registry.Descriptors(group)
	if err != nil {
		err = groupError(group, err)
		otel.RecordError(span, err, service.ErrUnknownGroup)
		return nil, err
	}
	span.SetAttributes(otel.AttrFilterCount.Int(len(descriptors)))
	return descriptors, nil
}

// RenderFilters implements FilterService.RenderFilters
func (s *filterSvc) RenderFilters(ctx context.Context, group string, opts ...service.Option) (*service.Fragment, error) {
	ctx, span := otel.StartSpan(ctx, s.tracer, "filterService.RenderFilters",
		trace.WithAttributes(otel.AttrFilterGroup.String(group)),
	)
	defer span.End()

	options := &service.RenderFiltersOptions{}
	if err := service.Apply(options, opts...); err != nil {
		otel.RecordError(span, err)
		return nil, err
	}

	translation := s.bundle.Match(options.Languages...)
	span.SetAttributes(otel.AttrLanguage.String(translation.Code))

	nodes, err := s.registry.Render(group, translation)
	if err != nil {
		err = groupError(group, err)
		otel.RecordError(span, err, service.ErrUnknownGroup)
		return nil, err
	}

	var buf bytes.Buffer
	if err := filtering.RenderHTML(&buf, nodes...); err != nil {
		err = fmt.Errorf("failed to render filters: %w", err)
		otel.RecordError(span, err)
		return nil, err
	}

	if group == "" {
		group = filtering.GroupAll
	}
	s.metrics.RecordRender(ctx, group, translation.Code)

	return &service.Fragment{Language: translation.Code, HTML: buf.Bytes()}, nil
}

// SearchModules implements FilterService.SearchModules
func (s *filterSvc) SearchModules(ctx context.Context, state []byte, opts ...service.Option) (*service.SearchResult, error) {
	ctx, span := otel.StartSpan(ctx, s.tracer, "filterService.SearchModules")
	defer span.End()

	options := &service.SearchModulesOptions{}
	if err := service.Apply(options, opts...); err != nil {
		otel.RecordError(span, err)
		return nil, err
	}
	if options.Limit > 0 {
		span.SetAttributes(otel.AttrResultLimit.Int(options.Limit))
	}

	parsed, err := parseState(state)
	if err != nil {
		otel.RecordError(span, err, service.ErrInvalidState)
		return nil, err
	}

	c := s.store.Current()
	if c == nil {
		otel.RecordError(span, service.ErrNotReady)
		return nil, service.ErrNotReady
	}
	span.SetAttributes(
		otel.AttrCatalogVersion.String(c.Version),
		otel.AttrModuleCount.Int(c.Len()),
	)

	start := time.Now()
	result := &service.SearchResult{Version: c.Version, Modules: []*catalog.Module{}}
	excluded := make(map[string]int)
	for i := range c.Modules {
		m := &c.Modules[i]
		ok, by := s.registry.Match(m, parsed)
		if !ok {
			excluded[by]++
			continue
		}
		result.Count++
		if options.Limit == 0 || len(result.Modules) < options.Limit {
			result.Modules = append(result.Modules, m)
		}
	}

	s.metrics.RecordSearch(ctx, time.Since(start), result.Count, excluded)
	span.SetAttributes(otel.AttrResultCount.Int(result.Count))
	slog.DebugContext(ctx, "Searched modules",
		"catalog_version", c.Version,
		"matched", result.Count,
		"excluded_by", excluded,
	)
	return result, nil
}

// parseState parses the client filter state. An empty body is the empty
// state; anything else must be a JSON object.
func parseState(state []byte) (gjson.Result, error) {
	state = bytes.TrimSpace(state)
	if len(state) == 0 {
		return gjson.Parse("{}"), nil
	}
	if !gjson.ValidBytes(state) {
		return gjson.Result{}, fmt.Errorf("%w: malformed JSON", service.ErrInvalidState)
	}
	parsed := gjson.ParseBytes(state)
	if !parsed.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object keyed by filter id", service.ErrInvalidState)
	}
	return parsed, nil
}

func groupError(group string, err error) error {
	if errors.Is(err, filtering.ErrUnknownGroup) {
		return fmt.Errorf("%w: %q", service.ErrUnknownGroup, group)
	}
	return err
}
