package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ktane-web/filter-server/internal/api"
	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/config"
	"github.com/ktane-web/filter-server/internal/i18n"
	"github.com/ktane-web/filter-server/internal/modfilters"
	"github.com/ktane-web/filter-server/internal/service"
	"github.com/ktane-web/filter-server/internal/service/inmemory"
	"github.com/ktane-web/filter-server/internal/telemetry"
)

const (
	defaultHTTPAddress  = ":8080"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// FilterAppOptions is a function that configures the filter app builder
type FilterAppOptions func(*filterAppConfig) error

// filterAppConfig collects the settings used to build a FilterApp
// It supports dependency injection for testing while providing sensible defaults for production
type filterAppConfig struct {
	config *config.Config

	// HTTP server options
	address        string
	addressSet     bool
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler
}

func baseConfig(opts ...FilterAppOptions) (*filterAppConfig, error) {
	cfg := &filterAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: config.DefaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// Settings from the config file apply unless an option overrode them
	if addr := cfg.config.GetAddress(); addr != "" && !cfg.addressSet {
		if err := WithAddress(addr)(cfg); err != nil {
			return nil, fmt.Errorf("invalid server.address: %w", err)
		}
	}
	cfg.requestTimeout = cfg.config.GetRequestTimeout()

	return cfg, nil
}

// NewFilterApp loads the catalog and translations and wires the service and
// HTTP server around them
func NewFilterApp(
	ctx context.Context,
	opts ...FilterAppOptions,
) (*FilterApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	metrics, err := telemetry.NewFilterMetrics(cfg.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter metrics: %w", err)
	}

	store, watcher, err := buildCatalogComponents(ctx, cfg, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog components: %w", err)
	}

	filterService, err := buildServiceComponents(ctx, cfg, store, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	httpServer, err := buildHTTPServer(ctx, cfg, filterService)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)

	return &FilterApp{
		config: cfg.config,
		components: &AppComponents{
			Store:         store,
			Watcher:       watcher,
			FilterService: filterService,
			Metrics:       metrics,
		},
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: cancel,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		cfg.addressSet = true
		return nil
	}
}

// WithMiddlewares sets custom HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for HTTP and filter metrics
func WithMeterProvider(mp metric.MeterProvider) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider for HTTP and service spans
func WithTracerProvider(tp trace.TracerProvider) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler serves h on /metrics
func WithMetricsHandler(h http.Handler) FilterAppOptions {
	return func(cfg *filterAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// buildCatalogComponents loads the catalog and, when enabled, prepares the file watcher
func buildCatalogComponents(
	ctx context.Context,
	b *filterAppConfig,
	metrics *telemetry.FilterMetrics,
) (*catalog.Store, *catalog.Watcher, error) {
	path := b.config.Catalog.Path
	slog.Info("Loading catalog", "path", path)

	c, err := catalog.Load(path)
	if err != nil {
		return nil, nil, err
	}
	store := catalog.NewStore(c)
	metrics.RecordCatalog(ctx, c.Version, c.Len())
	slog.Info("Catalog loaded", "version", c.Version, "modules", c.Len())

	if !b.config.Catalog.Watch {
		return store, nil, nil
	}

	watcher := catalog.NewWatcher(path, store, catalog.WithReloadHook(reloadHook(ctx, metrics)))
	return store, watcher, nil
}

// reloadHook records the outcome of every catalog reload
func reloadHook(ctx context.Context, metrics *telemetry.FilterMetrics) func(*catalog.Catalog, error) {
	return func(c *catalog.Catalog, err error) {
		switch {
		case err == nil:
			metrics.RecordReload(ctx, telemetry.ReloadOK)
			metrics.RecordCatalog(ctx, c.Version, c.Len())
		case errors.Is(err, catalog.ErrStaleCatalog):
			metrics.RecordReload(ctx, telemetry.ReloadStale)
		default:
			metrics.RecordReload(ctx, telemetry.ReloadFailed)
		}
	}
}

// buildServiceComponents builds the filter registry, the translation bundle and the service
func buildServiceComponents(
	_ context.Context,
	b *filterAppConfig,
	store *catalog.Store,
	metrics *telemetry.FilterMetrics,
) (service.FilterService, error) {
	slog.Info("Initializing service components")

	registry, err := modfilters.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to declare module filters: %w", err)
	}

	bundle, err := i18n.LoadBundle(b.config.GetTranslationsDir(), b.config.GetDefaultLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	slog.Info("Default language", "language", bundle.Default().Code)

	svcOpts := []inmemory.Option{inmemory.WithMetrics(metrics)}
	if b.tracerProvider != nil {
		svcOpts = append(svcOpts, inmemory.WithTracer(b.tracerProvider.Tracer(inmemory.ServiceTracerName)))
	}

	svc, err := inmemory.New(store, registry, bundle, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildHTTPServer builds the HTTP server with router and middleware
//
//nolint:unparam // we prefer having a similar interface
func buildHTTPServer(
	_ context.Context,
	b *filterAppConfig,
	svc service.FilterService,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	// Use default middlewares if not provided
	middlewares := b.middlewares
	if middlewares == nil {
		middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Spans wrap everything after them so request logs carry the trace id
	if b.tracerProvider != nil {
		middlewares = append([]func(http.Handler) http.Handler{telemetry.TracingMiddleware(b.tracerProvider)}, middlewares...)
		slog.Info("HTTP tracing middleware enabled")
	}

	// Metrics come first to capture all requests
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			middlewares = append([]func(http.Handler) http.Handler{metricsMiddleware}, middlewares...)
			slog.Info("HTTP metrics middleware enabled")
		}
	}

	serverOpts := []api.ServerOption{api.WithMiddlewares(middlewares...)}
	if b.metricsHandler != nil {
		serverOpts = append(serverOpts, api.WithMetricsHandler(b.metricsHandler))
	}
	router := api.NewServer(svc, serverOpts...)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
