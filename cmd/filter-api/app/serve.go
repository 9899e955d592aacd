package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	filterapp "github.com/ktane-web/filter-server/internal/app"
	"github.com/ktane-web/filter-server/internal/config"
	"github.com/ktane-web/filter-server/internal/telemetry"
)

const (
	defaultGracefulTimeout   = 30 * time.Second // Kubernetes-friendly shutdown time
	telemetryShutdownTimeout = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	// Flags fall back to FILTER_API_* environment variables
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the filter API server",
		Long: `Start the filter API server.

The server requires a configuration file (--config or FILTER_API_CONFIG) that specifies:
- The module catalog file and whether to reload it on change
- The translation directory and default language
- Telemetry settings

See examples/ directory for a sample configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")

	if err := v.BindPFlag("address", cmd.Flags().Lookup("address")); err != nil {
		slog.Error("Failed to bind address flag", "error", err)
	}
	if err := v.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		slog.Error("Failed to bind config flag", "error", err)
	}

	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := v.GetString("config")
	if configPath == "" {
		return fmt.Errorf("configuration file is required: set --config or %s_CONFIG", config.EnvPrefix)
	}
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Info("Loaded configuration",
		"path", configPath,
		"catalog", cfg.Catalog.Path,
		"watch", cfg.Catalog.Watch,
		"default_language", cfg.GetDefaultLanguage(),
	)

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down telemetry", "error", err)
		}
	}()

	opts := []filterapp.FilterAppOptions{
		filterapp.WithConfig(cfg),
		filterapp.WithMeterProvider(tel.MeterProvider()),
		filterapp.WithTracerProvider(tel.TracerProvider()),
	}
	if handler := tel.MetricsHandler(); handler != nil {
		opts = append(opts, filterapp.WithMetricsHandler(handler))
	}
	// The flag default only applies when the config file names no address
	if v.IsSet("address") {
		opts = append(opts, filterapp.WithAddress(v.GetString("address")))
	}

	filterApp, err := filterapp.NewFilterApp(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create filter API: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- filterApp.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := filterApp.Stop(defaultGracefulTimeout); err != nil {
		return err
	}
	return <-errCh
}
