// Package app provides application lifecycle management for the filter server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ktane-web/filter-server/internal/config"
)

const watcherShutdownTimeout = 5 * time.Second

// FilterApp encapsulates all components needed to run the filter API server
// It provides lifecycle management and graceful shutdown capabilities
type FilterApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Start starts the HTTP server and, when enabled, the catalog watcher.
// It blocks until the server stops. A failing watcher shuts the server down.
func (app *FilterApp) Start() error {
	g, ctx := errgroup.WithContext(app.ctx)

	if watcher := app.components.Watcher; watcher != nil {
		g.Go(func() error {
			if err := watcher.Run(ctx); err != nil {
				return fmt.Errorf("catalog watcher failed: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			if app.ctx.Err() != nil {
				// Stop owns the graceful shutdown
				return nil
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), watcherShutdownTimeout)
			defer cancel()
			return app.httpServer.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer app.cancelFunc()

		slog.Info("Server listening", "address", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Stop gracefully stops the application with the given timeout
// It stops the catalog watcher and then shuts down the HTTP server
func (app *FilterApp) Stop(timeout time.Duration) error {
	slog.Info("Shutting down server...")

	// Cancel the application context
	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	// Graceful HTTP server shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (app *FilterApp) GetConfig() *config.Config {
	return app.config
}

// GetComponents returns the wired application components
func (app *FilterApp) GetComponents() *AppComponents {
	return app.components
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *FilterApp) GetHTTPServer() *http.Server {
	return app.httpServer
}
