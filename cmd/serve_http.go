package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/server/middleware"
)

// runStreamableHTTPServer runs the server with Streamable HTTP transport
func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, addr, endpoint string, ctx context.Context, provider *instrumentation.Provider, sc *server.ServerContext, metricsConfig MetricsServeConfig) error {
	mux := http.NewServeMux()

	// Create Streamable HTTP handler
	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(endpoint),
	)

	// Add MCP endpoint
	mux.Handle(endpoint, mcpHandler)

	// Add health check endpoints
	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	slog.Info("streamable HTTP server starting",
		"addr", addr,
		"endpoint", endpoint,
		"health_endpoints", []string{"/healthz", "/readyz"})

	// Apply middleware: request metrics and security headers
	var handler http.Handler = mux
	handler = middleware.SecurityHeaders(middleware.SecurityHeadersConfig{})(handler)
	handler = middleware.HTTPMetrics(provider)(handler)

	// Metrics are served on a separate listener so they stay off the
	// public MCP port. See startMetricsServer.
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider != nil && provider.Enabled() {
		var err error
		metricsServer, err = startMetricsServer(metricsConfig, provider)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	// Create HTTP server with security timeouts
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		// Shutdown metrics server first
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error shutting down metrics server", "error", err)
			}
		}

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		slog.Info("HTTP server stopped normally")
	}

	slog.Info("HTTP server gracefully stopped")
	return nil
}

// startMetricsServer starts the dedicated metrics server on a separate port.
// This isolates Prometheus metrics from the main application traffic.
func startMetricsServer(config MetricsServeConfig, provider *instrumentation.Provider) (*server.MetricsServer, error) {
	metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
		Addr:                    config.Addr,
		Enabled:                 config.Enabled,
		InstrumentationProvider: provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics server: %w", err)
	}

	// Start metrics server in background
	go func() {
		if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()

	slog.Info("metrics server started", "addr", config.Addr)
	return metricsServer, nil
}
