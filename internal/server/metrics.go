package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
)

// MetricsServerConfig configures the dedicated Prometheus metrics server.
// Metrics are served on their own listener so the scrape endpoint is never
// exposed on the MCP transport port.
type MetricsServerConfig struct {
	// Addr is the listen address, e.g. ":9090".
	Addr string

	// Enabled controls whether the server starts at all.
	Enabled bool

	// InstrumentationProvider supplies the Prometheus handler.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves the Prometheus metrics endpoint on a dedicated port.
type MetricsServer struct {
	httpServer *http.Server
}

// NewMetricsServer creates a MetricsServer from the given configuration.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if !config.Enabled {
		return nil, errors.New("metrics server is disabled")
	}
	if config.Addr == "" {
		return nil, errors.New("metrics server address is required")
	}

	provider := config.InstrumentationProvider
	if provider == nil || !provider.Enabled() {
		return nil, errors.New("metrics server requires an enabled instrumentation provider")
	}
	handler := provider.PrometheusHandler()
	if handler == nil {
		return nil, errors.New("instrumentation provider has no prometheus handler")
	}

	endpoint := provider.Config().PrometheusEndpoint
	if endpoint == "" {
		endpoint = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)

	return &MetricsServer{
		httpServer: &http.Server{
			Addr:              config.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Start runs the metrics server. It blocks until the server stops and
// returns http.ErrServerClosed after a graceful shutdown.
func (s *MetricsServer) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
