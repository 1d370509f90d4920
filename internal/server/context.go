package server

import (
	"context"
	"sync"
	"time"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP servers.
const DefaultShutdownTimeout = 10 * time.Second

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle management.
type ServerContext struct {
	// Core dependencies
	lensClient lens.Client
	logger     Logger
	config     *Config

	// Observability
	instrumentationProvider *instrumentation.Provider
	metrics                 *Metrics

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// Metrics tracks operational counters that matter even when OpenTelemetry
// instrumentation is disabled. They are surfaced on the detailed health
// endpoint.
type Metrics struct {
	// UpstreamErrors counts failed Lens API requests.
	UpstreamErrors int64

	// PartialResults counts graph lookups where one sub-fetch failed and
	// the response was served with the failed half absent.
	PartialResults int64

	// RefusedResponses counts responses refused for exceeding the token
	// budget.
	RefusedResponses int64

	mu sync.RWMutex
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementUpstreamErrors increments the upstream error counter.
func (m *Metrics) IncrementUpstreamErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamErrors++
}

// IncrementPartialResults increments the partial result counter.
func (m *Metrics) IncrementPartialResults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PartialResults++
}

// IncrementRefusedResponses increments the refused response counter.
func (m *Metrics) IncrementRefusedResponses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefusedResponses++
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() (upstreamErrors, partialResults, refusedResponses int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.UpstreamErrors, m.PartialResults, m.RefusedResponses
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	// Create a cancellable context
	serverCtx, cancel := context.WithCancel(ctx)

	// Initialize with defaults
	sc := &ServerContext{
		ctx:     serverCtx,
		cancel:  cancel,
		config:  NewDefaultConfig(),
		logger:  NewDefaultLogger(),
		metrics: NewMetrics(),
	}

	// Apply functional options
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	// Validate required dependencies
	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// LensClient returns the Lens API client interface.
func (sc *ServerContext) LensClient() lens.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.lensClient
}

// Logger returns the logger interface.
func (sc *ServerContext) Logger() Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// OutputConfig returns the response shaping configuration.
func (sc *ServerContext) OutputConfig() *output.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Output
}

// Metrics returns the operational counters.
func (sc *ServerContext) Metrics() *Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// InstrumentationProvider returns the OpenTelemetry provider, or nil when
// instrumentation was not configured.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.instrumentationProvider
}

// Shutdown gracefully shuts down the server context.
// This cancels the context and releases any resources.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("Shutting down server context")

	// Cancel the context
	if sc.cancel != nil {
		sc.cancel()
	}

	// Mark as shutdown
	sc.shutdown = true

	sc.logger.Info("Server context shutdown complete")
	return nil
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.lensClient == nil {
		return ErrMissingLensClient
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	if sc.config.Output == nil {
		sc.config.Output = output.DefaultConfig()
	}
	sc.config.Output = sc.config.Output.Validate()
	return nil
}

// Logger defines the interface for logging operations.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, args ...interface{})

	// Debug logs a debug message.
	Debug(msg string, args ...interface{})

	// Warn logs a warning message.
	Warn(msg string, args ...interface{})

	// Error logs an error message.
	Error(msg string, args ...interface{})

	// With returns a new logger with additional context fields.
	With(args ...interface{}) Logger
}

// Config holds the server configuration.
type Config struct {
	// Server settings
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// Lens API settings
	LensAPIURL string `json:"lensApiUrl"`
	LensAPIKey string `json:"-"`

	// Response shaping settings
	Output *output.Config `json:"output"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName: "mcp-lens",
		Version:    "0.1.0",
		LensAPIURL: lens.DefaultAPIURL,
		Output:     output.DefaultConfig(),
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Output = c.Output.Clone()
	return &clone
}
