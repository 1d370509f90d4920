package server

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithLensClient sets the Lens API client for the ServerContext.
func WithLensClient(client lens.Client) Option {
	return func(sc *ServerContext) error {
		if client == nil {
			return ErrMissingLensClient
		}
		sc.lensClient = client
		return nil
	}
}

// WithLogger sets the logger for the ServerContext.
func WithLogger(logger Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.ServerName = name
		return nil
	}
}

// WithLensAPIURL sets the Lens API endpoint.
func WithLensAPIURL(url string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		if url != "" {
			sc.config.LensAPIURL = url
		}
		return nil
	}
}

// WithTokenBudget sets the response token budget.
func WithTokenBudget(budget int) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		if sc.config.Output == nil {
			sc.config.Output = output.DefaultConfig()
		}
		sc.config.Output.TokenBudget = budget
		return nil
	}
}

// WithOverflowPolicy forces one overflow policy for every show mode.
// An empty value keeps the per-mode defaults.
func WithOverflowPolicy(policy string) Option {
	return func(sc *ServerContext) error {
		if policy == "" {
			return nil
		}
		if !output.ValidOverflowPolicy(policy) {
			return fmt.Errorf("unknown overflow policy %q (valid: truncate, refuse)", policy)
		}
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		if sc.config.Output == nil {
			sc.config.Output = output.DefaultConfig()
		}
		sc.config.Output.OverflowPolicy = output.OverflowPolicy(policy)
		return nil
	}
}

// WithOutputConfig sets the full response shaping configuration.
func WithOutputConfig(config *output.Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return nil
		}
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.Output = config.Clone()
		return nil
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.LogLevel = level
		return nil
	}
}

// WithInstrumentationProvider sets the OpenTelemetry instrumentation provider.
// This enables production-grade observability including metrics and tracing.
func WithInstrumentationProvider(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.instrumentationProvider = provider
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingLensClient = errors.New("lens client is required")
	ErrMissingLogger     = errors.New("logger is required")
	ErrMissingConfig     = errors.New("configuration is required")
	ErrServerShutdown    = errors.New("server context has been shutdown")
)

// DefaultLogger is a simple logger implementation that wraps the standard library logger.
type DefaultLogger struct {
	logger *log.Logger
	level  string
}

// NewDefaultLogger creates a new default logger with standard error output.
func NewDefaultLogger() Logger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, "[mcp-lens] ", log.LstdFlags|log.Lshortfile),
		level:  "info",
	}
}

// Info logs an informational message.
func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	l.logger.Printf("[INFO] "+msg, args...)
}

// Debug logs a debug message.
func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	if l.level == "debug" {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

// Warn logs a warning message.
func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	l.logger.Printf("[WARN] "+msg, args...)
}

// Error logs an error message.
func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	l.logger.Printf("[ERROR] "+msg, args...)
}

// With returns a new logger with additional context fields.
func (l *DefaultLogger) With(args ...interface{}) Logger {
	// For the default logger, we'll just add the context to the prefix
	if len(args) > 0 {
		prefix := fmt.Sprintf("[mcp-lens] %v ", args)
		return &DefaultLogger{
			logger: log.New(os.Stderr, prefix, log.LstdFlags|log.Lshortfile),
			level:  l.level,
		}
	}
	return l
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps a structured logger for use as the server logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
