package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/logging"
	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools/content"
	"github.com/giantswarm/mcp-lens/internal/tools/ecosystem"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
	"github.com/giantswarm/mcp-lens/internal/tools/profile"
	"github.com/giantswarm/mcp-lens/internal/tools/resources"
	"github.com/giantswarm/mcp-lens/internal/tools/search"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Lens API settings
	LensAPIURL string
	LensAPIKey string

	// Response shaping settings
	TokenBudget    int
	OverflowPolicy string

	// Logging settings
	LogLevel  string
	LogFormat string
	DebugMode bool

	// Metrics settings
	Metrics MetricsServeConfig
}

// MetricsServeConfig configures the dedicated metrics server.
type MetricsServeConfig struct {
	Enabled bool
	Addr    string
}

// parseIntEnv parses an integer from an environment variable value.
// Returns the parsed int and true if successful, or zero and false if parsing fails.
// Logs a warning if the value is present but invalid.
func parseIntEnv(value, envName string) (int, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer for %s=%q: %v", envName, value, err)
		return 0, false
	}
	return n, true
}

// loadEnvIfEmpty fills target from the environment when no flag value was given.
func loadEnvIfEmpty(target *string, envName string) {
	if *target == "" {
		*target = os.Getenv(envName)
	}
}

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		lensAPIURL string
		lensAPIKey string

		tokenBudget    int
		overflowPolicy string

		logLevel  string
		logFormat string
		debugMode bool

		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Lens server",
		Long: `Start the MCP Lens server to provide AI agents with Lens Protocol
social-graph tools over stdio, SSE, or streamable HTTP transport.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ServeConfig{
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				LensAPIURL:      lensAPIURL,
				LensAPIKey:      lensAPIKey,
				TokenBudget:     tokenBudget,
				OverflowPolicy:  overflowPolicy,
				LogLevel:        logLevel,
				LogFormat:       logFormat,
				DebugMode:       debugMode,
				Metrics: MetricsServeConfig{
					Enabled: metricsEnabled,
					Addr:    metricsAddr,
				},
			}

			// Environment variables fill in anything the flags left empty
			loadEnvIfEmpty(&config.LensAPIURL, "LENS_API_URL")
			loadEnvIfEmpty(&config.LensAPIKey, "LENS_API_KEY")
			if config.TokenBudget == 0 {
				if n, ok := parseIntEnv(os.Getenv("MCP_TOKEN_BUDGET"), "MCP_TOKEN_BUDGET"); ok {
					config.TokenBudget = n
				}
			}
			if config.OverflowPolicy == "" {
				config.OverflowPolicy = os.Getenv("MCP_OVERFLOW_POLICY")
			}

			return runServe(config)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", transportStdio,
		fmt.Sprintf("Transport type: %s, %s, or %s", transportStdio, transportSSE, transportStreamableHTTP))
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "Listen address for SSE and HTTP transports")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path for SSE transport")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "Endpoint path for streamable HTTP transport")

	cmd.Flags().StringVar(&lensAPIURL, "lens-api-url", "", "Lens API URL (default: "+lens.DefaultAPIURL+", env: LENS_API_URL)")
	cmd.Flags().StringVar(&lensAPIKey, "lens-api-key", "", "Lens API key (optional, env: LENS_API_KEY)")

	cmd.Flags().IntVar(&tokenBudget, "token-budget", 0,
		fmt.Sprintf("Token budget for tool responses (default: %d, env: MCP_TOKEN_BUDGET)", output.DefaultTokenBudget))
	cmd.Flags().StringVar(&overflowPolicy, "overflow-policy", "",
		"Forced overflow policy for oversized responses: truncate or refuse (default: per show mode, env: MCP_OVERFLOW_POLICY)")

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format: json or text")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "Serve Prometheus metrics on a dedicated listener")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Listen address for the metrics server")

	return cmd
}

// validateServeConfig checks the parts of the configuration that would
// otherwise only fail deep inside server startup.
func validateServeConfig(config ServeConfig) error {
	switch config.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		return fmt.Errorf("invalid transport %q (valid: %s, %s, %s)",
			config.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}
	if config.OverflowPolicy != "" && !output.ValidOverflowPolicy(config.OverflowPolicy) {
		return fmt.Errorf("invalid overflow policy %q (valid: truncate, refuse)", config.OverflowPolicy)
	}
	if config.TokenBudget < 0 {
		return fmt.Errorf("token budget must be positive, got %d", config.TokenBudget)
	}
	return nil
}

// runServe contains the main server startup logic.
func runServe(config ServeConfig) error {
	if err := validateServeConfig(config); err != nil {
		return err
	}

	if config.DebugMode {
		config.LogLevel = "debug"
	}
	logger := logging.Setup(config.LogLevel, config.LogFormat)

	// Set up signal handling for graceful shutdown
	shutdownCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received interrupt signal, shutting down")
		cancel()
	}()

	// Initialize OpenTelemetry instrumentation
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	defer func() {
		if err := instrumentationProvider.Shutdown(context.Background()); err != nil {
			logger.Error("error during instrumentation shutdown", "error", err)
		}
	}()

	// Create the Lens API client
	apiURL := config.LensAPIURL
	if apiURL == "" {
		apiURL = lens.DefaultAPIURL
	}
	lensClient, err := lens.NewClient(&lens.ClientConfig{
		APIURL:  apiURL,
		APIKey:  config.LensAPIKey,
		Logger:  logger,
		Metrics: instrumentationProvider.Metrics(),
	})
	if err != nil {
		return fmt.Errorf("failed to create Lens client: %w", err)
	}

	// Assemble the server context
	serverOpts := []server.Option{
		server.WithLensClient(lensClient),
		server.WithLogger(server.NewSlogLogger(logger)),
		server.WithLensAPIURL(apiURL),
		server.WithLogLevel(config.LogLevel),
		server.WithInstrumentationProvider(instrumentationProvider),
	}
	if config.TokenBudget > 0 {
		serverOpts = append(serverOpts, server.WithTokenBudget(config.TokenBudget))
	}
	if config.OverflowPolicy != "" {
		serverOpts = append(serverOpts, server.WithOverflowPolicy(config.OverflowPolicy))
	}

	serverContext, err := server.NewServerContext(shutdownCtx, serverOpts...)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("error during server context shutdown", "error", err)
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-lens", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
		mcpserver.WithRecovery(),
	)

	// Register all tool categories
	if err := search.RegisterSearchTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register search tools: %w", err)
	}

	if err := profile.RegisterProfileTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register profile tools: %w", err)
	}

	if err := content.RegisterContentTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register content tools: %w", err)
	}

	if err := ecosystem.RegisterEcosystemTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register ecosystem tools: %w", err)
	}

	if err := resources.RegisterResources(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register resources: %w", err)
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup messages for stdio mode as it interferes with MCP communication
		return runStdioServer(mcpSrv)
	case transportSSE:
		logger.Info("starting server", "transport", config.Transport, "addr", config.HTTPAddr)
		return runSSEServer(mcpSrv, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint, shutdownCtx, config.DebugMode)
	case transportStreamableHTTP:
		logger.Info("starting server", "transport", config.Transport, "addr", config.HTTPAddr)
		return runStreamableHTTPServer(mcpSrv, config.HTTPAddr, config.HTTPEndpoint, shutdownCtx, instrumentationProvider, serverContext, config.Metrics)
	default:
		return fmt.Errorf("unsupported transport: %s", config.Transport)
	}
}
