package cmd

import (
	"context"
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/server"
)

// runSSEServer runs the server with SSE transport
func runSSEServer(mcpSrv *mcpserver.MCPServer, addr, sseEndpoint, messageEndpoint string, ctx context.Context, debugMode bool) error {
	if debugMode {
		slog.Debug("initializing SSE server",
			"addr", addr,
			"sse_endpoint", sseEndpoint,
			"message_endpoint", messageEndpoint)
	}

	// Create SSE server with custom endpoints
	sseServer := mcpserver.NewSSEServer(mcpSrv,
		mcpserver.WithSSEEndpoint(sseEndpoint),
		mcpserver.WithMessageEndpoint(messageEndpoint),
	)

	slog.Info("SSE server starting",
		"addr", addr,
		"sse_endpoint", sseEndpoint,
		"message_endpoint", messageEndpoint)

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := sseServer.Start(addr); err != nil {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping SSE server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down SSE server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("SSE server stopped with error: %w", err)
		}
		slog.Info("SSE server stopped normally")
	}

	slog.Info("SSE server gracefully stopped")
	return nil
}
