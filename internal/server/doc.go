// Package server provides the ServerContext and supporting infrastructure
// for the MCP Lens server.
//
// ServerContext is the dependency container handed to every tool handler.
// It carries the Lens API client, the logger, the server configuration
// (including response shaping settings) and the optional instrumentation
// provider. Contexts are built with functional options:
//
//	sc, err := server.NewServerContext(ctx,
//		server.WithLensClient(client),
//		server.WithLogger(logger),
//		server.WithTokenBudget(50000),
//	)
//	if err != nil {
//		return err
//	}
//	defer sc.Shutdown()
//
// The package also provides the health check endpoints served on HTTP
// transports and the dedicated Prometheus metrics server.
package server
