package cmd

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer serves MCP over stdin/stdout and blocks until the stream
// closes. Protocol frames own stdout in this mode, so nothing is printed
// on startup or shutdown.
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	if err := mcpserver.ServeStdio(mcpSrv); err != nil {
		return fmt.Errorf("stdio transport stopped: %w", err)
	}
	return nil
}
