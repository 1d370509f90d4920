// Package cmd implements the command-line interface for mcp-lens.
//
// It provides the following commands:
//
//   - serve: starts the MCP server over stdio, SSE, or streamable HTTP
//     transport, with flags for the Lens API endpoint, response shaping,
//     logging, and metrics
//   - version: prints the application version
//   - selfupdate: updates the binary to the latest released version
//
// Running mcp-lens without a subcommand is equivalent to 'mcp-lens serve'.
package cmd
