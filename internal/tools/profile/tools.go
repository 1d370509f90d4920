// Package profile implements account lookup and follow graph tools.
package profile

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// RegisterProfileTools registers the account tools with the MCP server.
func RegisterProfileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// lens_account tool
	accountOpts := []mcp.ToolOption{
		mcp.WithDescription("Look up a Lens account by EVM address or username"),
		mcp.WithString("address",
			mcp.Description("Account EVM address (one of address or username is required)"),
		),
		mcp.WithString("username",
			mcp.Description("Account username, e.g. 'lens/alice' (one of address or username is required)"),
		),
		tools.AddShowParam(),
	}
	accountTool := mcp.NewTool("lens_account", accountOpts...)

	s.AddTool(accountTool, tools.WrapWithObservability("lens_account", handleAccount, sc))

	// lens_account_graph tool
	graphOpts := []mcp.ToolOption{
		mcp.WithDescription("Fetch an account's followers and following lists in one call"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Account EVM address"),
		),
		tools.AddShowParam(),
	}
	graphOpts = append(graphOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	graphTool := mcp.NewTool("lens_account_graph", graphOpts...)

	s.AddTool(graphTool, tools.WrapWithObservability("lens_account_graph", handleAccountGraph, sc))

	return nil
}
