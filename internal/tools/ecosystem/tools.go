// Package ecosystem implements timeline, app, group, and username tools.
package ecosystem

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// RegisterEcosystemTools registers the ecosystem tools with the MCP server.
func RegisterEcosystemTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// lens_timeline tool
	timelineOpts := []mcp.ToolOption{
		mcp.WithDescription("Fetch an account's timeline of posts"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Account EVM address"),
		),
		tools.AddShowParam(),
	}
	timelineOpts = append(timelineOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	timelineTool := mcp.NewTool("lens_timeline", timelineOpts...)

	s.AddTool(timelineTool, tools.WrapWithObservability("lens_timeline", handleTimeline, sc))

	// lens_apps tool
	appsOpts := []mcp.ToolOption{
		mcp.WithDescription("List apps on the Lens network, optionally filtered by a query"),
		mcp.WithString("query",
			mcp.Description("Filter apps by name (optional)"),
		),
		tools.AddShowParam(),
	}
	appsOpts = append(appsOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	appsTool := mcp.NewTool("lens_apps", appsOpts...)

	s.AddTool(appsTool, tools.WrapWithObservability("lens_apps", handleApps, sc))

	// lens_groups tool
	groupsOpts := []mcp.ToolOption{
		mcp.WithDescription("List groups, optionally filtered to those a given account is a member of"),
		mcp.WithString("member",
			mcp.Description("Account EVM address to filter by membership (optional)"),
		),
		tools.AddShowParam(),
	}
	groupsOpts = append(groupsOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	groupsTool := mcp.NewTool("lens_groups", groupsOpts...)

	s.AddTool(groupsTool, tools.WrapWithObservability("lens_groups", handleGroups, sc))

	// lens_usernames tool
	usernamesOpts := []mcp.ToolOption{
		mcp.WithDescription("List usernames owned by an account"),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Owner EVM address"),
		),
		tools.AddShowParam(),
	}
	usernamesOpts = append(usernamesOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	usernamesTool := mcp.NewTool("lens_usernames", usernamesOpts...)

	s.AddTool(usernamesTool, tools.WrapWithObservability("lens_usernames", handleUsernames, sc))

	return nil
}
