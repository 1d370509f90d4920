// Package search implements the cross-entity search tool.
package search

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// RegisterSearchTools registers the search tools with the MCP server.
func RegisterSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchOpts := []mcp.ToolOption{
		mcp.WithDescription("Search the Lens network for accounts, posts, groups, or apps by free-text query"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Entity type to search: "+strings.Join(searchTypes(), ", ")),
			mcp.Enum(searchTypes()...),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query"),
		),
		tools.AddShowParam(),
	}
	searchOpts = append(searchOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	searchTool := mcp.NewTool("lens_search", searchOpts...)

	s.AddTool(searchTool, tools.WrapWithObservability("lens_search", handleSearch, sc))

	return nil
}
