// Package content implements post lookup, reaction, and reference tools.
package content

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// RegisterContentTools registers the post tools with the MCP server.
func RegisterContentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// lens_post tool
	postOpts := []mcp.ToolOption{
		mcp.WithDescription("Look up a single Lens post by id"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		tools.AddShowParam(),
	}
	postTool := mcp.NewTool("lens_post", postOpts...)

	s.AddTool(postTool, tools.WrapWithObservability("lens_post", handlePost, sc))

	// lens_post_reactions tool
	reactionsOpts := []mcp.ToolOption{
		mcp.WithDescription("List accounts that reacted to a post"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		tools.AddShowParam(),
	}
	reactionsOpts = append(reactionsOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	reactionsTool := mcp.NewTool("lens_post_reactions", reactionsOpts...)

	s.AddTool(reactionsTool, tools.WrapWithObservability("lens_post_reactions", handlePostReactions, sc))

	// lens_post_references tool
	referencesOpts := []mcp.ToolOption{
		mcp.WithDescription("List posts referencing a post: comments, quotes, or reposts"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		mcp.WithString("referenceType",
			mcp.Description("Reference kind: "+strings.Join(tools.ReferenceTypeValues(), ", ")+" (default: comments; free-text hints like 'replies' or 'mirrors' are accepted)"),
		),
		tools.AddShowParam(),
	}
	referencesOpts = append(referencesOpts, tools.AddPaginationParams(output.DefaultLimit)...)
	referencesTool := mcp.NewTool("lens_post_references", referencesOpts...)

	s.AddTool(referencesTool, tools.WrapWithObservability("lens_post_references", handlePostReferences, sc))

	return nil
}
