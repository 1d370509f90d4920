package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
)

func handlePost(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, _ := args["id"].(string)
	id = strings.TrimSpace(id)
	if id == "" {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)

	post, err := sc.LensClient().Post(ctx, id)
	if err != nil {
		return tools.UpstreamError(sc, "post lookup", err), nil
	}
	if post == nil {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", id)), nil
	}

	return tools.EntityResult(sc, "post", id, post, show), nil
}

func handlePostReactions(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, _ := args["id"].(string)
	id = strings.TrimSpace(id)
	if id == "" {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().Reactions(ctx, id, page)
	if err != nil {
		return tools.UpstreamError(sc, "reaction listing", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "reaction", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}

func handlePostReferences(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, _ := args["id"].(string)
	id = strings.TrimSpace(id)
	if id == "" {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	refArg, _ := args["referenceType"].(string)
	refType, err := tools.ParseReferenceType(refArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().References(ctx, id, refType, page)
	if err != nil {
		return tools.UpstreamError(sc, "reference listing", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "post", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}
