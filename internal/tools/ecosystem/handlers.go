package ecosystem

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
)

func handleTimeline(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	address, _ := args["address"].(string)
	address = strings.TrimSpace(address)
	if address == "" {
		return mcp.NewToolResultError("address parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().Timeline(ctx, address, page)
	if err != nil {
		return tools.UpstreamError(sc, "timeline", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "post", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}

func handleApps(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, _ := args["query"].(string)
	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().Apps(ctx, strings.TrimSpace(query), page)
	if err != nil {
		return tools.UpstreamError(sc, "app listing", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "app", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}

func handleGroups(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	member, _ := args["member"].(string)
	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().Groups(ctx, strings.TrimSpace(member), page)
	if err != nil {
		return tools.UpstreamError(sc, "group listing", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "group", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}

func handleUsernames(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	owner, _ := args["owner"].(string)
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return mcp.NewToolResultError("owner parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	envelope, err := sc.LensClient().Usernames(ctx, owner, page)
	if err != nil {
		return tools.UpstreamError(sc, "username listing", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, "username", items, hasMore, envelope.PageInfo.NextCursor, show), nil
}
