package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
)

// searchKinds maps the search type argument to the entity kind used in
// summaries. Keys double as the valid values for the type parameter.
var searchKinds = map[string]string{
	"accounts": "account",
	"posts":    "post",
	"groups":   "group",
	"apps":     "app",
}

func searchTypes() []string {
	return []string{"accounts", "posts", "groups", "apps"}
}

func handleSearch(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	searchType, _ := args["type"].(string)
	kind, ok := searchKinds[strings.ToLower(strings.TrimSpace(searchType))]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid type %q (valid: %s)", searchType, strings.Join(searchTypes(), ", "))), nil
	}

	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	var envelope *lens.Envelope
	var err error
	switch kind {
	case "account":
		envelope, err = sc.LensClient().SearchAccounts(ctx, query, page)
	case "post":
		envelope, err = sc.LensClient().SearchPosts(ctx, query, page)
	case "group":
		envelope, err = sc.LensClient().SearchGroups(ctx, query, page)
	case "app":
		envelope, err = sc.LensClient().SearchApps(ctx, query, page)
	}
	if err != nil {
		return tools.UpstreamError(sc, "search", err), nil
	}

	items, hasMore := tools.PageWindow(envelope, limit)
	return tools.ListResult(sc, kind, items, hasMore, envelope.PageInfo.NextCursor, show), nil
}
