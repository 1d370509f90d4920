package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

func handleAccount(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	address, _ := args["address"].(string)
	username, _ := args["username"].(string)
	ref := lens.AccountRef{
		Address:  strings.TrimSpace(address),
		Username: strings.TrimSpace(username),
	}
	if ref.Address == "" && ref.Username == "" {
		return mcp.NewToolResultError("either address or username is required"), nil
	}

	show := tools.ShowFromArgs(args)

	account, err := sc.LensClient().Account(ctx, ref)
	if err != nil {
		return tools.UpstreamError(sc, "account lookup", err), nil
	}
	if account == nil {
		return mcp.NewToolResultError(fmt.Sprintf("account %s not found", ref.Identifier())), nil
	}

	return tools.EntityResult(sc, "account", ref.Identifier(), account, show), nil
}

func handleAccountGraph(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	address, _ := args["address"].(string)
	address = strings.TrimSpace(address)
	if address == "" {
		return mcp.NewToolResultError("address parameter is required"), nil
	}

	show := tools.ShowFromArgs(args)
	limit, page := tools.PageFromArgs(args, sc)

	// Both halves are fetched concurrently. A failed half is reported as
	// unavailable instead of failing the whole call; only a complete
	// failure surfaces as an error.
	var followers, following *lens.Envelope
	var followersErr, followingErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		followers, followersErr = sc.LensClient().Followers(gctx, address, page)
		return nil
	})
	g.Go(func() error {
		following, followingErr = sc.LensClient().Following(gctx, address, page)
		return nil
	})
	_ = g.Wait()

	if followersErr != nil && followingErr != nil {
		return tools.UpstreamError(sc, "account graph", followersErr), nil
	}

	data := map[string]interface{}{
		"address":   address,
		"followers": graphSide(followers, followersErr, limit),
		"following": graphSide(following, followingErr, limit),
	}
	if followersErr != nil || followingErr != nil {
		sc.Metrics().IncrementPartialResults()
		sc.Logger().Warn("account graph served partial result",
			"address", address,
			"followers_failed", followersErr != nil,
			"following_failed", followingErr != nil,
		)
	}

	return tools.CompositeResult(sc, data, graphSummary(followers, followersErr, following, followingErr, limit), show), nil
}

// graphSide shapes one half of the follow graph. Failed halves carry only
// an error annotation so the caller can tell absence from emptiness.
func graphSide(envelope *lens.Envelope, err error, limit int) map[string]interface{} {
	if err != nil {
		return map[string]interface{}{"unavailable": fmt.Sprintf("fetch failed: %v", err)}
	}
	items, hasMore := tools.PageWindow(envelope, limit)
	return output.ListPayload(items, hasMore, envelope.PageInfo.NextCursor)
}

func graphSummary(followers *lens.Envelope, followersErr error, following *lens.Envelope, followingErr error, limit int) string {
	var parts []string
	var hasMore bool
	if followersErr == nil {
		items, more := tools.PageWindow(followers, limit)
		parts = append(parts, fmt.Sprintf("%d followers", len(items)))
		hasMore = hasMore || more
	} else {
		parts = append(parts, "followers unavailable")
	}
	if followingErr == nil {
		items, more := tools.PageWindow(following, limit)
		parts = append(parts, fmt.Sprintf("%d following", len(items)))
		hasMore = hasMore || more
	} else {
		parts = append(parts, "following unavailable")
	}
	summary := "Found " + strings.Join(parts, " and ")
	if hasMore {
		summary += " (more available)"
	}
	return summary + ". Use show=\"detailed\" for full data."
}
