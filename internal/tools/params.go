// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/lens"
	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// ShowModeValues returns the enum values for MCP tool definitions.
// Use this to avoid duplicating the list across tool definitions.
func ShowModeValues() []string {
	return []string{
		string(output.ShowConcise),
		string(output.ShowDetailed),
		string(output.ShowRaw),
	}
}

// AddShowParam returns the tool option for the shared show parameter.
func AddShowParam() mcp.ToolOption {
	return mcp.WithString("show",
		mcp.Description("Response verbosity: 'concise' (default, summary only), 'detailed' (summary plus optimized JSON), or 'raw' (verbatim upstream JSON)"),
		mcp.Enum(ShowModeValues()...),
	)
}

// AddPaginationParams returns the tool options for the shared limit and
// cursor parameters.
func AddPaginationParams(defaultLimit int) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of items to return (optional, default: %d, max: %d)", defaultLimit, lens.MaxPageItems)),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor from a previous response (optional)"),
		),
	}
}

// ShowFromArgs extracts the show mode from request arguments. Empty and
// unknown values fall back to concise.
func ShowFromArgs(args map[string]interface{}) output.ShowMode {
	show, _ := args["show"].(string)
	return output.ParseShowMode(show)
}

// PageFromArgs extracts limit and cursor from request arguments, clamps the
// limit against the hard cap, and returns both the effective limit and the
// page request for the upstream client.
func PageFromArgs(args map[string]interface{}, sc *server.ServerContext) (int, lens.PageRequest) {
	defaultLimit := output.DefaultLimit
	if cfg := sc.OutputConfig(); cfg != nil && cfg.DefaultLimit > 0 {
		defaultLimit = cfg.DefaultLimit
	}

	limit := 0
	if value, ok := args["limit"].(float64); ok {
		limit = int(value)
	}
	limit = lens.ClampLimit(limit, defaultLimit)

	cursor, _ := args["cursor"].(string)

	return limit, lens.PageRequest{
		Size:   lens.PageSizeForLimit(limit),
		Cursor: cursor,
	}
}

// referenceTypeRules maps free-text hints to reference types. Rules are
// checked in order; the first substring match wins, so "quoted comments"
// resolves to comments.
var referenceTypeRules = []struct {
	hint string
	ref  lens.ReferenceType
}{
	{hint: "comment", ref: lens.ReferenceComments},
	{hint: "repl", ref: lens.ReferenceComments},
	{hint: "quot", ref: lens.ReferenceQuotes},
	{hint: "repost", ref: lens.ReferenceReposts},
	{hint: "mirror", ref: lens.ReferenceReposts},
	{hint: "share", ref: lens.ReferenceReposts},
}

// ReferenceTypeValues returns the canonical reference type names for MCP
// tool definitions.
func ReferenceTypeValues() []string {
	return []string{"comments", "quotes", "reposts"}
}

// ParseReferenceType resolves a free-text reference type hint to the
// upstream enum. Unrecognized values produce an error listing the
// canonical names.
func ParseReferenceType(value string) (lens.ReferenceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return lens.ReferenceComments, nil
	}
	for _, rule := range referenceTypeRules {
		if strings.Contains(normalized, rule.hint) {
			return rule.ref, nil
		}
	}
	return "", fmt.Errorf("unknown referenceType %q (valid: %s)", value, strings.Join(ReferenceTypeValues(), ", "))
}

// TruncateItems caps a fetched page at the requested limit. The upstream
// page tiers are coarser than the limit, so a TEN page may carry more
// items than a limit of 3 asked for.
func TruncateItems(items []map[string]interface{}, limit int) []map[string]interface{} {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

// PageWindow caps a fetched page at the requested limit and reports whether
// more items remain. The flag covers both the upstream pagination state and
// items dropped by the cap, so a truncated page is never presented as
// complete.
func PageWindow(envelope *lens.Envelope, limit int) ([]map[string]interface{}, bool) {
	hasMore := envelope.PageInfo.HasNext || (limit > 0 && len(envelope.Items) > limit)
	return TruncateItems(envelope.Items, limit), hasMore
}
