package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/server"
	"github.com/giantswarm/mcp-lens/internal/tools/output"
)

// sampleLines caps the number of sample entries in concise list summaries.
const sampleLines = 5

// ListResult formats a paginated result set through the output pipeline.
// The kind names the entity for summary phrasing; items are the raw
// upstream documents.
func ListResult(sc *server.ServerContext, kind string, items []map[string]interface{}, hasMore bool, nextCursor string, show output.ShowMode) *mcp.CallToolResult {
	formatter := output.NewFormatter(sc.OutputConfig())

	summary := output.Summarize(kind, len(items), hasMore)
	if show == output.ShowConcise {
		if sample := output.SampleSummary(output.ReduceAll(items), sampleLines); sample != "" {
			summary = summary + "\n" + sample
		}
	}

	payload := formatter.Format(output.ListPayload(items, hasMore, nextCursor), show, summary)
	return toResult(sc, payload)
}

// EntityResult formats a single-entity lookup through the output pipeline.
func EntityResult(sc *server.ServerContext, kind, identifier string, entity map[string]interface{}, show output.ShowMode) *mcp.CallToolResult {
	formatter := output.NewFormatter(sc.OutputConfig())
	payload := formatter.Format(entity, show, output.SummarizeSingle(kind, identifier))
	return toResult(sc, payload)
}

// CompositeResult formats a handler-assembled payload with a caller-built
// summary. Used by operations whose response is not a plain entity or list,
// such as the follow graph.
func CompositeResult(sc *server.ServerContext, data map[string]interface{}, summary string, show output.ShowMode) *mcp.CallToolResult {
	formatter := output.NewFormatter(sc.OutputConfig())
	payload := formatter.Format(data, show, summary)
	return toResult(sc, payload)
}

// ResponseTokens estimates the token size of a formatted result for
// metrics. Returns 0 for empty results.
func ResponseTokens(result *mcp.CallToolResult) int {
	if result == nil || len(result.Content) == 0 {
		return 0
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return 0
	}
	return output.EstimateTokens(text.Text)
}

// UpstreamError records an upstream failure and returns the MCP error
// result for it. The operation names the failed action in user terms,
// e.g. "search" or "account lookup".
func UpstreamError(sc *server.ServerContext, operation string, err error) *mcp.CallToolResult {
	sc.Metrics().IncrementUpstreamErrors()
	sc.Logger().Error("upstream request failed", "operation", operation, "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", operation, err))
}

func toResult(sc *server.ServerContext, payload output.Payload) *mcp.CallToolResult {
	if payload.IsError {
		sc.Metrics().IncrementRefusedResponses()
		return mcp.NewToolResultError(payload.Text)
	}
	return mcp.NewToolResultText(payload.Text)
}
