package tools

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-lens/internal/instrumentation"
	"github.com/giantswarm/mcp-lens/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// identifierArgKeys are the request arguments that can carry a Lens
// identifier, in preference order.
var identifierArgKeys = []string{"address", "username", "id", "owner"}

// identifierFromArgs picks the identifier argument a span should classify.
// The raw value never ends up on the span; only its classified type does.
func identifierFromArgs(args map[string]interface{}) string {
	for _, key := range identifierArgKeys {
		if value, _ := args[key].(string); strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// WrapWithObservability wraps a tool handler with tracing, metrics, and
// structured logging. The wrapper captures:
//   - A per-invocation span carrying the tool name and show mode
//   - Tool call counters and duration histograms
//   - Estimated response token size
//   - Success/error status from both the Go error and the MCP result
//
// If no instrumentation provider is configured, only logging is performed.
func WrapWithObservability(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		show := ShowFromArgs(args)

		builder := instrumentation.NewSpanAttributeBuilder().
			WithTool(toolName).
			WithShow(string(show))
		if identifier := identifierFromArgs(args); identifier != "" {
			builder.WithIdentifier(identifier)
		}
		ctx, span := instrumentation.StartToolSpan(ctx, toolName, builder.Build()...)
		defer span.End()

		start := time.Now()
		result, err := handler(ctx, request, sc)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		switch {
		case err != nil:
			status = instrumentation.StatusError
			instrumentation.SetSpanError(span, err)
		case result != nil && result.IsError:
			// MCP tool errors are returned in the result, not as Go errors.
			status = instrumentation.StatusError
		default:
			instrumentation.SetSpanSuccess(span)
		}

		tokens := ResponseTokens(result)
		if provider := sc.InstrumentationProvider(); provider != nil {
			metrics := provider.Metrics()
			metrics.RecordToolCall(ctx, toolName, string(show), status, duration)
			if tokens > 0 {
				metrics.RecordResponseTokens(ctx, toolName, string(show), tokens)
			}
		}

		logger := sc.Logger().With(
			"tool", toolName,
			"show", string(show),
			"duration_ms", duration.Milliseconds(),
			"status", status,
		)
		if err != nil {
			logger.Error("tool call failed", "error", err)
		} else {
			logger.Info("tool call completed", "response_tokens", tokens)
		}

		return result, err
	}
}
