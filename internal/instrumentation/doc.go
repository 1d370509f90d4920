// Package instrumentation provides OpenTelemetry metrics and tracing for
// the MCP Lens server.
//
// Instrumentation is disabled by default and adds zero overhead until it is
// enabled via INSTRUMENTATION_ENABLED=true. When enabled, the package
// records tool invocations, upstream Lens API requests, HTTP transport
// traffic and response sizes, and optionally exports traces.
//
// # Metrics
//
// Metrics are exported in Prometheus format on a dedicated endpoint:
//
//   - mcp_tool_calls_total / mcp_tool_call_duration_seconds
//   - lens_api_requests_total / lens_api_request_duration_seconds
//   - http_requests_total / http_request_duration_seconds
//   - mcp_response_tokens
//
// Label cardinality is controlled: tool names, operations and statuses are
// always recorded, while higher-cardinality labels (show mode, page size)
// are opt-in via detailed labels. Raw identifiers such as account
// addresses or post ids are never used as label values; use
// ClassifyIdentifier to fold them into a handful of identifier types.
//
// # Tracing
//
// Tracing is opt-in via TRACING_EXPORTER (otlp, stdout). Spans are created
// with the helpers in this package:
//
//	ctx, span := instrumentation.StartToolSpan(ctx, "lens_search")
//	defer span.End()
//
// # Configuration
//
// All configuration comes from environment variables, see DefaultConfig.
package instrumentation
