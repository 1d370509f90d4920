package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	// Common attributes (reused across metrics)
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrTool      = "tool"
	attrOperation = "operation"
	attrShow      = "show"
	attrPageSize  = "page_size"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// MCP tool metrics
	toolCallsTotal   metric.Int64Counter
	toolCallDuration metric.Float64Histogram

	// Upstream Lens API metrics
	upstreamRequestsTotal   metric.Int64Counter
	upstreamRequestDuration metric.Float64Histogram

	// Response shaping metrics
	responseTokens metric.Int64Histogram

	// Configuration
	// detailedLabels controls whether higher-cardinality labels (show mode,
	// page size) are included in tool and upstream metrics
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether higher-cardinality labels
// are included.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	// HTTP Metrics
	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	// MCP Tool Metrics
	m.toolCallsTotal, err = meter.Int64Counter(
		"mcp_tool_calls_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_calls_total counter: %w", err)
	}

	m.toolCallDuration, err = meter.Float64Histogram(
		"mcp_tool_call_duration_seconds",
		metric.WithDescription("MCP tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_call_duration_seconds histogram: %w", err)
	}

	// Upstream Lens API Metrics
	m.upstreamRequestsTotal, err = meter.Int64Counter(
		"lens_api_requests_total",
		metric.WithDescription("Total number of Lens API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lens_api_requests_total counter: %w", err)
	}

	m.upstreamRequestDuration, err = meter.Float64Histogram(
		"lens_api_request_duration_seconds",
		metric.WithDescription("Lens API request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lens_api_request_duration_seconds histogram: %w", err)
	}

	// Response Shaping Metrics
	m.responseTokens, err = meter.Int64Histogram(
		"mcp_response_tokens",
		metric.WithDescription("Approximate token size of formatted tool responses"),
		metric.WithUnit("{token}"),
		metric.WithExplicitBucketBoundaries(100, 500, 1000, 5000, 10000, 25000, 50000, 100000),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_response_tokens histogram: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m == nil || m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordToolCall records an MCP tool invocation with tool name, show mode,
// status, and duration.
//
// CARDINALITY NOTE: When detailedLabels is false (default), only tool and
// status labels are recorded. When detailedLabels is true, the show mode is
// also included. Tool names are a fixed low-cardinality set; never pass
// request arguments as the tool name.
func (m *Metrics) RecordToolCall(ctx context.Context, tool, show, status string, duration time.Duration) {
	if m == nil || m.toolCallsTotal == nil || m.toolCallDuration == nil {
		return // Instrumentation not initialized
	}

	// Always include tool and status (low cardinality)
	attrs := []attribute.KeyValue{
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	}

	// Only add higher-cardinality labels if explicitly enabled
	if m.detailedLabels {
		attrs = append(attrs, attribute.String(attrShow, show))
	}

	m.toolCallsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolCallDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordUpstreamRequest records a Lens API request with operation name,
// page size, status, and duration.
//
// CARDINALITY NOTE: When detailedLabels is false (default), only operation
// and status labels are recorded. When detailedLabels is true, the page
// size tier is also included.
func (m *Metrics) RecordUpstreamRequest(ctx context.Context, operation, pageSize, status string, duration time.Duration) {
	if m == nil || m.upstreamRequestsTotal == nil || m.upstreamRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	if m.detailedLabels {
		attrs = append(attrs, attribute.String(attrPageSize, pageSize))
	}

	m.upstreamRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.upstreamRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordResponseTokens records the approximate token size of a formatted
// tool response.
func (m *Metrics) RecordResponseTokens(ctx context.Context, tool, show string, tokens int) {
	if m == nil || m.responseTokens == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, tool),
	}
	if m.detailedLabels {
		attrs = append(attrs, attribute.String(attrShow, show))
	}

	m.responseTokens.Record(ctx, int64(tokens), metric.WithAttributes(attrs...))
}
