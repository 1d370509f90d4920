package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the mcp-lens package.
const TracerName = "github.com/giantswarm/mcp-lens"

// Span attribute keys for tool and upstream operations.
const (
	// SpanAttrTool is the MCP tool name.
	SpanAttrTool = "mcp.tool"

	// SpanAttrShow is the requested show mode (concise, detailed, raw).
	SpanAttrShow = "mcp.show"

	// SpanAttrOperation is the upstream Lens operation name.
	SpanAttrOperation = "lens.operation"

	// SpanAttrEntityKind is the entity kind handled (account, post, ...).
	SpanAttrEntityKind = "lens.entity_kind"

	// SpanAttrIdentifierType is the classified identifier type
	// (see ClassifyIdentifier; lower cardinality than the identifier).
	SpanAttrIdentifierType = "lens.identifier_type"

	// SpanAttrPageSize is the page size tier requested upstream.
	SpanAttrPageSize = "lens.page_size"

	// SpanAttrHasMore indicates whether further pages were available.
	SpanAttrHasMore = "lens.has_more"

	// SpanAttrResponseTokens is the approximate response token count.
	SpanAttrResponseTokens = "mcp.response_tokens"
)

// SpanAttributeBuilder helps construct OpenTelemetry span attributes
// with consistent naming and cardinality controls.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates a new SpanAttributeBuilder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 8),
	}
}

// WithTool adds the MCP tool name attribute.
func (b *SpanAttributeBuilder) WithTool(tool string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrTool, tool))
	return b
}

// WithShow adds the show mode attribute.
func (b *SpanAttributeBuilder) WithShow(show string) *SpanAttributeBuilder {
	if show != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrShow, show))
	}
	return b
}

// WithEntityKind adds the entity kind attribute.
func (b *SpanAttributeBuilder) WithEntityKind(kind string) *SpanAttributeBuilder {
	if kind != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrEntityKind, kind))
	}
	return b
}

// WithIdentifier adds the classified identifier type attribute.
// The identifier itself is never recorded.
func (b *SpanAttributeBuilder) WithIdentifier(identifier string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrIdentifierType, ClassifyIdentifier(identifier)))
	return b
}

// WithPageSize adds the page size tier attribute.
func (b *SpanAttributeBuilder) WithPageSize(pageSize string) *SpanAttributeBuilder {
	if pageSize != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrPageSize, pageSize))
	}
	return b
}

// WithHasMore adds the pagination indicator attribute.
func (b *SpanAttributeBuilder) WithHasMore(hasMore bool) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.Bool(SpanAttrHasMore, hasMore))
	return b
}

// WithResponseTokens adds the response token count attribute.
func (b *SpanAttributeBuilder) WithResponseTokens(tokens int) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.Int(SpanAttrResponseTokens, tokens))
	return b
}

// Build returns the constructed attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// StartSpan starts a new span with the given name and attributes.
// Returns the context with the span and the span itself.
// The caller is responsible for ending the span with defer span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartToolSpan starts a span for an MCP tool invocation.
// Automatically adds the tool name and sets the server span kind.
func StartToolSpan(ctx context.Context, toolName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+1)
	allAttrs = append(allAttrs, attribute.String(SpanAttrTool, toolName))
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "tool."+toolName,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}

// StartUpstreamSpan starts a span for a Lens API request.
// Includes the operation attribute and sets the client span kind.
func StartUpstreamSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+1)
	allAttrs = append(allAttrs, attribute.String(SpanAttrOperation, operation))
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "lens."+operation,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// SetSpanError records an error on the span and sets the status to error.
func SetSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace ID from the current span in context.
// Returns empty string if no valid span is present.
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}

// GetSpanID returns the span ID from the current span in context.
// Returns empty string if no valid span is present.
func GetSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().SpanID().String()
	}
	return ""
}

// SpanContextString returns a human-readable trace context string.
// Format: "trace_id=X span_id=Y" or empty string if no valid context.
func SpanContextString(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return "trace_id=" + span.SpanContext().TraceID().String() +
		" span_id=" + span.SpanContext().SpanID().String()
}
