package instrumentation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// Provider owns the OpenTelemetry meter and tracer providers and the
// metrics recorded through them. A disabled provider is fully functional:
// every method is safe to call and records nothing.
type Provider struct {
	config Config

	registry       *prometheus.Registry
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	metrics        *Metrics
}

// NewProvider initializes instrumentation from the given configuration.
// When config.Enabled is false it returns a no-op provider without touching
// the global OpenTelemetry state.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	p := &Provider{config: config}

	if !config.Enabled {
		return p, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.ServiceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	if err := p.setupMetrics(res); err != nil {
		return nil, err
	}
	if err := p.setupTracing(ctx, res); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) setupMetrics(res *resource.Resource) error {
	p.registry = prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(p.registry))
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)

	metrics, err := NewMetrics(p.meterProvider.Meter(TracerName), p.config.DetailedLabels)
	if err != nil {
		return err
	}
	p.metrics = metrics
	return nil
}

func (p *Provider) setupTracing(ctx context.Context, res *resource.Resource) error {
	var exporter sdktrace.SpanExporter
	var err error

	switch p.config.TracingExporter {
	case "otlp":
		opts := []otlptracehttp.Option{}
		if p.config.OTLPEndpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(p.config.OTLPEndpoint))
		}
		if p.config.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, opts...)
	case "stdout":
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unknown tracing exporter %q", p.config.TracingExporter)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s trace exporter: %w", p.config.TracingExporter, err)
	}

	p.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(p.config.TraceSamplingRate)),
	)
	otel.SetTracerProvider(p.tracerProvider)
	return nil
}

// Enabled reports whether instrumentation is active.
func (p *Provider) Enabled() bool {
	return p != nil && p.config.Enabled
}

// Metrics returns the metrics recorder, or nil when disabled. The recorder
// itself tolerates nil receivers on its methods, so callers may pass it
// through without checking.
func (p *Provider) Metrics() *Metrics {
	if p == nil {
		return nil
	}
	return p.metrics
}

// Config returns the provider's configuration.
func (p *Provider) Config() Config {
	return p.config
}

// PrometheusHandler returns the HTTP handler serving the metrics endpoint.
// It returns nil when instrumentation is disabled.
func (p *Provider) PrometheusHandler() http.Handler {
	if p == nil || p.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter and tracer providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
