package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthChecker provides liveness and readiness endpoints for deployment probes.
type HealthChecker struct {
	// ready indicates whether the server is ready to receive traffic
	ready atomic.Bool
	// serverContext provides access to dependencies for health checks
	serverContext *ServerContext
	// startTime tracks when the server started
	startTime time.Time
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	h := &HealthChecker{
		serverContext: sc,
		startTime:     time.Now(),
	}
	// Server starts as ready by default
	h.ready.Store(true)
	return h
}

// SetReady sets the readiness state of the server.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady returns whether the server is ready to receive traffic.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// HealthResponse represents the JSON response for health endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Version string            `json:"version,omitempty"`
}

// DetailedHealthResponse provides comprehensive health information.
type DetailedHealthResponse struct {
	Status          string                      `json:"status"`
	Version         string                      `json:"version,omitempty"`
	Uptime          string                      `json:"uptime"`
	Upstream        *UpstreamHealthStatus       `json:"upstream,omitempty"`
	Counters        *CounterHealthStatus        `json:"counters,omitempty"`
	Instrumentation *InstrumentationHealthCheck `json:"instrumentation,omitempty"`
}

// UpstreamHealthStatus describes the configured Lens API endpoint.
type UpstreamHealthStatus struct {
	APIURL        string `json:"api_url"`
	APIKeyPresent bool   `json:"api_key_present"`
}

// CounterHealthStatus surfaces the operational counters.
type CounterHealthStatus struct {
	UpstreamErrors   int64 `json:"upstream_errors"`
	PartialResults   int64 `json:"partial_results"`
	RefusedResponses int64 `json:"refused_responses"`
}

// InstrumentationHealthCheck provides health information about instrumentation.
type InstrumentationHealthCheck struct {
	Enabled         bool   `json:"enabled"`
	TracingExporter string `json:"tracing_exporter,omitempty"`
}

// LivenessHandler returns an HTTP handler for the /healthz endpoint.
// Liveness probes indicate whether the process should be restarted.
// This should be a simple check that the server process is running.
func (h *HealthChecker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simple liveness check - if we can respond, we're alive
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		response := HealthResponse{
			Status: "ok",
		}

		// Add version if available from server context
		if h.serverContext != nil && h.serverContext.Config() != nil {
			response.Version = h.serverContext.Config().Version
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// ReadinessHandler returns an HTTP handler for the /readyz endpoint.
// Readiness probes indicate whether the server is ready to receive traffic.
func (h *HealthChecker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		checks := make(map[string]string)
		allOk := true

		// Check if server is marked as ready
		if !h.ready.Load() {
			checks["ready"] = "not ready"
			allOk = false
		} else {
			checks["ready"] = "ok"
		}

		// Check if server context is not shutdown
		if h.serverContext != nil && h.serverContext.IsShutdown() {
			checks["shutdown"] = "shutting down"
			allOk = false
		} else {
			checks["shutdown"] = "ok"
		}

		// Check instrumentation provider if configured
		if h.serverContext != nil {
			provider := h.serverContext.InstrumentationProvider()
			if provider != nil {
				if provider.Enabled() {
					checks["instrumentation"] = "ok"
				} else {
					checks["instrumentation"] = "disabled"
				}
			}
		}

		response := HealthResponse{
			Checks: checks,
		}

		if allOk {
			response.Status = "ok"
			w.WriteHeader(http.StatusOK)
		} else {
			response.Status = "not ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// RegisterHealthEndpoints registers health check endpoints on the given mux.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.Handle("/healthz", h.LivenessHandler())
	mux.Handle("/readyz", h.ReadinessHandler())
	mux.Handle("/healthz/detailed", h.DetailedHealthHandler())
}

// DetailedHealthHandler returns an HTTP handler for the /healthz/detailed
// endpoint with uptime, upstream configuration and operational counters.
func (h *HealthChecker) DetailedHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		response := DetailedHealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startTime).Truncate(time.Second).String(),
		}

		if h.serverContext != nil {
			if config := h.serverContext.Config(); config != nil {
				response.Version = config.Version
				response.Upstream = &UpstreamHealthStatus{
					APIURL:        config.LensAPIURL,
					APIKeyPresent: config.LensAPIKey != "",
				}
			}
			if metrics := h.serverContext.Metrics(); metrics != nil {
				upstreamErrors, partialResults, refused := metrics.Snapshot()
				response.Counters = &CounterHealthStatus{
					UpstreamErrors:   upstreamErrors,
					PartialResults:   partialResults,
					RefusedResponses: refused,
				}
			}
			response.Instrumentation = h.getInstrumentationStatus()
		}

		// Determine overall status
		if !h.ready.Load() {
			response.Status = "not ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else if h.serverContext != nil && h.serverContext.IsShutdown() {
			response.Status = "shutting down"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(response)
	})
}

// getInstrumentationStatus returns instrumentation health status.
func (h *HealthChecker) getInstrumentationStatus() *InstrumentationHealthCheck {
	provider := h.serverContext.InstrumentationProvider()
	if provider == nil {
		return &InstrumentationHealthCheck{
			Enabled: false,
		}
	}

	return &InstrumentationHealthCheck{
		Enabled:         provider.Enabled(),
		TracingExporter: provider.Config().TracingExporter,
	}
}
