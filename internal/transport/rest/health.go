package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/one393143/quizlet/internal/service/progress"
)

// storePinger checks that the set store is reachable.
type storePinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to storePinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type progressStats interface {
	Stats() progress.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store    storePinger
	progress progressStats
	driver   string
	version  string
}

// NewHealthHandler creates a HealthHandler. progress may be nil.
func NewHealthHandler(store storePinger, progress progressStats, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, progress: progress, driver: driver, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string          `json:"status"`
	Driver  string          `json:"driver,omitempty"`
	Latency string          `json:"latency,omitempty"`
	Stats   *progress.Stats `json:"stats,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the store answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full check: store latency, progress writer counters and version.
// Failed progress writes degrade the status without failing the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overall := "ok"

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["store"] = CompStatus{Status: "down", Driver: h.driver}
		overall = "down"
	} else {
		components["store"] = CompStatus{Status: "ok", Driver: h.driver, Latency: latency.String()}
	}

	if h.progress != nil {
		stats := h.progress.Stats()
		comp := CompStatus{Status: "ok", Stats: &stats}
		if stats.Failed > 0 || stats.Dropped > 0 {
			comp.Status = "degraded"
			if overall == "ok" {
				overall = "degraded"
			}
		}
		components["progress"] = comp
	}

	code := http.StatusOK
	if overall == "down" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
