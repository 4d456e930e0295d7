package rest

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds each dependency check.
const probeTimeout = 3 * time.Second

// Check is a named dependency probe used by /health and /ready.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// PingCheck adapts anything with a Ping method, such as a pgx pool.
func PingCheck(name string, p interface{ Ping(ctx context.Context) error }) Check {
	return Check{Name: name, Probe: p.Ping}
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	checks  []Check
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler running checks in order.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{version: version, checks: checks, now: time.Now}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 503 as soon as any dependency check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	for _, c := range h.checks {
		if _, err := h.probe(r.Context(), c); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health runs every check, reporting per-component status and latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, len(h.checks)),
	}
	for _, c := range h.checks {
		latency, err := h.probe(r.Context(), c)
		if err != nil {
			resp.Components[c.Name] = CompStatus{Status: "down"}
			resp.Status = "down"
			continue
		}
		resp.Components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	resp.Timestamp = h.now()

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) probe(ctx context.Context, c Check) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	err := c.Probe(ctx)
	return time.Since(start), err
}
