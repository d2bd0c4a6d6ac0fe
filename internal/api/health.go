package api

import (
	"net/http"
	"time"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/system"
)

// HealthResponse is the JSON response for the /health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Activities    int     `json:"activities"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Uptime        string  `json:"uptime"`
	Goroutines    int     `json:"goroutines"`
	MemoryRSS     uint64  `json:"memory_rss"`
	Hostname      string  `json:"hostname,omitempty"`

	HostMemoryPercent float64 `json:"host_memory_percent"`
	HostUptimeSeconds uint64  `json:"host_uptime_seconds"`
}

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	cfg      *config.Settings
	registry *activities.Registry
	started  time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Settings, registry *activities.Registry) *HealthHandler {
	return &HealthHandler{
		cfg:      cfg,
		registry: registry,
		started:  time.Now(),
	}
}

// ServeHTTP implements http.Handler for the health check endpoint.
// Reports degraded (503) when the registry holds no activities.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats := system.GetStats(h.started)

	resp := HealthResponse{
		Status:        "healthy",
		Version:       h.cfg.Version,
		Activities:    h.registry.Len(),
		UptimeSeconds: stats.ProcessUptime,
		Uptime:        stats.UptimeHuman(),
		Goroutines:    stats.Goroutines,
		MemoryRSS:     stats.MemoryRSS,
		Hostname:      stats.Hostname,

		HostMemoryPercent: stats.HostMemUsed,
		HostUptimeSeconds: stats.HostUptime,
	}

	status := http.StatusOK
	if resp.Activities == 0 {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
