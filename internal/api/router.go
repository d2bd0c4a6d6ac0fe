package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/web"
)

// IndexPath is where GET / sends the browser.
const IndexPath = "/static/index.html"

// NewRouter builds the HTTP handler serving the activities API and UI.
func NewRouter(cfg *config.Settings, registry *activities.Registry) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsMiddleware(cfg.CORSOrigins))

	registerRoutes(r, cfg, registry)
	return r
}

// registerRoutes sets up all routes.
func registerRoutes(r chi.Router, cfg *config.Settings, registry *activities.Registry) {
	activitiesHandler := NewActivitiesHandler(registry)
	healthHandler := NewHealthHandler(cfg, registry)

	r.Get("/", rootHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Handler()))

	r.Get("/health", healthHandler.ServeHTTP)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activitiesHandler.List)
		r.Post("/{activity_name}/signup", activitiesHandler.Signup)
		r.Delete("/{activity_name}/unregister", activitiesHandler.Unregister)
	})
}

// rootHandler redirects to the UI.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}
