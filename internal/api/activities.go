// Package api provides HTTP handlers for the Mergington activities API.
package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/metrics"
)

// Client-facing messages, one per registry error.
const (
	detailNotFound          = "Activity not found"
	detailAlreadyRegistered = "Student already signed up for this activity"
	detailNotRegistered     = "Student is not registered for this activity"
	detailMissingEmail      = "Missing required query parameter: email"
	detailInternal          = "Internal server error"
)

// ActivitiesHandler handles the activity listing and roster endpoints.
type ActivitiesHandler struct {
	registry *activities.Registry
}

// NewActivitiesHandler creates a new ActivitiesHandler.
func NewActivitiesHandler(registry *activities.Registry) *ActivitiesHandler {
	h := &ActivitiesHandler{registry: registry}
	for name, a := range registry.List() {
		metrics.Participants.WithLabelValues(name).Set(float64(len(a.Participants)))
	}
	return h
}

// List handles GET /activities
// Returns every activity keyed by name, in seed order.
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Catalog())
}

// Signup handles POST /activities/{activity_name}/signup?email=
// Adds the student to the activity's roster.
func (h *ActivitiesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := emailParam(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, detailMissingEmail)
		return
	}

	conf, err := h.registry.Signup(name, email)
	metrics.Signups.WithLabelValues(metricLabel(name, err), outcome(err)).Inc()
	if err != nil {
		h.writeRegistryError(w, r, err, name, email)
		return
	}
	h.observeRoster(name)

	log.Info().
		Str("activity", name).
		Str("email", string(email)).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("Student signed up")

	writeJSON(w, http.StatusOK, conf)
}

// Unregister handles DELETE /activities/{activity_name}/unregister?email=
// Removes the student from the activity's roster.
func (h *ActivitiesHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := emailParam(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, detailMissingEmail)
		return
	}

	conf, err := h.registry.Unregister(name, email)
	metrics.Unregistrations.WithLabelValues(metricLabel(name, err), outcome(err)).Inc()
	if err != nil {
		h.writeRegistryError(w, r, err, name, email)
		return
	}
	h.observeRoster(name)

	log.Info().
		Str("activity", name).
		Str("email", string(email)).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("Student unregistered")

	writeJSON(w, http.StatusOK, conf)
}

func (h *ActivitiesHandler) observeRoster(name string) {
	if a, err := h.registry.Get(name); err == nil {
		metrics.Participants.WithLabelValues(name).Set(float64(len(a.Participants)))
	}
}

// writeRegistryError maps registry errors to their HTTP status and detail.
func (h *ActivitiesHandler) writeRegistryError(w http.ResponseWriter, r *http.Request, err error, name string, email activities.Email) {
	status, detail := statusFor(err)
	reqID := middleware.GetReqID(r.Context())
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("activity", name).Str("request_id", reqID).Msg("Roster update failed")
	} else {
		log.Debug().
			Err(err).
			Str("activity", name).
			Str("email", string(email)).
			Int("status", status).
			Str("request_id", reqID).
			Msg("Roster update rejected")
	}
	writeDetail(w, status, detail)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, activities.ErrNotFound):
		return http.StatusNotFound, detailNotFound
	case errors.Is(err, activities.ErrAlreadyRegistered):
		return http.StatusBadRequest, detailAlreadyRegistered
	case errors.Is(err, activities.ErrNotRegistered):
		return http.StatusBadRequest, detailNotRegistered
	default:
		return http.StatusInternalServerError, detailInternal
	}
}

// metricLabel keeps unknown activity names out of label values.
func metricLabel(name string, err error) string {
	if errors.Is(err, activities.ErrNotFound) {
		return "unknown"
	}
	return name
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, activities.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, activities.ErrAlreadyRegistered):
		return metrics.OutcomeAlreadyRegistered
	case errors.Is(err, activities.ErrNotRegistered):
		return metrics.OutcomeNotRegistered
	default:
		return metrics.OutcomeError
	}
}

// activityName returns the decoded {activity_name} path segment. chi
// matches on the raw path when the request carries escaped slashes.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "activity_name")
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
	}
	return name
}

// emailParam returns the email query parameter verbatim. ok is false only
// when the parameter is absent; an empty value is accepted. When the
// parameter repeats, the last value wins.
func emailParam(r *http.Request) (activities.Email, bool) {
	values, ok := r.URL.Query()["email"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return activities.Email(values[len(values)-1]), true
}
