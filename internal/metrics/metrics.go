// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for roster operations.
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeNotRegistered     = "not_registered"
	OutcomeError             = "error"
)

var (
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total number of signup attempts by outcome",
		},
		[]string{"activity", "outcome"},
	)

	Unregistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_unregistrations_total",
			Help: "Total number of unregister attempts by outcome",
		},
		[]string{"activity", "outcome"},
	)

	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activities_participants",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
