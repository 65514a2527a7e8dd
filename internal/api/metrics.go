package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Prometheus Metrics ─────────────────────────────────────────────────────

var (
	conversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dectime_conversions_total",
		Help: "Timestamp-to-decimal-time conversions served.",
	})

	calendarRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dectime_calendar_requests_total",
		Help: "Calendar mapping requests served, by direction.",
	}, []string{"direction"})
)
