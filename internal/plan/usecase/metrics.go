package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseSourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bbip_plan_complete_source_total",
			Help: "Complete-plan runs by the parser whose output was kept",
		},
		[]string{"source"},
	)

	aiParseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bbip_plan_ai_parse_total",
			Help: "AI parse attempts by outcome",
		},
		[]string{"status"},
	)

	aiParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bbip_plan_ai_parse_duration_seconds",
			Help:    "Duration of AI parse calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	calendarSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bbip_plan_calendar_sync_total",
			Help: "Calendar mirroring attempts by outcome",
		},
		[]string{"status"},
	)
)
