package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moti_analyses_total",
			Help: "Total number of analyzed messages by risk level",
		},
		[]string{"risk_level"},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moti_analysis_duration_seconds",
			Help:    "Analysis pipeline duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	judgeCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moti_judge_calls_total",
			Help: "Judgment module outcomes by backend",
		},
		[]string{"backend", "outcome"},
	)

	cacheEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moti_analysis_cache_events_total",
			Help: "Analysis cache hits and misses",
		},
		[]string{"event"},
	)
)
