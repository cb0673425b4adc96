// Package metrics defines the Prometheus instrumentation for the portal.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Comment pipeline metrics
var (
	// CommentsSubmitted counts accepted comment submissions by draft.
	CommentsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comments_submitted_total",
			Help: "Total comments accepted, labelled by draft id",
		},
		[]string{"draft_id"},
	)

	// SentimentLabels counts classifier outcomes at submission time.
	SentimentLabels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comment_sentiment_labels_total",
			Help: "Classifier labels assigned to submitted comments",
		},
		[]string{"label"},
	)

	// ReportDuration tracks analytics aggregation latency in seconds.
	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_report_duration_seconds",
			Help:    "Analytics aggregation duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25},
		},
	)

	// ReportsGenerated counts analytics reports served to admins.
	ReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_reports_total",
			Help: "Total analytics reports generated",
		},
	)
)

// External service metrics
var (
	// TranslationRequests counts outbound translation calls by outcome.
	TranslationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_requests_total",
			Help: "Outbound translation requests by status (ok/unavailable)",
		},
		[]string{"status"},
	)

	// TranslationBreakerState tracks the translation circuit breaker
	// (0=closed, 1=half-open, 2=open).
	TranslationBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "translation_circuit_breaker_state",
			Help: "Translation circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// SpeechRequests counts speech synthesis requests by outcome.
	SpeechRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speech_requests_total",
			Help: "Speech synthesis requests by status (ok/unsupported/canceled)",
		},
		[]string{"status"},
	)
)
