package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowforge_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flowforge_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	aiSuggestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowforge_ai_suggestions_total",
		Help: "AI suggestions served, by whether the model or the fallback produced them",
	}, []string{"source"})

	activityLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flowforge_activity_log_failures_total",
		Help: "Activity entries that could not be written",
	})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveSuggestion counts a served suggestion by source.
func ObserveSuggestion(source string) {
	aiSuggestions.WithLabelValues(source).Inc()
}

// ObserveActivityLogFailure counts a dropped activity entry.
func ObserveActivityLogFailure() {
	activityLogFailures.Inc()
}
