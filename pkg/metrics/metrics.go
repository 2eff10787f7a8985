package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	EnrichmentFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "favourite_enrichment_failures_total",
		Help: "Failed user/product lookups while enriching favourites.",
	}, []string{"target"})

	EventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_events_published_total",
		Help: "Domain events handed to the broker.",
	}, []string{"type"})

	EventPublishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_event_publish_failures_total",
		Help: "Domain events that could not be published.",
	}, []string{"type"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		EnrichmentFailures,
		EventsPublished,
		EventPublishFailures,
	)
}
