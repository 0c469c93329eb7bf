// Package metrics provides Prometheus metrics collection for the API.
// It exports HTTP request metrics (totals, latency histogram, in-flight
// gauge) plus domain metrics for recommendation outcomes, detected symptom
// keys, expert-case hits, safety exclusions, fallback uses and loaded
// catalog size.
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen in last ~5 minutes)",
		},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	SymptomsDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "symptoms_detected_total",
			Help: "Total detections per canonical symptom key",
		},
		[]string{"symptom"},
	)

	ExpertCaseHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expert_case_hits_total",
			Help: "Total queries answered by a curated expert case",
		},
		[]string{"case"},
	)

	SafetyExclusionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safety_exclusions_total",
			Help: "Total products excluded from a recommendation by a safety rule",
		},
		[]string{"rule"},
	)

	FallbackUsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_uses_total",
			Help: "Total times a recommendation needed the fallback cascade",
		},
		[]string{"kind"},
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the loaded catalog",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(SymptomsDetectedTotal)
	prometheus.MustRegister(ExpertCaseHitsTotal)
	prometheus.MustRegister(SafetyExclusionsTotal)
	prometheus.MustRegister(FallbackUsesTotal)
	prometheus.MustRegister(CatalogProducts)
}
