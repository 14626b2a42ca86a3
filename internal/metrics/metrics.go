package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the campaign core. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Hydration metrics
	Hydrations       *prometheus.CounterVec
	HydrationLatency prometheus.Histogram

	// Compliance / lifecycle metrics
	ComplianceOutcomes   *prometheus.CounterVec
	LifecycleTransitions *prometheus.CounterVec

	// Delivery metrics
	PlacementsServed *prometheus.CounterVec
	FeedRequests     *prometheus.CounterVec

	// Insight metrics
	InsightsGenerated prometheus.Counter

	// Enrichment metrics
	DegradedEnrichments *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Hydrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaign_hydrations_total",
				Help:      "Campaign hydration passes by outcome",
			},
			[]string{"outcome"},
		),
		HydrationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "campaign_hydration_seconds",
				Help:      "Latency of a single campaign hydration pass",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		ComplianceOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compliance_evaluations_total",
				Help:      "Compliance evaluations by resulting status",
			},
			[]string{"status"},
		),
		LifecycleTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lifecycle_transitions_total",
				Help:      "Campaign status transitions",
			},
			[]string{"from", "to"},
		),
		PlacementsServed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "placements_served_total",
				Help:      "Placements returned by display context",
			},
			[]string{"context"},
		),
		FeedRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_requests_total",
				Help:      "Feed pages assembled by display context",
			},
			[]string{"context"},
		),
		InsightsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insights_generated_total",
				Help:      "Insight reports generated",
			},
		),
		DegradedEnrichments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "degraded_enrichments_total",
				Help:      "Best-effort enrichment calls that failed",
			},
			[]string{"source"},
		),
	}
}

// Handler returns the Prometheus HTTP handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RecordHydration records one hydration pass.
func (m *Metrics) RecordHydration(outcome string, latency time.Duration) {
	if m == nil {
		return
	}
	m.Hydrations.WithLabelValues(outcome).Inc()
	m.HydrationLatency.Observe(latency.Seconds())
}

// RecordCompliance records a compliance evaluation result.
func (m *Metrics) RecordCompliance(status string) {
	if m == nil {
		return
	}
	m.ComplianceOutcomes.WithLabelValues(status).Inc()
}

// RecordTransition records a lifecycle status change.
func (m *Metrics) RecordTransition(from, to string) {
	if m == nil {
		return
	}
	m.LifecycleTransitions.WithLabelValues(from, to).Inc()
}

// RecordPlacements records n placements served in ctx.
func (m *Metrics) RecordPlacements(ctx string, n int) {
	if m == nil {
		return
	}
	m.PlacementsServed.WithLabelValues(ctx).Add(float64(n))
}

// RecordFeed records an assembled feed page.
func (m *Metrics) RecordFeed(ctx string) {
	if m == nil {
		return
	}
	m.FeedRequests.WithLabelValues(ctx).Inc()
}

// RecordInsights records a generated insight report.
func (m *Metrics) RecordInsights() {
	if m == nil {
		return
	}
	m.InsightsGenerated.Inc()
}

// RecordDegraded records a failed best-effort call against source.
func (m *Metrics) RecordDegraded(source string) {
	if m == nil {
		return
	}
	m.DegradedEnrichments.WithLabelValues(source).Inc()
}
