package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "campus_ads")

	m.RecordHydration("ok", 3*time.Millisecond)
	m.RecordHydration("ok", time.Millisecond)
	m.RecordCompliance("halted")
	m.RecordTransition("active", "paused")
	m.RecordPlacements("global_feed", 3)
	m.RecordPlacements("global_feed", 2)
	m.RecordFeed("search")
	m.RecordInsights()
	m.RecordDegraded("spotlight")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Hydrations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComplianceOutcomes.WithLabelValues("halted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LifecycleTransitions.WithLabelValues("active", "paused")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.PlacementsServed.WithLabelValues("global_feed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedRequests.WithLabelValues("search")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InsightsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DegradedEnrichments.WithLabelValues("spotlight")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HydrationLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHydration("ok", time.Second)
		m.RecordCompliance("pass")
		m.RecordTransition("draft", "active")
		m.RecordPlacements("search", 1)
		m.RecordFeed("search")
		m.RecordInsights()
		m.RecordDegraded("spotlight")
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "campus_ads")
	m.RecordInsights()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "campus_ads_insights_generated_total 1"))
}
