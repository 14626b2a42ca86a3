package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func codes(vs []domain.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestEvaluateCompliance(t *testing.T) {
	tests := []struct {
		name      string
		campaign  *domain.Campaign
		metrics   domain.DerivedMetrics
		status    domain.ComplianceStatus
		risk      int
		wantCodes []string
	}{
		{
			name:     "clean campaign passes",
			campaign: newCampaign(),
			metrics:  domain.DerivedMetrics{DaysActive: 10},
			status:   domain.CompliancePass,
			risk:     95,
		},
		{
			name:      "short headline halts",
			campaign:  newCampaign(func(c *domain.Campaign) { c.Creative.Headline = "Learn now" }),
			metrics:   domain.DerivedMetrics{DaysActive: 1},
			status:    domain.ComplianceHalted,
			risk:      75,
			wantCodes: []string{"headline_too_short"},
		},
		{
			name:      "long headline needs review",
			campaign:  newCampaign(func(c *domain.Campaign) { c.Creative.Headline = strings.Repeat("a", 161) }),
			metrics:   domain.DerivedMetrics{DaysActive: 1},
			status:    domain.ComplianceNeedsReview,
			risk:      90,
			wantCodes: []string{"headline_too_long"},
		},
		{
			name: "criticals precede warnings",
			campaign: newCampaign(func(c *domain.Campaign) {
				c.Targeting.Keywords = nil
				c.Creative.URL = ""
				c.Creative.Description = "GUARANTEED RESULTS for every learner"
			}),
			metrics:   domain.DerivedMetrics{DaysActive: 1},
			status:    domain.ComplianceHalted,
			risk:      40,
			wantCodes: []string{"missing_landing_page", "prohibited_copy", "missing_keywords"},
		},
		{
			name:     "zero conversions on active campaign",
			campaign: newCampaign(),
			metrics: domain.DerivedMetrics{
				DaysActive: 3,
				Trailing:   domain.TrailingMetrics{MetricTotals: domain.MetricTotals{Clicks: 200}},
			},
			status:    domain.ComplianceNeedsReview,
			risk:      90,
			wantCodes: []string{"zero_conversions"},
		},
		{
			name:     "zero conversions ignored when paused",
			campaign: newCampaign(func(c *domain.Campaign) { c.Status = domain.StatusPaused }),
			metrics: domain.DerivedMetrics{
				DaysActive: 3,
				Trailing:   domain.TrailingMetrics{MetricTotals: domain.MetricTotals{Clicks: 500}},
			},
			status: domain.CompliancePass,
			risk:   95,
		},
		{
			name: "risk score floors at five",
			campaign: newCampaign(func(c *domain.Campaign) {
				c.Creative = domain.Creative{Headline: "casino", Description: ""}
				c.Targeting.Keywords = nil
			}),
			metrics: domain.DerivedMetrics{
				DaysActive: 1,
				Lifetime:   domain.MetricTotals{SpendCents: 1_000_000},
			},
			status:    domain.ComplianceHalted,
			risk:      5,
			wantCodes: []string{"headline_too_short", "missing_landing_page", "prohibited_copy", "overspend", "missing_keywords"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCompliance(tt.campaign, tt.metrics)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.risk, got.RiskScore)
			if tt.wantCodes == nil {
				assert.Empty(t, got.Violations)
			} else {
				assert.Equal(t, tt.wantCodes, codes(got.Violations))
			}
		})
	}
}

func TestOverspendHalts(t *testing.T) {
	for _, d := range []int{1, 3, 7, 30} {
		allowable := int64(50000 * d)
		limit := float64(allowable) * 1.15

		c := newCampaign(func(c *domain.Campaign) { c.Budget.DailyCents = 50000 })
		over := domain.DerivedMetrics{DaysActive: d, Lifetime: domain.MetricTotals{SpendCents: int64(limit) + 1}}
		at := domain.DerivedMetrics{DaysActive: d, Lifetime: domain.MetricTotals{SpendCents: int64(limit)}}

		got := EvaluateCompliance(c, over)
		require.Equal(t, domain.ComplianceHalted, got.Status, "days=%d", d)
		assert.Equal(t, []string{"overspend"}, codes(got.Violations))

		assert.Equal(t, domain.CompliancePass, EvaluateCompliance(c, at).Status, "days=%d", d)
	}
}

func TestOverspendIgnoredWithoutBudget(t *testing.T) {
	c := newCampaign(func(c *domain.Campaign) { c.Budget.DailyCents = 0 })
	got := EvaluateCompliance(c, domain.DerivedMetrics{DaysActive: 5, Lifetime: domain.MetricTotals{SpendCents: 9_999_999}})
	assert.Equal(t, domain.CompliancePass, got.Status)
}
