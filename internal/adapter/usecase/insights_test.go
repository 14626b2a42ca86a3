package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func TestInsightsAppendsBoundedHistory(t *testing.T) {
	f := newFixture(t)
	c := f.seed(t, "cmp-1", func(c *domain.Campaign) {
		for i := range domain.MaxInsightHistory {
			c.Metadata.InsightsHistory = append(c.Metadata.InsightsHistory, domain.InsightHistoryEntry{
				ID:          fmt.Sprintf("h-%d", i),
				GeneratedAt: testNow.AddDate(0, 0, -30+i),
			})
		}
	})
	f.day(t, c, 2, domain.MetricValues{Impressions: 1000, Clicks: 40, Conversions: 4, SpendCents: 20000})
	f.day(t, c, 1, domain.MetricValues{Impressions: 1200, Clicks: 30, Conversions: 2, SpendCents: 22000})

	report, err := f.uc.Insights(context.Background(), owner, c.PublicID, 0)
	require.NoError(t, err)

	assert.Equal(t, c.PublicID, report.CampaignID)
	assert.Equal(t, domain.DefaultInsightWindowDays, report.WindowDays)
	assert.Equal(t, 2, report.Summary.Days)
	assert.Equal(t, int64(2200), report.Summary.Impressions)
	require.Len(t, report.Daily, 2)

	require.Len(t, report.History, domain.MaxInsightHistory)
	assert.Equal(t, "h-1", report.History[0].ID, "oldest entry is evicted")
	newest := report.History[len(report.History)-1]
	assert.Equal(t, owner.ID, newest.ActorID)
	assert.Equal(t, report.Summary, newest.Summary)

	stored, err := f.campaigns.Find(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Metadata.InsightsHistory, domain.MaxInsightHistory)
	assert.Equal(t, []string{domain.EventInsightsGenerated}, f.eventTypes())
}

func TestInsightsValidation(t *testing.T) {
	f := newFixture(t)
	c := f.seed(t, "cmp-1")

	for _, days := range []int{-1, 91} {
		_, err := f.uc.Insights(context.Background(), owner, c.PublicID, days)
		assert.ErrorIs(t, err, domain.ErrValidation, "windowDays=%d", days)
	}

	_, err := f.uc.Insights(context.Background(), other, c.PublicID, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
