package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port/mocks"
	"campus-ads/internal/metrics"
)

func TestPlacementsRanksEligibleCampaigns(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a")
	f.seed(t, "b", func(c *domain.Campaign) { c.PerformanceScore = 80 })
	f.seed(t, "c", func(c *domain.Campaign) { c.Status = domain.StatusDraft; c.PerformanceScore = 99 })
	f.seed(t, "d", func(c *domain.Campaign) {
		c.Status = domain.StatusScheduled
		start := testNow.AddDate(0, 0, 2)
		c.Schedule.StartAt = &start
	})

	got, err := f.uc.Placements(context.Background(), domain.PlacementRequest{Context: domain.ContextGlobalFeed})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].CampaignID)
	assert.Equal(t, "global_feed:b:1", got[0].PlacementID)
	assert.Equal(t, "a", got[1].CampaignID)
	assert.Equal(t, 2, got[1].Position)
	assert.Equal(t, "feed-inline", got[1].Slot)
}

func TestPlacementsKeywordAffinity(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", func(c *domain.Campaign) { c.Targeting.Keywords = []string{"rust"} })
	f.seed(t, "b", func(c *domain.Campaign) { c.PerformanceScore = 80 })

	got, err := f.uc.Placements(context.Background(), domain.PlacementRequest{
		Context:  domain.ContextGlobalFeed,
		Keywords: []string{"Rust"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].CampaignID)
}

func TestPlacementsRejectsUnknownContext(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignStore(t), mocks.NewMockMetricStore(t), mocks.NewMockEventRecorder(t))

	_, err := svc.Placements(context.Background(), domain.PlacementRequest{Context: "sidebar"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFeedInterleavesAdsAndSpotlights(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a")
	f.seed(t, "b", func(c *domain.Campaign) { c.PerformanceScore = 80 })
	require.NoError(t, f.board.Publish(context.Background(), "b", 80))

	page, err := f.uc.Feed(context.Background(), domain.FeedRequest[json.RawMessage]{
		Posts:   posts(10),
		Context: domain.ContextGlobalFeed,
		Page:    1,
	})
	require.NoError(t, err)

	require.Len(t, page.Entries, 12)
	assert.Equal(t, domain.EntryAd, page.Entries[5].Kind)
	assert.Equal(t, domain.EntryAd, page.Entries[11].Kind)
	require.Equal(t, 2, page.Ads.Count)
	assert.Equal(t, 6, page.Ads.Served[0].Position)
	assert.Equal(t, 12, page.Ads.Served[1].Position)

	assert.False(t, page.SpotlightsDegraded)
	assert.Equal(t, []domain.Spotlight{{CampaignID: "b", Score: 80}}, page.Spotlights)
}

// TestFeedDegradesWhenSpotlightsFail asserts the best-effort path: the
// page is still served, spotlights are empty and flagged.
func TestFeedDegradesWhenSpotlightsFail(t *testing.T) {
	campaigns := mocks.NewMockCampaignStore(t)
	board := mocks.NewMockSpotlightBoard(t)
	campaigns.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Campaign{}, nil)
	board.EXPECT().Top(mock.Anything, spotlightLimit).Return(nil, errors.New("redis: connection refused"))

	stats := metrics.New(prometheus.NewRegistry(), "test")
	svc := NewCampaignUseCase(campaigns, mocks.NewMockMetricStore(t), mocks.NewMockEventRecorder(t),
		WithClock(testClock), WithLogger(quietLogger()), WithSpotlights(board), WithMetrics(stats))

	page, err := svc.Feed(context.Background(), domain.FeedRequest[json.RawMessage]{Posts: posts(3)})
	require.NoError(t, err)

	assert.Len(t, page.Entries, 3)
	assert.Equal(t, 0, page.Ads.Count)
	assert.True(t, page.SpotlightsDegraded)
	assert.NotNil(t, page.Spotlights)
	assert.Empty(t, page.Spotlights)
	assert.Equal(t, 1.0, testutil.ToFloat64(stats.DegradedEnrichments.WithLabelValues("spotlight_read")))
	assert.Equal(t, 1.0, testutil.ToFloat64(stats.FeedRequests.WithLabelValues("global_feed")))
}

func TestFeedSearchPutsAdsFirst(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a")

	page, err := f.uc.Feed(context.Background(), domain.FeedRequest[json.RawMessage]{
		Posts:    posts(4),
		Context:  domain.ContextSearch,
		Keywords: []string{"python"},
	})
	require.NoError(t, err)
	require.Len(t, page.Entries, 5)
	assert.Equal(t, domain.EntryAd, page.Entries[0].Kind)
	assert.Equal(t, "search-top", page.Entries[0].Ad.Slot)
	assert.Equal(t, 1, page.Ads.Served[0].Position)
}

func posts(n int) []json.RawMessage {
	out := make([]json.RawMessage, 0, n)
	for i := range n {
		out = append(out, json.RawMessage(fmt.Sprintf(`{"id":%d}`, i+1)))
	}
	return out
}
