package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func candidate(id string, score int, keywords ...string) Candidate {
	c := newCampaign(func(c *domain.Campaign) {
		c.PublicID = id
		c.PerformanceScore = score
		c.Targeting.Keywords = keywords
	})
	return Candidate{Campaign: c}
}

func campaignIDs(ps []domain.Placement) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.CampaignID)
	}
	return out
}

func TestRankOrdersByScore(t *testing.T) {
	cands := []Candidate{candidate("low", 10), candidate("high", 80), candidate("mid", 40)}

	got := Rank(cands, domain.PlacementRequest{Context: domain.ContextGlobalFeed, Limit: 2}, testNow)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"high", "mid"}, campaignIDs(got))
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, 2, got[1].Position)
	assert.Equal(t, "feed-inline", got[0].Slot)
	assert.Equal(t, domain.ContextGlobalFeed, got[0].Context)
}

func TestRankFiltersIneligible(t *testing.T) {
	notStarted := candidate("future", 90)
	notStarted.Campaign.Schedule.StartAt = timePtr(testNow.AddDate(0, 0, 2))
	ended := candidate("ended", 90)
	ended.Campaign.Schedule.EndAt = daysAgo(1)
	paused := candidate("paused", 90)
	paused.Campaign.Status = domain.StatusPaused
	scheduled := candidate("scheduled", 5)
	scheduled.Campaign.Status = domain.StatusScheduled

	got := Rank([]Candidate{notStarted, ended, paused, scheduled, {}}, domain.PlacementRequest{Context: domain.ContextSearch, Limit: 4}, testNow)

	assert.Equal(t, []string{"scheduled"}, campaignIDs(got))
}

func TestRankKeywordAffinityIsStable(t *testing.T) {
	cands := []Candidate{
		candidate("a", 90, "design"),
		candidate("b", 80, "python"),
		candidate("c", 70, "ux"),
		candidate("d", 60, "python", "ml"),
	}

	got := Rank(cands, domain.PlacementRequest{Context: domain.ContextSearch, Limit: 4, Keywords: []string{"Python"}}, testNow)

	assert.Equal(t, []string{"b", "d", "a", "c"}, campaignIDs(got))
}

func TestRankScoreBoosts(t *testing.T) {
	c := candidate("x", 50)
	c.Campaign.Budget.DailyCents = 99
	c.Metrics.Averages.CTR = 0.05

	assert.InDelta(t, 100+5+10+8, RankScore(c, domain.ContextSearch), 1e-9)
	assert.InDelta(t, 100+5+10+6, RankScore(c, domain.ContextCourseLive), 1e-9)
	assert.InDelta(t, 100+5+10+4, RankScore(c, domain.ContextCommunityFeed), 1e-9)
}

func TestImpressionKeyDeterminism(t *testing.T) {
	req := domain.PlacementRequest{Context: domain.ContextGlobalFeed, Limit: 1}
	first := Rank([]Candidate{candidate("cmp-42", 10)}, req, testNow)
	second := Rank([]Candidate{candidate("cmp-42", 10)}, req, testNow)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Tracking.ImpressionKey, second[0].Tracking.ImpressionKey)
	assert.Equal(t, ImpressionKey("cmp-42", domain.ContextGlobalFeed, 1), first[0].Tracking.ImpressionKey)
	assert.Len(t, first[0].Tracking.ImpressionKey, 40)
	assert.NotEqual(t, first[0].Tracking.RequestID, second[0].Tracking.RequestID)

	assert.NotEqual(t, ImpressionKey("cmp-42", domain.ContextGlobalFeed, 1), ImpressionKey("cmp-42", domain.ContextGlobalFeed, 2))
	assert.NotEqual(t, ImpressionKey("cmp-42", domain.ContextGlobalFeed, 1), ImpressionKey("cmp-42", domain.ContextSearch, 1))
}

func TestRankUsesConfiguredSlot(t *testing.T) {
	c := candidate("slotted", 10)
	c.Campaign.Metadata.Placements = []domain.PlacementConfig{
		{Context: domain.ContextCourseLive, Slot: "live-sidebar", Surface: "course", Label: "Partner"},
	}
	got := Rank([]Candidate{c}, domain.PlacementRequest{Context: domain.ContextCourseLive, Limit: 1}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "live-sidebar", got[0].Slot)
	assert.Equal(t, fmt.Sprintf("%s:%s:%d", domain.ContextCourseLive, "slotted", 1), got[0].PlacementID)
}

func TestRankZeroLimit(t *testing.T) {
	assert.Empty(t, Rank([]Candidate{candidate("a", 1)}, domain.PlacementRequest{Context: domain.ContextGlobalFeed}, testNow))
}
