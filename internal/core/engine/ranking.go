package engine

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
)

// MaxCandidates caps how many campaigns are considered for one request.
const MaxCandidates = 100

// CandidateStatuses are the statuses fetched for placement ranking.
var CandidateStatuses = []domain.CampaignStatus{domain.StatusActive, domain.StatusScheduled}

// Candidate is a campaign with its freshly derived metrics.
type Candidate struct {
	Campaign *domain.Campaign
	Metrics  domain.DerivedMetrics
}

// Eligible reports whether c may serve at now.
func Eligible(c *domain.Campaign, now time.Time) bool {
	if c.Status != domain.StatusActive && c.Status != domain.StatusScheduled {
		return false
	}
	s := c.Schedule
	return (s.StartAt == nil || !s.StartAt.After(now)) && (s.EndAt == nil || !s.EndAt.Before(now))
}

// RankScore is the placement score of a candidate in ctx.
func RankScore(c Candidate, ctx domain.DisplayContext) float64 {
	return float64(c.Campaign.PerformanceScore)*2 +
		c.Metrics.Averages.CTR*100 +
		math.Log10(float64(c.Campaign.Budget.DailyCents)+1)*5 +
		ctx.Config().Boost
}

// ImpressionKey fingerprints a placement for impression deduplication. It
// is stable for the same campaign, context and position.
func ImpressionKey(campaignPublicID string, ctx domain.DisplayContext, position int) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%s:%d", campaignPublicID, ctx, position)))
	return hex.EncodeToString(sum[:])
}

type scored struct {
	Candidate
	score float64
}

// Rank filters, scores and orders candidates for req and returns up to
// req.Limit placements with 1-based positions.
func Rank(candidates []Candidate, req domain.PlacementRequest, now time.Time) []domain.Placement {
	if req.Limit <= 0 {
		return nil
	}
	pool := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.Campaign == nil || !Eligible(c.Campaign, now) {
			continue
		}
		pool = append(pool, scored{Candidate: c, score: RankScore(c, req.Context)})
	}
	slices.SortStableFunc(pool, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	if keywords := lowerAll(req.Keywords); len(keywords) > 0 {
		matched := make([]scored, 0, len(pool))
		rest := make([]scored, 0, len(pool))
		for _, s := range pool {
			if s.Campaign.Targeting.MatchesAny(keywords) {
				matched = append(matched, s)
			} else {
				rest = append(rest, s)
			}
		}
		pool = append(matched, rest...)
	}

	if len(pool) > req.Limit {
		pool = pool[:req.Limit]
	}
	out := make([]domain.Placement, 0, len(pool))
	for i, s := range pool {
		out = append(out, buildPlacement(s, req.Context, i+1))
	}
	return out
}

func buildPlacement(s scored, ctx domain.DisplayContext, position int) domain.Placement {
	c := s.Campaign
	cfg := ctx.Config()
	slot, surface, label := cfg.Slot, cfg.Surface, cfg.Label
	if pc, ok := c.PlacementFor(ctx); ok {
		slot, surface, label = pc.Slot, pc.Surface, pc.Label
	}
	return domain.Placement{
		PlacementID: fmt.Sprintf("%s:%s:%d", ctx, c.PublicID, position),
		CampaignID:  c.PublicID,
		Context:     ctx,
		Slot:        slot,
		Surface:     surface,
		Label:       label,
		Position:    position,
		Headline:    c.Creative.Headline,
		Description: c.Creative.Description,
		URL:         c.Creative.URL,
		AssetURL:    c.Creative.AssetURL,
		Preview:     c.Metadata.Preview,
		Metrics: domain.PlacementMetrics{
			Impressions:      s.Metrics.Lifetime.Impressions,
			Clicks:           s.Metrics.Lifetime.Clicks,
			CTR:              s.Metrics.Averages.CTR,
			PerformanceScore: c.PerformanceScore,
			RankScore:        roundTo(s.score, 4),
		},
		Tracking: domain.Tracking{
			ImpressionKey: ImpressionKey(c.PublicID, ctx, position),
			RequestID:     uuid.NewString(),
		},
		Targeting: c.Targeting,
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
