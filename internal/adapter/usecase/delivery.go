package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/engine"
)

const (
	defaultPerPage = 20
	spotlightLimit = 5
)

// Placements ranks the eligible campaigns for req.Context. Campaigns are
// read from the store in their last synchronised state.
func (u *CampaignUseCase) Placements(ctx context.Context, req domain.PlacementRequest) ([]domain.Placement, error) {
	const op = "placements"
	if req.Context == "" {
		req.Context = domain.ContextGlobalFeed
	}
	if !req.Context.Valid() {
		return nil, domain.Validation(op, fmt.Sprintf("unknown placement context %q", req.Context))
	}
	if req.Limit <= 0 {
		req.Limit = req.Context.Config().MaxPerPage
	}
	req.Limit = min(req.Limit, engine.MaxCandidates)

	list, err := u.campaigns.List(ctx, domain.CampaignFilter{
		Statuses:     engine.CandidateStatuses,
		OrderByScore: true,
		Limit:        engine.MaxCandidates,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := u.clock.Now()
	lifetime, trailing, err := u.summarise(ctx, list, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	candidates := make([]engine.Candidate, 0, len(list))
	for _, c := range list {
		candidates = append(candidates, engine.Candidate{
			Campaign: c,
			Metrics:  engine.Derive(c, lifetime[c.ID], trailing[c.ID], now),
		})
	}
	placements := engine.Rank(candidates, req, now)
	if placements == nil {
		placements = []domain.Placement{}
	}
	u.stats.RecordPlacements(string(req.Context), len(placements))
	return placements, nil
}

// Feed interleaves placements into a page of posts and attaches spotlight
// highlights when the board is reachable.
func (u *CampaignUseCase) Feed(ctx context.Context, req domain.FeedRequest[json.RawMessage]) (*domain.FeedPage[json.RawMessage], error) {
	if req.Context == "" {
		req.Context = domain.ContextGlobalFeed
	}
	if !req.Context.Valid() {
		return nil, domain.Validation("feed", fmt.Sprintf("unknown placement context %q", req.Context))
	}
	page := max(req.Page, 1)
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	n := engine.PlacementBudget(req.Context, len(req.Posts), perPage, req.Limit)
	ads, err := u.Placements(ctx, domain.PlacementRequest{Context: req.Context, Limit: n, Keywords: req.Keywords})
	if err != nil {
		return nil, err
	}
	entries, summary := engine.Interleave(req.Posts, ads, req.Context, page)
	spots, degraded := u.spotlightHighlights(ctx)
	u.stats.RecordFeed(string(req.Context))

	return &domain.FeedPage[json.RawMessage]{
		Entries:            entries,
		Ads:                summary,
		Spotlights:         spots,
		SpotlightsDegraded: degraded,
	}, nil
}

// spotlightHighlights reads the top of the spotlight board. A failure
// yields an empty list and degraded=true.
func (u *CampaignUseCase) spotlightHighlights(ctx context.Context) ([]domain.Spotlight, bool) {
	if u.spotlights == nil {
		return []domain.Spotlight{}, false
	}
	spots, err := u.spotlights.Top(ctx, spotlightLimit)
	if err != nil {
		u.log.WarnContext(ctx, "spotlights unavailable", slog.Any("error", err))
		u.stats.RecordDegraded("spotlight_read")
		return []domain.Spotlight{}, true
	}
	if spots == nil {
		spots = []domain.Spotlight{}
	}
	return spots, false
}

// publishSpotlight keeps the board in line with c: active campaigns are
// scored, everything else is removed. Failures are only logged.
func (u *CampaignUseCase) publishSpotlight(ctx context.Context, c *domain.Campaign) {
	if u.spotlights == nil {
		return
	}
	var err error
	if c.Status == domain.StatusActive {
		err = u.spotlights.Publish(ctx, c.PublicID, c.PerformanceScore)
	} else {
		err = u.spotlights.Remove(ctx, c.PublicID)
	}
	if err != nil {
		u.log.WarnContext(ctx, "spotlight not updated",
			slog.String("campaign", c.PublicID), slog.Any("error", err))
		u.stats.RecordDegraded("spotlight_write")
	}
}
