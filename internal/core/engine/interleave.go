package engine

import "campus-ads/internal/core/domain"

// PlacementBudget returns how many placements a page of postCount posts can
// hold in ctx. perPage stands in for an empty page; a positive limit
// overrides the context maximum.
func PlacementBudget(ctx domain.DisplayContext, postCount, perPage, limit int) int {
	cfg := ctx.Config()
	ceiling := cfg.MaxPerPage
	if limit > 0 {
		ceiling = limit
	}
	if cfg.Interval <= 0 {
		return ceiling
	}
	n := postCount
	if n == 0 {
		n = perPage
	}
	return min(ceiling, max(1, roundInt(float64(n)/float64(cfg.Interval))))
}

// Interleave merges ads into posts. In interval contexts an ad follows every
// interval-th post, and on the first page the last post is always followed
// by an ad while any remain. Ads left over after the walk are appended in
// order. Contexts without an interval get every ad ahead of the posts.
func Interleave[T any](posts []T, ads []domain.Placement, ctx domain.DisplayContext, page int) ([]domain.FeedEntry[T], domain.AdsSummary) {
	entries := make([]domain.FeedEntry[T], 0, len(posts)+len(ads))
	summary := domain.AdsSummary{Served: make([]domain.ServedAd, 0, len(ads))}

	pushAd := func(ad domain.Placement) {
		entries = append(entries, domain.FeedEntry[T]{Kind: domain.EntryAd, Ad: &ad})
		summary.Served = append(summary.Served, domain.ServedAd{
			PlacementID: ad.PlacementID,
			CampaignID:  ad.CampaignID,
			Slot:        ad.Slot,
			Position:    len(entries),
			Headline:    ad.Headline,
			Context:     ad.Context,
			Tracking:    ad.Tracking,
		})
	}
	pushPost := func(post T) {
		entries = append(entries, domain.FeedEntry[T]{Kind: domain.EntryPost, Post: &post})
	}

	interval := ctx.Config().Interval
	next := 0
	if interval <= 0 {
		for ; next < len(ads); next++ {
			pushAd(ads[next])
		}
	}
	for i, post := range posts {
		pushPost(post)
		if next >= len(ads) {
			continue
		}
		last := i == len(posts)-1
		if (i+1)%interval == 0 || (last && page == 1) {
			pushAd(ads[next])
			next++
		}
	}
	for ; next < len(ads); next++ {
		pushAd(ads[next])
	}

	summary.Count = len(summary.Served)
	return entries, summary
}
