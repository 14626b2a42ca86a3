package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func makePosts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("post-%d", i)
	}
	return out
}

func makeAds(n int, ctx domain.DisplayContext) []domain.Placement {
	out := make([]domain.Placement, n)
	for i := range out {
		id := fmt.Sprintf("cmp-%d", i+1)
		out[i] = domain.Placement{
			PlacementID: fmt.Sprintf("pl-%d", i+1),
			CampaignID:  id,
			Context:     ctx,
			Slot:        ctx.Config().Slot,
			Position:    i + 1,
			Headline:    "Headline " + id,
			Tracking:    domain.Tracking{ImpressionKey: ImpressionKey(id, ctx, i+1)},
		}
	}
	return out
}

// adsAfter returns, for each ad entry, the index of the post it follows
// (-1 when it precedes every post).
func adsAfter[T any](entries []domain.FeedEntry[T]) []int {
	var out []int
	postIndex := -1
	for _, e := range entries {
		if e.Kind == domain.EntryPost {
			postIndex++
			continue
		}
		out = append(out, postIndex)
	}
	return out
}

func TestPlacementBudget(t *testing.T) {
	tests := []struct {
		ctx     domain.DisplayContext
		posts   int
		perPage int
		limit   int
		want    int
	}{
		{ctx: domain.ContextGlobalFeed, posts: 12, perPage: 20, want: 2},
		{ctx: domain.ContextGlobalFeed, posts: 0, perPage: 20, want: 3},
		{ctx: domain.ContextGlobalFeed, posts: 2, perPage: 20, want: 1},
		{ctx: domain.ContextCommunityFeed, posts: 30, perPage: 30, want: 3},
		{ctx: domain.ContextCourseLive, posts: 10, perPage: 10, want: 2},
		{ctx: domain.ContextSearch, posts: 10, perPage: 10, want: 4},
		{ctx: domain.ContextGlobalFeed, posts: 50, perPage: 50, limit: 6, want: 6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.ctx, tt.posts), func(t *testing.T) {
			assert.Equal(t, tt.want, PlacementBudget(tt.ctx, tt.posts, tt.perPage, tt.limit))
		})
	}
}

func TestInterleaveIntervalLaw(t *testing.T) {
	posts := makePosts(12)

	entries, summary := Interleave(posts, makeAds(3, domain.ContextGlobalFeed), domain.ContextGlobalFeed, 2)

	require.Len(t, entries, 15)
	assert.Equal(t, []int{4, 9, 11}, adsAfter(entries))
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, []int{6, 12, 15}, []int{summary.Served[0].Position, summary.Served[1].Position, summary.Served[2].Position})
	assert.Equal(t, "pl-1", summary.Served[0].PlacementID)
	assert.Equal(t, "cmp-3", entries[14].Ad.CampaignID)
}

func TestInterleaveBudgetedPage(t *testing.T) {
	posts := makePosts(12)
	n := PlacementBudget(domain.ContextGlobalFeed, len(posts), 20, 0)

	entries, summary := Interleave(posts, makeAds(3, domain.ContextGlobalFeed)[:n], domain.ContextGlobalFeed, 1)

	assert.Equal(t, []int{4, 9}, adsAfter(entries))
	assert.Equal(t, 2, summary.Count)
}

func TestInterleaveShortFirstPage(t *testing.T) {
	posts := makePosts(3)

	entries, _ := Interleave(posts, makeAds(1, domain.ContextGlobalFeed), domain.ContextGlobalFeed, 1)
	assert.Equal(t, []int{2}, adsAfter(entries))

	entries, _ = Interleave(posts, makeAds(1, domain.ContextGlobalFeed), domain.ContextGlobalFeed, 2)
	assert.Equal(t, []int{2}, adsAfter(entries), "leftover ads are appended")
}

func TestInterleaveWithoutAds(t *testing.T) {
	posts := makePosts(4)

	entries, summary := Interleave[string](posts, nil, domain.ContextGlobalFeed, 1)

	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, domain.EntryPost, e.Kind)
		assert.Equal(t, posts[i], *e.Post)
	}
	assert.Zero(t, summary.Count)
	assert.Empty(t, summary.Served)
}

func TestInterleaveSearchGoesFirst(t *testing.T) {
	entries, summary := Interleave(makePosts(5), makeAds(2, domain.ContextSearch), domain.ContextSearch, 1)

	assert.Equal(t, []int{-1, -1}, adsAfter(entries))
	assert.Equal(t, 1, summary.Served[0].Position)
	assert.Equal(t, 2, summary.Served[1].Position)
}

func TestInterleaveEmptyPosts(t *testing.T) {
	entries, summary := Interleave([]string{}, makeAds(2, domain.ContextGlobalFeed), domain.ContextGlobalFeed, 1)
	assert.Equal(t, []int{-1, -1}, adsAfter(entries))
	assert.Equal(t, 2, summary.Count)
}
