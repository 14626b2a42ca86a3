package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// SpotlightBoard is a process-local leaderboard of campaign scores.
type SpotlightBoard struct {
	mu     sync.RWMutex
	scores map[string]int
}

func NewSpotlightBoard() *SpotlightBoard {
	return &SpotlightBoard{scores: make(map[string]int)}
}

func (b *SpotlightBoard) Publish(_ context.Context, campaignPublicID string, score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scores[campaignPublicID] = score
	return nil
}

func (b *SpotlightBoard) Remove(_ context.Context, campaignPublicID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.scores, campaignPublicID)
	return nil
}

// Top returns up to limit entries, highest score first. Ties are broken by
// campaign id.
func (b *SpotlightBoard) Top(_ context.Context, limit int) ([]domain.Spotlight, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Spotlight, 0, len(b.scores))
	for id, score := range b.scores {
		out = append(out, domain.Spotlight{CampaignID: id, Score: float64(score)})
	}
	slices.SortFunc(out, func(x, y domain.Spotlight) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		return cmp.Compare(x.CampaignID, y.CampaignID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ port.SpotlightBoard = (*SpotlightBoard)(nil)
