package port

import (
	"context"

	"campus-ads/internal/core/domain"
)

// SpotlightBoard keeps a leaderboard of campaign performance scores used
// to enrich feeds with highlights.
type SpotlightBoard interface {
	Publish(ctx context.Context, campaignPublicID string, score int) error
	Remove(ctx context.Context, campaignPublicID string) error
	Top(ctx context.Context, limit int) ([]domain.Spotlight, error)
}
