package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// DefaultSpotlightKey is the sorted set holding campaign scores.
const DefaultSpotlightKey = "campus-ads:spotlights"

// SpotlightBoard keeps campaign performance scores in a Redis sorted set.
type SpotlightBoard struct {
	client redis.Cmdable
	key    string
}

// NewSpotlightBoard creates a board on key. An empty key uses
// DefaultSpotlightKey.
func NewSpotlightBoard(client redis.Cmdable, key string) *SpotlightBoard {
	if key == "" {
		key = DefaultSpotlightKey
	}
	return &SpotlightBoard{client: client, key: key}
}

func (b *SpotlightBoard) Publish(ctx context.Context, campaignPublicID string, score int) error {
	err := b.client.ZAdd(ctx, b.key, redis.Z{Score: float64(score), Member: campaignPublicID}).Err()
	if err != nil {
		return fmt.Errorf("publish spotlight %s: %w", campaignPublicID, err)
	}
	return nil
}

func (b *SpotlightBoard) Remove(ctx context.Context, campaignPublicID string) error {
	if err := b.client.ZRem(ctx, b.key, campaignPublicID).Err(); err != nil {
		return fmt.Errorf("remove spotlight %s: %w", campaignPublicID, err)
	}
	return nil
}

// Top returns the highest scored campaigns, best first.
func (b *SpotlightBoard) Top(ctx context.Context, limit int) ([]domain.Spotlight, error) {
	if limit <= 0 {
		return []domain.Spotlight{}, nil
	}
	entries, err := b.client.ZRevRangeWithScores(ctx, b.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read spotlights: %w", err)
	}
	out := make([]domain.Spotlight, 0, len(entries))
	for _, z := range entries {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, domain.Spotlight{CampaignID: id, Score: z.Score})
	}
	return out, nil
}

var _ port.SpotlightBoard = (*SpotlightBoard)(nil)
