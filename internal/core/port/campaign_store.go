package port

import (
	"context"

	"campus-ads/internal/core/domain"
)

// CampaignStore is the persistence port for campaigns. Implementations
// return domain.ErrNotFound for unknown ids and apply patches field by
// field. There is no version check: concurrent writers of the same
// campaign race with last-write-wins on the metadata bag.
type CampaignStore interface {
	// Create assigns ID, timestamps and stores c.
	Create(ctx context.Context, c *domain.Campaign) error
	// Find returns the campaign with the given internal id.
	Find(ctx context.Context, id int64) (*domain.Campaign, error)
	// FindByPublicID returns the campaign with the given public id.
	FindByPublicID(ctx context.Context, publicID string) (*domain.Campaign, error)
	// List returns campaigns matching filter.
	List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	// Update applies patch atomically and returns the stored campaign.
	Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
}
