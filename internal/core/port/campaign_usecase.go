package port

import (
	"context"
	"encoding/json"
	"time"

	"campus-ads/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// core. It is the primary port into the application.
type CampaignUseCase interface {
	// CreateCampaign validates and stores a new draft campaign owned by
	// the actor.
	CreateCampaign(ctx context.Context, actor domain.Actor, in domain.CreateCampaignInput) (*domain.CampaignView, error)

	// UpdateCampaign applies a partial update and an optional manual
	// lifecycle action.
	UpdateCampaign(ctx context.Context, actor domain.Actor, publicID string, in domain.UpdateCampaignInput) (*domain.CampaignView, error)

	// GetCampaign hydrates a single campaign: lifecycle, derived metrics,
	// compliance and score are synchronised before the view is built.
	GetCampaign(ctx context.Context, actor domain.Actor, publicID string) (*domain.CampaignView, error)

	// ListCampaigns hydrates every campaign matching the filter that the
	// actor may see.
	ListCampaigns(ctx context.Context, actor domain.Actor, filter domain.CampaignFilter) ([]domain.CampaignView, error)

	// RecordDailyMetrics upserts the metrics of one UTC day.
	RecordDailyMetrics(ctx context.Context, actor domain.Actor, publicID string, date time.Time, values domain.MetricValues) (*domain.DailyMetric, error)

	// Placements ranks eligible campaigns for a display context.
	Placements(ctx context.Context, req domain.PlacementRequest) ([]domain.Placement, error)

	// Feed interleaves placements into a page of posts.
	Feed(ctx context.Context, req domain.FeedRequest[json.RawMessage]) (*domain.FeedPage[json.RawMessage], error)

	// Insights analyses the campaign's recent metrics and appends the run
	// to its bounded history.
	Insights(ctx context.Context, actor domain.Actor, publicID string, windowDays int) (*domain.Insights, error)
}
