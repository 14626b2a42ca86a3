package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/engine"
)

// Insights analyses the last windowDays of a campaign's metrics and
// appends the run to the campaign's bounded insight history.
func (u *CampaignUseCase) Insights(ctx context.Context, actor domain.Actor, publicID string, windowDays int) (*domain.Insights, error) {
	const op = "campaign insights"
	if windowDays < 0 || windowDays > maxInsightWindowDays {
		return nil, domain.Validation(op, fmt.Sprintf("windowDays must be between 1 and %d", maxInsightWindowDays))
	}
	if windowDays == 0 {
		windowDays = domain.DefaultInsightWindowDays
	}
	c, err := u.ownedCampaign(ctx, op, actor, publicID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	series, err := u.metrics.ListByCampaign(ctx, c.ID, windowDays, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	report := engine.BuildInsights(series, c.Budget, windowDays, now)
	report.CampaignID = c.PublicID

	entry := domain.InsightHistoryEntry{
		ID:              uuid.NewString(),
		GeneratedAt:     report.GeneratedAt,
		ActorID:         actor.ID,
		WindowDays:      windowDays,
		Summary:         report.Summary,
		Trends:          report.Trends,
		Pacing:          report.Pacing,
		Recommendations: report.Recommendations,
	}
	meta := c.Metadata.Clone()
	meta.AppendInsight(entry)
	stored, err := u.campaigns.Update(ctx, c.ID, domain.CampaignPatch{Metadata: &meta})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	report.History = stored.Metadata.InsightsHistory

	u.stats.RecordInsights()
	u.record(ctx, domain.Event{
		EntityType: domain.EntityCampaign,
		EntityID:   c.PublicID,
		EventType:  domain.EventInsightsGenerated,
		Payload: map[string]any{
			"insightId":       entry.ID,
			"windowDays":      windowDays,
			"recommendations": len(report.Recommendations),
		},
		PerformedBy: actor.ID,
	})
	return &report, nil
}
