package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/engine"
)

// hydrate loads the metrics of c and synchronises it. A failed write-back
// is returned as an error.
func (u *CampaignUseCase) hydrate(ctx context.Context, c *domain.Campaign) (*domain.CampaignView, error) {
	now := u.clock.Now()
	lifetime, err := u.metrics.SummariseByCampaignIDs(ctx, []int64{c.ID}, domain.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("hydrate campaign: %w", err)
	}
	trailing, err := u.metrics.SummariseWindow(ctx, c.ID, engine.TrailingWindowDays, now)
	if err != nil {
		return nil, fmt.Errorf("hydrate campaign: %w", err)
	}
	view, err := u.synchronise(ctx, c, lifetime[c.ID], trailing, now)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// summarise loads lifetime and trailing totals for a batch of campaigns.
func (u *CampaignUseCase) summarise(ctx context.Context, list []*domain.Campaign, now time.Time) (lifetime, trailing map[int64]domain.MetricTotals, err error) {
	if len(list) == 0 {
		return map[int64]domain.MetricTotals{}, map[int64]domain.MetricTotals{}, nil
	}
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	if lifetime, err = u.metrics.SummariseByCampaignIDs(ctx, ids, domain.DateRange{}); err != nil {
		return nil, nil, err
	}
	window := domain.TrailingRange(now, engine.TrailingWindowDays)
	if trailing, err = u.metrics.SummariseByCampaignIDs(ctx, ids, window); err != nil {
		return nil, nil, err
	}
	return lifetime, trailing, nil
}

// synchronise runs the hydration pass over c: schedule transitions, derived
// metrics, compliance with auto-pause, and the performance score. Whatever
// changed is written back in a single patch. The returned view is always
// usable; on a write-back failure it reflects the in-memory state.
func (u *CampaignUseCase) synchronise(ctx context.Context, c *domain.Campaign, lifetime, trailing domain.MetricTotals, now time.Time) (domain.CampaignView, error) {
	started := time.Now()

	transitions := engine.AdvanceSchedule(c, now)
	derived := engine.Derive(c, lifetime, trailing, now)
	compliance := engine.EvaluateCompliance(c, derived)
	if t, ok := engine.EnforceCompliance(c, compliance); ok {
		transitions = append(transitions, t)
	}
	score := engine.PerformanceScore(derived, compliance.Status)
	u.stats.RecordCompliance(string(compliance.Status))

	patch := snapshotPatch(c, lifetime, compliance, score, len(transitions) > 0, now)
	if patch.Empty() {
		u.stats.RecordHydration("unchanged", time.Since(started))
		u.publishSpotlight(ctx, c)
		return domain.NewCampaignView(c, derived, compliance), nil
	}

	stored, err := u.campaigns.Update(ctx, c.ID, patch)
	if err != nil {
		patch.Apply(c)
		u.stats.RecordHydration("failed", time.Since(started))
		return domain.NewCampaignView(c, derived, compliance),
			fmt.Errorf("synchronise campaign %s: %w", c.PublicID, err)
	}
	for _, t := range transitions {
		u.transitioned(ctx, stored, t)
	}
	u.stats.RecordHydration("synced", time.Since(started))
	u.publishSpotlight(ctx, stored)
	return domain.NewCampaignView(stored, derived, compliance), nil
}

// snapshotPatch collects the fields of c that differ from the freshly
// computed state. Status has already been moved on c by the transitions.
func snapshotPatch(c *domain.Campaign, lifetime domain.MetricTotals, cr domain.ComplianceResult, score int, statusChanged bool, now time.Time) domain.CampaignPatch {
	var p domain.CampaignPatch
	if statusChanged {
		status := c.Status
		p.Status = &status
	}
	if c.Spend.TotalCents != lifetime.SpendCents {
		currency := c.Spend.Currency
		if currency == "" {
			currency = c.Budget.Currency
		}
		p.Spend = &domain.Spend{Currency: currency, TotalCents: lifetime.SpendCents}
	}
	if c.PerformanceScore != score {
		p.PerformanceScore = &score
	}
	if complianceChanged(c.Metadata, cr) {
		meta := c.Metadata.Clone()
		risk := cr.RiskScore
		checked := now
		meta.LastComplianceStatus = cr.Status
		meta.ComplianceRiskScore = &risk
		meta.ComplianceViolations = slices.Clone(cr.Violations)
		meta.ComplianceCheckedAt = &checked
		p.Metadata = &meta
	}
	return p
}

func complianceChanged(m domain.Metadata, cr domain.ComplianceResult) bool {
	if m.LastComplianceStatus != cr.Status || m.ComplianceRiskScore == nil || *m.ComplianceRiskScore != cr.RiskScore {
		return true
	}
	return !slices.Equal(m.ComplianceViolations, cr.Violations)
}

func (u *CampaignUseCase) transitioned(ctx context.Context, c *domain.Campaign, t engine.Transition) {
	u.stats.RecordTransition(string(t.From), string(t.To))
	u.log.InfoContext(ctx, "campaign status changed",
		slog.String("campaign", c.PublicID),
		slog.String("from", string(t.From)),
		slog.String("to", string(t.To)),
		slog.String("reason", t.Reason))

	payload := map[string]any{
		"from":   string(t.From),
		"to":     string(t.To),
		"reason": t.Reason,
	}
	if t.Tag != "" {
		payload["tags"] = []string{t.Tag}
	}
	u.record(ctx, domain.Event{
		EntityType:  domain.EntityCampaign,
		EntityID:    c.PublicID,
		EventType:   t.EventType,
		Payload:     payload,
		PerformedBy: domain.ActorSystem,
	})
}
