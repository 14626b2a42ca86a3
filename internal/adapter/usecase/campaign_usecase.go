package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/engine"
	"campus-ads/internal/core/port"
	"campus-ads/internal/metrics"
)

// maxInsightWindowDays caps how far back an insight report may look.
const maxInsightWindowDays = 90

// CampaignUseCase orchestrates the campaign core: it loads campaigns and
// their metrics through the stores, runs the pure engine over them and
// writes the synchronised snapshot back.
type CampaignUseCase struct {
	campaigns  port.CampaignStore
	metrics    port.MetricStore
	events     port.EventRecorder
	spotlights port.SpotlightBoard
	clock      port.Clock
	log        *slog.Logger
	stats      *metrics.Metrics
}

// Option configures optional collaborators of the use case.
type Option func(*CampaignUseCase)

// WithSpotlights enables the spotlight board used to enrich feeds.
func WithSpotlights(b port.SpotlightBoard) Option {
	return func(u *CampaignUseCase) { u.spotlights = b }
}

// WithClock replaces the system clock.
func WithClock(c port.Clock) Option {
	return func(u *CampaignUseCase) { u.clock = c }
}

// WithLogger sets the logger used for warnings about degraded paths.
func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.log = l }
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *CampaignUseCase) { u.stats = m }
}

// NewCampaignUseCase creates a use case over the given stores.
func NewCampaignUseCase(campaigns port.CampaignStore, metricStore port.MetricStore, events port.EventRecorder, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		campaigns: campaigns,
		metrics:   metricStore,
		events:    events,
		clock:     port.SystemClock,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CreateCampaign validates the input and stores a draft campaign owned by
// the actor. Nothing is written when validation fails.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, actor domain.Actor, in domain.CreateCampaignInput) (*domain.CampaignView, error) {
	const op = "create campaign"
	if err := authorize(op, actor, domain.PermManageCampaigns); err != nil {
		return nil, err
	}
	c, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	c.PublicID = uuid.NewString()
	c.OwnerID = actor.ID
	if err = u.campaigns.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.record(ctx, domain.Event{
		EntityType:  domain.EntityCampaign,
		EntityID:    c.PublicID,
		EventType:   domain.EventCampaignCreated,
		Payload:     map[string]any{"name": c.Name, "status": string(c.Status)},
		PerformedBy: actor.ID,
	})
	return u.hydrate(ctx, c)
}

// UpdateCampaign applies a partial update and an optional manual lifecycle
// action to a campaign the actor owns.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, actor domain.Actor, publicID string, in domain.UpdateCampaignInput) (*domain.CampaignView, error) {
	const op = "update campaign"
	c, err := u.ownedCampaign(ctx, op, actor, publicID)
	if err != nil {
		return nil, err
	}
	patch, action, err := in.Patch(c)
	if err != nil {
		return nil, err
	}
	if action != nil {
		next, err := engine.ApplyAction(c.Status, *action)
		if err != nil {
			return nil, err
		}
		if next != c.Status {
			patch.Status = &next
		}
	}
	if patch.Empty() {
		return u.hydrate(ctx, c)
	}

	previous := c.Status
	stored, err := u.campaigns.Update(ctx, c.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	payload := map[string]any{"fields": changedFields(patch)}
	if patch.Status != nil {
		payload["from"] = string(previous)
		payload["to"] = string(stored.Status)
		u.stats.RecordTransition(string(previous), string(stored.Status))
	}
	u.record(ctx, domain.Event{
		EntityType:  domain.EntityCampaign,
		EntityID:    stored.PublicID,
		EventType:   domain.EventCampaignUpdated,
		Payload:     payload,
		PerformedBy: actor.ID,
	})
	return u.hydrate(ctx, stored)
}

// GetCampaign returns the hydrated view of one campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, actor domain.Actor, publicID string) (*domain.CampaignView, error) {
	c, err := u.ownedCampaign(ctx, "get campaign", actor, publicID)
	if err != nil {
		return nil, err
	}
	return u.hydrate(ctx, c)
}

// ListCampaigns hydrates every visible campaign matching filter. Actors
// without the view-all permission only see their own campaigns. A failed
// snapshot write-back degrades to the in-memory view.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, actor domain.Actor, filter domain.CampaignFilter) ([]domain.CampaignView, error) {
	const op = "list campaigns"
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated(op)
	}
	switch {
	case actor.Can(domain.PermViewAllCampaigns):
	case actor.Can(domain.PermManageCampaigns):
		filter.OwnerID = actor.ID
	default:
		return nil, domain.Forbidden(op, "role may not manage campaigns")
	}
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, domain.Validation(op, fmt.Sprintf("unknown status %q", s))
		}
	}

	list, err := u.campaigns.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(list) == 0 {
		return []domain.CampaignView{}, nil
	}

	now := u.clock.Now()
	lifetime, trailing, err := u.summarise(ctx, list, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	views := make([]domain.CampaignView, 0, len(list))
	for _, c := range list {
		view, err := u.synchronise(ctx, c, lifetime[c.ID], trailing[c.ID], now)
		if err != nil {
			u.log.WarnContext(ctx, "campaign snapshot write-back failed",
				slog.String("campaign", c.PublicID), slog.Any("error", err))
		}
		views = append(views, view)
	}
	return views, nil
}

// RecordDailyMetrics upserts one UTC day of metrics for a campaign.
func (u *CampaignUseCase) RecordDailyMetrics(ctx context.Context, actor domain.Actor, publicID string, date time.Time, values domain.MetricValues) (*domain.DailyMetric, error) {
	const op = "record daily metrics"
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated(op)
	}
	var problems []string
	if date.IsZero() {
		problems = append(problems, "date is required")
	}
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"impressions", values.Impressions},
		{"clicks", values.Clicks},
		{"conversions", values.Conversions},
		{"spendCents", values.SpendCents},
		{"revenueCents", values.RevenueCents},
	} {
		if f.value < 0 {
			problems = append(problems, f.name+" must not be negative")
		}
	}
	if len(problems) > 0 {
		return nil, domain.Validation(op, problems...)
	}

	c, err := u.campaigns.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !actor.Can(domain.PermIngestMetrics) && c.OwnerID != actor.ID {
		return nil, domain.Forbidden(op, "actor does not own the campaign")
	}

	day := domain.UTCDay(date)
	row, err := u.metrics.UpsertDaily(ctx, c.ID, day, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.record(ctx, domain.Event{
		EntityType:  domain.EntityCampaign,
		EntityID:    c.PublicID,
		EventType:   domain.EventMetricsRecorded,
		Payload:     map[string]any{"date": day.Format(time.DateOnly)},
		PerformedBy: actor.ID,
	})
	return row, nil
}

func authorize(op string, actor domain.Actor, p domain.Permission) error {
	if !actor.Authenticated() {
		return domain.Unauthenticated(op)
	}
	if !actor.Can(p) {
		return domain.Forbidden(op, fmt.Sprintf("missing permission %s", p))
	}
	return nil
}

// ownedCampaign loads a campaign the actor may manage.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, op string, actor domain.Actor, publicID string) (*domain.Campaign, error) {
	if !actor.Authenticated() {
		return nil, domain.Unauthenticated(op)
	}
	if publicID == "" {
		return nil, domain.Validation(op, "campaign id is required")
	}
	c, err := u.campaigns.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !actor.Owns(c.OwnerID) {
		return nil, domain.Forbidden(op, "actor does not own the campaign")
	}
	return c, nil
}

// record appends an audit event. Failures are logged and never fail the
// operation.
func (u *CampaignUseCase) record(ctx context.Context, e domain.Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = u.clock.Now()
	}
	if err := u.events.Record(ctx, e); err != nil {
		u.log.WarnContext(ctx, "audit event not recorded",
			slog.String("event", e.EventType), slog.String("entity", e.EntityID), slog.Any("error", err))
	}
}

func changedFields(p domain.CampaignPatch) []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(p.Name != nil, "name")
	add(p.Objective != nil, "objective")
	add(p.Status != nil, "status")
	add(p.Budget != nil, "budget")
	add(p.Targeting != nil, "targeting")
	add(p.Creative != nil, "creative")
	add(p.Schedule != nil, "schedule")
	add(p.Metadata != nil, "metadata")
	return out
}
