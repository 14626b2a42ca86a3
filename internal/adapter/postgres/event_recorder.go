package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// EventRecorder appends audit events to the audit_events table.
type EventRecorder struct {
	db Querier
}

func NewEventRecorder(db Querier) *EventRecorder {
	return &EventRecorder{db: db}
}

func (r *EventRecorder) Record(ctx context.Context, e domain.Event) error {
	payload := e.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO audit_events (entity_type, entity_id, event_type, payload, performed_by, occurred_at)
        VALUES ($1,$2,$3,$4,$5,$6)`,
		e.EntityType, e.EntityID, e.EventType, raw, e.PerformedBy, e.OccurredAt.UTC())
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

var _ port.EventRecorder = (*EventRecorder)(nil)
