package port

import (
	"context"

	"campus-ads/internal/core/domain"
)

// EventRecorder appends audit events. Callers treat failures as
// non-fatal.
type EventRecorder interface {
	Record(ctx context.Context, e domain.Event) error
}
