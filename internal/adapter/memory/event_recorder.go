package memory

import (
	"context"
	"slices"
	"sync"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// EventRecorder appends audit events to an in-memory log.
type EventRecorder struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) Record(_ context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns the recorded events, oldest first.
func (r *EventRecorder) Events() []domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

var _ port.EventRecorder = (*EventRecorder)(nil)
