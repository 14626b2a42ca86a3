package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// MetricStore keeps daily metric rows keyed by campaign and UTC day.
type MetricStore struct {
	mu    sync.RWMutex
	clock port.Clock
	rows  map[int64]map[time.Time]*domain.DailyMetric
}

// NewMetricStore creates an empty store.
func NewMetricStore(clock port.Clock) *MetricStore {
	if clock == nil {
		clock = port.SystemClock
	}
	return &MetricStore{clock: clock, rows: make(map[int64]map[time.Time]*domain.DailyMetric)}
}

// UpsertDaily replaces the numeric fields of the day's row and merges
// metadata keys into it.
func (s *MetricStore) UpsertDaily(_ context.Context, campaignID int64, date time.Time, values domain.MetricValues) (*domain.DailyMetric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := domain.UTCDay(date)
	days, ok := s.rows[campaignID]
	if !ok {
		days = make(map[time.Time]*domain.DailyMetric)
		s.rows[campaignID] = days
	}
	row, ok := days[day]
	if !ok {
		row = &domain.DailyMetric{CampaignID: campaignID, Date: day}
		days[day] = row
	}
	meta := row.Metadata
	row.MetricValues = values
	if len(meta) > 0 || len(values.Metadata) > 0 {
		merged := make(map[string]any, len(meta)+len(values.Metadata))
		maps.Copy(merged, meta)
		maps.Copy(merged, values.Metadata)
		row.Metadata = merged
	}
	row.UpdatedAt = s.clock.Now()

	out := *row
	out.Metadata = maps.Clone(row.Metadata)
	return &out, nil
}

func (s *MetricStore) ListByCampaign(_ context.Context, campaignID int64, windowDays int, asOf time.Time) ([]domain.DailyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := domain.TrailingRange(asOf, windowDays)
	out := make([]domain.DailyMetric, 0)
	for day, row := range s.rows[campaignID] {
		if !r.Contains(day) {
			continue
		}
		cp := *row
		cp.Metadata = maps.Clone(row.Metadata)
		out = append(out, cp)
	}
	slices.SortFunc(out, func(a, b domain.DailyMetric) int { return a.Date.Compare(b.Date) })
	return out, nil
}

func (s *MetricStore) SummariseByCampaignIDs(_ context.Context, ids []int64, r domain.DateRange) (map[int64]domain.MetricTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]domain.MetricTotals, len(ids))
	for _, id := range ids {
		out[id] = s.sum(id, r)
	}
	return out, nil
}

func (s *MetricStore) SummariseWindow(_ context.Context, campaignID int64, windowDays int, asOf time.Time) (domain.MetricTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sum(campaignID, domain.TrailingRange(asOf, windowDays)), nil
}

func (s *MetricStore) sum(campaignID int64, r domain.DateRange) domain.MetricTotals {
	var t domain.MetricTotals
	for day, row := range s.rows[campaignID] {
		if r.Contains(day) {
			t.Add(row.MetricValues)
		}
	}
	return t
}

var _ port.MetricStore = (*MetricStore)(nil)
