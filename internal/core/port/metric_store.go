package port

import (
	"context"
	"time"

	"campus-ads/internal/core/domain"
)

// MetricStore holds one row per campaign per UTC day and provides the SUM
// aggregates the engine works from.
type MetricStore interface {
	// UpsertDaily inserts the row for (campaignID, day of date) or merges
	// values into the existing one.
	UpsertDaily(ctx context.Context, campaignID int64, date time.Time, values domain.MetricValues) (*domain.DailyMetric, error)
	// ListByCampaign returns the rows of the last windowDays days up to
	// asOf, ascending by date.
	ListByCampaign(ctx context.Context, campaignID int64, windowDays int, asOf time.Time) ([]domain.DailyMetric, error)
	// SummariseByCampaignIDs sums rows per campaign. A zero range sums
	// everything.
	SummariseByCampaignIDs(ctx context.Context, ids []int64, r domain.DateRange) (map[int64]domain.MetricTotals, error)
	// SummariseWindow sums the last windowDays days up to asOf.
	SummariseWindow(ctx context.Context, campaignID int64, windowDays int, asOf time.Time) (domain.MetricTotals, error)
}
