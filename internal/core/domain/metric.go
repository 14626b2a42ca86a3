package domain

import "time"

// MetricValues are the raw counters reported for one campaign day.
type MetricValues struct {
	Impressions  int64          `json:"impressions"`
	Clicks       int64          `json:"clicks"`
	Conversions  int64          `json:"conversions"`
	SpendCents   int64          `json:"spendCents"`
	RevenueCents int64          `json:"revenueCents"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// DailyMetric is the stored row for one (campaign, UTC day) pair.
type DailyMetric struct {
	CampaignID int64
	Date       time.Time
	MetricValues
	UpdatedAt time.Time
}

// MetricTotals is a SUM over any number of daily rows.
type MetricTotals struct {
	Impressions  int64 `json:"impressions"`
	Clicks       int64 `json:"clicks"`
	Conversions  int64 `json:"conversions"`
	SpendCents   int64 `json:"spendCents"`
	RevenueCents int64 `json:"revenueCents"`
}

// Add accumulates v into t.
func (t *MetricTotals) Add(v MetricValues) {
	t.Impressions += v.Impressions
	t.Clicks += v.Clicks
	t.Conversions += v.Conversions
	t.SpendCents += v.SpendCents
	t.RevenueCents += v.RevenueCents
}

// DateRange is an inclusive range of UTC days. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}

// TrailingRange returns the range covering the last days UTC days up to and
// including asOf's day.
func TrailingRange(asOf time.Time, days int) DateRange {
	to := UTCDay(asOf)
	return DateRange{From: to.AddDate(0, 0, -(days - 1)), To: to}
}

// UTCDay truncates t to midnight UTC.
func UTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
