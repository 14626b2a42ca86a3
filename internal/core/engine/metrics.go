// Package engine holds the pure campaign computations: derived metrics,
// compliance, scoring, lifecycle transitions, placement ranking, feed
// interleaving and trend insights. Nothing in here performs I/O; the
// current time is always passed in.
package engine

import (
	"math"
	"time"

	"campus-ads/internal/core/domain"
)

// TrailingWindowDays is the short-term window compared with lifetime totals.
const TrailingWindowDays = 7

const day = 24 * time.Hour

// Rate returns numerator/denominator rounded to four decimals, or zero when
// the denominator is not positive.
func Rate(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return roundTo(float64(numerator)/float64(denominator), 4)
}

// CentsPerUnit returns cents/units rounded to whole cents, or zero when
// units is not positive.
func CentsPerUnit(cents, units int64) int64 {
	if units <= 0 {
		return 0
	}
	return int64(math.Round(float64(cents) / float64(units)))
}

// Rates derives CTR, conversion rate, CPC and CPA from t.
func Rates(t domain.MetricTotals) domain.RateSet {
	return domain.RateSet{
		CTR:            Rate(t.Clicks, t.Impressions),
		ConversionRate: Rate(t.Conversions, t.Clicks),
		CPCCents:       CentsPerUnit(t.SpendCents, t.Clicks),
		CPACents:       CentsPerUnit(t.SpendCents, t.Conversions),
	}
}

// DaysActive counts the days the schedule has been running as of now,
// never less than one.
func DaysActive(s domain.Schedule, now time.Time) int {
	start := now
	if s.StartAt != nil {
		start = *s.StartAt
	}
	end := now
	if s.Ended(now) {
		end = *s.EndAt
	}
	span := end.Sub(start)
	if span < 0 {
		span = -span
	}
	return max(1, int(span/day)+1)
}

// Derive computes the derived metrics of c from its lifetime and trailing
// sums.
func Derive(c *domain.Campaign, lifetime, trailing domain.MetricTotals, now time.Time) domain.DerivedMetrics {
	days := DaysActive(c.Schedule, now)
	return domain.DerivedMetrics{
		Lifetime: lifetime,
		Trailing: domain.TrailingMetrics{
			MetricTotals: trailing,
			RateSet:      Rates(trailing),
		},
		Averages: domain.Averages{
			RateSet: Rates(lifetime),
			ROAS:    ratio(lifetime.RevenueCents, lifetime.SpendCents),
		},
		Forecast: domain.Forecast{
			ExpectedDailySpendCents:  int64(math.Round(float64(lifetime.SpendCents) / float64(days))),
			ExpectedDailyConversions: roundTo(float64(lifetime.Conversions)/float64(days), 2),
			ProjectedROAS:            ratio(trailing.RevenueCents, trailing.SpendCents),
		},
		DaysActive: days,
	}
}

// ratio returns revenue/spend to two decimals, or nil without spend.
func ratio(revenue, spend int64) *float64 {
	if spend <= 0 {
		return nil
	}
	v := roundTo(float64(revenue)/float64(spend), 2)
	return &v
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
