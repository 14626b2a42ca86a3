package engine

import (
	"math"

	"campus-ads/internal/core/domain"
)

// PerformanceScore condenses derived metrics into a 0-100 score, reduced
// when compliance is not clean.
func PerformanceScore(m domain.DerivedMetrics, status domain.ComplianceStatus) int {
	base := baseScore(m)
	switch status {
	case domain.ComplianceHalted:
		return max(5, roundInt(float64(base)*0.25))
	case domain.ComplianceNeedsReview:
		return roundInt(float64(base) * 0.75)
	default:
		return min(100, max(0, base))
	}
}

func baseScore(m domain.DerivedMetrics) int {
	ctr := min(30, roundInt(m.Averages.CTR*1000))
	conv := min(30, roundInt(m.Averages.ConversionRate*1000))
	roas := 0
	if m.Averages.ROAS != nil {
		roas = min(20, roundInt(*m.Averages.ROAS*10))
	}
	stability := 4
	if m.Forecast.ExpectedDailySpendCents > 0 {
		stability = 10
	}
	volume := min(10, roundInt(math.Log10(float64(m.Lifetime.Impressions)+1)*4))
	return ctr + conv + roas + stability + volume
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
