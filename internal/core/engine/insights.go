package engine

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
)

const (
	// dateLayout renders UTC days the way the insight payload exposes them.
	dateLayout = "2006-01-02T15:04:05.000Z"

	overPacingFactor  = 1.1
	underPacingFactor = 0.6
)

// BuildInsights analyses a daily series for one campaign. The history
// field of the result is left for the caller to fill.
func BuildInsights(series []domain.DailyMetric, budget domain.Budget, windowDays int, now time.Time) domain.Insights {
	if windowDays <= 0 {
		windowDays = domain.DefaultInsightWindowDays
	}
	series = slices.Clone(series)
	slices.SortStableFunc(series, func(a, b domain.DailyMetric) int { return a.Date.Compare(b.Date) })

	var total domain.MetricTotals
	daily := make([]domain.DailyInsight, 0, len(series))
	for _, row := range series {
		total.Add(row.MetricValues)
		var t domain.MetricTotals
		t.Add(row.MetricValues)
		daily = append(daily, domain.DailyInsight{
			Date:         domain.UTCDay(row.Date).Format(dateLayout),
			MetricTotals: t,
			RateSet:      Rates(t),
		})
	}

	summary := domain.InsightSummary{MetricTotals: total, RateSet: Rates(total), Days: len(daily)}
	trends := Trend(daily)
	pacing := Pace(total.SpendCents, len(daily), budget.DailyCents)

	return domain.Insights{
		WindowDays:      windowDays,
		GeneratedAt:     now.UTC(),
		Summary:         summary,
		Daily:           daily,
		Trends:          trends,
		Pacing:          pacing,
		Highlights:      highlight(daily),
		Recommendations: Recommend(summary, trends, pacing),
	}
}

// Trend compares the most recent (up to) seven days with the same number
// of days before them.
func Trend(daily []domain.DailyInsight) domain.Trends {
	size := min(len(daily), TrailingWindowDays)
	recent := daily[len(daily)-size:]
	previous := daily[max(0, len(daily)-2*size) : len(daily)-size]

	return domain.Trends{
		CTRChange:            PercentageChange(mean(recent, ctrOf), mean(previous, ctrOf)),
		ConversionRateChange: PercentageChange(mean(recent, convOf), mean(previous, convOf)),
		SpendChange:          PercentageChange(mean(recent, spendOf), mean(previous, spendOf)),
		SampleDays:           size,
	}
}

// PercentageChange returns (current-previous)/|previous| to four decimals,
// or nil when previous is zero or either value is not finite.
func PercentageChange(current, previous float64) *float64 {
	if previous == 0 || !finite(current) || !finite(previous) {
		return nil
	}
	v := roundTo((current-previous)/math.Abs(previous), 4)
	return &v
}

// Pace compares average observed daily spend with the daily budget.
func Pace(totalSpendCents int64, daysObserved int, budgetDailyCents int64) domain.Pacing {
	p := domain.Pacing{BudgetDailyCents: budgetDailyCents, DaysObserved: daysObserved}
	if daysObserved > 0 {
		p.AvgDailySpendCents = int64(math.Round(float64(totalSpendCents) / float64(daysObserved)))
	}
	avg, budget := float64(p.AvgDailySpendCents), float64(budgetDailyCents)
	switch {
	case budgetDailyCents <= 0:
		p.Status = domain.PacingUnbounded
	case avg > budget*overPacingFactor:
		p.Status = domain.PacingOver
	case avg < budget*underPacingFactor:
		p.Status = domain.PacingUnder
	default:
		p.Status = domain.PacingOnTrack
	}
	return p
}

// Recommend turns trends and pacing into at most MaxRecommendations
// suggestions, most specific first.
func Recommend(s domain.InsightSummary, t domain.Trends, p domain.Pacing) []domain.Recommendation {
	var out []domain.Recommendation
	add := func(kind string, sev domain.RecommendationSeverity, msg, action string) {
		out = append(out, domain.Recommendation{ID: uuid.NewString(), Type: kind, Severity: sev, Message: msg, Action: action})
	}

	if t.CTRChange != nil && *t.CTRChange <= -0.10 {
		add("creative", domain.RecommendationMedium,
			"Click-through rate dropped week over week.",
			"Refresh the headline or visual to recover engagement.")
	}
	if t.ConversionRateChange != nil && *t.ConversionRateChange <= -0.15 {
		add("conversion", domain.RecommendationMedium,
			"Conversion rate fell compared with the previous window.",
			"Review the landing page and offer for recent changes.")
	}
	if s.Conversions == 0 && s.Clicks >= 100 {
		add("conversion_tracking", domain.RecommendationHigh,
			"Clicks are arriving but no conversions were recorded.",
			"Verify the conversion tracking setup on the landing page.")
	}
	if s.ConversionRate < 0.02 && s.Clicks >= 150 {
		add("funnel", domain.RecommendationHigh,
			"Fewer than 2% of clicks convert.",
			"Align the landing page with the ad promise and shorten the signup flow.")
	}
	switch {
	case p.Status == domain.PacingOver:
		add("budget", domain.RecommendationHigh,
			"Average daily spend is above the daily budget.",
			"Lower bids or raise the daily budget deliberately.")
	case p.Status == domain.PacingUnder && p.DaysObserved >= 3:
		add("delivery", domain.RecommendationLow,
			"The campaign is spending well below its daily budget.",
			"Broaden targeting keywords or add placements to increase reach.")
	}

	if len(out) > domain.MaxRecommendations {
		out = out[:domain.MaxRecommendations]
	}
	return out
}

func highlight(daily []domain.DailyInsight) domain.Highlights {
	var h domain.Highlights
	for i := range daily {
		d := &daily[i]
		if h.TopCTRDay == nil || d.CTR > h.TopCTRDay.CTR {
			h.TopCTRDay = d
		}
		if h.TopConversionDay == nil || d.Conversions > h.TopConversionDay.Conversions {
			h.TopConversionDay = d
		}
	}
	if h.TopCTRDay != nil {
		top := *h.TopCTRDay
		h.TopCTRDay = &top
	}
	if h.TopConversionDay != nil {
		top := *h.TopConversionDay
		h.TopConversionDay = &top
	}
	return h
}

func mean(days []domain.DailyInsight, value func(domain.DailyInsight) float64) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range days {
		sum += value(d)
	}
	return sum / float64(len(days))
}

func ctrOf(d domain.DailyInsight) float64   { return d.CTR }
func convOf(d domain.DailyInsight) float64  { return d.ConversionRate }
func spendOf(d domain.DailyInsight) float64 { return float64(d.SpendCents) }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
