package domain

import "time"

// DefaultInsightWindowDays is used when a caller does not pick a window.
const DefaultInsightWindowDays = 14

// MaxRecommendations bounds the recommendations produced per run.
const MaxRecommendations = 10

// PacingStatus compares observed daily spend with the daily budget.
type PacingStatus string

const (
	PacingUnbounded PacingStatus = "unbounded"
	PacingOver      PacingStatus = "over"
	PacingUnder     PacingStatus = "under"
	PacingOnTrack   PacingStatus = "on_track"
)

// InsightSummary totals the analysed window.
type InsightSummary struct {
	MetricTotals
	RateSet
	Days int `json:"days"`
}

// DailyInsight is one day of the analysed series with its rates.
type DailyInsight struct {
	// Date is the UTC day formatted as an ISO-8601 timestamp with
	// milliseconds.
	Date string `json:"date"`
	MetricTotals
	RateSet
}

// Trends compares the most recent window with the one preceding it. A nil
// change means it is undefined.
type Trends struct {
	CTRChange            *float64 `json:"ctrChange"`
	ConversionRateChange *float64 `json:"conversionRateChange"`
	SpendChange          *float64 `json:"spendChange"`
	SampleDays           int      `json:"sampleDays"`
}

// Pacing describes budget consumption over the observed days.
type Pacing struct {
	Status             PacingStatus `json:"status"`
	AvgDailySpendCents int64        `json:"avgDailySpendCents"`
	BudgetDailyCents   int64        `json:"budgetDailyCents"`
	DaysObserved       int          `json:"daysObserved"`
}

// Highlights point at the best days of the series.
type Highlights struct {
	TopCTRDay        *DailyInsight `json:"topCtrDay"`
	TopConversionDay *DailyInsight `json:"topConversionDay"`
}

// RecommendationSeverity grades a recommendation.
type RecommendationSeverity string

const (
	RecommendationLow    RecommendationSeverity = "low"
	RecommendationMedium RecommendationSeverity = "medium"
	RecommendationHigh   RecommendationSeverity = "high"
)

// Recommendation is an actionable suggestion derived from trends.
type Recommendation struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Severity RecommendationSeverity `json:"severity"`
	Message  string                 `json:"message"`
	Action   string                 `json:"action"`
}

// Insights is the payload returned by an insight run.
type Insights struct {
	CampaignID      string                `json:"campaignId"`
	WindowDays      int                   `json:"windowDays"`
	GeneratedAt     time.Time             `json:"generatedAt"`
	Summary         InsightSummary        `json:"summary"`
	Daily           []DailyInsight        `json:"daily"`
	Trends          Trends                `json:"trends"`
	Pacing          Pacing                `json:"pacing"`
	Highlights      Highlights            `json:"highlights"`
	Recommendations []Recommendation      `json:"recommendations"`
	History         []InsightHistoryEntry `json:"history"`
}

// InsightHistoryEntry is the audit record kept on the campaign for each
// insight run.
type InsightHistoryEntry struct {
	ID              string           `json:"id"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	ActorID         string           `json:"actorId"`
	WindowDays      int              `json:"windowDays"`
	Summary         InsightSummary   `json:"summary"`
	Trends          Trends           `json:"trends"`
	Pacing          Pacing           `json:"pacing"`
	Recommendations []Recommendation `json:"recommendations"`
}
