package domain

// RateSet holds the rates derived from a MetricTotals.
type RateSet struct {
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
	CPCCents       int64   `json:"cpcCents"`
	CPACents       int64   `json:"cpaCents"`
}

// TrailingMetrics is the trailing-window sum together with its own rates.
type TrailingMetrics struct {
	MetricTotals
	RateSet
}

// Averages are the lifetime rates.
type Averages struct {
	RateSet
	// ROAS is nil when there is no lifetime spend.
	ROAS *float64 `json:"roas"`
}

// Forecast projects daily delivery from what has been observed so far.
type Forecast struct {
	ExpectedDailySpendCents  int64    `json:"expectedDailySpendCents"`
	ExpectedDailyConversions float64  `json:"expectedDailyConversions"`
	ProjectedROAS            *float64 `json:"projectedRoas"`
}

// DerivedMetrics is recomputed on every read and never stored.
type DerivedMetrics struct {
	Lifetime   MetricTotals    `json:"lifetime"`
	Trailing   TrailingMetrics `json:"trailing7Days"`
	Averages   Averages        `json:"averages"`
	Forecast   Forecast        `json:"forecast"`
	DaysActive int             `json:"daysActive"`
}

// ComplianceStatus is the outcome of a compliance evaluation.
type ComplianceStatus string

const (
	CompliancePass        ComplianceStatus = "pass"
	ComplianceNeedsReview ComplianceStatus = "needs_review"
	ComplianceHalted      ComplianceStatus = "halted"
)

// Severity grades a compliance violation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Violation is one failed compliance rule.
type Violation struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ComplianceResult lists violations with criticals before warnings.
type ComplianceResult struct {
	Status     ComplianceStatus `json:"status"`
	RiskScore  int              `json:"riskScore"`
	Violations []Violation      `json:"violations"`
}
