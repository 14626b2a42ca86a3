package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"campus-ads/internal/core/domain"
)

const (
	minHeadlineLength = 12
	maxHeadlineLength = 160
	// overspendTolerance is the share of allowable spend tolerated before a
	// campaign is halted.
	overspendTolerance = 1.15
	// zeroConversionClicks is the trailing click volume at which a campaign
	// without conversions is flagged.
	zeroConversionClicks = 200
)

// prohibitedPhrases are matched case-insensitively against headline and
// description.
var prohibitedPhrases = []string{
	"guaranteed results",
	"guaranteed pass",
	"100% pass",
	"get rich quick",
	"risk free",
	"risk-free",
	"miracle cure",
	"instant diploma",
	"buy followers",
	"casino",
}

type rule struct {
	code     string
	severity domain.Severity
	check    func(c *domain.Campaign, m domain.DerivedMetrics) (string, bool)
}

var complianceRules = []rule{
	{
		code:     "headline_too_short",
		severity: domain.SeverityCritical,
		check: func(c *domain.Campaign, _ domain.DerivedMetrics) (string, bool) {
			n := utf8.RuneCountInString(strings.TrimSpace(c.Creative.Headline))
			return fmt.Sprintf("headline must be at least %d characters", minHeadlineLength), n < minHeadlineLength
		},
	},
	{
		code:     "headline_too_long",
		severity: domain.SeverityWarning,
		check: func(c *domain.Campaign, _ domain.DerivedMetrics) (string, bool) {
			n := utf8.RuneCountInString(strings.TrimSpace(c.Creative.Headline))
			return fmt.Sprintf("headline exceeds %d characters", maxHeadlineLength), n > maxHeadlineLength
		},
	},
	{
		code:     "missing_landing_page",
		severity: domain.SeverityCritical,
		check: func(c *domain.Campaign, _ domain.DerivedMetrics) (string, bool) {
			return "creative has no landing page URL", strings.TrimSpace(c.Creative.URL) == ""
		},
	},
	{
		code:     "prohibited_copy",
		severity: domain.SeverityCritical,
		check: func(c *domain.Campaign, _ domain.DerivedMetrics) (string, bool) {
			phrase, found := findProhibited(c.Creative.Headline + " " + c.Creative.Description)
			return fmt.Sprintf("creative contains prohibited phrase %q", phrase), found
		},
	},
	{
		code:     "missing_keywords",
		severity: domain.SeverityWarning,
		check: func(c *domain.Campaign, _ domain.DerivedMetrics) (string, bool) {
			return "campaign has no targeting keywords", len(c.Targeting.Keywords) == 0
		},
	},
	{
		code:     "overspend",
		severity: domain.SeverityCritical,
		check: func(c *domain.Campaign, m domain.DerivedMetrics) (string, bool) {
			allowable := c.Budget.DailyCents * int64(m.DaysActive)
			over := allowable > 0 && float64(m.Lifetime.SpendCents) > float64(allowable)*overspendTolerance
			return fmt.Sprintf("lifetime spend %d exceeds allowable spend %d by more than 15%%", m.Lifetime.SpendCents, allowable), over
		},
	},
	{
		code:     "zero_conversions",
		severity: domain.SeverityWarning,
		check: func(c *domain.Campaign, m domain.DerivedMetrics) (string, bool) {
			flagged := c.Status == domain.StatusActive &&
				m.Trailing.Conversions == 0 && m.Trailing.Clicks >= zeroConversionClicks
			return fmt.Sprintf("no conversions from %d clicks in the last %d days", m.Trailing.Clicks, TrailingWindowDays), flagged
		},
	},
}

// EvaluateCompliance runs every rule against c and its derived metrics.
func EvaluateCompliance(c *domain.Campaign, m domain.DerivedMetrics) domain.ComplianceResult {
	var critical, warnings []domain.Violation
	for _, r := range complianceRules {
		msg, failed := r.check(c, m)
		if !failed {
			continue
		}
		v := domain.Violation{Code: r.code, Severity: r.severity, Message: msg}
		if r.severity == domain.SeverityCritical {
			critical = append(critical, v)
		} else {
			warnings = append(warnings, v)
		}
	}

	status := domain.CompliancePass
	switch {
	case len(critical) > 0:
		status = domain.ComplianceHalted
	case len(warnings) > 0:
		status = domain.ComplianceNeedsReview
	}
	risk := min(95, max(5, 100-25*len(critical)-10*len(warnings)))

	return domain.ComplianceResult{
		Status:     status,
		RiskScore:  risk,
		Violations: append(append(make([]domain.Violation, 0, len(critical)+len(warnings)), critical...), warnings...),
	}
}

func findProhibited(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range prohibitedPhrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}
