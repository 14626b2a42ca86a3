package domain

import "time"

// MaxInsightHistory bounds Metadata.InsightsHistory; older entries are
// evicted first.
const MaxInsightHistory = 20

// Metadata is the typed form of the campaign metadata bag.
type Metadata struct {
	Placements           []PlacementConfig     `json:"placements"`
	BrandSafety          BrandSafety           `json:"brandSafety"`
	Preview              Preview               `json:"preview"`
	InsightsHistory      []InsightHistoryEntry `json:"insightsHistory,omitempty"`
	LastComplianceStatus ComplianceStatus      `json:"lastComplianceStatus,omitempty"`
	ComplianceRiskScore  *int                  `json:"complianceRiskScore,omitempty"`
	ComplianceViolations []Violation           `json:"complianceViolations,omitempty"`
	ComplianceCheckedAt  *time.Time            `json:"complianceCheckedAt,omitempty"`
}

// PlacementConfig configures where a campaign may be served. Contexts are
// unique within a campaign.
type PlacementConfig struct {
	Context DisplayContext `json:"context"`
	Slot    string         `json:"slot"`
	Surface string         `json:"surface"`
	Label   string         `json:"label"`
}

// BrandSafety holds the campaign's brand-safety declaration. Categories is
// never empty once normalised.
type BrandSafety struct {
	Categories     []string `json:"categories"`
	ExcludedTopics []string `json:"excludedTopics"`
	ReviewNotes    string   `json:"reviewNotes,omitempty"`
}

// Preview is the styling used when the creative is rendered in a card.
type Preview struct {
	Theme       string `json:"theme,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
	Layout      string `json:"layout,omitempty"`
}

// AppendInsight appends e and evicts the oldest entries beyond
// MaxInsightHistory.
func (m *Metadata) AppendInsight(e InsightHistoryEntry) {
	history := append(m.InsightsHistory, e)
	if over := len(history) - MaxInsightHistory; over > 0 {
		history = append([]InsightHistoryEntry(nil), history[over:]...)
	}
	m.InsightsHistory = history
}

// Clone returns a copy that shares no slices with m.
func (m Metadata) Clone() Metadata {
	out := m
	out.Placements = append([]PlacementConfig(nil), m.Placements...)
	out.BrandSafety.Categories = append([]string(nil), m.BrandSafety.Categories...)
	out.BrandSafety.ExcludedTopics = append([]string(nil), m.BrandSafety.ExcludedTopics...)
	out.InsightsHistory = append([]InsightHistoryEntry(nil), m.InsightsHistory...)
	out.ComplianceViolations = append([]Violation(nil), m.ComplianceViolations...)
	if m.ComplianceRiskScore != nil {
		v := *m.ComplianceRiskScore
		out.ComplianceRiskScore = &v
	}
	return out
}
