package domain

// PlacementMetrics is the metric snapshot attached to a served placement.
type PlacementMetrics struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	CTR              float64 `json:"ctr"`
	PerformanceScore int     `json:"performanceScore"`
	RankScore        float64 `json:"rankScore"`
}

// Tracking identifies a placement for impression and click attribution.
type Tracking struct {
	// ImpressionKey is reproducible for a (campaign, context, position)
	// triple.
	ImpressionKey string `json:"impressionKey"`
	// RequestID is unique per generated placement.
	RequestID string `json:"requestId"`
}

// Placement is a single ad slot instance generated for a display context.
type Placement struct {
	PlacementID string           `json:"placementId"`
	CampaignID  string           `json:"campaignId"`
	Context     DisplayContext   `json:"context"`
	Slot        string           `json:"slot"`
	Surface     string           `json:"surface"`
	Label       string           `json:"label"`
	Position    int              `json:"position"`
	Headline    string           `json:"headline"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty"`
	AssetURL    string           `json:"assetUrl,omitempty"`
	Preview     Preview          `json:"preview"`
	Metrics     PlacementMetrics `json:"metrics"`
	Tracking    Tracking         `json:"tracking"`
	Targeting   Targeting        `json:"targeting"`
}

// PlacementRequest asks for up to Limit placements in Context. Keywords
// reorder candidates by affinity.
type PlacementRequest struct {
	Context  DisplayContext
	Limit    int
	Keywords []string
}

// EntryKind tags a feed entry.
type EntryKind string

const (
	EntryPost EntryKind = "post"
	EntryAd   EntryKind = "ad"
)

// FeedEntry is either a content post or an ad placement.
type FeedEntry[T any] struct {
	Kind EntryKind  `json:"kind"`
	Post *T         `json:"post,omitempty"`
	Ad   *Placement `json:"ad,omitempty"`
}

// ServedAd summarises one placement included in a feed page.
type ServedAd struct {
	PlacementID string         `json:"placementId"`
	CampaignID  string         `json:"campaignId"`
	Slot        string         `json:"slot"`
	Position    int            `json:"position"`
	Headline    string         `json:"headline"`
	Context     DisplayContext `json:"context"`
	Tracking    Tracking       `json:"tracking"`
}

// AdsSummary lists the ads served in a feed page.
type AdsSummary struct {
	Count  int        `json:"count"`
	Served []ServedAd `json:"served"`
}

// FeedPage is an interleaved content page.
type FeedPage[T any] struct {
	Entries []FeedEntry[T] `json:"entries"`
	Ads     AdsSummary     `json:"ads"`
	// Spotlights is optional highlight data and may be empty when the
	// spotlight source is unavailable.
	Spotlights         []Spotlight `json:"spotlights"`
	SpotlightsDegraded bool        `json:"spotlightsDegraded"`
}

// FeedRequest describes one content page to interleave.
type FeedRequest[T any] struct {
	Posts   []T
	Context DisplayContext
	Page    int
	PerPage int
	// Limit overrides the context's MaxPerPage when positive.
	Limit    int
	Keywords []string
}

// Spotlight is a highly scored campaign surfaced next to a feed.
type Spotlight struct {
	CampaignID string  `json:"campaignId"`
	Score      float64 `json:"score"`
}
