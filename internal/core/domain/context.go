package domain

import "fmt"

// DisplayContext is a surface on which paid placements are shown.
type DisplayContext string

const (
	ContextGlobalFeed    DisplayContext = "global_feed"
	ContextCommunityFeed DisplayContext = "community_feed"
	ContextSearch        DisplayContext = "search"
	ContextCourseLive    DisplayContext = "course_live"
)

// ContextConfig holds the serving defaults of a display context.
type ContextConfig struct {
	// Interval is the number of posts between two ads. Zero means the
	// context is served in a single pass at the top of the page.
	Interval   int
	MaxPerPage int
	Slot       string
	Surface    string
	Label      string
	// Boost is added to the ranking score of every candidate.
	Boost float64
	// RequiresKeywords rejects campaigns targeting this context without
	// at least one keyword.
	RequiresKeywords bool
}

var contextConfigs = map[DisplayContext]ContextConfig{
	ContextGlobalFeed: {
		Interval: 5, MaxPerPage: 3, Slot: "feed-inline", Surface: "feed",
		Label: "Sponsored", Boost: 4,
	},
	ContextCommunityFeed: {
		Interval: 6, MaxPerPage: 3, Slot: "feed-community", Surface: "community",
		Label: "Sponsored", Boost: 4,
	},
	ContextSearch: {
		Interval: 0, MaxPerPage: 4, Slot: "search-top", Surface: "search",
		Label: "Promoted", Boost: 8, RequiresKeywords: true,
	},
	ContextCourseLive: {
		Interval: 3, MaxPerPage: 2, Slot: "course-live", Surface: "course",
		Label: "Partner", Boost: 6,
	},
}

// DisplayContexts lists every known context in a stable order.
var DisplayContexts = []DisplayContext{
	ContextGlobalFeed, ContextCommunityFeed, ContextSearch, ContextCourseLive,
}

// Config returns the serving defaults for c. Unknown contexts fall back to
// the global feed.
func (c DisplayContext) Config() ContextConfig {
	if cfg, ok := contextConfigs[c]; ok {
		return cfg
	}
	return contextConfigs[ContextGlobalFeed]
}

// Valid reports whether c is a known context.
func (c DisplayContext) Valid() bool {
	_, ok := contextConfigs[c]
	return ok
}

// ParseContext converts raw into a DisplayContext.
func ParseContext(raw string) (DisplayContext, error) {
	c := DisplayContext(raw)
	if !c.Valid() {
		return "", Validation("parse context", fmt.Sprintf("unknown placement context %q", raw))
	}
	return c, nil
}
