package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxNameLength     = 120
	maxHeadlineLength = 280
	defaultCurrency   = "USD"
	defaultLanguage   = "en"
	defaultCategory   = "standard"
)

// PlacementInput accepts either a bare context name or a placement object.
type PlacementInput struct {
	Context string `json:"context"`
	Slot    string `json:"slot,omitempty"`
	Surface string `json:"surface,omitempty"`
	Label   string `json:"label,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PlacementInput) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = PlacementInput{Context: name}
		return nil
	}
	type plain PlacementInput
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("placement must be a context name or an object: %w", err)
	}
	*p = PlacementInput(obj)
	return nil
}

// CreateCampaignInput is the request to create a campaign.
type CreateCampaignInput struct {
	Name        string           `json:"name"`
	Objective   string           `json:"objective"`
	Budget      Budget           `json:"budget"`
	Targeting   Targeting        `json:"targeting"`
	Creative    Creative         `json:"creative"`
	Schedule    Schedule         `json:"schedule"`
	Placements  []PlacementInput `json:"placements"`
	BrandSafety *BrandSafety     `json:"brandSafety,omitempty"`
	Preview     Preview          `json:"preview"`
}

// UpdateCampaignInput is a partial update. Action requests a manual
// lifecycle transition.
type UpdateCampaignInput struct {
	Name        *string          `json:"name,omitempty"`
	Objective   *string          `json:"objective,omitempty"`
	Budget      *Budget          `json:"budget,omitempty"`
	Targeting   *Targeting       `json:"targeting,omitempty"`
	Creative    *Creative        `json:"creative,omitempty"`
	Schedule    *Schedule        `json:"schedule,omitempty"`
	Placements  []PlacementInput `json:"placements,omitempty"`
	BrandSafety *BrandSafety     `json:"brandSafety,omitempty"`
	Preview     *Preview         `json:"preview,omitempty"`
	Action      *StatusAction    `json:"action,omitempty"`
}

// StatusAction is a manual lifecycle request.
type StatusAction string

const (
	ActionSchedule StatusAction = "schedule"
	ActionActivate StatusAction = "activate"
	ActionPause    StatusAction = "pause"
	ActionResume   StatusAction = "resume"
	ActionArchive  StatusAction = "archive"
)

// Normalize validates the input and returns a draft campaign without
// identity fields.
func (in CreateCampaignInput) Normalize() (*Campaign, error) {
	var problems []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		problems = append(problems, "name is required")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		problems = append(problems, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}

	budget, p := normalizeBudget(in.Budget)
	problems = append(problems, p...)

	targeting := NormalizeTargeting(in.Targeting)
	creative, p := normalizeCreative(in.Creative)
	problems = append(problems, p...)
	problems = append(problems, validateSchedule(in.Schedule)...)

	placements, p := NormalizePlacements(in.Placements, targeting)
	problems = append(problems, p...)

	if len(problems) > 0 {
		return nil, Validation("create campaign", problems...)
	}

	bs := BrandSafety{}
	if in.BrandSafety != nil {
		bs = *in.BrandSafety
	}
	return &Campaign{
		Name:      name,
		Objective: strings.TrimSpace(in.Objective),
		Status:    StatusDraft,
		Budget:    budget,
		Spend:     Spend{Currency: budget.Currency},
		Targeting: targeting,
		Creative:  creative,
		Schedule:  in.Schedule,
		Metadata: Metadata{
			Placements:  placements,
			BrandSafety: NormalizeBrandSafety(bs),
			Preview:     in.Preview,
		},
	}, nil
}

// Patch validates the update against the current campaign and returns the
// resulting field-level patch. The requested action, if any, is returned
// separately so the caller can check it against the lifecycle.
func (in UpdateCampaignInput) Patch(current *Campaign) (CampaignPatch, *StatusAction, error) {
	var (
		patch    CampaignPatch
		problems []string
	)
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			problems = append(problems, "name must not be empty")
		}
		patch.Name = &name
	}
	if in.Objective != nil {
		obj := strings.TrimSpace(*in.Objective)
		patch.Objective = &obj
	}
	if in.Budget != nil {
		b, p := normalizeBudget(*in.Budget)
		problems = append(problems, p...)
		patch.Budget = &b
	}
	targeting := current.Targeting
	if in.Targeting != nil {
		targeting = NormalizeTargeting(*in.Targeting)
		patch.Targeting = &targeting
	}
	if in.Creative != nil {
		cr, p := normalizeCreative(*in.Creative)
		problems = append(problems, p...)
		patch.Creative = &cr
	}
	if in.Schedule != nil {
		problems = append(problems, validateSchedule(*in.Schedule)...)
		s := *in.Schedule
		patch.Schedule = &s
	}

	meta := current.Metadata.Clone()
	metaChanged := false
	if in.Placements != nil {
		placements, p := NormalizePlacements(in.Placements, targeting)
		problems = append(problems, p...)
		meta.Placements = placements
		metaChanged = true
	} else if in.Targeting != nil {
		// existing placements must still be satisfiable by the new targeting
		for _, pc := range meta.Placements {
			if pc.Context.Config().RequiresKeywords && len(targeting.Keywords) == 0 {
				problems = append(problems, fmt.Sprintf("placement %q requires at least one targeting keyword", pc.Context))
			}
		}
	}
	if in.BrandSafety != nil {
		meta.BrandSafety = NormalizeBrandSafety(*in.BrandSafety)
		metaChanged = true
	}
	if in.Preview != nil {
		meta.Preview = *in.Preview
		metaChanged = true
	}
	if metaChanged {
		patch.Metadata = &meta
	}

	if len(problems) > 0 {
		return CampaignPatch{}, nil, Validation("update campaign", problems...)
	}
	return patch, in.Action, nil
}

// NormalizePlacements resolves placement inputs against the context table.
// Duplicate contexts keep the first occurrence. An empty input defaults to
// the global feed.
func NormalizePlacements(in []PlacementInput, t Targeting) ([]PlacementConfig, []string) {
	if len(in) == 0 {
		in = []PlacementInput{{Context: string(ContextGlobalFeed)}}
	}
	var (
		out      = make([]PlacementConfig, 0, len(in))
		seen     = make(map[DisplayContext]struct{}, len(in))
		problems []string
	)
	for i, p := range in {
		ctx := DisplayContext(strings.ToLower(strings.TrimSpace(p.Context)))
		if !ctx.Valid() {
			problems = append(problems, fmt.Sprintf("placements[%d]: unknown context %q", i, p.Context))
			continue
		}
		if _, dup := seen[ctx]; dup {
			continue
		}
		seen[ctx] = struct{}{}
		cfg := ctx.Config()
		if cfg.RequiresKeywords && len(t.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("placement %q requires at least one targeting keyword", ctx))
			continue
		}
		out = append(out, PlacementConfig{
			Context: ctx,
			Slot:    firstNonEmpty(p.Slot, cfg.Slot),
			Surface: firstNonEmpty(p.Surface, cfg.Surface),
			Label:   firstNonEmpty(p.Label, cfg.Label),
		})
	}
	return out, problems
}

// NormalizeTargeting trims, lowercases keywords and languages, and drops
// empty or duplicate entries. Languages default to English.
func NormalizeTargeting(t Targeting) Targeting {
	out := Targeting{
		Keywords:  normalizeList(t.Keywords, true),
		Audiences: normalizeList(t.Audiences, false),
		Locations: normalizeList(t.Locations, false),
		Languages: normalizeList(t.Languages, true),
	}
	if len(out.Languages) == 0 {
		out.Languages = []string{defaultLanguage}
	}
	return out
}

// NormalizeBrandSafety guarantees at least one category.
func NormalizeBrandSafety(b BrandSafety) BrandSafety {
	out := BrandSafety{
		Categories:     normalizeList(b.Categories, true),
		ExcludedTopics: normalizeList(b.ExcludedTopics, true),
		ReviewNotes:    strings.TrimSpace(b.ReviewNotes),
	}
	if len(out.Categories) == 0 {
		out.Categories = []string{defaultCategory}
	}
	return out
}

func normalizeBudget(b Budget) (Budget, []string) {
	var problems []string
	if b.DailyCents < 0 {
		problems = append(problems, "budget.dailyCents must not be negative")
	}
	cur := strings.ToUpper(strings.TrimSpace(b.Currency))
	if cur == "" {
		cur = defaultCurrency
	}
	if len(cur) != 3 {
		problems = append(problems, fmt.Sprintf("budget.currency %q is not an ISO-4217 code", b.Currency))
	}
	return Budget{Currency: cur, DailyCents: b.DailyCents}, problems
}

func normalizeCreative(c Creative) (Creative, []string) {
	var problems []string
	out := Creative{
		Headline:    strings.TrimSpace(c.Headline),
		Description: strings.TrimSpace(c.Description),
		URL:         strings.TrimSpace(c.URL),
		AssetURL:    strings.TrimSpace(c.AssetURL),
	}
	if out.Headline == "" {
		problems = append(problems, "creative.headline is required")
	} else if utf8.RuneCountInString(out.Headline) > maxHeadlineLength {
		problems = append(problems, fmt.Sprintf("creative.headline must be at most %d characters", maxHeadlineLength))
	}
	if strings.IndexFunc(out.Headline, unicode.IsControl) >= 0 {
		problems = append(problems, "creative.headline must not contain control characters")
	}
	if out.URL != "" && !isWebURL(out.URL) {
		problems = append(problems, "creative.url must be an absolute http(s) URL")
	}
	if out.AssetURL != "" && !isWebURL(out.AssetURL) {
		problems = append(problems, "creative.assetUrl must be an absolute http(s) URL")
	}
	return out, problems
}

func validateSchedule(s Schedule) []string {
	if s.StartAt != nil && s.EndAt != nil && s.EndAt.Before(*s.StartAt) {
		return []string{"schedule.endAt must not be before schedule.startAt"}
	}
	return nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func normalizeList(in []string, lower bool) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
