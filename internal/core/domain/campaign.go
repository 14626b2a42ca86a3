package domain

import (
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusScheduled CampaignStatus = "scheduled"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusArchived  CampaignStatus = "archived"
)

// Valid reports whether s is a known lifecycle state.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Budget is the configured daily budget. Amounts are integer cents.
type Budget struct {
	Currency   string `json:"currency"`
	DailyCents int64  `json:"dailyCents"`
}

// Spend is the spend snapshot stored with the campaign row.
type Spend struct {
	Currency   string `json:"currency"`
	TotalCents int64  `json:"totalCents"`
}

// Schedule bounds the serving window. Both ends are optional.
type Schedule struct {
	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`
}

// Started reports whether the schedule has no start or the start has arrived.
func (s Schedule) Started(now time.Time) bool {
	return s.StartAt == nil || !s.StartAt.After(now)
}

// Ended reports whether the schedule has an end that is already in the past.
func (s Schedule) Ended(now time.Time) bool {
	return s.EndAt != nil && s.EndAt.Before(now)
}

// Campaign represents an advertising campaign owned by a platform user.
// Budgets and spend are stored in integer cents.
type Campaign struct {
	ID               int64
	PublicID         string
	OwnerID          string
	Name             string
	Objective        string
	Status           CampaignStatus
	Budget           Budget
	Spend            Spend
	Targeting        Targeting
	Creative         Creative
	Schedule         Schedule
	Metadata         Metadata
	PerformanceScore int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PlacementFor returns the campaign's configuration for ctx, if any.
func (c *Campaign) PlacementFor(ctx DisplayContext) (PlacementConfig, bool) {
	i := slices.IndexFunc(c.Metadata.Placements, func(p PlacementConfig) bool {
		return p.Context == ctx
	})
	if i < 0 {
		return PlacementConfig{}, false
	}
	return c.Metadata.Placements[i], true
}

// CampaignPatch is a field-level partial update. Nil fields are left
// untouched by the store.
type CampaignPatch struct {
	Name             *string
	Objective        *string
	Status           *CampaignStatus
	Budget           *Budget
	Spend            *Spend
	Targeting        *Targeting
	Creative         *Creative
	Schedule         *Schedule
	Metadata         *Metadata
	PerformanceScore *int
}

// Empty reports whether the patch changes nothing.
func (p CampaignPatch) Empty() bool {
	return p.Name == nil && p.Objective == nil && p.Status == nil && p.Budget == nil &&
		p.Spend == nil && p.Targeting == nil && p.Creative == nil && p.Schedule == nil &&
		p.Metadata == nil && p.PerformanceScore == nil
}

// Apply copies every non-nil field of p onto c.
func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Spend != nil {
		c.Spend = *p.Spend
	}
	if p.Targeting != nil {
		c.Targeting = *p.Targeting
	}
	if p.Creative != nil {
		c.Creative = *p.Creative
	}
	if p.Schedule != nil {
		c.Schedule = *p.Schedule
	}
	if p.Metadata != nil {
		c.Metadata = *p.Metadata
	}
	if p.PerformanceScore != nil {
		c.PerformanceScore = *p.PerformanceScore
	}
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	Statuses []CampaignStatus
	OwnerID  string
	Search   string
	// OrderByScore sorts by stored performance score, highest first.
	OrderByScore bool
	Limit        int
}
