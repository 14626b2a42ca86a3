package domain

import "time"

// CampaignView is the hydrated campaign returned to callers.
type CampaignView struct {
	ID               string            `json:"id"`
	InternalID       int64             `json:"internalId"`
	OwnerID          string            `json:"ownerId"`
	Name             string            `json:"name"`
	Objective        string            `json:"objective"`
	Status           CampaignStatus    `json:"status"`
	Budget           Budget            `json:"budget"`
	Spend            Spend             `json:"spend"`
	Metrics          DerivedMetrics    `json:"metrics"`
	PerformanceScore int               `json:"performanceScore"`
	Targeting        Targeting         `json:"targeting"`
	Creative         Creative          `json:"creative"`
	Schedule         Schedule          `json:"schedule"`
	Compliance       ComplianceResult  `json:"compliance"`
	Placements       []PlacementConfig `json:"placements"`
	BrandSafety      BrandSafety       `json:"brandSafety"`
	Preview          Preview           `json:"preview"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// NewCampaignView assembles the view from a synchronised campaign and the
// data derived for it.
func NewCampaignView(c *Campaign, m DerivedMetrics, cr ComplianceResult) CampaignView {
	return CampaignView{
		ID:               c.PublicID,
		InternalID:       c.ID,
		OwnerID:          c.OwnerID,
		Name:             c.Name,
		Objective:        c.Objective,
		Status:           c.Status,
		Budget:           c.Budget,
		Spend:            c.Spend,
		Metrics:          m,
		PerformanceScore: c.PerformanceScore,
		Targeting:        c.Targeting,
		Creative:         c.Creative,
		Schedule:         c.Schedule,
		Compliance:       cr,
		Placements:       c.Metadata.Placements,
		BrandSafety:      c.Metadata.BrandSafety,
		Preview:          c.Metadata.Preview,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
