package db

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

const (
	seedCampaigns = 5
	seedDays      = 14
	seedOwnerID   = "seed-advertiser"
)

var seedKeywords = [][]string{
	{"tutoring", "math"},
	{"housing", "dorm"},
	{"events", "music"},
	{"books", "library"},
	{"careers", "internship"},
}

// Seed stores a handful of active demo campaigns with two weeks of daily
// metrics. It writes through the store ports so it works for every driver.
func Seed(ctx context.Context, campaigns port.CampaignStore, metrics port.MetricStore, clock port.Clock) error {
	r := rand.New(rand.NewSource(42))
	now := clock.Now()
	start := domain.UTCDay(now).AddDate(0, 0, -seedDays)

	for i := 0; i < seedCampaigns; i++ {
		in := domain.CreateCampaignInput{
			Name:      fmt.Sprintf("Campus campaign %d", i+1),
			Objective: "awareness",
			Budget:    domain.Budget{Currency: "USD", DailyCents: int64(5000 + 2500*i)},
			Targeting: domain.Targeting{Keywords: seedKeywords[i], Languages: []string{"en"}},
			Creative: domain.Creative{
				Headline: fmt.Sprintf("Discover offer %d on campus", i+1),
				URL:      fmt.Sprintf("https://example.com/offers/%d", i+1),
			},
			Schedule: domain.Schedule{StartAt: &start},
			Placements: []domain.PlacementInput{
				{Context: string(domain.ContextGlobalFeed)},
				{Context: string(domain.ContextCommunityFeed)},
				{Context: string(domain.ContextSearch)},
			},
		}
		c, err := in.Normalize()
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
		c.PublicID = uuid.NewString()
		c.OwnerID = seedOwnerID
		c.Status = domain.StatusActive
		if err = campaigns.Create(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}

		for d := 0; d < seedDays; d++ {
			impressions := int64(800 + r.Intn(1200))
			clicks := impressions * int64(1+r.Intn(4)) / 100
			values := domain.MetricValues{
				Impressions:  impressions,
				Clicks:       clicks,
				Conversions:  clicks / int64(4+r.Intn(4)),
				SpendCents:   int64(1500 + r.Intn(2500)),
				RevenueCents: int64(1000 + r.Intn(5000)),
			}
			if _, err = metrics.UpsertDaily(ctx, c.ID, start.AddDate(0, 0, d), values); err != nil {
				return fmt.Errorf("seed metrics for campaign %d: %w", c.ID, err)
			}
		}
	}
	return nil
}
