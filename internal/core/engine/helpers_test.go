package engine

import (
	"time"

	"campus-ads/internal/core/domain"
)

var testNow = time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func daysAgo(n int) *time.Time { return timePtr(testNow.AddDate(0, 0, -n)) }

func newCampaign(mutators ...func(*domain.Campaign)) *domain.Campaign {
	c := &domain.Campaign{
		ID:       1,
		PublicID: "cmp-1",
		OwnerID:  "owner-1",
		Name:     "Spring enrolment",
		Status:   domain.StatusActive,
		Budget:   domain.Budget{Currency: "USD", DailyCents: 50000},
		Targeting: domain.Targeting{
			Keywords:  []string{"python", "data"},
			Languages: []string{"en"},
		},
		Creative: domain.Creative{
			Headline:    "Learn Python in twelve weeks",
			Description: "Live cohorts with mentors",
			URL:         "https://example.com/python",
		},
		Schedule: domain.Schedule{StartAt: daysAgo(9)},
	}
	for _, m := range mutators {
		m(c)
	}
	return c
}
