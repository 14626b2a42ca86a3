package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-ads/internal/adapter/memory"
	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

var (
	testNow   = time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)
	testClock = port.ClockFunc(func() time.Time { return testNow })

	owner   = domain.Actor{ID: "owner-1", Roles: []domain.Role{domain.RoleAdvertiser}}
	other   = domain.Actor{ID: "owner-2", Roles: []domain.Role{domain.RoleInstructor}}
	admin   = domain.Actor{ID: "admin-1", Roles: []domain.Role{domain.RoleAdmin}}
	learner = domain.Actor{ID: "learner-1", Roles: []domain.Role{domain.RoleLearner}}
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

// fixture wires the use case to the in-memory adapters.
type fixture struct {
	uc        *CampaignUseCase
	campaigns *memory.CampaignStore
	metrics   *memory.MetricStore
	events    *memory.EventRecorder
	board     *memory.SpotlightBoard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		campaigns: memory.NewCampaignStore(testClock),
		metrics:   memory.NewMetricStore(testClock),
		events:    memory.NewEventRecorder(),
		board:     memory.NewSpotlightBoard(),
	}
	f.uc = NewCampaignUseCase(f.campaigns, f.metrics, f.events,
		WithClock(testClock), WithLogger(quietLogger()), WithSpotlights(f.board))
	return f
}

// seed stores an active campaign owned by owner-1 after applying mutators.
func (f *fixture) seed(t *testing.T, publicID string, mutators ...func(*domain.Campaign)) *domain.Campaign {
	t.Helper()
	c := activeCampaign(publicID)
	for _, m := range mutators {
		m(c)
	}
	require.NoError(t, f.campaigns.Create(context.Background(), c))
	return c
}

func (f *fixture) day(t *testing.T, c *domain.Campaign, ago int, v domain.MetricValues) {
	t.Helper()
	_, err := f.metrics.UpsertDaily(context.Background(), c.ID, testNow.AddDate(0, 0, -ago), v)
	require.NoError(t, err)
}

func (f *fixture) eventTypes() []string {
	var out []string
	for _, e := range f.events.Events() {
		out = append(out, e.EventType)
	}
	return out
}

func activeCampaign(publicID string) *domain.Campaign {
	return &domain.Campaign{
		PublicID: publicID,
		OwnerID:  owner.ID,
		Name:     "Spring enrolment",
		Status:   domain.StatusActive,
		Budget:   domain.Budget{Currency: "USD", DailyCents: 50000},
		Spend:    domain.Spend{Currency: "USD"},
		Targeting: domain.Targeting{
			Keywords:  []string{"python", "data"},
			Languages: []string{"en"},
		},
		Creative: domain.Creative{
			Headline:    "Learn Python in twelve weeks",
			Description: "Live cohorts with mentors",
			URL:         "https://example.com/python",
		},
		Schedule: domain.Schedule{StartAt: daysAgo(3)},
		Metadata: domain.Metadata{
			Placements: []domain.PlacementConfig{{
				Context: domain.ContextGlobalFeed,
				Slot:    "feed-inline",
				Surface: "feed",
				Label:   "Sponsored",
			}},
			BrandSafety: domain.BrandSafety{Categories: []string{"standard"}},
		},
	}
}

func validInput() domain.CreateCampaignInput {
	return domain.CreateCampaignInput{
		Name:      "  Data Science Bootcamp ",
		Objective: "enrolments",
		Budget:    domain.Budget{DailyCents: 25000},
		Targeting: domain.Targeting{Keywords: []string{"Python", "python", " data "}},
		Creative: domain.Creative{
			Headline: "Become a data scientist this spring",
			URL:      "https://example.com/ds",
		},
		Placements: []domain.PlacementInput{{Context: "global_feed"}, {Context: "search"}},
	}
}
