package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func TestRateGuards(t *testing.T) {
	for _, x := range []int64{0, 1, 17, 1_000_000} {
		assert.Zero(t, Rate(x, 0))
		assert.Zero(t, Rate(x, -3))
		assert.Zero(t, CentsPerUnit(x, 0))
	}
	assert.Equal(t, 0.3333, Rate(1, 3))
	assert.Equal(t, int64(33), CentsPerUnit(100, 3))
	assert.Equal(t, int64(67), CentsPerUnit(200, 3))
}

func TestDaysActive(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.Schedule
		want     int
	}{
		{name: "no schedule", schedule: domain.Schedule{}, want: 1},
		{name: "started nine days ago", schedule: domain.Schedule{StartAt: daysAgo(9)}, want: 10},
		{name: "starts in the future", schedule: domain.Schedule{StartAt: timePtr(testNow.AddDate(0, 0, 3))}, want: 4},
		{
			name:     "ended in the past",
			schedule: domain.Schedule{StartAt: daysAgo(30), EndAt: daysAgo(20)},
			want:     11,
		},
		{
			name:     "ends in the future",
			schedule: domain.Schedule{StartAt: daysAgo(2), EndAt: timePtr(testNow.AddDate(0, 0, 5))},
			want:     3,
		},
		{name: "partial day", schedule: domain.Schedule{StartAt: timePtr(testNow.Add(-5 * time.Hour))}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysActive(tt.schedule, testNow))
		})
	}
}

func TestDerive(t *testing.T) {
	c := newCampaign()
	lifetime := domain.MetricTotals{Impressions: 100000, Clicks: 2500, Conversions: 125, SpendCents: 250000, RevenueCents: 750000}
	trailing := domain.MetricTotals{Impressions: 40000, Clicks: 1000, Conversions: 40, SpendCents: 100000, RevenueCents: 250000}

	m := Derive(c, lifetime, trailing, testNow)

	require.Equal(t, 10, m.DaysActive)
	assert.Equal(t, lifetime, m.Lifetime)
	assert.Equal(t, 0.025, m.Averages.CTR)
	assert.Equal(t, 0.05, m.Averages.ConversionRate)
	assert.Equal(t, int64(100), m.Averages.CPCCents)
	assert.Equal(t, int64(2000), m.Averages.CPACents)
	require.NotNil(t, m.Averages.ROAS)
	assert.Equal(t, 3.0, *m.Averages.ROAS)

	assert.Equal(t, int64(1000), m.Trailing.Clicks)
	assert.Equal(t, 0.025, m.Trailing.CTR)
	assert.Equal(t, 0.04, m.Trailing.ConversionRate)

	assert.Equal(t, int64(25000), m.Forecast.ExpectedDailySpendCents)
	assert.Equal(t, 12.5, m.Forecast.ExpectedDailyConversions)
	require.NotNil(t, m.Forecast.ProjectedROAS)
	assert.Equal(t, 2.5, *m.Forecast.ProjectedROAS)
}

func TestDeriveWithoutSpend(t *testing.T) {
	m := Derive(newCampaign(), domain.MetricTotals{Impressions: 10}, domain.MetricTotals{}, testNow)
	assert.Nil(t, m.Averages.ROAS)
	assert.Nil(t, m.Forecast.ProjectedROAS)
	assert.Zero(t, m.Forecast.ExpectedDailySpendCents)
	assert.Zero(t, m.Averages.CPCCents)
}
