package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-ads/internal/core/domain"
)

func TestAdvanceSchedule(t *testing.T) {
	tests := []struct {
		name   string
		status domain.CampaignStatus
		sched  domain.Schedule
		want   domain.CampaignStatus
		events []string
	}{
		{
			name:   "scheduled campaign starts",
			status: domain.StatusScheduled,
			sched:  domain.Schedule{StartAt: daysAgo(1)},
			want:   domain.StatusActive,
			events: []string{domain.EventCampaignActivated},
		},
		{
			name:   "scheduled campaign waits for start",
			status: domain.StatusScheduled,
			sched:  domain.Schedule{StartAt: timePtr(testNow.AddDate(0, 0, 1))},
			want:   domain.StatusScheduled,
		},
		{
			name:   "scheduled without start date stays scheduled",
			status: domain.StatusScheduled,
			want:   domain.StatusScheduled,
		},
		{
			name:   "active campaign completes",
			status: domain.StatusActive,
			sched:  domain.Schedule{StartAt: daysAgo(10), EndAt: daysAgo(1)},
			want:   domain.StatusCompleted,
			events: []string{domain.EventCampaignCompleted},
		},
		{
			name:   "window already over for a scheduled campaign",
			status: domain.StatusScheduled,
			sched:  domain.Schedule{StartAt: daysAgo(10), EndAt: daysAgo(1)},
			want:   domain.StatusCompleted,
			events: []string{domain.EventCampaignActivated, domain.EventCampaignCompleted},
		},
		{
			name:   "paused campaign is left alone",
			status: domain.StatusPaused,
			sched:  domain.Schedule{StartAt: daysAgo(10), EndAt: daysAgo(1)},
			want:   domain.StatusPaused,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCampaign(func(c *domain.Campaign) {
				c.Status = tt.status
				c.Schedule = tt.sched
			})
			got := AdvanceSchedule(c, testNow)
			assert.Equal(t, tt.want, c.Status)
			var events []string
			for _, tr := range got {
				events = append(events, tr.EventType)
			}
			assert.Equal(t, tt.events, events)

			assert.Empty(t, AdvanceSchedule(c, testNow), "second pass must be a no-op")
		})
	}
}

func TestEnforceCompliance(t *testing.T) {
	halted := domain.ComplianceResult{
		Status:     domain.ComplianceHalted,
		Violations: []domain.Violation{{Code: "overspend", Severity: domain.SeverityCritical, Message: "too much"}},
	}

	c := newCampaign()
	tr, ok := EnforceCompliance(c, halted)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPaused, c.Status)
	assert.Equal(t, domain.StatusActive, tr.From)
	assert.Equal(t, domain.TagComplianceViolation, tr.Tag)
	assert.Equal(t, "too much", tr.Reason)

	_, ok = EnforceCompliance(c, halted)
	assert.False(t, ok, "already paused")

	clean := newCampaign()
	_, ok = EnforceCompliance(clean, domain.ComplianceResult{Status: domain.ComplianceNeedsReview})
	assert.False(t, ok)
	assert.Equal(t, domain.StatusActive, clean.Status)
}

func TestApplyAction(t *testing.T) {
	got, err := ApplyAction(domain.StatusDraft, domain.ActionSchedule)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, got)

	got, err = ApplyAction(domain.StatusPaused, domain.ActionResume)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got)

	got, err = ApplyAction(domain.StatusCompleted, domain.ActionArchive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, got)

	_, err = ApplyAction(domain.StatusArchived, domain.ActionResume)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = ApplyAction(domain.StatusDraft, domain.StatusAction("explode"))
	require.ErrorIs(t, err, domain.ErrValidation)
}
