package engine

import (
	"fmt"
	"time"

	"campus-ads/internal/core/domain"
)

// Transition is one status change applied to a campaign.
type Transition struct {
	From      domain.CampaignStatus
	To        domain.CampaignStatus
	EventType string
	Reason    string
	Tag       string
}

// AdvanceSchedule applies the time-driven transitions to c and returns
// what changed. A scheduled campaign whose start has arrived becomes
// active; an active campaign whose end has passed becomes completed.
// Running it again on the result is a no-op.
func AdvanceSchedule(c *domain.Campaign, now time.Time) []Transition {
	var out []Transition
	if c.Status == domain.StatusScheduled && c.Schedule.StartAt != nil && c.Schedule.Started(now) {
		out = append(out, move(c, domain.StatusActive, domain.EventCampaignActivated, "start date reached", ""))
	}
	if c.Status == domain.StatusActive && c.Schedule.Ended(now) {
		out = append(out, move(c, domain.StatusCompleted, domain.EventCampaignCompleted, "end date passed", ""))
	}
	return out
}

// EnforceCompliance pauses an active campaign whose compliance evaluation
// halted it.
func EnforceCompliance(c *domain.Campaign, result domain.ComplianceResult) (Transition, bool) {
	if c.Status != domain.StatusActive || result.Status != domain.ComplianceHalted {
		return Transition{}, false
	}
	reason := "compliance halted"
	if len(result.Violations) > 0 {
		reason = result.Violations[0].Message
	}
	return move(c, domain.StatusPaused, domain.EventCampaignAutoPaused, reason, domain.TagComplianceViolation), true
}

var actionTransitions = map[domain.StatusAction]struct {
	from []domain.CampaignStatus
	to   domain.CampaignStatus
}{
	domain.ActionSchedule: {from: []domain.CampaignStatus{domain.StatusDraft, domain.StatusPaused}, to: domain.StatusScheduled},
	domain.ActionActivate: {from: []domain.CampaignStatus{domain.StatusDraft, domain.StatusScheduled, domain.StatusPaused}, to: domain.StatusActive},
	domain.ActionPause:    {from: []domain.CampaignStatus{domain.StatusActive, domain.StatusScheduled}, to: domain.StatusPaused},
	domain.ActionResume:   {from: []domain.CampaignStatus{domain.StatusPaused}, to: domain.StatusActive},
	domain.ActionArchive: {
		from: []domain.CampaignStatus{
			domain.StatusDraft, domain.StatusScheduled, domain.StatusActive, domain.StatusPaused, domain.StatusCompleted,
		},
		to: domain.StatusArchived,
	},
}

// ApplyAction resolves a manual lifecycle request from the current status.
func ApplyAction(current domain.CampaignStatus, action domain.StatusAction) (domain.CampaignStatus, error) {
	t, ok := actionTransitions[action]
	if !ok {
		return current, domain.Validation("apply action", fmt.Sprintf("unknown action %q", action))
	}
	for _, from := range t.from {
		if from == current {
			return t.to, nil
		}
	}
	return current, domain.Validation("apply action", fmt.Sprintf("cannot %s a campaign that is %s", action, current))
}

func move(c *domain.Campaign, to domain.CampaignStatus, eventType, reason, tag string) Transition {
	t := Transition{From: c.Status, To: to, EventType: eventType, Reason: reason, Tag: tag}
	c.Status = to
	return t
}
