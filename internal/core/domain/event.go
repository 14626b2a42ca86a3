package domain

import "time"

// EntityCampaign is the entity type recorded for campaign events.
const EntityCampaign = "ad_campaign"

// Event types appended to the audit log.
const (
	EventCampaignCreated    = "campaign_created"
	EventCampaignUpdated    = "campaign_updated"
	EventCampaignActivated  = "campaign_activated"
	EventCampaignCompleted  = "campaign_completed"
	EventCampaignAutoPaused = "campaign_auto_paused"
	EventMetricsRecorded    = "metrics_recorded"
	EventInsightsGenerated  = "insights_generated"
)

// TagComplianceViolation marks audit events caused by a compliance halt.
const TagComplianceViolation = "compliance_violation"

// ActorSystem is recorded as the performer of automatic transitions.
const ActorSystem = "system"

// Event is one audit log record.
type Event struct {
	EntityType  string
	EntityID    string
	EventType   string
	Payload     map[string]any
	PerformedBy string
	OccurredAt  time.Time
}
