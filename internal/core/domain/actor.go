package domain

import "slices"

// Role is a platform role attached to the acting user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleAdvertiser Role = "advertiser"
	RoleLearner    Role = "learner"
)

// Permission is an operation guarded by role.
type Permission string

const (
	PermManageCampaigns  Permission = "campaigns:manage"
	PermViewAllCampaigns Permission = "campaigns:view_all"
	PermIngestMetrics    Permission = "metrics:ingest"
)

var rolePermissions = map[Role][]Permission{
	RoleAdmin:      {PermManageCampaigns, PermViewAllCampaigns, PermIngestMetrics},
	RoleInstructor: {PermManageCampaigns},
	RoleAdvertiser: {PermManageCampaigns},
	RoleLearner:    nil,
}

// Actor is the authenticated user performing an operation. It is built
// by the inbound adapter from request data.
type Actor struct {
	ID    string
	Roles []Role
}

// Authenticated reports whether the actor carries an identity.
func (a Actor) Authenticated() bool { return a.ID != "" }

// Can reports whether any of the actor's roles grants p.
func (a Actor) Can(p Permission) bool {
	for _, r := range a.Roles {
		if slices.Contains(rolePermissions[r], p) {
			return true
		}
	}
	return false
}

// Owns reports whether the actor may act on a campaign owned by ownerID.
func (a Actor) Owns(ownerID string) bool {
	return a.ID == ownerID || a.Can(PermViewAllCampaigns)
}
