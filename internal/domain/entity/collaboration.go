package entity

import "time"

// Invitation status values.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
	InvitationExpired  = "expired"
)

// Collaboration role for the non-owner side.
const RoleCollaborator = "collaborator"

// InvitationTTL is how long an invitation stays acceptable.
const InvitationTTL = 7 * 24 * time.Hour

// CollaborationInvitation is an ephemeral offer for a second user to
// co-manage a business. The invitee is identified by email, resolved to a
// user id at accept time. At most one pending invitation may exist per
// (business, invitee email) pair.
type CollaborationInvitation struct {
	ID           string
	BusinessID   string
	InviterID    string // must be the business owner
	InviteeEmail string
	Message      string
	Status       string // pending | accepted | rejected | expired
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessCollaboration is the durable grant created when an invitation
// is accepted. Deletable by the owner to revoke.
type BusinessCollaboration struct {
	ID             string
	BusinessID     string
	OwnerID        string
	CollaboratorID string
	Status         string // pending | accepted
	Role           string // always "collaborator" for the non-owner side
	CreatedAt      time.Time
}
