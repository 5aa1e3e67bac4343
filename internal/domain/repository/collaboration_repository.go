package repository

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// CollaborationRepository defines the persistence port for invitations and
// durable collaboration grants (DIP).
type CollaborationRepository interface {
	// CreateInvitation persists a new pending invitation. Returns
	// domain.ErrDuplicate when a pending invitation for the same
	// (business, invitee email) pair already exists; backed by a partial
	// unique index so concurrent invites cannot race past the check.
	CreateInvitation(inv *entity.CollaborationInvitation) error
	GetInvitationByID(id string) (*entity.CollaborationInvitation, error)
	FindPendingInvitation(businessID, inviteeEmail string) (*entity.CollaborationInvitation, error)
	UpdateInvitationStatus(id, status string) error
	ListInvitationsByEmail(inviteeEmail string) ([]*entity.CollaborationInvitation, error)
	ListInvitationsByBusiness(businessID string) ([]*entity.CollaborationInvitation, error)

	CreateCollaboration(c *entity.BusinessCollaboration) error
	GetCollaboration(businessID, collaboratorID string) (*entity.BusinessCollaboration, error)
	GetCollaborationByID(id string) (*entity.BusinessCollaboration, error)
	ListCollaborationsByBusiness(businessID string) ([]*entity.BusinessCollaboration, error)
	ListCollaborationsByUser(collaboratorID string) ([]*entity.BusinessCollaboration, error)
	DeleteCollaboration(id string) error
}
