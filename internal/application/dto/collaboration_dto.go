package dto

import "time"

// SendInvitationRequest input for inviting a co-manager by email.
type SendInvitationRequest struct {
	BusinessID   string `json:"business_id" validate:"required"`
	InviteeEmail string `json:"invitee_email" validate:"required,email"`
	Message      string `json:"message" validate:"omitempty,max=500"`
}

// InvitationResponse output of an invitation.
type InvitationResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	BusinessName string    `json:"business_name,omitempty"`
	InviterID    string    `json:"inviter_id"`
	InviteeEmail string    `json:"invitee_email"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// CollaborationResponse output of a durable collaboration grant.
type CollaborationResponse struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id"`
	OwnerID        string    `json:"owner_id"`
	CollaboratorID string    `json:"collaborator_id"`
	Status         string    `json:"status"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
