package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// CollaborationUseCase the invite/accept/reject workflow granting a second
// user co-management of a business.
type CollaborationUseCase struct {
	collabRepo   repository.CollaborationRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewCollaborationUseCase builds the use case with its ports.
func NewCollaborationUseCase(
	collabRepo repository.CollaborationRepository,
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
) *CollaborationUseCase {
	return &CollaborationUseCase{
		collabRepo:   collabRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock (tests).
func (uc *CollaborationUseCase) WithClock(now func() time.Time) *CollaborationUseCase {
	uc.now = now
	return uc
}

// SendInvitation creates a pending invitation. Preconditions run in a fixed
// order, first failure wins, and nothing is written until all pass:
// input present, business exists, inviter owns it, no self-invite, invitee
// has an account, no outstanding pending invitation, collaboration gate open.
// The pending-uniqueness check is additionally backed by a partial unique
// index, so two racing invites cannot both land.
func (uc *CollaborationUseCase) SendInvitation(inviterID string, in dto.SendInvitationRequest) (*dto.InvitationResponse, error) {
	if in.BusinessID == "" || in.InviteeEmail == "" || inviterID == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.businessRepo.GetByID(in.BusinessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.UserID != inviterID {
		return nil, domain.ErrForbidden
	}
	inviter, err := uc.userRepo.GetByID(inviterID)
	if err != nil {
		return nil, err
	}
	if inviter == nil {
		return nil, domain.ErrUserNotFound
	}
	if strings.EqualFold(in.InviteeEmail, inviter.Email) {
		return nil, domain.ErrSelfInvitation
	}
	invitee, err := uc.userRepo.GetByEmail(in.InviteeEmail)
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, domain.ErrUserNotFound
	}
	pending, err := uc.collabRepo.FindPendingInvitation(in.BusinessID, in.InviteeEmail)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, domain.ErrInvitationPending
	}
	if d := profile.AddCollaboratorsDecision(b); !d.Eligible {
		return nil, &EligibilityError{Decision: d}
	}

	now := uc.now()
	inv := &entity.CollaborationInvitation{
		ID:           uuid.New().String(),
		BusinessID:   in.BusinessID,
		InviterID:    inviterID,
		InviteeEmail: in.InviteeEmail,
		Message:      in.Message,
		Status:       entity.InvitationPending,
		ExpiresAt:    now.Add(entity.InvitationTTL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.collabRepo.CreateInvitation(inv); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrInvitationPending
		}
		return nil, err
	}
	return uc.toInvitationResponse(inv, b.Name), nil
}

// Accept resolves a pending invitation and creates the durable grant. Only
// the invitee may accept; expired invitations are marked expired and refused.
func (uc *CollaborationUseCase) Accept(calleeID, invitationID string) (*dto.CollaborationResponse, error) {
	inv, err := uc.resolvable(calleeID, invitationID)
	if err != nil {
		return nil, err
	}
	if err := uc.collabRepo.UpdateInvitationStatus(inv.ID, entity.InvitationAccepted); err != nil {
		return nil, err
	}
	grant := &entity.BusinessCollaboration{
		ID:             uuid.New().String(),
		BusinessID:     inv.BusinessID,
		OwnerID:        inv.InviterID,
		CollaboratorID: calleeID,
		Status:         entity.InvitationAccepted,
		Role:           entity.RoleCollaborator,
		CreatedAt:      uc.now(),
	}
	if err := uc.collabRepo.CreateCollaboration(grant); err != nil {
		return nil, err
	}
	return toCollaborationResponse(grant), nil
}

// Reject resolves a pending invitation without creating a grant.
func (uc *CollaborationUseCase) Reject(calleeID, invitationID string) error {
	inv, err := uc.resolvable(calleeID, invitationID)
	if err != nil {
		return err
	}
	return uc.collabRepo.UpdateInvitationStatus(inv.ID, entity.InvitationRejected)
}

// ListMyInvitations returns invitations addressed to the caller's email.
func (uc *CollaborationUseCase) ListMyInvitations(calleeID string) ([]dto.InvitationResponse, error) {
	callee, err := uc.userRepo.GetByID(calleeID)
	if err != nil {
		return nil, err
	}
	if callee == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.collabRepo.ListInvitationsByEmail(callee.Email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *uc.toInvitationResponse(inv, ""))
	}
	return out, nil
}

// ListBusinessInvitations returns a business's invitation history. Owner only.
func (uc *CollaborationUseCase) ListBusinessInvitations(callerID, businessID string) ([]dto.InvitationResponse, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.UserID != callerID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.collabRepo.ListInvitationsByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *uc.toInvitationResponse(inv, b.Name))
	}
	return out, nil
}

// ListCollaborators returns the durable grants on a business. Owner or
// accepted collaborator.
func (uc *CollaborationUseCase) ListCollaborators(callerID, businessID string) ([]dto.CollaborationResponse, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.UserID != callerID {
		grant, err := uc.collabRepo.GetCollaboration(businessID, callerID)
		if err != nil {
			return nil, err
		}
		if grant == nil || grant.Status != entity.InvitationAccepted {
			return nil, domain.ErrForbidden
		}
	}
	list, err := uc.collabRepo.ListCollaborationsByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CollaborationResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toCollaborationResponse(g))
	}
	return out, nil
}

// RemoveCollaborator revokes a grant. Owner only; invitation history is
// untouched, so a fresh invitation is required to re-grant.
func (uc *CollaborationUseCase) RemoveCollaborator(callerID, collaborationID string) error {
	grant, err := uc.collabRepo.GetCollaborationByID(collaborationID)
	if err != nil {
		return err
	}
	if grant == nil {
		return domain.ErrNotFound
	}
	if grant.OwnerID != callerID {
		return domain.ErrForbidden
	}
	return uc.collabRepo.DeleteCollaboration(collaborationID)
}

// resolvable loads an invitation and checks it can still be resolved by the
// caller: addressed to them, still pending, not past its expiry. An expired
// invitation is transitioned to expired before the refusal is returned.
func (uc *CollaborationUseCase) resolvable(calleeID, invitationID string) (*entity.CollaborationInvitation, error) {
	inv, err := uc.collabRepo.GetInvitationByID(invitationID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	callee, err := uc.userRepo.GetByID(calleeID)
	if err != nil {
		return nil, err
	}
	if callee == nil {
		return nil, domain.ErrUserNotFound
	}
	if !strings.EqualFold(inv.InviteeEmail, callee.Email) {
		return nil, domain.ErrForbidden
	}
	if inv.Status != entity.InvitationPending {
		return nil, domain.ErrInvitationResolved
	}
	if uc.now().After(inv.ExpiresAt) {
		_ = uc.collabRepo.UpdateInvitationStatus(inv.ID, entity.InvitationExpired)
		return nil, domain.ErrInvitationExpired
	}
	return inv, nil
}

func (uc *CollaborationUseCase) toInvitationResponse(inv *entity.CollaborationInvitation, businessName string) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		ID:           inv.ID,
		BusinessID:   inv.BusinessID,
		BusinessName: businessName,
		InviterID:    inv.InviterID,
		InviteeEmail: inv.InviteeEmail,
		Message:      inv.Message,
		Status:       inv.Status,
		ExpiresAt:    inv.ExpiresAt,
		CreatedAt:    inv.CreatedAt,
	}
}

func toCollaborationResponse(g *entity.BusinessCollaboration) *dto.CollaborationResponse {
	return &dto.CollaborationResponse{
		ID:             g.ID,
		BusinessID:     g.BusinessID,
		OwnerID:        g.OwnerID,
		CollaboratorID: g.CollaboratorID,
		Status:         g.Status,
		Role:           g.Role,
		CreatedAt:      g.CreatedAt,
	}
}
