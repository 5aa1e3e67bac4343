package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

var _ repository.CollaborationRepository = (*CollaborationRepo)(nil)

// CollaborationRepo implements the CollaborationRepository port on PostgreSQL.
//
// Pending uniqueness is enforced by a partial unique index:
//
//	CREATE UNIQUE INDEX collaboration_invitations_pending_uniq
//	    ON collaboration_invitations (business_id, lower(invitee_email))
//	    WHERE status = 'pending';
//
// so two racing invites for the same pair cannot both commit.
type CollaborationRepo struct {
	q Querier
}

// NewCollaborationRepository builds the persistence adapter for collaborations.
func NewCollaborationRepository(q Querier) *CollaborationRepo {
	return &CollaborationRepo{q: q}
}

const invitationColumns = `id, business_id, inviter_id, invitee_email, message, status,
	expires_at, created_at, updated_at`

// CreateInvitation persists a pending invitation; domain.ErrDuplicate when the
// partial unique index refuses it.
func (r *CollaborationRepo) CreateInvitation(inv *entity.CollaborationInvitation) error {
	query := `
		INSERT INTO collaboration_invitations (id, business_id, inviter_id, invitee_email,
			message, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.BusinessID, inv.InviterID, inv.InviteeEmail,
		inv.Message, inv.Status, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetInvitationByID fetches one invitation; (nil, nil) when absent.
func (r *CollaborationRepo) GetInvitationByID(id string) (*entity.CollaborationInvitation, error) {
	return r.findInvitation(`SELECT `+invitationColumns+` FROM collaboration_invitations WHERE id = $1`, id)
}

// FindPendingInvitation fetches the pending invitation for a (business, email)
// pair, case-insensitively; (nil, nil) when absent.
func (r *CollaborationRepo) FindPendingInvitation(businessID, inviteeEmail string) (*entity.CollaborationInvitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM collaboration_invitations
		WHERE business_id = $1 AND lower(invitee_email) = lower($2) AND status = 'pending'`
	return r.findInvitation(query, businessID, inviteeEmail)
}

func (r *CollaborationRepo) findInvitation(query string, args ...any) (*entity.CollaborationInvitation, error) {
	var inv entity.CollaborationInvitation
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.BusinessID, &inv.InviterID, &inv.InviteeEmail, &inv.Message, &inv.Status,
		&inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return &inv, nil
}

// UpdateInvitationStatus transitions an invitation.
func (r *CollaborationRepo) UpdateInvitationStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE collaboration_invitations SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invitation status: %w", err)
	}
	return nil
}

// ListInvitationsByEmail lists invitations addressed to an email, newest first.
func (r *CollaborationRepo) ListInvitationsByEmail(inviteeEmail string) ([]*entity.CollaborationInvitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM collaboration_invitations
		WHERE lower(invitee_email) = lower($1) ORDER BY created_at DESC`
	return r.listInvitations(query, inviteeEmail)
}

// ListInvitationsByBusiness lists a business's invitation history, newest first.
func (r *CollaborationRepo) ListInvitationsByBusiness(businessID string) ([]*entity.CollaborationInvitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM collaboration_invitations
		WHERE business_id = $1 ORDER BY created_at DESC`
	return r.listInvitations(query, businessID)
}

func (r *CollaborationRepo) listInvitations(query string, args ...any) ([]*entity.CollaborationInvitation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CollaborationInvitation
	for rows.Next() {
		var inv entity.CollaborationInvitation
		if err := rows.Scan(
			&inv.ID, &inv.BusinessID, &inv.InviterID, &inv.InviteeEmail, &inv.Message, &inv.Status,
			&inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

const collaborationColumns = `id, business_id, owner_id, collaborator_id, status, role, created_at`

// CreateCollaboration persists a durable grant.
func (r *CollaborationRepo) CreateCollaboration(c *entity.BusinessCollaboration) error {
	query := `
		INSERT INTO business_collaborations (id, business_id, owner_id, collaborator_id, status, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.BusinessID, c.OwnerID, c.CollaboratorID, c.Status, c.Role, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert collaboration: %w", err)
	}
	return nil
}

// GetCollaboration fetches the grant for a (business, collaborator) pair; (nil, nil) when absent.
func (r *CollaborationRepo) GetCollaboration(businessID, collaboratorID string) (*entity.BusinessCollaboration, error) {
	query := `SELECT ` + collaborationColumns + ` FROM business_collaborations
		WHERE business_id = $1 AND collaborator_id = $2`
	return r.findCollaboration(query, businessID, collaboratorID)
}

// GetCollaborationByID fetches a grant by ID; (nil, nil) when absent.
func (r *CollaborationRepo) GetCollaborationByID(id string) (*entity.BusinessCollaboration, error) {
	return r.findCollaboration(`SELECT `+collaborationColumns+` FROM business_collaborations WHERE id = $1`, id)
}

func (r *CollaborationRepo) findCollaboration(query string, args ...any) (*entity.BusinessCollaboration, error) {
	var c entity.BusinessCollaboration
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.BusinessID, &c.OwnerID, &c.CollaboratorID, &c.Status, &c.Role, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collaboration: %w", err)
	}
	return &c, nil
}

// ListCollaborationsByBusiness lists the grants on a business.
func (r *CollaborationRepo) ListCollaborationsByBusiness(businessID string) ([]*entity.BusinessCollaboration, error) {
	query := `SELECT ` + collaborationColumns + ` FROM business_collaborations
		WHERE business_id = $1 ORDER BY created_at ASC`
	return r.listCollaborations(query, businessID)
}

// ListCollaborationsByUser lists the grants held by a user.
func (r *CollaborationRepo) ListCollaborationsByUser(collaboratorID string) ([]*entity.BusinessCollaboration, error) {
	query := `SELECT ` + collaborationColumns + ` FROM business_collaborations
		WHERE collaborator_id = $1 ORDER BY created_at ASC`
	return r.listCollaborations(query, collaboratorID)
}

func (r *CollaborationRepo) listCollaborations(query string, args ...any) ([]*entity.BusinessCollaboration, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collaborations: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessCollaboration
	for rows.Next() {
		var c entity.BusinessCollaboration
		if err := rows.Scan(
			&c.ID, &c.BusinessID, &c.OwnerID, &c.CollaboratorID, &c.Status, &c.Role, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan collaboration: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteCollaboration revokes a grant.
func (r *CollaborationRepo) DeleteCollaboration(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM business_collaborations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete collaboration: %w", err)
	}
	return nil
}
