package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// BusinessUseCase owner-facing business profile operations.
type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	collabRepo   repository.CollaborationRepository
	tx           TxRunner
	now          func() time.Time
}

// NewBusinessUseCase builds the use case with its ports.
func NewBusinessUseCase(
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
	collabRepo repository.CollaborationRepository,
	tx TxRunner,
) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		collabRepo:   collabRepo,
		tx:           tx,
		now:          time.Now,
	}
}

// WithClock overrides the clock (tests).
func (uc *BusinessUseCase) WithClock(now func() time.Time) *BusinessUseCase {
	uc.now = now
	return uc
}

// Create creates a business for an eligible user. The eligibility re-check,
// priority assignment, insert and counter increment run inside one
// transaction so a racing ineligible request cannot slip between the check
// and the write.
func (uc *BusinessUseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" || in.ChamberID == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Business
	err := uc.tx.Run(ctx, func(users repository.UserRepository, businesses repository.BusinessRepository) error {
		user, err := users.GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if d := profile.UserCreateBusinessDecision(user); !d.Eligible {
			return &EligibilityError{Decision: d}
		}
		count, err := businesses.CountByUser(userID)
		if err != nil {
			return err
		}
		now := uc.now()
		b := &entity.Business{
			ID:                 uuid.New().String(),
			UserID:             userID,
			Name:               in.Name,
			Email:              in.Email,
			Category:           in.Category,
			Address:            in.Address,
			PhoneNumber:        in.PhoneNumber,
			Website:            in.Website,
			Tagline:            in.Tagline,
			RegistrationNumber: in.RegistrationNumber,
			OwnerName:          in.OwnerName,
			YearEstablished:    in.YearEstablished,
			EmployeeCount:      in.EmployeeCount,
			ChamberID:          in.ChamberID,
			PaymentStatus:      entity.PaymentPending,
			Priority:           count + 1,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := businesses.Create(b); err != nil {
			return err
		}
		if len(in.SecondaryAffiliateIDs) > 0 {
			if err := businesses.ReplaceSecondaryAffiliates(b.ID, in.SecondaryAffiliateIDs); err != nil {
				return err
			}
		}
		if err := users.AdjustBusinessCount(userID, +1); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.decorate(created)
}

// Get returns a business for its owner or an accepted collaborator.
func (uc *BusinessUseCase) Get(callerID, businessID string) (*dto.BusinessResponse, error) {
	b, err := uc.authorized(callerID, businessID)
	if err != nil {
		return nil, err
	}
	return uc.decorate(b)
}

// ListMine returns the caller's owned businesses plus those shared with them
// through accepted collaborations.
func (uc *BusinessUseCase) ListMine(userID string, includeArchived bool) (*dto.BusinessListResponse, error) {
	owned, err := uc.businessRepo.ListByUser(userID, includeArchived)
	if err != nil {
		return nil, err
	}
	grants, err := uc.collabRepo.ListCollaborationsByUser(userID)
	if err != nil {
		return nil, err
	}
	var sharedIDs []string
	for _, g := range grants {
		if g.Status == entity.InvitationAccepted {
			sharedIDs = append(sharedIDs, g.BusinessID)
		}
	}
	shared, err := uc.businessRepo.ListByIDs(sharedIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BusinessResponse, 0, len(owned)+len(shared))
	for _, b := range append(owned, shared...) {
		r, err := uc.decorate(b)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Update applies a partial field update. Owner or accepted collaborator only.
// Editing fields never touches verification state: a rejected business stays
// rejected until an admin clears it.
func (uc *BusinessUseCase) Update(callerID, businessID string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.authorized(callerID, businessID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		b.PhoneNumber = *in.PhoneNumber
	}
	if in.Website != nil {
		b.Website = *in.Website
	}
	if in.Tagline != nil {
		b.Tagline = *in.Tagline
	}
	if in.RegistrationNumber != nil {
		b.RegistrationNumber = *in.RegistrationNumber
	}
	if in.OwnerName != nil {
		b.OwnerName = *in.OwnerName
	}
	if in.YearEstablished != nil {
		b.YearEstablished = *in.YearEstablished
	}
	if in.EmployeeCount != nil {
		b.EmployeeCount = *in.EmployeeCount
	}
	if in.ChamberID != nil {
		b.ChamberID = *in.ChamberID
	}
	if in.LicenseDocuments != nil {
		b.LicenseDocuments = *in.LicenseDocuments
	}
	if in.RegistrationDocuments != nil {
		b.RegistrationDocuments = *in.RegistrationDocuments
	}
	if in.OperationsDocuments != nil {
		b.OperationsDocuments = *in.OperationsDocuments
	}
	b.UpdatedAt = uc.now()
	if err := uc.businessRepo.Update(b); err != nil {
		return nil, err
	}
	if in.SecondaryAffiliateIDs != nil {
		if err := uc.businessRepo.ReplaceSecondaryAffiliates(b.ID, *in.SecondaryAffiliateIDs); err != nil {
			return nil, err
		}
	}
	return uc.decorate(b)
}

// SetArchived soft-hides or restores a business. Owner only.
func (uc *BusinessUseCase) SetArchived(callerID, businessID string, archived bool) error {
	b, err := uc.ownedBy(callerID, businessID)
	if err != nil {
		return err
	}
	return uc.businessRepo.SetArchived(b.ID, archived)
}

// Delete removes a business and decrements the owner's counter in one
// transaction. Owner only.
func (uc *BusinessUseCase) Delete(ctx context.Context, callerID, businessID string) error {
	if _, err := uc.ownedBy(callerID, businessID); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(users repository.UserRepository, businesses repository.BusinessRepository) error {
		b, err := businesses.GetByID(businessID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if err := businesses.Delete(businessID); err != nil {
			return err
		}
		return users.AdjustBusinessCount(b.UserID, -1)
	})
}

// SimulatePayment marks the business as paid without touching verification.
// Owner only. Paid-but-unverified is a valid intermediate state.
func (uc *BusinessUseCase) SimulatePayment(callerID, businessID string) (*dto.BusinessResponse, error) {
	b, err := uc.ownedBy(callerID, businessID)
	if err != nil {
		return nil, err
	}
	if err := uc.businessRepo.SetPaymentStatus(b.ID, entity.PaymentPaid); err != nil {
		return nil, err
	}
	b.PaymentStatus = entity.PaymentPaid
	return uc.decorate(b)
}

// VerificationEligibility exposes the submit-for-review verdict for the UI.
func (uc *BusinessUseCase) VerificationEligibility(callerID, businessID string) (*profile.Decision, error) {
	b, err := uc.authorized(callerID, businessID)
	if err != nil {
		return nil, err
	}
	d := profile.VerificationDecision(b)
	return &d, nil
}

// ownedBy loads a business and requires the caller to be its owner.
func (uc *BusinessUseCase) ownedBy(callerID, businessID string) (*entity.Business, error) {
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
	return b, nil
}

// authorized loads a business and requires the caller to be its owner or an
// accepted collaborator.
func (uc *BusinessUseCase) authorized(callerID, businessID string) (*entity.Business, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.UserID == callerID {
		return b, nil
	}
	grant, err := uc.collabRepo.GetCollaboration(businessID, callerID)
	if err != nil {
		return nil, err
	}
	if grant == nil || grant.Status != entity.InvitationAccepted {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// decorate maps a business to its response with derived fields attached.
func (uc *BusinessUseCase) decorate(b *entity.Business) (*dto.BusinessResponse, error) {
	secondary, err := uc.businessRepo.ListSecondaryAffiliateIDs(b.ID)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(b, secondary), nil
}

// ToBusinessResponse maps a business entity to its response, decorating it
// with completion, derived state and gate verdicts.
func ToBusinessResponse(b *entity.Business, secondaryAffiliateIDs []string) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:                    b.ID,
		UserID:                b.UserID,
		Name:                  b.Name,
		Email:                 b.Email,
		Category:              b.Category,
		Address:               b.Address,
		PhoneNumber:           b.PhoneNumber,
		Website:               b.Website,
		Tagline:               b.Tagline,
		RegistrationNumber:    b.RegistrationNumber,
		OwnerName:             b.OwnerName,
		YearEstablished:       b.YearEstablished,
		EmployeeCount:         b.EmployeeCount,
		ChamberID:             b.ChamberID,
		SecondaryAffiliateIDs: secondaryAffiliateIDs,
		LicenseDocuments:      b.LicenseDocuments,
		RegistrationDocuments: b.RegistrationDocuments,
		OperationsDocuments:   b.OperationsDocuments,
		Verified:              b.Verified,
		Rejected:              b.Rejected,
		RejectionReason:       b.RejectionReason,
		PaymentStatus:         b.PaymentStatus,
		Archived:              b.Archived,
		Priority:              b.Priority,
		QRCode:                b.QRCode,
		PassportID:            b.PassportID,
		Completion:            profile.BusinessCompletion(b),
		State:                 profile.BusinessState(b),
		MissingFields:         profile.BusinessMissingFields(b),
		EligibleForReview:     profile.IsEligibleForVerification(b),
		CanAddCollaborators:   profile.CanAddCollaborators(b),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}
