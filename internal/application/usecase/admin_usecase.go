package usecase

import (
	"github.com/msmepassport/msme-passport-api/internal/application/auth"
	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// AdminUseCase administrator actions driving the verification state machines.
type AdminUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
}

// NewAdminUseCase builds the use case with its ports.
func NewAdminUseCase(userRepo repository.UserRepository, businessRepo repository.BusinessRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, businessRepo: businessRepo}
}

// ListUsers lists accounts with derived completion for the review screen.
func (uc *AdminUseCase) ListUsers(limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// SetUserVerified flips the admin attestation on an account. This is the only
// path to the user's verified state; there is no automatic promotion at 100%.
func (uc *AdminUseCase) SetUserVerified(userID string, verified bool) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.userRepo.SetVerified(userID, verified); err != nil {
		return nil, err
	}
	user.Verified = verified
	return auth.ToUserResponse(user), nil
}

// ListBusinessesUnderReview lists unverified, unrejected businesses.
func (uc *AdminUseCase) ListBusinessesUnderReview(limit, offset int) (*dto.BusinessListResponse, error) {
	return uc.listBusinesses(limit, offset, true)
}

// ListBusinesses lists all businesses.
func (uc *AdminUseCase) ListBusinesses(limit, offset int) (*dto.BusinessListResponse, error) {
	return uc.listBusinesses(limit, offset, false)
}

func (uc *AdminUseCase) listBusinesses(limit, offset int, underReview bool) (*dto.BusinessListResponse, error) {
	var list []*entity.Business
	var err error
	if underReview {
		list, err = uc.businessRepo.ListUnderReview(limit, offset)
	} else {
		list, err = uc.businessRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		secondary, err := uc.businessRepo.ListSecondaryAffiliateIDs(b.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *ToBusinessResponse(b, secondary))
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// VerifyBusiness sets or clears the verified flag together with the payment
// status carried by the call. Completion is re-checked server-side at the
// moment of the call: a stale client cannot verify a business that has since
// dropped below 99%, and a rejected business cannot be verified at all until
// an admin explicitly clears the rejection.
func (uc *AdminUseCase) VerifyBusiness(businessID string, in dto.VerifyBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	paymentStatus := in.PaymentStatus
	if in.Verified {
		if b.Rejected {
			return nil, domain.ErrBusinessRejected
		}
		if completion := profile.BusinessCompletion(b); completion < 99 {
			d := profile.VerificationDecision(b)
			return nil, &EligibilityError{Decision: d}
		}
		if paymentStatus == "" {
			paymentStatus = entity.PaymentPaid
		}
	} else if paymentStatus == "" {
		paymentStatus = entity.PaymentPending
	}

	if err := uc.businessRepo.SetVerification(businessID, in.Verified, paymentStatus); err != nil {
		return nil, err
	}
	b.Verified = in.Verified
	b.PaymentStatus = paymentStatus
	secondary, err := uc.businessRepo.ListSecondaryAffiliateIDs(b.ID)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(b, secondary), nil
}

// SetRejection sets or clears the rejection of a business. Rejecting requires
// a non-empty reason and clears verified as a side effect. Clearing the
// rejection is the explicit un-reject action: it reopens the verify gate but
// grants nothing else.
func (uc *AdminUseCase) SetRejection(businessID string, in dto.RejectBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	reason := in.Reason
	if in.Rejected && reason == "" {
		return nil, domain.ErrRejectionReason
	}
	if !in.Rejected {
		reason = ""
	}
	if err := uc.businessRepo.SetRejection(businessID, in.Rejected, reason); err != nil {
		return nil, err
	}
	b.Rejected = in.Rejected
	b.RejectionReason = reason
	if in.Rejected {
		b.Verified = false
	}
	secondary, err := uc.businessRepo.ListSecondaryAffiliateIDs(b.ID)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponse(b, secondary), nil
}
