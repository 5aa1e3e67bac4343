package usecase

import (
	"time"

	"github.com/msmepassport/msme-passport-api/internal/application/auth"
	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// UserUseCase personal profile operations.
type UserUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewUserUseCase builds the use case with the persistence port.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, now: time.Now}
}

// Me returns the caller's profile decorated with completion and state.
func (uc *UserUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile applies a partial update to the caller's personal fields.
// Email is immutable here; admin verification is untouched by field edits.
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = *in.DateOfBirth
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}
	if in.IdentityDoc != nil {
		user.IdentityDoc = *in.IdentityDoc
	}
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// CreateBusinessEligibility exposes the create-business gate verdict so the
// client can render the checklist without recomputing rules.
func (uc *UserUseCase) CreateBusinessEligibility(userID string) (*profile.Decision, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	d := profile.UserCreateBusinessDecision(user)
	return &d, nil
}
