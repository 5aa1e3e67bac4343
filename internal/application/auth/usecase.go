// Package auth implements account lifecycle use cases: signup with email
// verification, login and token consumption.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
	"github.com/msmepassport/msme-passport-api/pkg/jwt"
	"github.com/msmepassport/msme-passport-api/pkg/logger"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase account lifecycle: signup, login, email verification.
type UseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	notifier  Notifier
	log       *logger.Logger
	jwtCfg    JWTConfig
	verifyURL string // base for the verification link sent by email

	// now is the clock; swapped in tests to pin expiry behavior.
	now func() time.Time
}

// NewUseCase builds the auth use case.
func NewUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	notifier Notifier,
	log *logger.Logger,
	jwtCfg JWTConfig,
	verifyURL string,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
		log:       log,
		jwtCfg:    jwtCfg,
		verifyURL: verifyURL,
		now:       time.Now,
	}
}

// WithClock overrides the clock (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Signup creates an account, hashes the password with bcrypt, issues a
// single-use email verification token and sends the link best-effort.
// Returns domain.ErrEmailAlreadyExists when the email is taken.
func (uc *UseCase) Signup(in dto.SignupRequest) (*dto.SignupResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Email delivery is downstream of the write: failures are logged and
	// swallowed, the account stays created.
	if err := uc.issueAndSendToken(user); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("verification email not sent")
	}

	return &dto.SignupResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and issues a JWT. Mismatches fail closed with
// domain.ErrInvalidCredentials; a correct password on an unverified email
// fails with the distinct domain.ErrEmailNotVerified.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Admin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// VerifyEmail consumes a raw token: looks up its SHA-256 hash, deletes it and
// flips emailVerified. An expired token is deleted and reported distinctly
// (ErrTokenExpired) from an unknown one (ErrTokenInvalid).
func (uc *UseCase) VerifyEmail(rawToken string) error {
	if rawToken == "" {
		return domain.ErrTokenInvalid
	}
	sum := sha256.Sum256([]byte(rawToken))
	tok, err := uc.tokenRepo.GetByHash(hex.EncodeToString(sum[:]))
	if err != nil {
		return err
	}
	if tok == nil {
		return domain.ErrTokenInvalid
	}
	if uc.now().After(tok.ExpiresAt) {
		_ = uc.tokenRepo.Delete(tok.ID)
		return domain.ErrTokenExpired
	}
	if err := uc.userRepo.SetEmailVerified(tok.UserID, true); err != nil {
		return err
	}
	// Consumption is deletion; no "used" flag exists.
	return uc.tokenRepo.Delete(tok.ID)
}

// ResendVerification re-issues a token for an account whose email is still
// unverified. Responds identically whether or not the account exists.
func (uc *UseCase) ResendVerification(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil || user.EmailVerified {
		return nil
	}
	if err := uc.tokenRepo.DeleteByUser(user.ID); err != nil {
		return err
	}
	if err := uc.issueAndSendToken(user); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("verification email not sent")
	}
	return nil
}

// issueAndSendToken creates a token (random 32 bytes, only the SHA-256 hash
// stored) and emails the raw value embedded in a link.
func (uc *UseCase) issueAndSendToken(user *entity.User) error {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(rawToken))
	now := uc.now()
	tok := &entity.EmailVerificationToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: hex.EncodeToString(sum[:]),
		ExpiresAt: now.Add(entity.EmailTokenTTL),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.Create(tok); err != nil {
		return err
	}
	link := uc.verifyURL + "?token=" + rawToken
	return uc.notifier.SendVerificationEmail(user.Email, link)
}

// ToUserResponse maps a user entity to its response, decorating it with the
// derived completion, state and missing fields.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		DateOfBirth:    u.DateOfBirth,
		Gender:         u.Gender,
		ProfilePicture: u.ProfilePicture,
		IdentityDoc:    u.IdentityDoc,
		EmailVerified:  u.EmailVerified,
		Verified:       u.Verified,
		Admin:          u.Admin,
		BusinessCount:  u.BusinessCount,
		Completion:     profile.UserCompletion(u),
		State:          profile.UserState(u),
		MissingFields:  profile.UserMissingFields(u),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
