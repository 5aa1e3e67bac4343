package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// Auth / account lifecycle.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrTokenExpired       = errors.New("verification token expired")
	ErrTokenInvalid       = errors.New("verification token invalid")

	// Verification state machine.
	ErrBusinessRejected = errors.New("business is rejected")
	ErrRejectionReason  = errors.New("rejection requires a reason")

	// Collaboration workflow.
	ErrSelfInvitation     = errors.New("cannot invite the business owner")
	ErrInvitationPending  = errors.New("a pending invitation already exists for this email")
	ErrInvitationResolved = errors.New("invitation has already been resolved")
	ErrInvitationExpired  = errors.New("invitation has expired")

	// Passport lookups deliberately collapse not-found and not-eligible
	// into one error so callers cannot probe which businesses exist.
	ErrPassportInvalid = errors.New("invalid or expired QR code")
)
