package repository

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// TokenRepository defines the persistence port for email verification tokens.
// Consumption is deletion: a token is valid iff its hash is present and unexpired.
type TokenRepository interface {
	Create(t *entity.EmailVerificationToken) error
	GetByHash(tokenHash string) (*entity.EmailVerificationToken, error)
	Delete(id string) error
	// DeleteByUser removes any outstanding tokens before re-issuing.
	DeleteByUser(userID string) error
}
