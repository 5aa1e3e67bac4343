package repository

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// UserRepository defines the persistence port for User (DIP).
// Get* methods return (nil, nil) when the record does not exist.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// SetVerified flips the admin attestation flag in one statement.
	SetVerified(id string, verified bool) error
	// SetEmailVerified flips the email-possession flag in one statement.
	SetEmailVerified(id string, verified bool) error
	// AdjustBusinessCount atomically increments (or decrements) the
	// denormalized business counter.
	AdjustBusinessCount(id string, delta int) error
}
