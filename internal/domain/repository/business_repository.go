package repository

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// BusinessRepository defines the persistence port for Business (DIP).
// Get* methods return (nil, nil) when the record does not exist.
//
// Each state transition is a dedicated single-statement setter so that no
// transition can leave a partial write behind.
type BusinessRepository interface {
	Create(b *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	GetByPassportID(passportID string) (*entity.Business, error)
	Update(b *entity.Business) error
	Delete(id string) error
	ListByUser(userID string, includeArchived bool) ([]*entity.Business, error)
	ListByIDs(ids []string) ([]*entity.Business, error)
	// ListUnderReview returns unverified, unrejected businesses for the
	// admin review queue.
	ListUnderReview(limit, offset int) ([]*entity.Business, error)
	List(limit, offset int) ([]*entity.Business, error)
	CountByUser(userID string) (int, error)

	// SetVerification sets the verified flag and the accompanying payment
	// status in one statement (the admin verify/unverify action).
	SetVerification(id string, verified bool, paymentStatus string) error
	// SetRejection sets rejected + reason; rejecting also clears verified.
	SetRejection(id string, rejected bool, reason string) error
	SetPaymentStatus(id string, status string) error
	// SetPassport stores (qrCode, passportId) atomically at issuance.
	SetPassport(id string, qrCode, passportID string) error
	SetArchived(id string, archived bool) error

	// Secondary affiliates (many-to-many join rows).
	ReplaceSecondaryAffiliates(businessID string, affiliateIDs []string) error
	ListSecondaryAffiliateIDs(businessID string) ([]string, error)
}
