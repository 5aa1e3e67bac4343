package repository

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// AffiliateRepository defines the persistence port for chambers/associations.
type AffiliateRepository interface {
	Create(a *entity.Affiliate) error
	GetByID(id string) (*entity.Affiliate, error)
	List(limit, offset int) ([]*entity.Affiliate, error)
}
