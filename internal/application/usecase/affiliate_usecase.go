package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// AffiliateUseCase chambers and associations referenced by businesses.
type AffiliateUseCase struct {
	repo repository.AffiliateRepository
}

// NewAffiliateUseCase builds the use case with the persistence port.
func NewAffiliateUseCase(repo repository.AffiliateRepository) *AffiliateUseCase {
	return &AffiliateUseCase{repo: repo}
}

// Create registers an affiliate (admin action).
func (uc *AffiliateUseCase) Create(in dto.CreateAffiliateRequest) (*dto.AffiliateResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	a := &entity.Affiliate{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Region:    in.Region,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAffiliateResponse(a), nil
}

// GetByID returns one affiliate.
func (uc *AffiliateUseCase) GetByID(id string) (*dto.AffiliateResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAffiliateResponse(a), nil
}

// List returns affiliates with pagination.
func (uc *AffiliateUseCase) List(limit, offset int) (*dto.AffiliateListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AffiliateResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAffiliateResponse(a))
	}
	return &dto.AffiliateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAffiliateResponse(a *entity.Affiliate) *dto.AffiliateResponse {
	return &dto.AffiliateResponse{
		ID:        a.ID,
		Name:      a.Name,
		Region:    a.Region,
		CreatedAt: a.CreatedAt,
	}
}
