package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

var _ repository.AffiliateRepository = (*AffiliateRepo)(nil)

// AffiliateRepo implements the AffiliateRepository port on PostgreSQL.
type AffiliateRepo struct {
	q Querier
}

// NewAffiliateRepository builds the persistence adapter for affiliates.
func NewAffiliateRepository(q Querier) *AffiliateRepo {
	return &AffiliateRepo{q: q}
}

// Create persists a new affiliate.
func (r *AffiliateRepo) Create(a *entity.Affiliate) error {
	query := `INSERT INTO affiliates (id, name, region, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Name, a.Region, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert affiliate: %w", err)
	}
	return nil
}

// GetByID fetches an affiliate; (nil, nil) when absent.
func (r *AffiliateRepo) GetByID(id string) (*entity.Affiliate, error) {
	var a entity.Affiliate
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, region, created_at FROM affiliates WHERE id = $1`, id).Scan(
		&a.ID, &a.Name, &a.Region, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get affiliate: %w", err)
	}
	return &a, nil
}

// List returns affiliates with pagination, sorted by name.
func (r *AffiliateRepo) List(limit, offset int) ([]*entity.Affiliate, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, region, created_at FROM affiliates ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list affiliates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Affiliate
	for rows.Next() {
		var a entity.Affiliate
		if err := rows.Scan(&a.ID, &a.Name, &a.Region, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan affiliate: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
