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

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implements the BusinessRepository port on PostgreSQL. Usable
// with the pool or a transaction (Querier). Document references live in text[]
// columns; secondary affiliates in a join table.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository builds the persistence adapter for businesses.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, user_id, name, email, category, address, phone_number, website,
	tagline, registration_number, owner_name, year_established, employee_count, chamber_id,
	license_documents, registration_documents, operations_documents,
	verified, payment_status, rejected, rejection_reason, archived, priority,
	qr_code, passport_id, created_at, updated_at`

// Create persists a new business.
func (r *BusinessRepo) Create(b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, user_id, name, email, category, address, phone_number, website,
			tagline, registration_number, owner_name, year_established, employee_count, chamber_id,
			license_documents, registration_documents, operations_documents,
			verified, payment_status, rejected, rejection_reason, archived, priority,
			qr_code, passport_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.UserID, b.Name, b.Email, b.Category, b.Address, b.PhoneNumber, b.Website,
		b.Tagline, b.RegistrationNumber, b.OwnerName, b.YearEstablished, b.EmployeeCount, b.ChamberID,
		b.LicenseDocuments, b.RegistrationDocuments, b.OperationsDocuments,
		b.Verified, b.PaymentStatus, b.Rejected, b.RejectionReason, b.Archived, b.Priority,
		b.QRCode, b.PassportID, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID fetches a business by ID; (nil, nil) when absent.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.findOne(`SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

// GetByPassportID fetches a business by its passport identifier; (nil, nil) when absent.
func (r *BusinessRepo) GetByPassportID(passportID string) (*entity.Business, error) {
	return r.findOne(`SELECT `+businessColumns+` FROM businesses WHERE passport_id = $1`, passportID)
}

func (r *BusinessRepo) findOne(query string, arg any) (*entity.Business, error) {
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, arg).Scan(scanTargets(&b)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

func scanTargets(b *entity.Business) []any {
	return []any{
		&b.ID, &b.UserID, &b.Name, &b.Email, &b.Category, &b.Address, &b.PhoneNumber, &b.Website,
		&b.Tagline, &b.RegistrationNumber, &b.OwnerName, &b.YearEstablished, &b.EmployeeCount, &b.ChamberID,
		&b.LicenseDocuments, &b.RegistrationDocuments, &b.OperationsDocuments,
		&b.Verified, &b.PaymentStatus, &b.Rejected, &b.RejectionReason, &b.Archived, &b.Priority,
		&b.QRCode, &b.PassportID, &b.CreatedAt, &b.UpdatedAt,
	}
}

// Update persists profile fields and documents. State flags, payment and
// passport artifacts go through the dedicated setters only.
func (r *BusinessRepo) Update(b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, email = $3, category = $4, address = $5,
			phone_number = $6, website = $7, tagline = $8, registration_number = $9,
			owner_name = $10, year_established = $11, employee_count = $12, chamber_id = $13,
			license_documents = $14, registration_documents = $15, operations_documents = $16,
			updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Email, b.Category, b.Address,
		b.PhoneNumber, b.Website, b.Tagline, b.RegistrationNumber,
		b.OwnerName, b.YearEstablished, b.EmployeeCount, b.ChamberID,
		b.LicenseDocuments, b.RegistrationDocuments, b.OperationsDocuments,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a business; join rows cascade.
func (r *BusinessRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}

// ListByUser lists a user's businesses in priority order.
func (r *BusinessRepo) ListByUser(userID string, includeArchived bool) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_id = $1`
	if !includeArchived {
		query += ` AND archived = false`
	}
	query += ` ORDER BY priority ASC`
	return r.queryList(query, userID)
}

// ListByIDs fetches the given businesses; missing IDs are silently skipped.
func (r *BusinessRepo) ListByIDs(ids []string) ([]*entity.Business, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = ANY($1) ORDER BY created_at ASC`
	return r.queryList(query, ids)
}

// ListUnderReview lists unverified, unrejected businesses for the admin queue.
func (r *BusinessRepo) ListUnderReview(limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses
		WHERE verified = false AND rejected = false
		ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// List lists all businesses with pagination, newest first.
func (r *BusinessRepo) List(limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

func (r *BusinessRepo) queryList(query string, args ...any) ([]*entity.Business, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(scanTargets(&b)...); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CountByUser counts a user's businesses, archived included.
func (r *BusinessRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM businesses WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return n, nil
}

// SetVerification sets the verified flag and payment status in one statement.
func (r *BusinessRepo) SetVerification(id string, verified bool, paymentStatus string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE businesses SET verified = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
		id, verified, paymentStatus)
	if err != nil {
		return fmt.Errorf("set verification: %w", err)
	}
	return nil
}

// SetRejection sets rejected + reason; rejecting also clears verified.
func (r *BusinessRepo) SetRejection(id string, rejected bool, reason string) error {
	query := `UPDATE businesses SET rejected = $2, rejection_reason = $3, updated_at = now()`
	if rejected {
		query += `, verified = false`
	}
	query += ` WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, rejected, reason)
	if err != nil {
		return fmt.Errorf("set rejection: %w", err)
	}
	return nil
}

// SetPaymentStatus updates only the payment status.
func (r *BusinessRepo) SetPaymentStatus(id string, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE businesses SET payment_status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}

// SetPassport stores both issuance artifacts atomically, only if none exist
// yet, so concurrent issuance cannot overwrite an earlier passport.
func (r *BusinessRepo) SetPassport(id string, qrCode, passportID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE businesses SET qr_code = $2, passport_id = $3, updated_at = now()
		 WHERE id = $1 AND (qr_code = '' OR qr_code IS NULL)`,
		id, qrCode, passportID)
	if err != nil {
		return fmt.Errorf("set passport: %w", err)
	}
	return nil
}

// SetArchived soft-hides or restores a business.
func (r *BusinessRepo) SetArchived(id string, archived bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE businesses SET archived = $2, updated_at = now() WHERE id = $1`, id, archived)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	return nil
}

// ReplaceSecondaryAffiliates rewrites the join rows for a business.
func (r *BusinessRepo) ReplaceSecondaryAffiliates(businessID string, affiliateIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM business_secondary_affiliates WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("clear secondary affiliates: %w", err)
	}
	for _, affiliateID := range affiliateIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO business_secondary_affiliates (business_id, affiliate_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			businessID, affiliateID); err != nil {
			return fmt.Errorf("insert secondary affiliate: %w", err)
		}
	}
	return nil
}

// ListSecondaryAffiliateIDs returns the affiliate IDs joined to a business.
func (r *BusinessRepo) ListSecondaryAffiliateIDs(businessID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT affiliate_id FROM business_secondary_affiliates WHERE business_id = $1 ORDER BY affiliate_id`,
		businessID)
	if err != nil {
		return nil, fmt.Errorf("list secondary affiliates: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan affiliate id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
