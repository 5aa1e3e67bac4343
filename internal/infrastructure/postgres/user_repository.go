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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port on PostgreSQL. Usable with the
// pool or a transaction (Querier).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, last_name, email, password_hash, profile_picture,
	date_of_birth, gender, phone_number, identity_document, email_verified,
	verified, admin, business_count, created_at, updated_at`

// Create persists a new user.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, profile_picture,
			date_of_birth, gender, phone_number, identity_document, email_verified,
			verified, admin, business_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.ProfilePicture,
		user.DateOfBirth, user.Gender, user.PhoneNumber, user.IdentityDoc, user.EmailVerified,
		user.Verified, user.Admin, user.BusinessCount, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID; (nil, nil) when absent.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail fetches a user by email, case-insensitively; (nil, nil) when absent.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.ProfilePicture,
		&u.DateOfBirth, &u.Gender, &u.PhoneNumber, &u.IdentityDoc, &u.EmailVerified,
		&u.Verified, &u.Admin, &u.BusinessCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update persists profile fields. Flags and the counter go through the
// dedicated setters, never through here.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, profile_picture = $4,
			date_of_birth = $5, gender = $6, phone_number = $7, identity_document = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.ProfilePicture,
		user.DateOfBirth, user.Gender, user.PhoneNumber, user.IdentityDoc,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List returns users with pagination, newest first.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.ProfilePicture,
			&u.DateOfBirth, &u.Gender, &u.PhoneNumber, &u.IdentityDoc, &u.EmailVerified,
			&u.Verified, &u.Admin, &u.BusinessCount, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SetVerified flips the admin attestation flag.
func (r *UserRepo) SetVerified(id string, verified bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET verified = $2, updated_at = now() WHERE id = $1`, id, verified)
	if err != nil {
		return fmt.Errorf("set user verified: %w", err)
	}
	return nil
}

// SetEmailVerified flips the email-possession flag.
func (r *UserRepo) SetEmailVerified(id string, verified bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET email_verified = $2, updated_at = now() WHERE id = $1`, id, verified)
	if err != nil {
		return fmt.Errorf("set email verified: %w", err)
	}
	return nil
}

// AdjustBusinessCount atomically moves the denormalized counter.
func (r *UserRepo) AdjustBusinessCount(id string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET business_count = business_count + $2, updated_at = now() WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust business count: %w", err)
	}
	return nil
}
