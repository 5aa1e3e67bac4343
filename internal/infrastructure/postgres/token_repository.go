package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implements the TokenRepository port on PostgreSQL. Only SHA-256
// hashes are stored; the raw token never touches the database.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository builds the persistence adapter for verification tokens.
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create persists a new token.
func (r *TokenRepo) Create(t *entity.EmailVerificationToken) error {
	query := `
		INSERT INTO email_verification_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByHash fetches a token by its hash; (nil, nil) when absent.
func (r *TokenRepo) GetByHash(tokenHash string) (*entity.EmailVerificationToken, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM email_verification_tokens WHERE token_hash = $1`
	var t entity.EmailVerificationToken
	err := r.q.QueryRow(context.Background(), query, tokenHash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// Delete removes a token (consumption).
func (r *TokenRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM email_verification_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// DeleteByUser removes all outstanding tokens for a user before re-issuing.
func (r *TokenRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM email_verification_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete tokens by user: %w", err)
	}
	return nil
}
