package entity

import "time"

// EmailTokenTTL is the validity window of an email verification token.
const EmailTokenTTL = 24 * time.Hour

// EmailVerificationToken proves email ownership. Only the SHA-256 hash of the
// raw token is ever stored; consumption is deletion, so a token is valid iff
// its hash exists and is unexpired.
type EmailVerificationToken struct {
	ID        string
	UserID    string
	TokenHash string // hex SHA-256 of the raw token
	ExpiresAt time.Time
	CreatedAt time.Time
}
