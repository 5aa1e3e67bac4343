package usecase

import (
	"context"

	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// TxRunner executes a callback with user and business repositories bound to
// one transaction. Used where a check-then-write sequence must be atomic
// (business creation eligibility + counter increment, deletion + decrement).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		businesses repository.BusinessRepository,
	) error) error
}

// QREncoder renders a payload string as a QR image. Presentation-layer
// concern behind a port; the protocol itself only stores the string.
type QREncoder interface {
	EncodePNG(payload string, size int) ([]byte, error)
}

// CardGenerator renders the printable passport card for a verified business.
type CardGenerator interface {
	GeneratePassportCard(b *entity.Business, qrPNG []byte, issuerName string) ([]byte, error)
}

// EligibilityError is returned when a business rule refuses an action. It
// carries the full decision so the boundary can report the machine-readable
// code, completion percentage and missing fields without recomputing.
type EligibilityError struct {
	Decision profile.Decision
}

func (e *EligibilityError) Error() string { return e.Decision.Reason }
