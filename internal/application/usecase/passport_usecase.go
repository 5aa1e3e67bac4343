package usecase

import (
	"time"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/passport"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// PassportUseCase passport issuance and verification against live state.
type PassportUseCase struct {
	businessRepo repository.BusinessRepository
	collabRepo   repository.CollaborationRepository
	qrEncoder    QREncoder
	cardGen      CardGenerator
	issuerName   string
	now          func() time.Time
}

// NewPassportUseCase builds the use case with its ports.
func NewPassportUseCase(
	businessRepo repository.BusinessRepository,
	collabRepo repository.CollaborationRepository,
	qrEncoder QREncoder,
	cardGen CardGenerator,
	issuerName string,
) *PassportUseCase {
	return &PassportUseCase{
		businessRepo: businessRepo,
		collabRepo:   collabRepo,
		qrEncoder:    qrEncoder,
		cardGen:      cardGen,
		issuerName:   issuerName,
		now:          time.Now,
	}
}

// WithClock overrides the clock (tests).
func (uc *PassportUseCase) WithClock(now func() time.Time) *PassportUseCase {
	uc.now = now
	return uc
}

// Issue generates the passport identifier and QR payload for a business, or
// returns the existing pair unchanged when one was already issued. Owner or
// accepted collaborator only; the business does not need to be verified to
// call this, only to have the result verify successfully later.
func (uc *PassportUseCase) Issue(callerID, businessID string) (*dto.PassportResponse, error) {
	b, err := uc.authorized(callerID, businessID)
	if err != nil {
		return nil, err
	}
	if b.HasPassport() {
		return &dto.PassportResponse{BusinessID: b.ID, PassportID: b.PassportID, QRCode: b.QRCode}, nil
	}
	issuedAt := uc.now()
	passportID := passport.ID(b.ID, issuedAt)
	qr, err := passport.Encode(b.ID, passportID, issuedAt)
	if err != nil {
		return nil, err
	}
	if err := uc.businessRepo.SetPassport(b.ID, qr, passportID); err != nil {
		return nil, err
	}
	return &dto.PassportResponse{BusinessID: b.ID, PassportID: passportID, QRCode: qr}, nil
}

// VerifyScan validates a raw scanned payload. The payload's claims are never
// trusted on their own: the business is loaded and must be verified and paid
// right now, so previously issued codes die with the state, not with time.
// Every failure collapses to domain.ErrPassportInvalid.
func (uc *PassportUseCase) VerifyScan(rawPayload string) (*dto.VerifiedBusinessResponse, error) {
	p, err := passport.Decode(rawPayload)
	if err != nil {
		return nil, domain.ErrPassportInvalid
	}
	b, err := uc.businessRepo.GetByID(p.BusinessID)
	if err != nil {
		return nil, err
	}
	return uc.liveCheck(b)
}

// VerifyByPassportID validates a passport identifier from a shared link,
// applying the identical live-state check as a QR scan.
func (uc *PassportUseCase) VerifyByPassportID(passportID string) (*dto.VerifiedBusinessResponse, error) {
	if passportID == "" {
		return nil, domain.ErrPassportInvalid
	}
	b, err := uc.businessRepo.GetByPassportID(passportID)
	if err != nil {
		return nil, err
	}
	return uc.liveCheck(b)
}

// QRCodePNG issues (idempotently) and renders the payload as a PNG.
func (uc *PassportUseCase) QRCodePNG(callerID, businessID string, size int) ([]byte, error) {
	issued, err := uc.Issue(callerID, businessID)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	return uc.qrEncoder.EncodePNG(issued.QRCode, size)
}

// PassportCardPDF renders the printable passport card. Only available once
// the business is verified and paid: the card is the shareable artifact of a
// completed verification, not a preview.
func (uc *PassportUseCase) PassportCardPDF(callerID, businessID string) ([]byte, string, error) {
	b, err := uc.authorized(callerID, businessID)
	if err != nil {
		return nil, "", err
	}
	if !b.Verified || b.PaymentStatus != entity.PaymentPaid {
		return nil, "", domain.ErrConflict
	}
	issued, err := uc.Issue(callerID, businessID)
	if err != nil {
		return nil, "", err
	}
	b.QRCode = issued.QRCode
	b.PassportID = issued.PassportID
	qrPNG, err := uc.qrEncoder.EncodePNG(issued.QRCode, 256)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.cardGen.GeneratePassportCard(b, qrPNG, uc.issuerName)
	if err != nil {
		return nil, "", err
	}
	return pdf, issued.PassportID + ".pdf", nil
}

// liveCheck applies the verified-and-paid rule and maps every miss to the
// same generic error so callers cannot probe which businesses exist.
func (uc *PassportUseCase) liveCheck(b *entity.Business) (*dto.VerifiedBusinessResponse, error) {
	if b == nil || !b.Verified || b.PaymentStatus != entity.PaymentPaid {
		return nil, domain.ErrPassportInvalid
	}
	return &dto.VerifiedBusinessResponse{
		PassportID:      b.PassportID,
		BusinessName:    b.Name,
		Category:        b.Category,
		Address:         b.Address,
		YearEstablished: b.YearEstablished,
		Verified:        true,
	}, nil
}

// authorized loads a business and requires the caller to be the owner or an
// accepted collaborator.
func (uc *PassportUseCase) authorized(callerID, businessID string) (*entity.Business, error) {
	b, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.UserID == callerID {
		return b, nil
	}
	grant, err := uc.collabRepo.GetCollaboration(businessID, callerID)
	if err != nil {
		return nil, err
	}
	if grant == nil || grant.Status != entity.InvitationAccepted {
		return nil, domain.ErrForbidden
	}
	return b, nil
}
