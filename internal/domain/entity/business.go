package entity

import "time"

// Payment status values for Business.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Business is a business profile owned by a user. A user may own several,
// each independently lifecycle-managed.
//
// Verified, Rejected and PaymentStatus are the only authoritative state
// fields; the display status is always derived from them (profile.BusinessState),
// never stored in parallel.
type Business struct {
	ID                 string
	UserID             string // owner
	Name               string
	Email              string
	Category           string
	Address            string
	PhoneNumber        string
	Website            string
	Tagline            string
	RegistrationNumber string
	OwnerName          string // free text, comma-joined from a multi-input UI
	YearEstablished    string
	EmployeeCount      string // bucket label, e.g. "1-5"
	ChamberID          string // required primary affiliate

	// Document references per category. An empty list means no document;
	// the single-value legacy representation of the source system is gone.
	LicenseDocuments      []string // business license / ID card
	RegistrationDocuments []string // registration certificate
	OperationsDocuments   []string // proof of operations

	Completed       bool
	Verified        bool
	PaymentStatus   string // pending | paid
	Rejected        bool
	RejectionReason string
	Archived        bool
	Priority        int // insertion order, count of existing businesses + 1

	// Passport issuance artifacts; empty until issued, then immutable
	// for the life of the record (issuance is idempotent).
	QRCode     string // serialized JSON payload stored verbatim
	PassportID string // MP-<last 8 of id, uppercased>-<year>

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassport reports whether issuance already produced both artifacts.
func (b *Business) HasPassport() bool {
	return b.QRCode != "" && b.PassportID != ""
}
