package dto

import "time"

// CreateBusinessRequest input for creating a business profile. Only the name
// and chamber are mandatory at creation; the rest is filled over time and
// tracked by the completion calculator.
type CreateBusinessRequest struct {
	Name                  string   `json:"name" validate:"required,min=1,max=200"`
	Email                 string   `json:"email" validate:"omitempty,email"`
	Category              string   `json:"category"`
	Address               string   `json:"address"`
	PhoneNumber           string   `json:"phone_number"`
	Website               string   `json:"website"`
	Tagline               string   `json:"tagline"`
	RegistrationNumber    string   `json:"registration_number"`
	OwnerName             string   `json:"owner_name"` // comma-joined free text
	YearEstablished       string   `json:"year_established"`
	EmployeeCount         string   `json:"employee_count"`
	ChamberID             string   `json:"chamber_id" validate:"required"`
	SecondaryAffiliateIDs []string `json:"secondary_affiliate_ids"`
}

// UpdateBusinessRequest partial update of a business profile.
type UpdateBusinessRequest struct {
	Name                  *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email                 *string   `json:"email" validate:"omitempty,email"`
	Category              *string   `json:"category"`
	Address               *string   `json:"address"`
	PhoneNumber           *string   `json:"phone_number"`
	Website               *string   `json:"website"`
	Tagline               *string   `json:"tagline"`
	RegistrationNumber    *string   `json:"registration_number"`
	OwnerName             *string   `json:"owner_name"`
	YearEstablished       *string   `json:"year_established"`
	EmployeeCount         *string   `json:"employee_count"`
	ChamberID             *string   `json:"chamber_id"`
	SecondaryAffiliateIDs *[]string `json:"secondary_affiliate_ids"`
	LicenseDocuments      *[]string `json:"license_documents"`
	RegistrationDocuments *[]string `json:"registration_documents"`
	OperationsDocuments   *[]string `json:"operations_documents"`
}

// BusinessResponse a business decorated with derived completion, state and
// gate verdicts so clients never recompute eligibility rules.
type BusinessResponse struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email,omitempty"`
	Category              string    `json:"category,omitempty"`
	Address               string    `json:"address,omitempty"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	Website               string    `json:"website,omitempty"`
	Tagline               string    `json:"tagline,omitempty"`
	RegistrationNumber    string    `json:"registration_number,omitempty"`
	OwnerName             string    `json:"owner_name,omitempty"`
	YearEstablished       string    `json:"year_established,omitempty"`
	EmployeeCount         string    `json:"employee_count,omitempty"`
	ChamberID             string    `json:"chamber_id,omitempty"`
	SecondaryAffiliateIDs []string  `json:"secondary_affiliate_ids,omitempty"`
	LicenseDocuments      []string  `json:"license_documents,omitempty"`
	RegistrationDocuments []string  `json:"registration_documents,omitempty"`
	OperationsDocuments   []string  `json:"operations_documents,omitempty"`
	Verified              bool      `json:"verified"`
	Rejected              bool      `json:"rejected"`
	RejectionReason       string    `json:"rejection_reason,omitempty"`
	PaymentStatus         string    `json:"payment_status"`
	Archived              bool      `json:"archived"`
	Priority              int       `json:"priority"`
	QRCode                string    `json:"qr_code,omitempty"`
	PassportID            string    `json:"passport_id,omitempty"`
	Completion            int       `json:"completion"`
	State                 string    `json:"state"` // incomplete | pending | verified | rejected
	MissingFields         []string  `json:"missing_fields,omitempty"`
	EligibleForReview     bool      `json:"eligible_for_review"`
	CanAddCollaborators   bool      `json:"can_add_collaborators"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// BusinessListResponse paginated list of businesses.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// VerifyBusinessRequest admin input for the verify/unverify action. The
// payment status accompanies the flag: conventionally "paid" when verifying
// and "pending" when unverifying.
type VerifyBusinessRequest struct {
	Verified      bool   `json:"verified"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid"`
}

// RejectBusinessRequest admin input for setting or clearing rejection.
// A non-empty reason is mandatory when rejecting.
type RejectBusinessRequest struct {
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason"`
}
