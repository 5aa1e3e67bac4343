package dto

// PassportResponse output of issuance: the stored QR payload string and the
// passport identifier. Identical across repeated calls for the same business.
type PassportResponse struct {
	BusinessID string `json:"business_id"`
	PassportID string `json:"passport_id"`
	QRCode     string `json:"qr_code"`
}

// VerifyScanRequest input of scan-time verification: the raw scanned string.
type VerifyScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// VerifiedBusinessResponse the public subset of a business returned by a
// successful passport verification. No internal flags are exposed.
type VerifiedBusinessResponse struct {
	PassportID      string `json:"passport_id"`
	BusinessName    string `json:"business_name"`
	Category        string `json:"category,omitempty"`
	Address         string `json:"address,omitempty"`
	YearEstablished string `json:"year_established,omitempty"`
	Verified        bool   `json:"verified"` // always true on success
}
