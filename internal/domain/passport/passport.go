// Package passport implements the MSME passport identifier format and the
// QR payload codec. The payload carries self-describing claims only; actual
// validity is always re-checked against live business state at scan time, so
// unverifying or unpaying a business revokes every previously issued code
// without explicit revocation.
package passport

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/msmepassport/msme-passport-api/internal/domain"
)

// PayloadType tags every QR payload issued by this system.
const PayloadType = "msme-passport"

// Payload is the JSON object embedded in the QR code, stored verbatim as the
// business's qrCode value. Pixel rendering is a presentation concern.
type Payload struct {
	BusinessID string `json:"businessId"`
	PassportID string `json:"passportId"`
	Timestamp  string `json:"timestamp"` // issuance instant, RFC 3339
	Type       string `json:"type"`
}

// ID builds the deterministic passport identifier:
// MP-<last 8 chars of the business id, uppercased>-<calendar year of issuance>.
// Two issuances for the same business in the same year yield the same id.
func ID(businessID string, issuedAt time.Time) string {
	suffix := businessID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return "MP-" + strings.ToUpper(suffix) + "-" + issuedAt.Format("2006")
}

// Encode serializes the payload for a business issued at the given instant.
func Encode(businessID, passportID string, issuedAt time.Time) (string, error) {
	p := Payload{
		BusinessID: businessID,
		PassportID: passportID,
		Timestamp:  issuedAt.UTC().Format(time.RFC3339),
		Type:       PayloadType,
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a scanned payload string. Malformed JSON and a wrong type tag
// are deliberately indistinguishable: both return ErrPassportInvalid.
func Decode(raw string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, domain.ErrPassportInvalid
	}
	if p.Type != PayloadType || p.BusinessID == "" {
		return nil, domain.ErrPassportInvalid
	}
	return &p, nil
}
