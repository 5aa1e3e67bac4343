// Package qr renders QR code images for passport payloads.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

var _ usecase.QREncoder = (*Encoder)(nil)

// Encoder implements usecase.QREncoder with skip2/go-qrcode. Medium error
// correction is enough for a screen or a printed card.
type Encoder struct{}

// NewEncoder builds the encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// EncodePNG renders the payload as a size x size PNG.
func (Encoder) EncodePNG(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
