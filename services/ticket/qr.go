package ticket

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// qrEnvelope is the structure scanners decode at the venue entrance.
type qrEnvelope struct {
	BookingData string `json:"bookingData"`
	Message     string `json:"message"`
}

// QRPayload returns the signed payload for a booking: a JSON envelope around
// "bookingID|timestamp|signature" so the scanner can verify the signature
// without a network round trip.
func (r *PDFRenderer) QRPayload(bookingID string) string {
	timestamp := time.Now().Unix()
	data := fmt.Sprintf("%s|%d", bookingID, timestamp)

	h := hmac.New(sha256.New, []byte(r.SigningKey))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	envelope := qrEnvelope{
		BookingData: fmt.Sprintf("%s|%s", data, sig),
		Message:     "Ticket is verified",
	}
	b, _ := json.Marshal(envelope)
	return string(b)
}

// VerifyPayload reports whether a scanned payload carries a valid signature.
func (r *PDFRenderer) VerifyPayload(payload string) bool {
	var envelope qrEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return false
	}
	data, sig, ok := splitSignature(envelope.BookingData)
	if !ok {
		return false
	}
	h := hmac.New(sha256.New, []byte(r.SigningKey))
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}

func splitSignature(s string) (data, sig string, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '|' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// GenerateQR encodes the payload as a 256px PNG.
func (r *PDFRenderer) GenerateQR(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
