package ids

import (
	"strings"

	"github.com/google/uuid"
)

const qrTokenPrefix = "cb_"

// NewTransactionID returns a random UUID v4.
func NewTransactionID() string {
	return uuid.NewString()
}

// NewQRToken returns an unguessable QR identity token: "cb_" and 32 hex digits.
func NewQRToken() string {
	id := uuid.New()
	return qrTokenPrefix + strings.ReplaceAll(id.String(), "-", "")
}

// ExternalQRToken is the canonical token of an account linked to an
// external chat-platform identity.
func ExternalQRToken(externalID string) string {
	return "ext_" + externalID
}

// PhoneAccountID derives a stable account id from a phone number.
func PhoneAccountID(phone string) string {
	var b strings.Builder
	b.WriteString("p_")
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
