package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewBookingToken returns an unguessable proof-of-booking token. The token
// doubles as a scan credential, so it must not be derivable from the
// booking id or timestamp.
func NewBookingToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return "QR-" + hex.EncodeToString(buf), nil
}
