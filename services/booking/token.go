package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewChangeToken generates the single-use secret that authorizes reschedule
// and cancel for one booking. 16 random bytes, hex encoded.
func NewChangeToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate change token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
