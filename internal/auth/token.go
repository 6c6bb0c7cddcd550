package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken generates an opaque bearer token: 32 bytes of random data
// encoded as a URL-safe base64 string. Tokens are stored server-side and
// carry no embedded claims.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}
