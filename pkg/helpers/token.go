package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// APIKeyBytes is the entropy of a generated API key. 32 bytes keeps the
// encoded token well above the 128-bit minimum for a bearer credential.
const APIKeyBytes = 32

// NewAPIKey generates an opaque bearer token from crypto/rand, encoded as
// URL-safe base64 without padding.
func NewAPIKey() (string, error) {
	b := make([]byte, APIKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
