// Package token generates the opaque credentials used to prove email
// ownership during registration.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 bytes of entropy; uniqueness is additionally enforced by the store's
// unique index on verification_token.
const entropyBytes = 32

// New returns a URL-safe random verification token.
func New() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error while generating verification token. %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
