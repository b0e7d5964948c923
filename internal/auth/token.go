package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/spec-kit/driver-registry/internal/normalize"
)

// Signer derives and checks access tokens binding a normalized identifier to
// the shared secret. Tokens carry no expiry and no revocation: rotating the
// secret is the only way to invalidate issued tokens. That limitation is
// accepted, not an oversight.
type Signer struct {
	secret []byte
}

// NewSigner builds a signer around the shared secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the token for an identifier: HMAC-SHA256 over the normalized
// identifier, URL-safe base64 without padding.
func (s *Signer) Sign(identifier string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(normalize.Identifier(identifier)))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the token and compares in constant time. Any malformed
// input yields false, never an error.
func (s *Signer) Verify(identifier, token string) bool {
	expected := s.Sign(identifier)
	// tolerate callers that kept the base64 padding
	supplied := strings.TrimRight(token, "=")
	return hmac.Equal([]byte(expected), []byte(supplied))
}
