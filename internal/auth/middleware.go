package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// TokenMiddleware gates lookup routes on a valid access token.
type TokenMiddleware struct {
	signer *Signer
}

// NewTokenMiddleware constructs middleware.
func NewTokenMiddleware(signer *Signer) *TokenMiddleware {
	return &TokenMiddleware{signer: signer}
}

// Handle verifies the `t` query token against the `doc` identifier. The
// rejection message is identical for missing, malformed and wrong tokens.
func (m *TokenMiddleware) Handle(c *fiber.Ctx) error {
	identifier := c.Query("doc")
	token := c.Query("t")
	if identifier == "" || token == "" || !m.signer.Verify(identifier, token) {
		return apperrors.NewUnauthorized("invalid token")
	}
	return c.Next()
}
