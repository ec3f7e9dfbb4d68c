package ports

import (
	"time"

	"github.com/pos-system/auth-service/internal/core/domain"
)

// TokenClaims is what a verified bearer token asserts.
type TokenClaims struct {
	Subject string
	Role    domain.Role
}

// TokenService hashes passwords and issues/verifies bearer tokens.
// It performs no I/O.
type TokenService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(subject string, role domain.Role, now time.Time) (string, error)
	// VerifyToken fails with domain.ErrInvalidToken for every kind of
	// rejection: malformed, bad signature, wrong algorithm or expired.
	VerifyToken(token string, now time.Time) (*TokenClaims, error)
}
