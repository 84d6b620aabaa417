package ports

import (
	"time"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

// TokenClaims is the identity a validated token certifies.
type TokenClaims struct {
	Subject   string
	Roles     []domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed, expiring bearer tokens.
// Tokens are stateless: nothing is persisted server-side and validation
// trusts the claims embedded at issuance.
type TokenService interface {
	Issue(subject string, roles []domain.Role, now time.Time) (string, error)
	// Validate fails with domain.ErrTokenMalformed, ErrTokenBadSignature
	// or ErrTokenExpired; on success it returns the embedded claims.
	Validate(token string, now time.Time) (*TokenClaims, error)
}
