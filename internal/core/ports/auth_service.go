package ports

import (
	"context"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	Username string
	Roles    []domain.Role
}

// AuthService orchestrates credential verification and registration.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Register creates a self-service account. Requested roles are
	// normalized; admin can never be obtained through this path.
	Register(ctx context.Context, username, email, password string, roles []string) (*domain.User, error)
}
