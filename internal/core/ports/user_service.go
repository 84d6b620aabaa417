package ports

import (
	"context"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

// UserService defines administrative user-management operations.
// All of these sit behind the admin role gate.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	// Create provisions an account with an explicit role; unlike
	// self-registration it may assign admin.
	Create(ctx context.Context, username, email, password, role string) (*domain.User, error)
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
	SetRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
