package ports

import (
	"context"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username and email uniqueness is enforced by the storage layer (unique
// indexes), so concurrent registrations of the same identity cannot both
// succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
	UpdateRoles(ctx context.Context, id string, roles []domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
