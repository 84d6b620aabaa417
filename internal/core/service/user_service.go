package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/ports"
)

// UserService implements administrative user management. All operations are
// reachable only through admin-gated routes.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// Create provisions an account with an explicit role. This is the only path
// that may assign admin.
func (s *UserService) Create(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if taken, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.NormalizeRole(role)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", role).Msg("user created by admin")
	return created, nil
}

func (s *UserService) UpdateEmail(ctx context.Context, id, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.users.UpdateEmail(ctx, id, email)
}

// SetRole replaces the user's role set with the single normalized role.
func (s *UserService) SetRole(ctx context.Context, id, role string) (*domain.User, error) {
	if strings.TrimSpace(role) == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := s.users.UpdateRoles(ctx, id, []domain.Role{domain.NormalizeRole(role)})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role changed")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
