package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/ports"
)

// Bootstrap seeds the initial admin and demo data. Every step is idempotent:
// accounts are only created when absent, employees only when the collection
// is empty.
type Bootstrap struct {
	users     ports.UserRepository
	employees ports.EmployeeRepository
	hasher    ports.PasswordHasher
	log       zerolog.Logger
}

func NewBootstrap(users ports.UserRepository, employees ports.EmployeeRepository, hasher ports.PasswordHasher, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{users: users, employees: employees, hasher: hasher, log: log}
}

// Run seeds users and sample employees.
func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.seedUser(ctx, "admin", "admin@example.com", "admin123",
		[]domain.Role{domain.RoleAdmin, domain.RoleUser}); err != nil {
		return err
	}
	if err := b.seedUser(ctx, "user", "user@example.com", "user123",
		[]domain.Role{domain.RoleUser}); err != nil {
		return err
	}
	return b.seedEmployees(ctx)
}

func (b *Bootstrap) seedUser(ctx context.Context, username, email, password string, roles []domain.Role) error {
	exists, err := b.users.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("bootstrap: check user %s: %w", username, err)
	}
	if exists {
		return nil
	}

	hash, err := b.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash password for %s: %w", username, err)
	}

	now := time.Now().UTC()
	_, err = b.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: create user %s: %w", username, err)
	}

	b.log.Info().Str("username", username).Msg("seeded user account")
	return nil
}

func (b *Bootstrap) seedEmployees(ctx context.Context) error {
	count, err := b.employees.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []domain.Employee{
		{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@example.com",
			Phone:      "+1-555-0101",
			Department: "Engineering",
			Position:   "Software Engineer",
			Salary:     80000,
			HireDate:   time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@example.com",
			Phone:      "+1-555-0102",
			Department: "Marketing",
			Position:   "Marketing Manager",
			Salary:     95000,
			HireDate:   time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName:  "Bob",
			LastName:   "Johnson",
			Email:      "bob.johnson@example.com",
			Phone:      "+1-555-0103",
			Department: "Engineering",
			Position:   "Senior Developer",
			Salary:     100000,
			HireDate:   time.Date(2018, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName:  "Alice",
			LastName:   "Williams",
			Email:      "alice.williams@example.com",
			Phone:      "+1-555-0104",
			Department: "HR",
			Position:   "HR Manager",
			Salary:     90000,
			HireDate:   time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	now := time.Now().UTC()
	for i := range samples {
		e := samples[i]
		e.CreatedAt = now
		e.UpdatedAt = now
		if _, err := b.employees.Create(ctx, &e); err != nil {
			return fmt.Errorf("bootstrap: seed employee %s: %w", e.Email, err)
		}
	}

	b.log.Info().Int("count", len(samples)).Msg("seeded sample employees")
	return nil
}
