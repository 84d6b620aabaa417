package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

func TestBootstrap_SeedsAdminUserAndEmployees(t *testing.T) {
	users := newStubUserRepo()
	employees := newStubEmployeeRepo()
	hasher := NewBcryptHasher(4)
	b := NewBootstrap(users, employees, hasher, zerolog.Nop())

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if !admin.IsAdmin() || !domain.HasRole(admin.Roles, domain.RoleUser) {
		t.Fatalf("expected admin with both roles, got %v", admin.Roles)
	}
	if !hasher.Verify("admin123", admin.PasswordHash) {
		t.Fatalf("admin password hash does not verify")
	}

	regular, err := users.FindByUsername(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not seeded: %v", err)
	}
	if regular.IsAdmin() {
		t.Fatalf("regular user must not be admin")
	}

	count, _ := employees.Count(context.Background())
	if count != 4 {
		t.Fatalf("expected 4 sample employees, got %d", count)
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	employees := newStubEmployeeRepo()
	b := NewBootstrap(users, employees, NewBcryptHasher(4), zerolog.Nop())

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	all, _ := users.FindAll(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 seeded users after re-run, got %d", len(all))
	}
	count, _ := employees.Count(context.Background())
	if count != 4 {
		t.Fatalf("expected 4 employees after re-run, got %d", count)
	}
}
