package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC().Truncate(time.Second)

	token, err := svc.Issue("alice", []domain.Role{domain.RoleAdmin, domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Validate(token, now)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %s", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != domain.RoleAdmin || claims.Roles[1] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if !claims.IssuedAt.Equal(now) {
		t.Fatalf("expected iat %v, got %v", now, claims.IssuedAt)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected exp %v, got %v", now.Add(time.Hour), claims.ExpiresAt)
	}
}

func TestTokenService_ValidWithinLifetime(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC().Truncate(time.Second)

	token, err := svc.Issue("bob", []domain.Role{domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// valid at issuance and right up to (but excluding) expiry
	for _, at := range []time.Time{now, now.Add(30 * time.Minute), now.Add(time.Hour - time.Second)} {
		if _, err := svc.Validate(token, at); err != nil {
			t.Fatalf("expected token valid at %v, got %v", at, err)
		}
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC().Truncate(time.Second)

	token, err := svc.Issue("bob", []domain.Role{domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	for _, at := range []time.Time{now.Add(time.Hour), now.Add(2 * time.Hour)} {
		if _, err := svc.Validate(token, at); !errors.Is(err, domain.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired at %v, got %v", at, err)
		}
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	token, err := svc.Issue("carol", []domain.Role{domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Validate(tampered, now); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	now := time.Now().UTC()
	token, err := NewTokenService("secret-a", time.Hour).Issue("dave", []domain.Role{domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Validate(token, now); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(tok, now); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   "mallory",
		"roles": []string{"ROLE_ADMIN"},
		"exp":   now.Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := svc.Validate(token, now); !errors.Is(err, domain.ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature for alg=none, got %v", err)
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	now := time.Now().UTC().Truncate(time.Second)

	token, err := svc.Issue("erin", []domain.Role{domain.RoleUser}, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := svc.Validate(token, now)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !claims.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("expected default 24h TTL, got exp %v", claims.ExpiresAt)
	}
}
