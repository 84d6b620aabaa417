package domain

import (
	"strings"
	"time"
)

// Role is a named permission grant attached to a user and embedded in tokens.
// The canonical form carries the "ROLE_" prefix.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// NormalizeRole maps a raw role string ("admin", "ADMIN", "ROLE_ADMIN", ...)
// to its canonical prefixed form. Unknown or empty values default to RoleUser.
func NormalizeRole(raw string) Role {
	r := strings.ToUpper(strings.TrimSpace(raw))
	r = strings.TrimPrefix(r, "ROLE_")
	switch r {
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// NormalizeRoles maps raw role strings onto the canonical set, deduplicated
// and order-preserving. An empty input yields {RoleUser}.
func NormalizeRoles(raw []string) []Role {
	if len(raw) == 0 {
		return []Role{RoleUser}
	}
	seen := make(map[Role]struct{}, len(raw))
	roles := make([]Role, 0, len(raw))
	for _, r := range raw {
		role := NormalizeRole(r)
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}

// HasRole reports whether roles contains r.
func HasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

// RoleStrings converts a role set to plain strings for JWT claims and JSON.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return HasRole(u.Roles, RoleAdmin)
}
