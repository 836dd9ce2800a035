package session

import (
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/core"
)

// Roles
const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

var AllRoles = []Role{RoleStudent, RoleAdmin}

// Role is the closed set of roles the backend can grant.
type Role string

// ParseRole returns the Role matching s (case-insensitive). ok is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// Identity is the locally cached record describing the currently authenticated user.
type Identity struct {
	ID    null.Int `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  Role     `json:"role"`
}

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsStudent() bool { return i.Role == RoleStudent }

// StudentID returns the identity id as a core.ID; ok is false when the id is unknown.
func (i Identity) StudentID() (core.ID, bool) {
	if !i.ID.Valid {
		return 0, false
	}
	return core.ID(i.ID.Int), true
}

// Valid reports whether the identity can be persisted: a known id and a known role.
func (i Identity) Valid() bool {
	return i.ID.Valid && i.Role.Valid()
}

func (i Identity) DisplayName() string {
	if name := strings.TrimSpace(i.Name); name != "" {
		return name
	}
	return i.Email
}
