// Package auth resolves request identities from signed session tokens and
// decides which operations an identity may perform.
package auth

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts only the roles a session token may carry.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity is the authentication context of one request. The zero value is
// not valid; use Guest for anonymous callers.
type Identity struct {
	SubjectID uuid.UUID
	Role      Role
	SessionID string
	ExpiresAt time.Time
}

func Guest() Identity {
	return Identity{Role: RoleGuest}
}

func (i Identity) IsAuthenticated() bool {
	return i.SubjectID != uuid.Nil && (i.Role == RoleUser || i.Role == RoleAdmin)
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == RoleAdmin
}
