package usecase

import (
	"strings"

	"pandit_booking/internal/domain/entities"
)

var (
	ErrUnauthenticated  = newError("authentication required", ErrForbidden)
	ErrAdminRequired    = newError("admin access required", ErrForbidden)
	ErrRoleNotPermitted = newError("role not permitted", ErrForbidden)
)

// Principal is the authenticated caller. It is built by the transport layer
// from a verified token and passed explicitly to every use case.
type Principal struct {
	UserID string
	Role   entities.UserRole
}

func (p Principal) IsAuthenticated() bool {
	return strings.TrimSpace(p.UserID) != ""
}

func (p Principal) IsAdmin() bool {
	return p.IsAuthenticated() && p.Role == entities.UserRoleAdmin
}

// Owns reports whether the principal is the owner of a resource held by userID.
func (p Principal) Owns(userID string) bool {
	return p.IsAuthenticated() && p.UserID == userID
}

// RequireRole fails unless the principal holds one of roles.
func RequireRole(p Principal, roles ...entities.UserRole) error {
	if !p.IsAuthenticated() {
		return ErrUnauthenticated
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	if len(roles) == 1 && roles[0] == entities.UserRoleAdmin {
		return ErrAdminRequired
	}
	return ErrRoleNotPermitted
}

func requireOwnerOrAdmin(p Principal, ownerID string, denied error) error {
	if !p.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if p.Owns(ownerID) || p.IsAdmin() {
		return nil
	}
	return denied
}
