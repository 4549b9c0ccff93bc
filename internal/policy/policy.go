package policy

import (
	"PenaGolang/internal/entity"
	"PenaGolang/pkg/response"
	"net/http"
)

type Capability int

const (
	// OwnerOnly allows the mutation iff the principal is the recorded owner.
	OwnerOnly Capability = iota
	// AdminOnly allows the mutation iff the principal carries the admin role.
	AdminOnly
)

var (
	ErrForbidden       = response.NewError(http.StatusForbidden, "resource does not belong to user")
	ErrAdminRequired   = response.NewError(http.StatusForbidden, "admin role required")
	ErrUnauthenticated = response.NewError(http.StatusUnauthorized, "authentication required")
)

// Authorize gates a mutation. Callers invoke it after the target resource has
// been loaded and before any write is applied. It is pure: no I/O, no logging.
// Capabilities are never combined; each endpoint picks exactly one.
func Authorize(principal entity.UserLoginData, ownerID string, capability Capability) error {
	if principal.Anonymous || principal.ID == "" {
		return ErrUnauthenticated
	}

	switch capability {
	case AdminOnly:
		if !principal.IsAdmin {
			return ErrAdminRequired
		}
	case OwnerOnly:
		if principal.ID != ownerID {
			return ErrForbidden
		}
	}

	return nil
}
