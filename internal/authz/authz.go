// Package authz decides whether an actor may delete an owned record.
package authz

import (
	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

// RoleAdmin is the role that may delete any record.
const RoleAdmin = "ADMIN"

// Actor is the authenticated identity performing an operation.
type Actor struct {
	Username string
	Roles    []string
}

// HasRole reports whether the actor was granted role.
func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanDelete permits administrators, and the creator of the record. A record
// without an owner is deletable by administrators only.
func CanDelete(actor Actor, record models.Owned) bool {
	if actor.HasRole(RoleAdmin) {
		return true
	}
	if record == nil {
		return false
	}
	owner := record.Owner()
	return owner != "" && owner == actor.Username
}

// AuthorizeDelete returns ErrAccessDenied when CanDelete refuses the actor.
func AuthorizeDelete(actor Actor, record models.Owned) error {
	if !CanDelete(actor, record) {
		return apperrors.ErrAccessDenied
	}
	return nil
}
