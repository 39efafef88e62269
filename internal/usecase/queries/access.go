package queries

import (
	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

func requireTenant(actor *auth.Actor) (uuid.UUID, error) {
	if !actor.IsAuthenticated() {
		return uuid.Nil, errs.ErrUnauthenticated
	}
	tenantID, ok := actor.Tenant()
	if !ok {
		return uuid.Nil, errs.ErrNoTenant
	}
	return tenantID, nil
}

func requireSuperAdmin(actor *auth.Actor) error {
	if !actor.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}
	if !actor.IsSuperAdmin() {
		return errs.ErrForbidden
	}
	return nil
}
