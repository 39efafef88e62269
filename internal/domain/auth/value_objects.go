package auth

import (
	"errors"

	"rental-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Actor is the already-authenticated caller handed to use cases.
// Use cases never derive identity from request state themselves.
type Actor struct {
	UserID   uuid.UUID
	Role     user.Role
	TenantID *uuid.UUID
	Email    string
}

func (a *Actor) IsAuthenticated() bool {
	return a != nil && a.UserID != uuid.Nil
}

func (a *Actor) IsSuperAdmin() bool {
	return a.IsAuthenticated() && a.Role.IsStaff()
}

// Tenant returns the vendor the caller manages, if any
func (a *Actor) Tenant() (uuid.UUID, bool) {
	if !a.IsAuthenticated() || a.TenantID == nil || *a.TenantID == uuid.Nil {
		return uuid.Nil, false
	}
	return *a.TenantID, true
}

func (a *Actor) OwnsTenant(tenantID uuid.UUID) bool {
	id, ok := a.Tenant()
	return ok && id == tenantID
}

// UserIDPtr is nil for guests
func (a *Actor) UserIDPtr() *uuid.UUID {
	if !a.IsAuthenticated() {
		return nil
	}
	id := a.UserID
	return &id
}
