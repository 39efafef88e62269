package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Owners carry the tenant they manage.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	tenantID     *uuid.UUID
	fullName     FullName
	phone        string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, tenantID *uuid.UUID) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		tenantID:     tenantID,
		fullName:     NewFullName(""),
		isActive:     true,
	}
}

// NewCustomer registers a self-signup account
func NewCustomer(email Email, passwordHash string, fullName FullName, phone string) *User {
	u := NewUser(email, passwordHash, RoleCustomer, nil)
	u.fullName = fullName
	u.phone = phone
	return u
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) TenantID() *uuid.UUID  { return u.tenantID }
func (u *User) FullName() FullName    { return u.fullName }
func (u *User) Phone() string         { return u.phone }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
