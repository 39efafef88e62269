//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/user"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	TenantID     *uuid.UUID
	FullName     string
	Phone        string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		FullName:     "Test Customer",
		Phone:        "99001122",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.TenantID), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var tenantID pgtype.UUID
	if u.TenantID != nil {
		tenantID = pgtype.UUID{Bytes: *u.TenantID, Valid: true}
	}

	return sqlc.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		TenantID:     tenantID,
		FullName:     u.FullName,
		Phone:        u.Phone,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		TenantID: u.TenantID,
		FullName: u.FullName,
		Phone:    u.Phone,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

// AsOwnerOf makes the user the owner of tenantID
func (u *UserBuilder) AsOwnerOf(tenantID uuid.UUID) *UserBuilder {
	u.Role = "owner"
	u.TenantID = &tenantID
	return u
}

func (u *UserBuilder) AsSuperAdmin() *UserBuilder {
	u.Role = "super_admin"
	u.TenantID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
