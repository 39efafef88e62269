package repository

import (
	"context"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	AssignUserTenant(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignUserTenantParams) error
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		TenantID:     pgconv.UUIDPtrToPgtype(u.TenantID()),
		FullName:     u.FullName().Value(),
		Phone:        u.Phone(),
		IsActive:     u.IsActive(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) AssignTenant(ctx context.Context, userID uuid.UUID, role user.Role, tenantID uuid.UUID) error {
	err := r.queries.AssignUserTenant(ctx, r.db, sqlc.AssignUserTenantParams{
		ID:       userID,
		Role:     role.String(),
		TenantID: pgconv.UUIDToPgtype(tenantID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to assign user tenant", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
