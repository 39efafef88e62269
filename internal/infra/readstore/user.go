package readstore

import (
	"context"

	"github.com/google/uuid"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID joins the user's company so callers can gate vendor pages without a second query
func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserViewFromFindByIDRow(row), nil
}

// FindByEmail also returns the password hash for credential checks
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toAuthorizedUserViewFromUsers(row), row.PasswordHash, nil
}

func toAuthorizedUserViewFromUsers(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		TenantID: pgconv.UUIDPtrFromPgtype(row.TenantID),
		FullName: row.FullName,
		Phone:    row.Phone,
		IsActive: row.IsActive,
	}
}

func toAuthorizedUserViewFromFindByIDRow(row sqlc.FindUserByIDRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		TenantID:     pgconv.UUIDPtrFromPgtype(row.TenantID),
		FullName:     row.FullName,
		Phone:        row.Phone,
		IsActive:     row.IsActive,
		TenantName:   pgconv.StringPtrFromPgtype(row.TenantName),
		TenantStatus: pgconv.StringPtrFromPgtype(row.TenantStatus),
	}
}
