package repository

import (
	"context"

	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
)

type TenantWriteQueries interface {
	CreateTenant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTenantParams) error
	UpdateTenant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTenantParams) error
}

type TenantRepository struct {
	queries TenantWriteQueries
	db      sqlc.DBTX
}

func NewTenantRepository(queries TenantWriteQueries, db sqlc.DBTX) *TenantRepository {
	return &TenantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	if err := r.queries.CreateTenant(ctx, r.db, converter.TenantToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to create tenant", err)
	}
	return nil
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	if err := r.queries.UpdateTenant(ctx, r.db, converter.TenantUpdateToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to update tenant", err)
	}
	return nil
}
