package converter

import (
	"rental-marketplace/internal/domain/tenant"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
)

func TenantToInfra(t *tenant.Tenant) sqlc.CreateTenantParams {
	return sqlc.CreateTenantParams{
		ID:             t.ID(),
		Name:           t.Name(),
		Slug:           t.Slug(),
		Status:         t.Status().String(),
		Phone:          t.Phone(),
		WhatsappNumber: t.WhatsappNumber(),
		CrNumber:       t.CRNumber(),
		Address:        t.Address(),
		Email:          t.Email(),
		CreatedAt:      pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TenantUpdateToInfra(t *tenant.Tenant) sqlc.UpdateTenantParams {
	return sqlc.UpdateTenantParams{
		ID:             t.ID(),
		Status:         t.Status().String(),
		WhatsappNumber: t.WhatsappNumber(),
		Address:        t.Address(),
		Email:          t.Email(),
		LogoUrl:        t.LogoURL(),
		City:           t.City(),
		UpdatedAt:      pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TenantFromInfra(row sqlc.Tenants) *tenant.Tenant {
	return tenant.Reconstruct(
		row.ID,
		row.Name,
		row.Slug,
		tenant.Status(row.Status),
		row.Phone,
		row.WhatsappNumber,
		row.CrNumber,
		row.Address,
		row.Email,
		row.LogoUrl,
		row.City,
		row.IsFeatured,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
