package readstore

import (
	"context"

	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CompanyReadQueries interface {
	ListCompanies(ctx context.Context, db sqlc.DBTX, city pgtype.Text) ([]sqlc.ListCompaniesRow, error)
	ListFeaturedCompanies(ctx context.Context, db sqlc.DBTX, city pgtype.Text) ([]sqlc.ListFeaturedCompaniesRow, error)
	GetTenantBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Tenants, error)
	ListTenantFleet(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTenantFleetParams) ([]sqlc.Listings, error)
}

type CompanyReadStore struct {
	queries CompanyReadQueries
	db      sqlc.DBTX
}

func NewCompanyReadStore(queries CompanyReadQueries, db sqlc.DBTX) *CompanyReadStore {
	return &CompanyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CompanyReadStore) ListCompanies(ctx context.Context, city *string) ([]queries.CompanyView, error) {
	rows, err := r.queries.ListCompanies(ctx, r.db, pgconv.StringPtrToPgtype(city))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}

	result := make([]queries.CompanyView, len(rows))
	for i, row := range rows {
		result[i] = toCompanyView(row)
	}
	return result, nil
}

func (r *CompanyReadStore) ListFeaturedCompanies(ctx context.Context, city *string) ([]queries.CompanyView, error) {
	rows, err := r.queries.ListFeaturedCompanies(ctx, r.db, pgconv.StringPtrToPgtype(city))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured companies", err)
	}

	result := make([]queries.CompanyView, len(rows))
	for i, row := range rows {
		result[i] = toCompanyView(sqlc.ListCompaniesRow(row))
	}
	return result, nil
}

// FindActiveBySlug hides pending vendors behind not found
func (r *CompanyReadStore) FindActiveBySlug(ctx context.Context, slug string) (*queries.CompanyProfileView, error) {
	row, err := r.queries.GetTenantBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find company by slug", err)
	}
	if row.Status != tenant.StatusActive.String() {
		return nil, infra.WrapRepoErr("company not active", nil, infra.KindNotFound)
	}

	return &queries.CompanyProfileView{
		ID:             row.ID,
		Name:           row.Name,
		Slug:           row.Slug,
		Phone:          row.Phone,
		WhatsappNumber: row.WhatsappNumber,
		Address:        row.Address,
		Email:          row.Email,
		LogoURL:        row.LogoUrl,
		City:           row.City,
	}, nil
}

func (r *CompanyReadStore) ListAvailableFleet(ctx context.Context, profile *queries.CompanyProfileView) ([]queries.FleetItemView, error) {
	rows, err := r.queries.ListTenantFleet(ctx, r.db, sqlc.ListTenantFleetParams{
		TenantID:      profile.ID,
		IncludeHidden: false,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list company fleet", err)
	}

	summary := &queries.TenantSummary{
		ID:             profile.ID,
		Name:           profile.Name,
		Slug:           profile.Slug,
		WhatsappNumber: profile.WhatsappNumber,
		Address:        profile.Address,
		LogoURL:        profile.LogoURL,
	}
	result := make([]queries.FleetItemView, len(rows))
	for i, row := range rows {
		result[i] = toListingView(row)
		result[i].Tenant = summary
	}
	return result, nil
}

func toCompanyView(row sqlc.ListCompaniesRow) queries.CompanyView {
	return queries.CompanyView{
		ID:             row.ID,
		Name:           row.Name,
		Slug:           row.Slug,
		WhatsappNumber: row.WhatsappNumber,
		LogoURL:        row.LogoUrl,
		City:           row.City,
	}
}

