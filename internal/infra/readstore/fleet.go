package readstore

import (
	"context"
	"encoding/json"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type FleetReadQueries interface {
	SearchFleet(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchFleetParams) ([]sqlc.SearchFleetRow, error)
	GetFleetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetFleetItemRow, error)
	ListActiveLocations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveLocationsRow, error)
	ListTenantFleet(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTenantFleetParams) ([]sqlc.Listings, error)
}

type FleetReadStore struct {
	queries FleetReadQueries
	db      sqlc.DBTX
}

func NewFleetReadStore(queries FleetReadQueries, db sqlc.DBTX) *FleetReadStore {
	return &FleetReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FleetReadStore) Search(ctx context.Context, search queries.FleetSearch) ([]queries.FleetItemView, error) {
	params := sqlc.SearchFleetParams{
		Category:         pgconv.StringPtrToPgtype(search.Category),
		LocationID:       pgconv.UUIDPtrToPgtype(search.LocationID),
		MinRate:          pgconv.Int8PtrToPgtype(search.MinRate),
		MaxRate:          pgconv.Int8PtrToPgtype(search.MaxRate),
		Features:         search.Features,
		BlockingStatuses: reservation.BlockingStatusStrings(),
	}
	// a NULL array never satisfies @>, so no filter is the empty array
	if params.Features == nil {
		params.Features = []string{}
	}
	if search.Dates != nil {
		params.StartDate = pgconv.DateToPgtype(search.Dates.Start())
		params.EndDate = pgconv.DateToPgtype(search.Dates.End())
	}

	rows, err := r.queries.SearchFleet(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search fleet", err)
	}

	result := make([]queries.FleetItemView, len(rows))
	for i, row := range rows {
		result[i] = toFleetItemView(sqlc.GetFleetItemRow(row))
	}
	return result, nil
}

func (r *FleetReadStore) FindAvailableByID(ctx context.Context, id uuid.UUID) (*queries.FleetItemView, error) {
	row, err := r.queries.GetFleetItem(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	view := toFleetItemView(row)
	return &view, nil
}

// ListLocations is ordered by sort rank then name
func (r *FleetReadStore) ListLocations(ctx context.Context) ([]queries.LocationView, error) {
	rows, err := r.queries.ListActiveLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	result := make([]queries.LocationView, len(rows))
	for i, row := range rows {
		result[i] = queries.LocationView{ID: row.ID, Name: row.NameEn, Type: row.Type}
	}
	return result, nil
}

func (r *FleetReadStore) ListTenantFleet(ctx context.Context, tenantID uuid.UUID, includeHidden bool) ([]queries.VendorListingView, error) {
	rows, err := r.queries.ListTenantFleet(ctx, r.db, sqlc.ListTenantFleetParams{
		TenantID:      tenantID,
		IncludeHidden: includeHidden,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tenant fleet", err)
	}

	result := make([]queries.VendorListingView, len(rows))
	for i, row := range rows {
		base := money.FromBaisa(row.BaseRateBaisa)
		result[i] = queries.VendorListingView{
			FleetItemView: toListingView(row),
			BaseRate:      base.Rials(),
			BaseRateBaisa: base.Baisa(),
		}
	}
	return result, nil
}

func toFleetItemView(row sqlc.GetFleetItemRow) queries.FleetItemView {
	rate := money.FromBaisa(row.DailyRateBaisa)
	return queries.FleetItemView{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Category:       row.Category,
		Make:           row.Make,
		Model:          row.Model,
		Year:           int(row.Year),
		DailyRate:      rate.Rials(),
		DailyRateBaisa: rate.Baisa(),
		IsAvailable:    true,
		IsFeatured:     row.IsFeatured,
		Features:       row.Features,
		Images:         row.Images,
		Description:    row.Description,
		LocationID:     pgconv.UUIDPtrFromPgtype(row.LocationID),
		Specs:          specsJSON(row.Specs),
		Tenant: &queries.TenantSummary{
			ID:             row.TenantID,
			Name:           row.TenantName,
			Slug:           row.TenantSlug,
			WhatsappNumber: row.TenantWhatsapp,
			Address:        row.TenantAddress,
			LogoURL:        row.TenantLogoUrl,
		},
	}
}

func toListingView(row sqlc.Listings) queries.FleetItemView {
	rate := money.FromBaisa(row.DailyRateBaisa)
	return queries.FleetItemView{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Category:       row.Category,
		Make:           row.Make,
		Model:          row.Model,
		Year:           int(row.Year),
		DailyRate:      rate.Rials(),
		DailyRateBaisa: rate.Baisa(),
		IsAvailable:    row.IsAvailable,
		IsFeatured:     row.IsFeatured,
		Features:       row.Features,
		Images:         row.Images,
		Description:    row.Description,
		LocationID:     pgconv.UUIDPtrFromPgtype(row.LocationID),
		Specs:          specsJSON(row.Specs),
	}
}

func specsJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("{}")
	}
	return json.RawMessage(b)
}

