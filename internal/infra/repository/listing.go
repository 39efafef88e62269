package repository

import (
	"context"

	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) error
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) error
	DeleteListing(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteListingParams) ([]string, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	params, err := converter.ListingToInfra(l)
	if err != nil {
		return err
	}
	if err := r.queries.CreateListing(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	params, err := converter.ListingUpdateToInfra(l)
	if err != nil {
		return err
	}
	if err := r.queries.UpdateListing(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	return nil
}

// Delete is scoped to the tenant; a listing of another tenant reads as not found
func (r *ListingRepository) Delete(ctx context.Context, id, tenantID uuid.UUID) ([]string, error) {
	images, err := r.queries.DeleteListing(ctx, r.db, sqlc.DeleteListingParams{ID: id, TenantID: tenantID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete listing", err)
	}
	return images, nil
}
