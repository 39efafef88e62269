package converter

import (
	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/money"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
)

func ListingToInfra(l *listing.Listing) (sqlc.CreateListingParams, error) {
	specs, err := listing.EncodeSpecs(l.Specs())
	if err != nil {
		return sqlc.CreateListingParams{}, errs.Wrap(err, "failed to encode listing specs")
	}

	return sqlc.CreateListingParams{
		ID:             l.ID(),
		TenantID:       l.TenantID(),
		Category:       l.Category().String(),
		Make:           l.Make(),
		Model:          l.Model(),
		Year:           int32(l.Year()), // #nosec G115 -- year is range-checked by the domain
		DailyRateBaisa: l.DailyRate().Baisa(),
		BaseRateBaisa:  l.BaseRate().Baisa(),
		IsAvailable:    l.IsAvailable(),
		IsFeatured:     l.IsFeatured(),
		Features:       nonNil(l.Features()),
		Images:         nonNil(l.Images()),
		Description:    l.Description(),
		LocationID:     pgconv.UUIDPtrToPgtype(l.LocationID()),
		Specs:          specs,
		CreatedAt:      pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(l.UpdatedAt()),
	}, nil
}

func ListingUpdateToInfra(l *listing.Listing) (sqlc.UpdateListingParams, error) {
	p, err := ListingToInfra(l)
	if err != nil {
		return sqlc.UpdateListingParams{}, err
	}

	return sqlc.UpdateListingParams{
		ID:             p.ID,
		Make:           p.Make,
		Model:          p.Model,
		Year:           p.Year,
		DailyRateBaisa: p.DailyRateBaisa,
		BaseRateBaisa:  p.BaseRateBaisa,
		IsAvailable:    p.IsAvailable,
		IsFeatured:     p.IsFeatured,
		Features:       p.Features,
		Images:         p.Images,
		Description:    p.Description,
		LocationID:     p.LocationID,
		Specs:          p.Specs,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func ListingFromInfra(row sqlc.Listings) (*listing.Listing, error) {
	category, err := listing.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}
	specs, err := listing.DecodeSpecsJSON(category, row.Specs)
	if err != nil {
		return nil, err
	}

	return listing.Reconstruct(
		row.ID,
		row.TenantID,
		category,
		row.Make,
		row.Model,
		int(row.Year),
		money.FromBaisa(row.DailyRateBaisa),
		money.FromBaisa(row.BaseRateBaisa),
		row.IsAvailable,
		row.IsFeatured,
		row.Features,
		row.Images,
		row.Description,
		pgconv.UUIDPtrFromPgtype(row.LocationID),
		specs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// text[] columns are NOT NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
