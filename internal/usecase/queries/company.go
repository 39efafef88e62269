package queries

import (
	"context"
	"strings"

	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"
)

// AllCities is the city picker value meaning "anywhere"
const AllCities = "All Oman"

const FeaturedCompanyLimit = 12

var ErrCompanyNotFound = errs.New("company not found")

type CompanyQueries interface {
	ListCompanies(ctx context.Context, featuredOnly bool, city string) ([]CompanyView, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*CompanyDetailView, error)
}

type CompanyReadStore interface {
	ListCompanies(ctx context.Context, city *string) ([]CompanyView, error)
	ListFeaturedCompanies(ctx context.Context, city *string) ([]CompanyView, error)
	FindActiveBySlug(ctx context.Context, slug string) (*CompanyProfileView, error)
	ListAvailableFleet(ctx context.Context, profile *CompanyProfileView) ([]FleetItemView, error)
}

type companyQueriesImpl struct {
	readStore CompanyReadStore
}

func NewCompanyQueries(readStore CompanyReadStore) CompanyQueries {
	return &companyQueriesImpl{readStore: readStore}
}

func (q *companyQueriesImpl) ListCompanies(ctx context.Context, featuredOnly bool, city string) ([]CompanyView, error) {
	var cityFilter *string
	if c := strings.TrimSpace(city); c != "" && !strings.EqualFold(c, AllCities) {
		cityFilter = &c
	}

	if featuredOnly {
		return q.readStore.ListFeaturedCompanies(ctx, cityFilter)
	}
	return q.readStore.ListCompanies(ctx, cityFilter)
}

// GetCompanyBySlug returns an active vendor with its bookable fleet, cheapest first
func (q *companyQueriesImpl) GetCompanyBySlug(ctx context.Context, slug string) (*CompanyDetailView, error) {
	profile, err := q.readStore.FindActiveBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	fleet, err := q.readStore.ListAvailableFleet(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &CompanyDetailView{Company: *profile, Fleet: fleet}, nil
}
