package queries

import (
	"context"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// filterAll is the "no filter" value the search form sends
const filterAll = "all"

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrInvalidFilter   = errs.New("invalid search filter")
)

// FleetFilter is the public search input. Nil and empty values do not filter.
type FleetFilter struct {
	Category   string
	LocationID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Features   []string
	StartDate  string
	EndDate    string
}

// FleetSearch is FleetFilter after normalisation; rates are in baisa
type FleetSearch struct {
	Category   *string
	LocationID *uuid.UUID
	MinRate    *int64
	MaxRate    *int64
	Features   []string
	Dates      *reservation.DateRange
}

type FleetQueries interface {
	Search(ctx context.Context, filter FleetFilter) ([]FleetItemView, error)
	GetListing(ctx context.Context, id uuid.UUID) (*FleetItemView, error)
	ListLocations(ctx context.Context) ([]LocationView, error)
	ListVendorFleet(ctx context.Context, actor *auth.Actor) ([]VendorListingView, error)
}

type FleetReadStore interface {
	Search(ctx context.Context, search FleetSearch) ([]FleetItemView, error)
	FindAvailableByID(ctx context.Context, id uuid.UUID) (*FleetItemView, error)
	ListLocations(ctx context.Context) ([]LocationView, error)
	ListTenantFleet(ctx context.Context, tenantID uuid.UUID, includeHidden bool) ([]VendorListingView, error)
}

type fleetQueriesImpl struct {
	readStore FleetReadStore
	factory   *reservation.Factory
}

func NewFleetQueries(readStore FleetReadStore, factory *reservation.Factory) FleetQueries {
	return &fleetQueriesImpl{
		readStore: readStore,
		factory:   factory,
	}
}

func (q *fleetQueriesImpl) Search(ctx context.Context, filter FleetFilter) ([]FleetItemView, error) {
	search, err := q.normalize(filter)
	if err != nil {
		return nil, err
	}
	return q.readStore.Search(ctx, search)
}

func (q *fleetQueriesImpl) normalize(filter FleetFilter) (FleetSearch, error) {
	search := FleetSearch{
		LocationID: filter.LocationID,
		Features:   listing.NormalizeFeatures(filter.Features),
	}

	if c := strings.ToLower(strings.TrimSpace(filter.Category)); c != "" && c != filterAll {
		category, err := listing.NewCategory(c)
		if err != nil {
			return FleetSearch{}, errs.Mark(err, ErrInvalidFilter)
		}
		v := category.String()
		search.Category = &v
	}

	if filter.MinPrice != nil {
		v := money.FromRials(*filter.MinPrice).Baisa()
		search.MinRate = &v
	}
	if filter.MaxPrice != nil {
		v := money.FromRials(*filter.MaxPrice).Baisa()
		search.MaxRate = &v
	}
	if search.MinRate != nil && search.MaxRate != nil && *search.MinRate > *search.MaxRate {
		return FleetSearch{}, ErrInvalidFilter
	}

	// The date filter applies only when both ends are given
	if filter.StartDate != "" && filter.EndDate != "" {
		dates, err := q.factory.ParseDates(filter.StartDate, filter.EndDate)
		if err != nil {
			return FleetSearch{}, errs.Mark(err, ErrInvalidDates)
		}
		search.Dates = &dates
	}

	return search, nil
}

func (q *fleetQueriesImpl) GetListing(ctx context.Context, id uuid.UUID) (*FleetItemView, error) {
	item, err := q.readStore.FindAvailableByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return item, nil
}

func (q *fleetQueriesImpl) ListLocations(ctx context.Context) ([]LocationView, error) {
	return q.readStore.ListLocations(ctx)
}

func (q *fleetQueriesImpl) ListVendorFleet(ctx context.Context, actor *auth.Actor) ([]VendorListingView, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListTenantFleet(ctx, tenantID, true)
}
