package readstore

import (
	"context"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/dateutil"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.ListBookingsByUserRow, error)
	ListBookingsByTenant(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) ([]sqlc.ListBookingsByTenantRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) CountBlockingOverlaps(ctx context.Context, listingID uuid.UUID, dates reservation.DateRange) (int64, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		ListingID: listingID,
		Statuses:  reservation.BlockingStatusStrings(),
		EndDate:   pgconv.DateToPgtype(dates.End()),
		StartDate: pgconv.DateToPgtype(dates.Start()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}

	result := make([]queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(sqlc.ListBookingsByTenantRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByTenant(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tenant bookings", err)
	}

	result := make([]queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}
	return result, nil
}

func toBookingListItem(row sqlc.ListBookingsByTenantRow) queries.BookingListItem {
	dates := reservation.ReconstructDates(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	total := money.FromBaisa(row.TotalPriceBaisa)

	return queries.BookingListItem{
		ID:              row.ID,
		Reference:       reservation.ShortReference(row.ID),
		ListingID:       row.ListingID,
		TenantID:        row.TenantID,
		ListingName:     row.Make + " " + row.Model,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		DeliveryNeeded:  row.DeliveryNeeded,
		StartDate:       dateutil.Format(dates.Start()),
		EndDate:         dateutil.Format(dates.End()),
		Days:            dates.Days(),
		TotalPrice:      total.Rials(),
		TotalPriceBaisa: total.Baisa(),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
