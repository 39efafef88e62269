package repository

import (
	"context"

	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository/converter"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockListingBookings(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) error
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockListing takes a transaction-scoped advisory lock keyed by the listing.
// Released on commit or rollback.
func (r *BookingRepository) LockListing(ctx context.Context, listingID uuid.UUID) error {
	if err := r.queries.LockListingBookings(ctx, r.db, listingID); err != nil {
		return infra.WrapRepoErr("failed to lock listing bookings", err)
	}
	return nil
}

// CountOverlapping counts blocking bookings with existing.start < end AND existing.end > start
func (r *BookingRepository) CountOverlapping(ctx context.Context, listingID uuid.UUID, dates reservation.DateRange) (int64, error) {
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

func (r *BookingRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.UpdateBooking(ctx, r.db, converter.ReservationUpdateToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}
