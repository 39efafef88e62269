package queries

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const availabilitySystemError = "System error"

var ErrInvalidDates = errs.New("invalid dates")

type AvailabilityQueries interface {
	// CheckAvailability reports whether [startDate, endDate) is free of blocking bookings.
	// Store failures fail closed: unavailable with an opaque message, never an error.
	CheckAvailability(ctx context.Context, listingID uuid.UUID, startDate, endDate string) (*AvailabilityView, error)
}

type AvailabilityReadStore interface {
	CountBlockingOverlaps(ctx context.Context, listingID uuid.UUID, dates reservation.DateRange) (int64, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
	factory   *reservation.Factory
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, factory *reservation.Factory) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		factory:   factory,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, listingID uuid.UUID, startDate, endDate string) (*AvailabilityView, error) {
	dates, err := q.factory.ParseDates(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	n, err := q.readStore.CountBlockingOverlaps(ctx, listingID, dates)
	if err != nil {
		slog.Error("availability check failed",
			"listing_id", listingID,
			"dates", dates.String(),
			"error", err.Error())
		return &AvailabilityView{Available: false, Message: availabilitySystemError}, nil
	}

	return &AvailabilityView{Available: n == 0}, nil
}
