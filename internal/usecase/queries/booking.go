package queries

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListUserBookings(ctx context.Context, actor *auth.Actor) ([]BookingListItem, error)
	ListVendorBookings(ctx context.Context, actor *auth.Actor) ([]BookingListItem, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingListItem, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// ListUserBookings is newest first
func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, actor *auth.Actor) ([]BookingListItem, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	return q.readStore.ListByUser(ctx, actor.UserID)
}

func (q *bookingQueriesImpl) ListVendorBookings(ctx context.Context, actor *auth.Actor) ([]BookingListItem, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListByTenant(ctx, tenantID)
}
