package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/pkg/dateutil"
	"rental-marketplace/internal/usecase/shared"
)

// enqueueEmail writes an outbox row inside the caller's transaction.
// A notification without a recipient is skipped.
func enqueueEmail(ctx context.Context, tx shared.Tx, topic string, n shared.EmailNotification, now time.Time) error {
	if n.To == "" {
		slog.Debug("no recipient for notification", "topic", topic, "booking_ref", n.BookingRef)
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		slog.Warn("failed to encode notification", "topic", topic, "error", err.Error())
		return nil
	}

	return tx.Notifications().Enqueue(ctx, shared.JobKindEmail, topic, payload, now)
}

func bookingEmail(to string, res *reservation.Reservation, listingName, tenantName string) shared.EmailNotification {
	return shared.EmailNotification{
		To:              to,
		CustomerName:    res.Contact().Name().Value(),
		BookingRef:      res.Reference(),
		ListingName:     listingName,
		TenantName:      tenantName,
		StartDate:       dateutil.Format(res.Dates().Start()),
		EndDate:         dateutil.Format(res.Dates().End()),
		TotalPrice:      res.TotalPrice().String(),
		Status:          res.Status().String(),
		DeliveryPending: res.Delivery().Requested() && res.Status() == reservation.StatusRequested,
	}
}

// kick wakes the dispatcher; nil means delivery waits for the next scheduled sweep
func kick(signal JobSignal) {
	if signal != nil {
		signal.Kick()
	}
}
