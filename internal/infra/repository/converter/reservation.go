package converter

import (
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateBookingParams {
	contact := res.Contact()
	delivery := res.Delivery()

	params := sqlc.CreateBookingParams{
		ID:               res.ID(),
		ListingID:        res.ListingID(),
		TenantID:         res.TenantID(),
		UserID:           pgconv.UUIDPtrToPgtype(res.UserID()),
		CustomerName:     contact.Name().Value(),
		CustomerPhone:    contact.Phone(),
		CustomerEmail:    contact.Email(),
		DeliveryNeeded:   delivery.Requested(),
		StartDate:        pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:          pgconv.DateToPgtype(res.Dates().End()),
		TotalPriceBaisa:  res.TotalPrice().Baisa(),
		PaymentReference: res.PaymentReference(),
		Status:           res.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	if delivery.Requested() {
		params.DeliveryAddress = pgconv.OptionalStringToPgtype(delivery.Address())
	}

	return params
}

func ReservationUpdateToInfra(res *reservation.Reservation) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:               res.ID(),
		Status:           res.Status().String(),
		TotalPriceBaisa:  res.TotalPrice().Baisa(),
		PaymentReference: res.PaymentReference(),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromInfra trusts stored rows; an unknown status is still an error
func ReservationFromInfra(row sqlc.Bookings) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		row.ID,
		row.ListingID,
		row.TenantID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		reservation.ReconstructContact(row.CustomerName, row.CustomerPhone, row.CustomerEmail),
		reservation.NewDelivery(row.DeliveryNeeded, pgconv.StringFromPgtype(row.DeliveryAddress)),
		reservation.ReconstructDates(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		money.FromBaisa(row.TotalPriceBaisa),
		row.PaymentReference,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
