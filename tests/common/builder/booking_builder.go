//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/reservation"
	reqdto "rental-marketplace/internal/handler/dto/request"
	"rental-marketplace/internal/pkg/dateutil"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	TenantID         uuid.UUID
	UserID           *uuid.UUID
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    string
	Delivery         bool
	DeliveryAddress  string
	StartDate        string
	EndDate          string
	DailyRate        money.Money
	TotalPrice       *money.Money
	PaymentReference string
	Status           reservation.Status
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		ListingID:     uuid.New(),
		TenantID:      uuid.New(),
		CustomerName:  "Maryam Al Balushi",
		CustomerPhone: "+96899001122",
		CustomerEmail: "maryam@example.com",
		StartDate:     "2024-01-10",
		EndDate:       "2024-01-13",
		DailyRate:     money.FromRials(25),
		Status:        reservation.StatusRequested,
		CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForListing(s shared.BookableListingSnapshot) *BookingBuilder {
	b.ListingID = s.ID
	b.TenantID = s.TenantID
	b.DailyRate = s.DailyRate
	return b
}

func (b *BookingBuilder) Dates(start, end string) *BookingBuilder {
	b.StartDate, b.EndDate = start, end
	return b
}

func (b *BookingBuilder) InStatus(s reservation.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) BookedBy(userID uuid.UUID) *BookingBuilder {
	b.UserID = &userID
	return b
}

func (b *BookingBuilder) BuildDomain() *reservation.Reservation {
	dates := reservation.ReconstructDates(dateutil.MustParse(b.StartDate), dateutil.MustParse(b.EndDate))
	total := b.DailyRate.Times(dates.Days())
	if b.TotalPrice != nil {
		total = *b.TotalPrice
	}
	return reservation.Reconstruct(
		b.ID, b.ListingID, b.TenantID, b.UserID,
		reservation.ReconstructContact(b.CustomerName, b.CustomerPhone, b.CustomerEmail),
		reservation.NewDelivery(b.Delivery, b.DeliveryAddress),
		dates,
		total,
		b.PaymentReference,
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	rate := b.DailyRate.Rials()
	return reqdto.CreateBookingRequest{
		ListingID:         b.ListingID,
		TenantID:          b.TenantID,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		DailyRate:         &rate,
		CustomerName:      b.CustomerName,
		CustomerPhone:     b.CustomerPhone,
		CustomerEmail:     b.CustomerEmail,
		DeliveryRequested: b.Delivery,
		DeliveryAddress:   b.DeliveryAddress,
	}
}

// ListingBuilder produces the bookable view of a listing
type ListingBuilder struct {
	Snapshot shared.BookableListingSnapshot
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{Snapshot: shared.BookableListingSnapshot{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Make:         "Toyota",
		Model:        "Land Cruiser",
		DailyRate:    money.FromRials(25),
		IsAvailable:  true,
		TenantActive: true,
	}}
}

func (l *ListingBuilder) With(mutate func(*shared.BookableListingSnapshot)) *ListingBuilder {
	mutate(&l.Snapshot)
	return l
}

func (l *ListingBuilder) Build() shared.BookableListingSnapshot {
	return l.Snapshot
}
