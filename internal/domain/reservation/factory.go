package reservation

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// Request is an unvalidated booking submission
type Request struct {
	ListingID       uuid.UUID
	TenantID        uuid.UUID
	StartDate       string
	EndDate         string
	ContactName     string
	ContactPhone    string
	ContactEmail    string
	Delivery        bool
	DeliveryAddress string
}

// Draft is a request that passed the input checks
type Draft struct {
	ListingID uuid.UUID
	TenantID  uuid.UUID
	Dates     DateRange
	Contact   Contact
	Delivery  Delivery
}

type Factory struct {
	Clock           clock.Clock
	Location        *time.Location
	PriceCalculator PriceCalculator
}

func NewFactory(clk clock.Clock, loc *time.Location, priceCalculator PriceCalculator) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:           clk,
		Location:        loc,
		PriceCalculator: priceCalculator,
	}
}

// Validate checks, in order: ids, phone, date parsing, ordering, not in the past
func (f *Factory) Validate(req Request) (Draft, error) {
	if req.ListingID == uuid.Nil || req.TenantID == uuid.Nil {
		return Draft{}, ErrMissingIDs
	}

	contact, err := NewContact(req.ContactName, req.ContactPhone, req.ContactEmail)
	if err != nil {
		return Draft{}, err
	}

	dates, err := f.ParseDates(req.StartDate, req.EndDate)
	if err != nil {
		return Draft{}, err
	}

	if dates.Start().Before(clock.Today(f.Clock, f.Location)) {
		return Draft{}, ErrStartInPast
	}

	return Draft{
		ListingID: req.ListingID,
		TenantID:  req.TenantID,
		Dates:     dates,
		Contact:   contact,
		Delivery:  NewDelivery(req.Delivery, req.DeliveryAddress),
	}, nil
}

func (f *Factory) ParseDates(start, end string) (DateRange, error) {
	s, err := dateutil.ParseDate(start, f.Location)
	if err != nil {
		return DateRange{}, ErrInvalidDates
	}
	e, err := dateutil.ParseDate(end, f.Location)
	if err != nil {
		return DateRange{}, ErrInvalidDates
	}
	return NewDateRange(s, e)
}

// Create prices the draft at dailyRate and opens it in the requested state
func (f *Factory) Create(d Draft, dailyRate money.Money, userID *uuid.UUID) *Reservation {
	now := f.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		listingID:  d.ListingID,
		tenantID:   d.TenantID,
		userID:     userID,
		contact:    d.Contact,
		delivery:   d.Delivery,
		dates:      d.Dates,
		totalPrice: f.PriceCalculator.Total(dailyRate, d.Dates),
		status:     StatusRequested,
		createdAt:  now,
		updatedAt:  now,
	}
}
