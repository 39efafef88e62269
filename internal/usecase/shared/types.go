package shared

import (
	"time"

	"rental-marketplace/internal/domain/money"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query view types

// BookableListingSnapshot carries what createBooking needs to decide whether a listing takes bookings
type BookableListingSnapshot struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Make         string
	Model        string
	DailyRate    money.Money
	IsAvailable  bool
	TenantActive bool
}

func (s BookableListingSnapshot) Name() string {
	return s.Make + " " + s.Model
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	TenantID *uuid.UUID
	FullName string
	Phone    string
	IsActive bool
}

// BookingContextSnapshot joins a booking with the names used in customer emails
type BookingContextSnapshot struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	UserID        *uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	UserEmail     string
	StartDate     time.Time
	EndDate       time.Time
	TotalPrice    money.Money
	Status        string
	ListingName   string
	TenantName    string
}

// RecipientEmail prefers the address typed on the booking over the account address
func (s BookingContextSnapshot) RecipientEmail() string {
	if s.CustomerEmail != "" {
		return s.CustomerEmail
	}
	return s.UserEmail
}
