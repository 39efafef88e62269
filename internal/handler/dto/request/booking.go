package request

import (
	"strings"

	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest only bounds field sizes; presence is checked by the booking factory
type CreateBookingRequest struct {
	ListingID uuid.UUID `json:"listing_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	StartDate string    `json:"start_date" binding:"max=32"`
	EndDate   string    `json:"end_date" binding:"max=32"`
	// DailyRate is the rate shown to the customer; the server rejects the booking if it went stale
	DailyRate         *float64 `json:"daily_rate,omitempty"`
	CustomerName      string   `json:"customer_name" binding:"max=120"`
	CustomerPhone     string   `json:"customer_phone" binding:"max=32"`
	CustomerEmail     string   `json:"customer_email" binding:"omitempty,email"`
	DeliveryRequested bool     `json:"delivery_requested"`
	DeliveryAddress   string   `json:"delivery_address" binding:"max=500"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingID:       r.ListingID,
		TenantID:        r.TenantID,
		StartDate:       strings.TrimSpace(r.StartDate),
		EndDate:         strings.TrimSpace(r.EndDate),
		DailyRate:       r.DailyRate,
		ContactName:     strings.TrimSpace(r.CustomerName),
		ContactPhone:    strings.TrimSpace(r.CustomerPhone),
		ContactEmail:    strings.TrimSpace(r.CustomerEmail),
		Delivery:        r.DeliveryRequested,
		DeliveryAddress: strings.TrimSpace(r.DeliveryAddress),
	}
}

type QuoteRequest struct {
	FinalPrice float64 `json:"final_price" binding:"required,gt=0"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
