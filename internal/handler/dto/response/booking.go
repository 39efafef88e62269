package response

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	Token     string `json:"payment_token"`
	IframeURL string `json:"iframe_url"`
	OrderID   string `json:"order_id"`
}

type CreateBookingResponse struct {
	BookingID       uuid.UUID        `json:"booking_id"`
	Reference       string           `json:"reference"`
	Status          string           `json:"status"`
	Days            int              `json:"days"`
	TotalPrice      float64          `json:"total_price"`
	PaymentRequired bool             `json:"payment_required"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
	Hint            string           `json:"hint,omitempty"`
}

type PayBookingResponse struct {
	BookingID uuid.UUID        `json:"booking_id"`
	Reference string           `json:"reference"`
	Amount    float64          `json:"amount"`
	Payment   *PaymentResponse `json:"payment"`
}

type BookingStatusResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	if err := copyInto(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromPaymentResult(r *commands.PaymentResult) (*PayBookingResponse, error) {
	var resp PayBookingResponse
	if err := copyInto(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingStatusResult(r *commands.BookingStatusResult) *BookingStatusResponse {
	return &BookingStatusResponse{BookingID: r.BookingID, Status: r.Status}
}
