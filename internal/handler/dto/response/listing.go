package response

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	DailyRate   float64   `json:"daily_rate"`
	BaseRate    float64   `json:"base_rate"`
	IsAvailable bool      `json:"is_available"`
	Images      []string  `json:"images"`
}

func FromListingResult(r *commands.ListingResult) (*ListingResponse, error) {
	resp := ListingResponse{Images: []string{}}
	if err := copyInto(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}
