package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Category    string         `json:"category" binding:"required,oneof=car heavy"`
	Make        string         `json:"make" binding:"required,max=80"`
	Model       string         `json:"model" binding:"required,max=80"`
	Year        int            `json:"year" binding:"required,min=1950,max=2100"`
	VendorPrice float64        `json:"vendor_price" binding:"required,gt=0,lte=1000000"`
	Description string         `json:"description" binding:"max=4000"`
	LocationID  *uuid.UUID     `json:"location_id,omitempty"`
	Features    []string       `json:"features"`
	Specs       map[string]any `json:"specs"`
	IsFeatured  bool           `json:"is_featured"`
}

func (r CreateListingRequest) ToInput() commands.ListingInput {
	return commands.ListingInput{
		Category:    r.Category,
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		VendorPrice: r.VendorPrice,
		Description: r.Description,
		LocationID:  r.LocationID,
		Features:    r.Features,
		Specs:       r.Specs,
		IsFeatured:  r.IsFeatured,
	}
}

// UpdateListingRequest is a partial edit; absent fields keep their value
type UpdateListingRequest struct {
	Make        *string        `json:"make" binding:"omitempty,max=80"`
	Model       *string        `json:"model" binding:"omitempty,max=80"`
	Year        *int           `json:"year" binding:"omitempty,min=1950,max=2100"`
	VendorPrice *float64       `json:"vendor_price" binding:"omitempty,gt=0,lte=1000000"`
	Description *string        `json:"description" binding:"omitempty,max=4000"`
	LocationID  *uuid.UUID     `json:"location_id"`
	Features    []string       `json:"features"`
	Specs       map[string]any `json:"specs"`
	IsFeatured  *bool          `json:"is_featured"`
}

func (r UpdateListingRequest) ToInput() commands.ListingChanges {
	return commands.ListingChanges{
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		VendorPrice: r.VendorPrice,
		Description: r.Description,
		LocationID:  r.LocationID,
		Features:    r.Features,
		Specs:       r.Specs,
		IsFeatured:  r.IsFeatured,
	}
}
