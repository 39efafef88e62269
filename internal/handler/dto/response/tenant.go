package response

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type TenantResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Slug   string    `json:"slug"`
	Status string    `json:"status"`
}

func FromTenantResult(r *commands.TenantResult) *TenantResponse {
	return &TenantResponse{ID: r.ID, Name: r.Name, Slug: r.Slug, Status: r.Status}
}
