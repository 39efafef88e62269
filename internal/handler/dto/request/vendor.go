package request

import "rental-marketplace/internal/usecase/commands"

type VendorApplicationRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Phone    string `json:"phone" binding:"required,max=32"`
	CRNumber string `json:"cr_number" binding:"required,max=40"`
	Address  string `json:"address" binding:"required,max=500"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (r VendorApplicationRequest) ToInput() commands.VendorApplication {
	return commands.VendorApplication{
		Name:     r.Name,
		Phone:    r.Phone,
		CRNumber: r.CRNumber,
		Address:  r.Address,
		Email:    r.Email,
	}
}

type TenantSettingsRequest struct {
	WhatsappNumber *string `json:"whatsapp_number" binding:"omitempty,max=32"`
	Address        *string `json:"address" binding:"omitempty,max=500"`
	Email          *string `json:"email" binding:"omitempty,email"`
	LogoURL        *string `json:"logo_url" binding:"omitempty,url"`
	City           *string `json:"city" binding:"omitempty,max=80"`
}

func (r TenantSettingsRequest) ToInput() commands.TenantSettingsInput {
	return commands.TenantSettingsInput{
		WhatsappNumber: r.WhatsappNumber,
		Address:        r.Address,
		Email:          r.Email,
		LogoURL:        r.LogoURL,
		City:           r.City,
	}
}
