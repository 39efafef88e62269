package request

import "rental-marketplace/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=120"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}

func (r SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
	}
}

// RefreshRequest may be empty when the refresh token travels in its cookie
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
