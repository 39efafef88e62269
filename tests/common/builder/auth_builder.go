//go:build unit || e2e

package builder

import (
	reqdto "rental-marketplace/internal/handler/dto/request"
)

// AuthBuilder produces login and signup payloads for a customer account
type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Salim Al Harthy",
		Phone:    "+96899112233",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Phone:    a.Phone,
	}
}
