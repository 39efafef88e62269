package response

import "rental-marketplace/internal/usecase/queries"

// LoginResponse also backs signup; tokens are duplicated into HttpOnly cookies
type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
