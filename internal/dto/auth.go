package dto

import (
	"time"

	"golang.org/x/oauth2"
)

// LoginRequest holds the credentials forwarded to the ERP backend.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"clerk@mill.pk"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"tokenType"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// ToLoginResponse converts a backend token.
func ToLoginResponse(token *oauth2.Token) LoginResponse {
	resp := LoginResponse{Token: token.AccessToken, TokenType: token.Type()}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		resp.ExpiresAt = &expiry
	}
	return resp
}
