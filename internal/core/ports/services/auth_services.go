package services

import (
	"context"

	"golang.org/x/oauth2"
)

// AuthSvc proxies the backend login.
type AuthSvc interface {
	// Login exchanges credentials for a bearer token issued by the ERP backend.
	Login(ctx context.Context, email, password string) (*oauth2.Token, error)
}
