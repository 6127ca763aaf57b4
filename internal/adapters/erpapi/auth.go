package erpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/models"
	"github.com/flourmill/mill_ledger/internal/utils"
	"golang.org/x/oauth2"
)

// Login exchanges credentials for a bearer token. The token's expiry is read from its exp
// claim when the token is a JWT; an opaque token is treated as non-expiring. A JWT that is
// malformed or already expired is rejected here, as the auth middleware would reject it later.
func (c *Client) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	var resp models.LoginResponse
	err := c.do(ctx, call{
		operation: "login",
		method:    http.MethodPost,
		path:      "/api/auth/login",
		body:      models.LoginRequest{Email: email, Password: password},
		public:    true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return nil, &apperrors.ServerError{StatusCode: http.StatusOK, Message: "login response carried no token"}
	}

	claims, err := utils.ParseBearerToken(resp.Token, "")
	if err != nil {
		return nil, &apperrors.ServerError{StatusCode: http.StatusOK, Message: "login response carried an unusable token: " + err.Error()}
	}
	return &oauth2.Token{AccessToken: resp.Token, TokenType: "Bearer", Expiry: claims.Expiry()}, nil
}
