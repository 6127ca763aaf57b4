package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils"
	"golang.org/x/oauth2"
)

type authService struct {
	BaseService
	backend portsrepo.Authenticator
}

// NewAuthService creates the login proxy.
func NewAuthService(backend portsrepo.Authenticator) portssvc.AuthSvc {
	return &authService{backend: backend}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	email = strings.TrimSpace(email)
	errs := apperrors.FieldErrors{}
	if email == "" {
		errs.Add("email", "email is required")
	}
	if password == "" {
		errs.Add("password", "password is required")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.LogError(ctx, err, "Backend login failed", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "User logged in",
		slog.String("email", email),
		slog.String("token_fingerprint", utils.TokenFingerprint(token.AccessToken)),
		slog.Time("expires_at", token.Expiry))
	return token, nil
}
