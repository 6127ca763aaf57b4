package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/platform/authctx"
	"github.com/flourmill/mill_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// AuthMiddleware requires a bearer token issued by the ERP backend. The token is checked for
// expiry (and, when jwtSecret is set, for its signature) and then carried in the request context
// so the backend client can forward it. The raw token is never logged.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}
		tokenString := parts[1]
		fingerprint := utils.TokenFingerprint(tokenString)

		claims, err := utils.ParseBearerToken(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("token_fingerprint", fingerprint), slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrUnauthenticated) && strings.Contains(err.Error(), "expired") {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		user := authctx.CurrentUser{
			ID:          claims.UserRef(),
			Email:       claims.Email,
			Role:        claims.Role,
			Fingerprint: fingerprint,
		}
		token := &oauth2.Token{
			AccessToken: tokenString,
			TokenType:   "Bearer",
			Expiry:      claims.Expiry(),
		}

		enrichedLogger := logger.With(
			slog.String("user_id", user.ID),
			slog.String("token_fingerprint", fingerprint),
		)

		ctx := authctx.WithToken(c.Request.Context(), token)
		ctx = authctx.WithCurrentUser(ctx, user)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), user.ID)

		c.Next()
	}
}
