package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/flourmill/mill_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// loginRate caps credential attempts per client IP.
const loginRate = "5-M"

// authHandler handles login requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc) {
	h := newAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted(loginRate)
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// login godoc
// @Summary Log in
// @Description Exchanges credentials for an ERP backend bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} map[string]string
// @Failure 502 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, map[string]string{"email": req.Email})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, apperrors.ErrUnauthenticated) {
		logger.Warn("Login rejected by backend", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password", Values: map[string]string{"email": req.Email}})
		return
	}
	if err != nil {
		respondError(c, err, map[string]string{"email": req.Email})
		return
	}

	logger.Info("User logged in", slog.String("email", req.Email))
	c.JSON(http.StatusOK, dto.ToLoginResponse(token))
}
