package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/flourmill/mill_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error to its status and writes it together with the submitted values.
func respondError(c *gin.Context, err error, values map[string]string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resp := dto.ErrorResponse{Error: err.Error(), Values: values}
	status := http.StatusInternalServerError

	var fieldErrs apperrors.FieldErrors
	var serverErr *apperrors.ServerError
	switch {
	case errors.As(err, &fieldErrs):
		status = http.StatusBadRequest
		resp.Error = "Validation failed"
		resp.Fields = fieldErrs
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNoMatchingAccount), errors.Is(err, apperrors.ErrInvalidAccountType):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status = http.StatusUnauthorized
		resp.Error = "Session expired, please log in again"
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNetwork):
		status = http.StatusBadGateway
		resp.Error = "ERP backend is unreachable"
	case errors.As(err, &serverErr):
		status = http.StatusBadGateway
		resp.Error = "ERP backend error"
		if serverErr.Message != "" {
			resp.Error += ": " + serverErr.Message
		}
	default:
		resp.Error = "Internal server error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, resp)
}

// respondBindError reports a request that could not be bound. Validator failures are reported per field.
func respondBindError(c *gin.Context, err error, values map[string]string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := apperrors.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fe.Field(), bindingMessage(fe))
		}
		respondError(c, fields, values)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error(), Values: values})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "paymentmethod":
		return fe.Field() + " must be Cash, Bank Transfer, Cheque, Online or Other"
	case "min", "max", "len":
		return fe.Field() + " is out of range (" + fe.Tag() + "=" + fe.Param() + ")"
	default:
		return fe.Field() + " is invalid"
	}
}
