package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrInvalidRange), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for err. Client errors echo the cause;
// server errors are logged and answered with fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindError answers a request whose body or query failed to bind.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
