package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/logger"
	"github.com/pkonnov/myblog/internal/middleware"
	"github.com/pkonnov/myblog/internal/validator"
)

// respondError translates a service error into the API error contract.
// Hidden resources and denied mutations both surface as a plain 404 so the
// response never reveals that the resource exists.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validator.FieldErrors(err),
		})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).
			ErrorContext(c.Request.Context(), "request failed",
				slog.String("path", c.FullPath()),
				slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
