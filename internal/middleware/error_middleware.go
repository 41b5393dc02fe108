package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"registrar/internal/app/models/dto"
	"registrar/internal/pkg/apperrors"
	"registrar/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Lookups that
// miss return 400 rather than 404; that is observable client-facing
// behavior carried forward deliberately.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "invalid inputs")),
		))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "resource not found")),
		))
	case errors.Is(err, apperrors.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidReference, apperrors.Message(err, "referenced resource does not exist")),
		))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err, "resource already exists")),
		))
	default:
		// Store or driver failure; log the cause, never crash the process
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled store error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
