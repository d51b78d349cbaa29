package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is the de facto status for a request the client abandoned
const statusClientClosedRequest = 499

// HandleAPIError handles common API errors and returns appropriate responses.
// The body only ever carries one of the fixed apperrors messages; the cause is logged.
func HandleAPIError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.MsgInvalidID))
	case errors.Is(err, apperrors.ErrInvalidPages):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.MsgInvalidPages))
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrSearchRequired):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.MsgNotFound))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrStoreRejected):
		log.Debug().Err(err).Msg("Request rejected")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.MsgBadRequest))
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(statusClientClosedRequest)
		return
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(apperrors.MsgInternalError))
	}

	_ = c.Error(err)
}
