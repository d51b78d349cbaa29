package controllers

import (
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// parseIDParam parses a positive ID path parameter
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	id, ok := helpers.ParseID(ctx.Param(paramName))
	if !ok {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

// parsePagesParam parses a 1-based page number path parameter
func parsePagesParam(ctx *gin.Context, paramName string) (int, error) {
	page, ok := helpers.ParsePage(ctx.Param(paramName))
	if !ok {
		return 0, apperrors.ErrInvalidPages
	}
	return page, nil
}
