package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/apperrors"
)

// abortWithError maps the error taxonomy onto HTTP statuses: validation
// failures are 400, upstream gateway failures 502, everything else 500.
func abortWithError(c *gin.Context, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "details": ve.Details})
		return
	}
	if ue, ok := apperrors.IsUpstreamError(err); ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": ue.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
