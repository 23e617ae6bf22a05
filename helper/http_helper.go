package helper

import (
	"errors"
	"net/http"

	"banner-service/models"

	"github.com/gin-gonic/gin"
)

// HTTPHelper ...
type HTTPHelper struct{}

// GetStatusCode ...
// Map a service error onto its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{"error": err.Error()})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// SendUnauthorized ...
// Send unauthorized response and abort the request chain.
func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
