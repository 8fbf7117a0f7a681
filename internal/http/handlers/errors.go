package handlers

import (
	"net/http"

	"fleet/internal/domain"
	"fleet/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondAPIError normalizes err and writes the standard error payload. Errors
// without an HTTP status are reported as 500.
func RespondAPIError(c *gin.Context, err error) {
	apiErr := domain.Normalize(err)
	status := apiErr.Status
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	code := apiErr.Code
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"message":    apiErr.Message,
		"error":      apiErr.Error(),
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}
