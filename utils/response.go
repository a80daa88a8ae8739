// utils/response.go
package utils

import (
	"bookwise-backend/apperrors"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body with the given status code.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithAppError maps a service error to its HTTP status code.
func RespondWithAppError(c *gin.Context, err error) {
	RespondWithError(c, apperrors.GetCode(err), err.Error())
}
