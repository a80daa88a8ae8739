package controllers

import (
	"net/http"

	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// businessIDFromContext pulls the authenticated business id set by the auth
// middleware. Responds with an error and returns false when absent.
func businessIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("businessId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return uuid.Nil, false
	}

	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID in context")
		return uuid.Nil, false
	}

	businessID, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid business ID format")
		return uuid.Nil, false
	}

	return businessID, true
}

// parseUUIDParam parses a uuid path parameter, responding with 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
