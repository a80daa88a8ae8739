// controllers/availability.go
package controllers

import (
	"net/http"

	"bookwise-backend/services"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityInput defines the expected JSON structure for a weekly window
type AvailabilityInput struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// AvailabilityController handles the recurring weekly windows.
type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availability: availability}
}

// CreateAvailability adds a weekly window for the business
func (avc *AvailabilityController) CreateAvailability(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	window, err := avc.availability.Create(businessID, services.AvailabilityInput{
		DayOfWeek: *input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, window)
}

// GetAvailability lists the business's weekly windows
func (avc *AvailabilityController) GetAvailability(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	windows, err := avc.availability.ListByBusiness(businessID)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, windows)
}

// UpdateAvailability replaces a window's day and times
func (avc *AvailabilityController) UpdateAvailability(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	availabilityID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	window, err := avc.availability.Update(availabilityID, businessID, services.AvailabilityInput{
		DayOfWeek: *input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

// DeleteAvailability removes a window
func (avc *AvailabilityController) DeleteAvailability(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	availabilityID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := avc.availability.Delete(availabilityID, businessID); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}
