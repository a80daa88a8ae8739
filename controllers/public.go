// controllers/public.go
package controllers

import (
	"errors"
	"net/http"

	"bookwise-backend/models"
	"bookwise-backend/services"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicController serves the unauthenticated booking surface: the booking
// profile, customer bookings and token-based confirm/cancel.
type PublicController struct {
	db           *gorm.DB
	appointments *services.AppointmentService
}

func NewPublicController(db *gorm.DB, appointments *services.AppointmentService) *PublicController {
	return &PublicController{db: db, appointments: appointments}
}

// GetBookingProfile returns the business's name, services and weekly windows
// so a customer can pick a slot.
func (pc *PublicController) GetBookingProfile(c *gin.Context) {
	businessID, ok := parseUUIDParam(c, "businessId")
	if !ok {
		return
	}

	var business models.User
	if err := pc.db.First(&business, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var businessServices []models.Service
	if err := pc.db.Where("business_id = ?", businessID).Find(&businessServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var availability []models.Availability
	if err := pc.db.Where("business_id = ?", businessID).
		Order("day_of_week, start_time").
		Find(&availability).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businessId":   business.ID,
		"businessName": business.BusinessName,
		"phone":        business.Phone,
		"services":     businessServices,
		"availability": availability,
	})
}

// CreatePublicAppointment books a slot on behalf of a customer. Slot
// validation always runs on this path.
func (pc *PublicController) CreatePublicAppointment(c *gin.Context) {
	businessID, ok := parseUUIDParam(c, "businessId")
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := pc.appointments.CreatePublic(businessID, services.CreateAppointmentInput{
		ServiceID:       input.ServiceID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		AppointmentDate: input.AppointmentDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// ConfirmAppointment confirms a booking via its confirmation token
func (pc *PublicController) ConfirmAppointment(c *gin.Context) {
	appointment, err := pc.appointments.ConfirmByToken(c.Param("token"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment confirmed successfully",
		"appointment": appointment,
	})
}

// CancelAppointment cancels a booking via its confirmation token
func (pc *PublicController) CancelAppointment(c *gin.Context) {
	appointment, err := pc.appointments.CancelByToken(c.Param("token"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": appointment,
	})
}
