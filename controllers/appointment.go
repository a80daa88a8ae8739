// controllers/appointment.go
package controllers

import (
	"net/http"

	"bookwise-backend/services"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAppointmentInput defines the expected JSON structure for a booking
type CreateAppointmentInput struct {
	ServiceID       uuid.UUID `json:"serviceId" binding:"required"`
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerPhone   string    `json:"customerPhone" binding:"required"`
	AppointmentDate string    `json:"appointmentDate" binding:"required"`
	StartTime       string    `json:"startTime" binding:"required"`
	EndTime         string    `json:"endTime"`
}

// UpdateStatusInput defines the expected JSON structure for a status change
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentController handles owner-facing appointment operations.
type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

func (apc *AppointmentController) serviceInput(input CreateAppointmentInput) services.CreateAppointmentInput {
	return services.CreateAppointmentInput{
		ServiceID:       input.ServiceID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		AppointmentDate: input.AppointmentDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
	}
}

// CreateAppointment books an internal appointment. Owner bookings are trusted
// and skip slot validation.
func (apc *AppointmentController) CreateAppointment(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := apc.appointments.Create(businessID, apc.serviceInput(input))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists all appointments for the business
func (apc *AppointmentController) GetAppointments(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	appointments, err := apc.appointments.ListByBusiness(businessID)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentsByDateRange lists appointments with dates in [start, end]
func (apc *AppointmentController) GetAppointmentsByDateRange(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	appointments, err := apc.appointments.ListByDateRange(businessID, startDate, endDate)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment fetches one appointment by id
func (apc *AppointmentController) GetAppointment(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := apc.appointments.GetByID(appointmentID, businessID)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus applies an owner-initiated status transition
func (apc *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := apc.appointments.UpdateStatus(appointmentID, businessID, input.Status)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment hard-deletes an appointment
func (apc *AppointmentController) DeleteAppointment(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := apc.appointments.Delete(appointmentID, businessID); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
