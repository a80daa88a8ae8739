// controllers/reminder.go
package controllers

import (
	"net/http"

	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReminderController exposes the reminder audit trail to the business owner.
type ReminderController struct {
	db *gorm.DB
}

func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{db: db}
}

// GetReminderLogs lists dispatch attempts for the business's appointments,
// newest first.
func (rc *ReminderController) GetReminderLogs(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var logs []models.ReminderLog
	err := rc.db.
		Joins("JOIN appointments ON appointments.id = reminder_logs.appointment_id").
		Where("appointments.business_id = ?", businessID).
		Order("reminder_logs.sent_at DESC").
		Find(&logs).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
