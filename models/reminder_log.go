// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderType distinguishes the day-before reminder from the 6-hour follow-up.
type ReminderType string

const (
	ReminderFirst    ReminderType = "FIRST_REMINDER"
	ReminderFollowUp ReminderType = "FOLLOW_UP"
)

// ReminderStatus records the outcome of a single dispatch attempt.
type ReminderStatus string

const (
	ReminderSent   ReminderStatus = "SENT"
	ReminderFailed ReminderStatus = "FAILED"
)

// ReminderLog is an append-only audit trail: one row per dispatch attempt,
// not per appointment.
type ReminderLog struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID      `gorm:"type:uuid;index;not null" json:"appointmentId"`
	Type          ReminderType   `gorm:"type:varchar(20);not null" json:"type"`
	Status        ReminderStatus `gorm:"type:varchar(10);not null" json:"status"`
	Message       string         `gorm:"type:text" json:"message"`
	ErrorMessage  string         `gorm:"type:text" json:"errorMessage,omitempty"`
	SentAt        time.Time      `json:"sentAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
