package models

import (
	"time"

	"bookwise-backend/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus is the closed set of lifecycle states.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ParseAppointmentStatus converts a wire string into a status, rejecting
// anything outside the closed set.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), nil
	}
	return "", apperrors.Validationf("invalid status: %s", s)
}

// statusTransitions is the table of legal transitions. CONFIRMED, CANCELLED
// and NO_SHOW are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending: {StatusConfirmed, StatusCancelled, StatusNoShow},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a booked slot for one customer. The date and the two times
// are stored as separate columns ("YYYY-MM-DD" and "HH:MM" strings), matching
// the reminder queries that partition on them.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"businessId"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	AppointmentDate string `gorm:"type:varchar(10);index;not null" json:"appointmentDate"`
	StartTime       string `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime         string `gorm:"type:varchar(5);not null" json:"endTime"`

	Status AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	// ConfirmationToken lets the unauthenticated customer confirm or cancel.
	ConfirmationToken string `gorm:"uniqueIndex;not null" json:"confirmationToken"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID, token and status before creating
func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.ConfirmationToken == "" {
		a.ConfirmationToken = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return
}

// Overlaps reports whether the [startTime, endTime) slot overlaps this
// appointment. Half-open semantics: touching endpoints do not overlap.
func (a *Appointment) Overlaps(startTime, endTime string) bool {
	return startTime < a.EndTime && endTime > a.StartTime
}
