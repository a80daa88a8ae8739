package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is a recurring weekly window during which a business accepts
// bookings. Times are zero-padded HH:MM strings so SQL comparisons order
// chronologically.
type Availability struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"businessId"`
	DayOfWeek  int       `gorm:"not null" json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartTime  string    `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime    string    `gorm:"type:varchar(5);not null" json:"endTime"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Contains reports whether the [startTime, endTime) slot lies fully inside
// this window. Partial overlap does not count.
func (a *Availability) Contains(startTime, endTime string) bool {
	return startTime >= a.StartTime && endTime <= a.EndTime
}
