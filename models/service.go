package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable offering. Duration defaults an appointment's end time
// when the caller omits it.
type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID      uuid.UUID `gorm:"type:uuid;index;not null" json:"businessId"`
	Name            string    `gorm:"not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
