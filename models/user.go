package models

import (
	"bookwise-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a business owner account. The user's ID doubles as the business ID
// that scopes every other entity.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessName string    `gorm:"not null" json:"businessName"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	Password     string    `gorm:"not null" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
