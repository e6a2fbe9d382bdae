package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is kept as a separate store from User, with verification and
// password-reset tokens on top of the shared account shape.
type Admin struct {
	AdminID           string         `json:"adminId" gorm:"primaryKey;column:admin_id"`
	Name              string         `json:"name" gorm:"not null"`
	Email             string         `json:"email" gorm:"uniqueIndex;not null"`
	Password          string         `json:"-" gorm:"not null"`
	VerificationToken string         `json:"-"`
	ResetToken        string         `json:"-"`
	Verified          bool           `json:"verified" gorm:"default:false"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}
