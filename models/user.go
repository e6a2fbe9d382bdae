package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType represents the flat role tag carried by an account
type UserType string

const (
	UserTypeAdmin          UserType = "Admin"
	UserTypeProjectManager UserType = "ProjectManager"
	UserTypeUser           UserType = "User"
)

// User represents an account in the system. TeamLeader/TeamMember are not
// stored here; they are derived per request from team membership.
type User struct {
	UserID    string         `json:"userId" gorm:"primaryKey;column:user_id"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	UserType  UserType       `json:"userType" gorm:"type:varchar(20);default:'User'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
