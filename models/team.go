package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Team represents a named group of users led by a single team leader.
// Members holds UserID strings; there is no database relation to users.
type Team struct {
	TeamID     string                      `json:"teamId" gorm:"primaryKey;column:team_id"`
	TeamName   string                      `json:"teamName" gorm:"not null"`
	TeamLeader string                      `json:"teamLeader" gorm:"not null;index"`
	Members    datatypes.JSONSlice[string] `json:"members"`
	CreatedBy  string                      `json:"createdBy" gorm:"not null;index"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt              `json:"-" gorm:"index"`
}

// HasMember reports whether the given user id is in the member list.
func (t Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m == userID {
			return true
		}
	}
	return false
}
