package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "Pending"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// Project represents a work item owned by a project manager.
// Status flips to "In Progress" when the first task is created under it;
// "Completed" only via explicit action.
type Project struct {
	ProjectID   string         `json:"projectId" gorm:"primaryKey;column:project_id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	CreatedBy   string         `json:"createdBy" gorm:"not null;index"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
