package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssignedProjectLog is the only link between a Project and a Team.
// One row per (project, team) assignment; TasksIDs lists the TaskID strings
// created under that assignment.
type AssignedProjectLog struct {
	AssignProjectID string                      `json:"assignProjectId" gorm:"primaryKey;column:assign_project_id"`
	ProjectID       string                      `json:"projectId" gorm:"not null;index"`
	TeamID          string                      `json:"teamId" gorm:"not null;index"`
	AssignedBy      string                      `json:"assignedBy" gorm:"not null;index"`
	Deadline        time.Time                   `json:"deadline"`
	TasksIDs        datatypes.JSONSlice[string] `json:"tasksIds"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt              `json:"-" gorm:"index"`
}
