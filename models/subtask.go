package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subtask represents a unit of work under a parent task, created by the team
// leader. Referenced by SubtaskID strings inside Task.SubTasks.
type Subtask struct {
	SubtaskID    string                      `json:"subtaskId" gorm:"primaryKey;column:subtask_id"`
	ParentTaskID string                      `json:"parentTaskId" gorm:"not null;index"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description"`
	Deadline     time.Time                   `json:"deadline"`
	AssignedTo   datatypes.JSONSlice[string] `json:"assignedTo"`
	Status       WorkStatus                  `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	GitHubURL    string                      `json:"gitHubUrl" gorm:"column:github_url"`
	Context      string                      `json:"context"`
	SubmittedBy  string                      `json:"submittedBy"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt              `json:"-" gorm:"index"`
}

// IsAssignedTo reports whether the given user id is an assignee of the subtask.
func (s Subtask) IsAssignedTo(userID string) bool {
	for _, id := range s.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}
