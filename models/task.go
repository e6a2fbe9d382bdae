package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkStatus is the shared status enum for tasks and subtasks.
type WorkStatus string

const (
	StatusPending    WorkStatus = "Pending"
	StatusInProgress WorkStatus = "In Progress"
	StatusCompleted  WorkStatus = "Completed"
	StatusReAssigned WorkStatus = "Re Assigned"
)

// Task represents a unit of work created under a project/team assignment.
// It is referenced by TaskID strings inside AssignedProjectLog.TasksIDs, not
// by a database relation. SubTasks lists SubtaskID strings the same way.
type Task struct {
	TaskID      string                      `json:"taskId" gorm:"primaryKey;column:task_id"`
	Title       string                      `json:"title" gorm:"not null"`
	Description string                      `json:"description"`
	Deadline    time.Time                   `json:"deadline"`
	Status      WorkStatus                  `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	GitHubURL   string                      `json:"gitHubUrl" gorm:"column:github_url"`
	Context     string                      `json:"context"`
	SubmittedBy string                      `json:"submittedBy"`
	AssignedTo  datatypes.JSONSlice[string] `json:"assignedTo"`
	SubTasks    datatypes.JSONSlice[string] `json:"subTasks" gorm:"column:sub_tasks"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt              `json:"-" gorm:"index"`
}

// IsAssignedTo reports whether the given user id is an assignee of the task.
func (t Task) IsAssignedTo(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}
