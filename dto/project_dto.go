package dto

import (
	"github.com/teamtrack-simple/models"
)

// ProjectFilter represents filter criteria for listing projects
type ProjectFilter struct {
	UserID    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
	IsAdmin   bool
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ProjectAssignmentItem is one team assignment in a project detail view,
// joined manually against the team store.
type ProjectAssignmentItem struct {
	AssignProjectID string   `json:"assignProjectId"`
	TeamID          string   `json:"teamId"`
	TeamName        string   `json:"teamName"`
	Deadline        string   `json:"deadline"`
	TasksIDs        []string `json:"tasksIds"`
}

// ProjectDetailResponse represents a project with its team assignments
type ProjectDetailResponse struct {
	Project     models.Project          `json:"project"`
	Assignments []ProjectAssignmentItem `json:"assignments"`
}
