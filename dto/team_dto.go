package dto

import (
	"github.com/teamtrack-simple/models"
)

// CreateTeamRequest represents the request payload for creating a team.
// TeamLeader must also appear in Members.
type CreateTeamRequest struct {
	TeamName   string   `json:"teamName" binding:"required"`
	TeamLeader string   `json:"teamLeader" binding:"required"`
	Members    []string `json:"members" binding:"required,min=1"`
}

// UpdateTeamRequest represents the request payload for updating a team
type UpdateTeamRequest struct {
	TeamName   string   `json:"teamName" binding:"required"`
	TeamLeader string   `json:"teamLeader" binding:"required"`
	Members    []string `json:"members" binding:"required,min=1"`
}

// TeamMemberItem is a member profile joined manually by UserID
type TeamMemberItem struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	IsLeader bool   `json:"isLeader"`
}

// TeamDetailResponse represents a team with its member profiles resolved
type TeamDetailResponse struct {
	Team    models.Team      `json:"team"`
	Members []TeamMemberItem `json:"members"`
}

// CascadeDeleteResult reports per-stage delete counts for cascade operations
type CascadeDeleteResult struct {
	Subtasks int64 `json:"subtasks"`
	Tasks    int64 `json:"tasks"`
	Logs     int64 `json:"logs"`
	Teams    int64 `json:"teams"`
	Projects int64 `json:"projects"`
	Users    int64 `json:"users"`
}
