package dto

// AssignProjectRequest links a project to a team with a deadline
type AssignProjectRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	TeamID    string `json:"teamId" binding:"required"`
	Deadline  string `json:"deadline" binding:"required"` // RFC 3339
}

// UnassignProjectRequest removes a project/team link and its dependents
type UnassignProjectRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	TeamID    string `json:"teamId" binding:"required"`
}
