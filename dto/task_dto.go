package dto

// CreateTaskRequest represents the request payload for creating a task.
// An empty AssignedTo list assigns the task to every member of the team.
type CreateTaskRequest struct {
	ProjectID   string   `json:"projectId" binding:"required"`
	TeamID      string   `json:"teamId" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline" binding:"required"` // RFC 3339
	AssignedTo  []string `json:"assignedTo"`
}

// SubmitWorkRequest is sent by an assignee submitting a task or subtask
type SubmitWorkRequest struct {
	GitHubURL string `json:"gitHubUrl" binding:"required"`
	Context   string `json:"context"`
}

// ReassignWorkRequest sends a task or subtask back with feedback
type ReassignWorkRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}
