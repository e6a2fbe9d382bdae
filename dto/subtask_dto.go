package dto

// AssignToAll is the sentinel that fans a subtask out to every team member
// except the leader.
const AssignToAll = "__all__"

// CreateSubtaskRequest represents the request payload for creating a subtask.
// AssignedTo is a single member UserID, or AssignToAll.
type CreateSubtaskRequest struct {
	TaskID      string `json:"taskId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"` // RFC 3339
	AssignedTo  string `json:"assignedTo" binding:"required"`
}
